// Package tui is the interactive terminal front end: a bubbletea program
// that drives a search.Session with single-key filter and paging commands.
//
// Every fetch runs as a tea.Cmd. Result messages carry the sequence number
// of the command that produced them, and only the newest one may surface an
// error; the session itself discards superseded responses.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/crowdfund-search/internal/app/search"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

const (
	refreshInterval = 500 * time.Millisecond
	progressWidth   = 20
	nameCharLimit   = 80
)

// Paginator is the session surface the browser drives.
type Paginator interface {
	Load(ctx context.Context) error
	SetName(ctx context.Context, name string) error
	SetStatus(ctx context.Context, status campaign.Status) error
	SetCategory(ctx context.Context, id int64) error
	SetSort(ctx context.Context, sortBy campaign.SortBy) error
	ClearFilters(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	SetGoalRange(ctx context.Context, minGoal, maxGoal *float64) error
	GoTo(ctx context.Context, page int) error
	DismissNotification()
	Snapshot() search.Snapshot
}

// CategorySource lists the categories offered by the category filter.
type CategorySource interface {
	Categories(ctx context.Context) ([]campaign.Category, error)
}

// searchDoneMsg reports the end of a session operation.
type searchDoneMsg struct {
	seq uint64
	err error
}

type categoriesMsg struct {
	categories []campaign.Category
	err        error
}

type tickMsg time.Time

// inputMode says what the text input is editing.
type inputMode int

const (
	editNone inputMode = iota
	editName
	editGoal
)

// Model is the root bubbletea model.
type Model struct {
	ctx        context.Context
	session    Paginator
	source     CategorySource
	styles     Styles
	input      textinput.Model
	bar        progress.Model
	editing    inputMode
	inputErr   string
	snap       search.Snapshot
	categories []campaign.Category
	cursor     int
	seq        uint64
	width      int
	lastErr    error
}

// New creates the browser model. ctx bounds every fetch and carries the
// caller's auth session.
func New(ctx context.Context, session Paginator, source CategorySource) Model {
	ti := textinput.New()
	ti.Placeholder = "campaign name"
	ti.CharLimit = nameCharLimit
	ti.Width = 40

	return Model{
		ctx:     ctx,
		session: session,
		source:  source,
		styles:  DefaultStyles(),
		input:   ti,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		snap:    session.Snapshot(),
	}
}

// Init loads the first page and the category list. The initial load keeps
// the current sequence number because Init cannot return an updated model.
func (m Model) Init() tea.Cmd {
	seq, ctx, session := m.seq, m.ctx, m.session
	load := func() tea.Msg {
		return searchDoneMsg{seq: seq, err: session.Load(ctx)}
	}
	return tea.Batch(load, m.loadCategories(), tick())
}

// Update handles key presses and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick()

	case searchDoneMsg:
		if msg.seq == m.seq {
			m.lastErr = msg.err
			if errors.Is(msg.err, search.ErrSuperseded) || errors.Is(msg.err, search.ErrPageOutOfRange) {
				m.lastErr = nil
			}
		}
		m.refresh()
		return m, nil

	case categoriesMsg:
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := m.input.Value()
		if m.editing == editGoal {
			minGoal, maxGoal, err := parseGoalRange(value)
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m = m.stopEditing()
			return m.run(func(ctx context.Context) error { return m.session.SetGoalRange(ctx, minGoal, maxGoal) })
		}
		m = m.stopEditing()
		return m.run(func(ctx context.Context) error { return m.session.SetName(ctx, value) })
	case tea.KeyEsc:
		return m.stopEditing(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		return m.startEditing(editName, "name: ", "campaign name", m.snap.Filters.Name)

	case "$":
		f := m.snap.Filters
		return m.startEditing(editGoal, "goal: ", "min-max, e.g. 500-10000", formatGoalRange(f.MinGoal, f.MaxGoal))

	case "right", "l", "n":
		if !m.snap.HasNext() {
			return m, nil
		}
		return m.run(m.session.Next)

	case "left", "h", "p":
		if !m.snap.HasPrevious() {
			return m, nil
		}
		return m.run(m.session.Previous)

	case "home", "g":
		if m.snap.Page.Page == 1 {
			return m, nil
		}
		return m.run(func(ctx context.Context) error { return m.session.GoTo(ctx, 1) })

	case "end", "G":
		last := m.snap.Page.TotalPages
		if m.snap.Page.Page == last {
			return m, nil
		}
		return m.run(func(ctx context.Context) error { return m.session.GoTo(ctx, last) })

	case "s":
		next := nextSort(m.snap.Filters.SortBy)
		return m.run(func(ctx context.Context) error { return m.session.SetSort(ctx, next) })

	case "t":
		next := nextStatus(m.snap.Filters.Status)
		return m.run(func(ctx context.Context) error { return m.session.SetStatus(ctx, next) })

	case "c":
		next := nextCategory(m.categories, m.snap.Filters.CategoryID)
		return m.run(func(ctx context.Context) error { return m.session.SetCategory(ctx, next) })

	case "x":
		return m.run(m.session.ClearFilters)

	case "r":
		return m.run(m.session.Load)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.snap.Campaigns)-1 {
			m.cursor++
		}
		return m, nil

	case "esc":
		m.session.DismissNotification()
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m Model) startEditing(mode inputMode, prompt, placeholder, value string) (Model, tea.Cmd) {
	m.editing = mode
	m.inputErr = ""
	m.input.Prompt = prompt
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) stopEditing() Model {
	m.editing = editNone
	m.inputErr = ""
	m.input.Blur()
	return m
}

// run starts op as a command tagged with a fresh sequence number.
func (m Model) run(op func(context.Context) error) (Model, tea.Cmd) {
	m.seq++
	seq, ctx := m.seq, m.ctx
	m.snap.Loading = true
	return m, func() tea.Msg {
		return searchDoneMsg{seq: seq, err: op(ctx)}
	}
}

func (m Model) loadCategories() tea.Cmd {
	if m.source == nil {
		return nil
	}
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		categories, err := source.Categories(ctx)
		return categoriesMsg{categories: categories, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refresh copies the session state into the model.
func (m *Model) refresh() {
	m.snap = m.session.Snapshot()
	if m.cursor >= len(m.snap.Campaigns) {
		m.cursor = max(len(m.snap.Campaigns)-1, 0)
	}
}

// parseGoalRange reads "min-max" where either side may be empty. A single
// number is a minimum, and an empty input removes both bounds.
func parseGoalRange(s string) (minGoal, maxGoal *float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, nil
	}
	lo, hi, _ := strings.Cut(s, "-")
	if minGoal, err = parseBound(lo); err != nil {
		return nil, nil, fmt.Errorf("minimum %w", err)
	}
	if maxGoal, err = parseBound(hi); err != nil {
		return nil, nil, fmt.Errorf("maximum %w", err)
	}
	return minGoal, maxGoal, nil
}

func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &v, nil
}

func formatGoalRange(minGoal, maxGoal *float64) string {
	if minGoal == nil && maxGoal == nil {
		return ""
	}
	var lo, hi string
	if minGoal != nil {
		lo = strconv.FormatFloat(*minGoal, 'f', -1, 64)
	}
	if maxGoal != nil {
		hi = strconv.FormatFloat(*maxGoal, 'f', -1, 64)
	}
	return lo + "-" + hi
}

func nextSort(current campaign.SortBy) campaign.SortBy {
	options := campaign.SortOptions()
	for i, s := range options {
		if s == current {
			return options[(i+1)%len(options)]
		}
	}
	return campaign.DefaultSort
}

// nextStatus cycles "any" through every status and back to "any".
func nextStatus(current campaign.Status) campaign.Status {
	statuses := campaign.Statuses()
	if current == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == current && i+1 < len(statuses) {
			return statuses[i+1]
		}
	}
	return ""
}

// nextCategory cycles "any" through the loaded categories. 0 means any.
func nextCategory(categories []campaign.Category, current *int64) int64 {
	if len(categories) == 0 {
		return 0
	}
	if current == nil {
		return categories[0].ID
	}
	for i, c := range categories {
		if c.ID == *current && i+1 < len(categories) {
			return categories[i+1].ID
		}
	}
	return 0
}
