package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/crowdfund-search/internal/app/search"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

const (
	titleWidth    = 32
	categoryWidth = 14
	statusWidth   = 10
)

const helpText = "/ name  $ goal  t status  c category  s sort  x clear  ←/→ page  g/G first/last  r reload  esc dismiss  q quit"

// View renders the filter bar, the result rows, the pager and any
// notification.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Campaign search"))
	b.WriteString("\n\n")

	if m.editing != editNone {
		b.WriteString(m.styles.Input.Render(m.input.View()))
		if m.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.Warning.Render(m.inputErr))
		}
	} else {
		b.WriteString(m.viewFilters())
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewRows())
	b.WriteString("\n")
	b.WriteString(m.viewPager())

	if n := m.snap.Notification; n != nil {
		b.WriteString("\n\n")
		b.WriteString(m.viewNotification(n))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(helpText))

	base := m.styles.Base
	if m.width > 0 {
		base = base.MaxWidth(m.width)
	}
	return base.Render(b.String())
}

func (m Model) viewFilters() string {
	f := m.snap.Filters
	parts := []string{
		m.field("Name", orAny(quoteOrEmpty(f.Name))),
		m.field("Status", orAny(string(f.Status))),
		m.field("Category", orAny(m.categoryName(f.CategoryID))),
		m.field("Sort", string(f.SortBy)),
	}
	if f.MinGoal != nil || f.MaxGoal != nil {
		parts = append(parts, m.field("Goal", goalRange(f.MinGoal, f.MaxGoal)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) field(label, value string) string {
	return m.styles.Label.Render(label+":") + " " + m.styles.Value.Render(value)
}

func (m Model) viewRows() string {
	if m.snap.Loading && len(m.snap.Campaigns) == 0 {
		return m.styles.Dim.Render("Loading…") + "\n"
	}
	if len(m.snap.Campaigns) == 0 {
		return m.styles.Dim.Render("No campaigns match these filters.") + "\n"
	}

	var b strings.Builder
	for i := range m.snap.Campaigns {
		c := &m.snap.Campaigns[i]
		cursor := "  "
		rowStyle := m.styles.Row
		if i == m.cursor {
			cursor = "> "
			rowStyle = m.styles.Selected
		}

		pct := c.ProgressPercent()
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			cursor,
			rowStyle.Width(titleWidth).Render(truncate(c.Title, titleWidth-1)),
			m.styles.Dim.Width(categoryWidth).Render(truncate(c.Category.Name, categoryWidth-1)),
			m.styles.status(string(c.Status)).Width(statusWidth).Render(string(c.Status)),
			m.bar.ViewAs(float64(pct)/100),
			fmt.Sprintf(" %3d%%  %d backers  %s", pct, c.Backers, daysLeft(c.DaysLeft)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if c := m.selected(); c != nil && c.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render(truncate(c.Description, 100)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewPager() string {
	p := m.snap.Page
	prev, next := "‹ prev", "next ›"

	prevStyle, nextStyle := m.styles.Pager, m.styles.Pager
	if !p.HasPrevious() {
		prevStyle = m.styles.Disabled
	}
	if !p.HasNext() {
		nextStyle = m.styles.Disabled
	}

	status := fmt.Sprintf("Page %d of %d (%d campaigns)", p.Page, p.TotalPages, p.TotalCount)
	if m.snap.Loading {
		status += " " + m.styles.Dim.Render("loading…")
	}
	return strings.Join([]string{prevStyle.Render(prev), status, nextStyle.Render(next)}, "  ")
}

func (m Model) viewNotification(n *search.Notification) string {
	if n.Level == search.LevelWarning {
		return m.styles.Warning.Render(n.Message)
	}
	return m.styles.Error.Render(n.Message)
}

func (m Model) selected() *campaign.Summary {
	if m.cursor < 0 || m.cursor >= len(m.snap.Campaigns) {
		return nil
	}
	return &m.snap.Campaigns[m.cursor]
}

func (m Model) categoryName(id *int64) string {
	if id == nil {
		return ""
	}
	for _, c := range m.categories {
		if c.ID == *id {
			return c.Name
		}
	}
	return "#" + strconv.FormatInt(*id, 10)
}

func goalRange(minGoal, maxGoal *float64) string {
	lo, hi := "0", "∞"
	if minGoal != nil {
		lo = strconv.FormatFloat(*minGoal, 'f', -1, 64)
	}
	if maxGoal != nil {
		hi = strconv.FormatFloat(*maxGoal, 'f', -1, 64)
	}
	return lo + "–" + hi
}

func daysLeft(days int) string {
	switch {
	case days <= 0:
		return "ended"
	case days == 1:
		return "1 day left"
	default:
		return strconv.Itoa(days) + " days left"
	}
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return ""
	}
	return strconv.Quote(s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
