// Package search holds the stateful campaign paginator used by interactive
// front ends. A Session owns the current filters, page, result rows and the
// last user-facing notification, and turns every filter or page change into
// exactly one backend search.
//
// Fetches follow latest-request-wins: starting a fetch cancels the one in
// flight, and a response that arrives after a newer fetch started is
// discarded with ErrSuperseded.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

var (
	// ErrPageOutOfRange is returned by Next and Previous at a boundary.
	// No fetch is made.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrSuperseded is returned by a fetch whose response was dropped
	// because a newer fetch started before it completed.
	ErrSuperseded = errors.New("search superseded by a newer request")
)

// DefaultNotificationTTL is how long a notification stays visible when no
// WithNotificationTTL option is given.
const DefaultNotificationTTL = 5 * time.Second

// Level classifies a notification.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Notification is a transient message for the user.
type Notification struct {
	Level     Level
	Message   string
	ExpiresAt time.Time
}

// Active reports whether the notification should still be shown at now.
func (n *Notification) Active(now time.Time) bool {
	return n != nil && now.Before(n.ExpiresAt)
}

// Snapshot is a point-in-time copy of a session. It shares no memory with
// the session.
type Snapshot struct {
	Filters      campaign.Filters
	Page         campaign.PageState
	PerPage      int
	Campaigns    []campaign.Summary
	Loading      bool
	Notification *Notification
	Generation   uint64
}

// HasNext reports whether a next page exists.
func (s Snapshot) HasNext() bool { return s.Page.HasNext() }

// HasPrevious reports whether a previous page exists.
func (s Snapshot) HasPrevious() bool { return s.Page.HasPrevious() }

// Option configures a Session.
type Option func(*Session)

// WithPerPage sets the page size sent with every search. The catalog
// service clamps it to its configured maximum.
func WithPerPage(n int) Option {
	return func(s *Session) { s.perPage = n }
}

// WithNotificationTTL sets how long notifications stay visible.
func WithNotificationTTL(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFilters sets the filters of the first search.
func WithFilters(f campaign.Filters) Option {
	return func(s *Session) { s.filters = f.Normalize().Clone() }
}

// Session is a paginated campaign search. It is safe for concurrent use.
type Session struct {
	catalog ports.CatalogService
	perPage int
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger

	mu           sync.Mutex
	filters      campaign.Filters
	page         campaign.PageState
	campaigns    []campaign.Summary
	notification *Notification
	loading      bool
	generation   uint64
	cancel       context.CancelFunc
	pending      *campaign.Query
}

// NewSession creates a session on the first page of the default filters.
// Nothing is fetched until Load or a mutating call.
func NewSession(catalog ports.CatalogService, opts ...Option) *Session {
	s := &Session{
		catalog: catalog,
		ttl:     DefaultNotificationTTL,
		now:     time.Now,
		logger:  logging.Discard(),
		filters: campaign.DefaultFilters(),
		page:    campaign.FirstPage(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the current filters at the current page. While a fetch is in
// flight it restarts that fetch.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	return s.fetchLocked(ctx, s.targetLocked())
}

// SetFilters replaces all filters and fetches page 1. Filters equal to the
// current ones are a no-op. Invalid filters leave the session unchanged,
// raise a warning notification and return the *domain.ValidationError.
func (s *Session) SetFilters(ctx context.Context, f campaign.Filters) error {
	return s.changeFilters(ctx, func(cur *campaign.Filters) { *cur = f })
}

// SetName changes the free-text name filter.
func (s *Session) SetName(ctx context.Context, name string) error {
	return s.changeFilters(ctx, func(f *campaign.Filters) { f.Name = name })
}

// SetStatus changes the status filter. An empty status removes it.
func (s *Session) SetStatus(ctx context.Context, status campaign.Status) error {
	return s.changeFilters(ctx, func(f *campaign.Filters) { f.Status = status })
}

// SetCategory changes the category filter. An id of 0 removes it.
func (s *Session) SetCategory(ctx context.Context, id int64) error {
	return s.changeFilters(ctx, func(f *campaign.Filters) {
		f.CategoryID = nil
		if id != 0 {
			f.CategoryID = &id
		}
	})
}

// SetSort changes the result ordering.
func (s *Session) SetSort(ctx context.Context, sortBy campaign.SortBy) error {
	return s.changeFilters(ctx, func(f *campaign.Filters) { f.SortBy = sortBy })
}

// SetGoalRange changes the funding goal bounds. A nil bound removes it.
func (s *Session) SetGoalRange(ctx context.Context, minGoal, maxGoal *float64) error {
	return s.changeFilters(ctx, func(f *campaign.Filters) {
		f.MinGoal = minGoal
		f.MaxGoal = maxGoal
	})
}

// ClearFilters restores the default filters and fetches page 1.
func (s *Session) ClearFilters(ctx context.Context) error {
	s.mu.Lock()
	q := s.targetLocked()
	q.Filters = campaign.DefaultFilters()
	q.Page = 1
	return s.fetchLocked(ctx, q)
}

// Next fetches the following page. On the last page it returns
// ErrPageOutOfRange without fetching.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	q := s.targetLocked()
	if q.Page >= s.page.TotalPages {
		s.mu.Unlock()
		return ErrPageOutOfRange
	}
	q.Page++
	return s.fetchLocked(ctx, q)
}

// Previous fetches the preceding page. On page 1 it returns
// ErrPageOutOfRange without fetching.
func (s *Session) Previous(ctx context.Context) error {
	s.mu.Lock()
	q := s.targetLocked()
	if q.Page <= 1 {
		s.mu.Unlock()
		return ErrPageOutOfRange
	}
	q.Page--
	return s.fetchLocked(ctx, q)
}

// GoTo fetches page n, clamped to [1, TotalPages].
func (s *Session) GoTo(ctx context.Context, n int) error {
	s.mu.Lock()
	q := s.targetLocked()
	q.Page = s.page.Clamp(n)
	return s.fetchLocked(ctx, q)
}

// changeFilters applies edit to the filters the session is heading to and
// fetches page 1 of the result.
func (s *Session) changeFilters(ctx context.Context, edit func(*campaign.Filters)) error {
	s.mu.Lock()
	q := s.targetLocked()
	edit(&q.Filters)
	q.Filters = q.Filters.Normalize().Clone()

	if q.Filters.Equal(s.targetLocked().Filters) {
		s.mu.Unlock()
		return nil
	}
	if err := q.Filters.Validate(); err != nil {
		s.notifyLocked(LevelWarning, err.Error())
		s.mu.Unlock()
		return err
	}

	q.Page = 1
	return s.fetchLocked(ctx, q)
}

// HasNext reports whether Next would fetch.
func (s *Session) HasNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.HasNext()
}

// HasPrevious reports whether Previous would fetch.
func (s *Session) HasPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.HasPrevious()
}

// Filters returns a copy of the current filters.
func (s *Session) Filters() campaign.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// DismissNotification clears the current notification.
func (s *Session) DismissNotification() {
	s.mu.Lock()
	s.notification = nil
	s.mu.Unlock()
}

// Snapshot returns a copy of the session state. Expired notifications are
// omitted.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Filters:    s.filters.Clone(),
		Page:       s.page,
		PerPage:    s.perPage,
		Campaigns:  append([]campaign.Summary(nil), s.campaigns...),
		Loading:    s.loading,
		Generation: s.generation,
	}
	if s.notification.Active(s.now()) {
		n := *s.notification
		snap.Notification = &n
	}
	return snap
}

func (s *Session) queryLocked() campaign.Query {
	return campaign.Query{Filters: s.filters.Clone(), Page: s.page.Page, PerPage: s.perPage}
}

// targetLocked returns the query in flight, or the committed state when
// nothing is in flight. Successive changes build on it.
func (s *Session) targetLocked() campaign.Query {
	if s.pending == nil {
		return s.queryLocked()
	}
	q := *s.pending
	q.Filters = q.Filters.Clone()
	return q
}

// fetchLocked starts a fetch for q. It must be called with s.mu held and
// releases it while the search is in flight. q's filters and page are
// committed only once the search completes; a canceled caller leaves the
// committed state as it was.
func (s *Session) fetchLocked(ctx context.Context, q campaign.Query) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.pending = &q
	s.generation++
	gen := s.generation
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.loading = true
	s.mu.Unlock()

	defer cancel()
	result, err := s.catalog.Search(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.DebugContext(ctx, "dropping superseded search result",
			slog.Uint64("generation", gen),
			slog.Uint64("current_generation", s.generation),
		)
		return ErrSuperseded
	}
	s.cancel = nil
	s.pending = nil
	s.loading = false

	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return err
		}
		s.logger.ErrorContext(ctx, "campaign search failed",
			slog.String("operation", "search.Session"),
			slog.Int("page", q.Page),
			slog.Any("error", err),
		)
		s.filters = q.Filters
		s.campaigns = nil
		s.page = campaign.NewPageState(q.Page, q.Page, 0)
		s.notifyLocked(LevelError, userMessage(err))
		return err
	}

	s.filters = q.Filters
	s.campaigns = result.Campaigns
	s.page = result.Page
	if s.notification != nil && s.notification.Level == LevelError {
		s.notification = nil
	}
	return nil
}

func (s *Session) notifyLocked(level Level, msg string) {
	s.notification = &Notification{Level: level, Message: msg, ExpiresAt: s.now().Add(s.ttl)}
}

// userMessage maps an error to text suitable for display.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return "Your session has expired. Sign in again to search."
	case errors.Is(err, domain.ErrForbidden):
		return "You are not allowed to search campaigns."
	case errors.Is(err, context.DeadlineExceeded):
		return "The search took too long. Please try again."
	default:
		return "Could not load campaigns. Please try again."
	}
}
