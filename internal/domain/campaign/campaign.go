// Package campaign holds the read-side campaign model: result rows, search
// filters, the query sent to the backend, and page bookkeeping.
package campaign

import "math"

// Summary is a single search result row. It is read-only and always sourced
// from the backend.
type Summary struct {
	ID          int64
	Title       string
	Description string
	Goal        float64
	Raised      float64
	Status      Status
	Category    Category
	Backers     int
	DaysLeft    int
}

// ProgressPercent returns how much of the goal has been raised as a whole
// percentage clamped to [0, 100]. A campaign without a positive goal reports 0.
func (s *Summary) ProgressPercent() int {
	if s.Goal <= 0 || s.Raised <= 0 {
		return 0
	}
	pct := math.Floor(s.Raised / s.Goal * 100)
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// Result is one page of search results together with its pagination state.
// Query is the normalized query that produced it.
type Result struct {
	Campaigns []Summary
	Page      PageState
	Query     Query
}
