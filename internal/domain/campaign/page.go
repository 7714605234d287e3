package campaign

// PageState tracks where a paginated search currently is.
// Invariants: 1 <= Page <= TotalPages and TotalCount >= 0.
type PageState struct {
	Page       int
	TotalPages int
	TotalCount int
}

// FirstPage is the state before any response has been received.
func FirstPage() PageState {
	return PageState{Page: 1, TotalPages: 1}
}

// NewPageState builds a PageState that satisfies the invariants. A backend
// reporting zero pages (no matches) still has one, empty, page.
func NewPageState(page, totalPages, totalCount int) PageState {
	if totalPages < 1 {
		totalPages = 1
	}
	if totalCount < 0 {
		totalCount = 0
	}
	p := PageState{TotalPages: totalPages, TotalCount: totalCount}
	p.Page = p.Clamp(page)
	return p
}

// Clamp bounds page to [1, TotalPages].
func (p PageState) Clamp(page int) int {
	if page > p.TotalPages {
		page = p.TotalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// HasNext reports whether a next page exists.
func (p PageState) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious reports whether a previous page exists.
func (p PageState) HasPrevious() bool {
	return p.Page > 1
}
