package campaign

import (
	"net/url"
	"strconv"
)

// PageSizeConfig configures per-page normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPerPage applies defaults and limits for page sizes.
func ClampPerPage(value int, cfg PageSizeConfig) int {
	perPage := value
	if perPage <= 0 {
		perPage = cfg.Default
	}
	if cfg.Max > 0 && perPage > cfg.Max {
		perPage = cfg.Max
	}
	if perPage <= 0 {
		perPage = 1
	}
	return perPage
}

// Query is one search request: filters plus the page to fetch.
type Query struct {
	Filters Filters
	Page    int
	PerPage int
}

// WithPage returns a copy of q targeting page.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// Params returns the sanitized backend parameter set. Empty or falsy filter
// values are omitted entirely; page and per_page are always present.
func (q Query) Params() url.Values {
	f := q.Filters.Normalize()
	v := url.Values{}

	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Status != "" {
		v.Set("status", f.Status.String())
	}
	if f.CategoryID != nil && *f.CategoryID > 0 {
		v.Set("category", strconv.FormatInt(*f.CategoryID, 10))
	}
	v.Set("sort_by", f.SortBy.String())
	if f.MinGoal != nil && *f.MinGoal > 0 {
		v.Set("min_goal", formatAmount(*f.MinGoal))
	}
	if f.MaxGoal != nil && *f.MaxGoal > 0 {
		v.Set("max_goal", formatAmount(*f.MaxGoal))
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	return v
}

// CacheKey returns a canonical string identifying the result set of q.
// Queries that send identical parameters share a key.
func (q Query) CacheKey() string {
	return q.Params().Encode()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
