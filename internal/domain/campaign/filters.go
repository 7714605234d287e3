package campaign

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
)

// Filters holds the user-entered search criteria. Zero-value fields mean
// "no filter" for that dimension; SortBy falls back to DefaultSort.
type Filters struct {
	Name       string
	Status     Status
	CategoryID *int64
	SortBy     SortBy
	MinGoal    *float64
	MaxGoal    *float64
}

// DefaultFilters returns the filters of a fresh search screen.
func DefaultFilters() Filters {
	return Filters{SortBy: DefaultSort}
}

// Normalize trims the free-text name and applies the default ordering.
func (f Filters) Normalize() Filters {
	f.Name = strings.TrimSpace(f.Name)
	if f.SortBy == "" {
		f.SortBy = DefaultSort
	}
	return f
}

// Validate checks the filter values. Returns a *domain.ValidationError keyed
// by the query parameter name, or nil.
func (f Filters) Validate() error {
	fields := make(map[string]string)

	if f.Status != "" && !f.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", f.Status)
	}
	if f.SortBy != "" && !f.SortBy.IsValid() {
		fields["sort_by"] = fmt.Sprintf("invalid: %q", f.SortBy)
	}
	if f.CategoryID != nil && *f.CategoryID <= 0 {
		fields["category"] = fmt.Sprintf("must be positive, got %d", *f.CategoryID)
	}
	if msg := checkAmount(f.MinGoal); msg != "" {
		fields["min_goal"] = msg
	}
	if msg := checkAmount(f.MaxGoal); msg != "" {
		fields["max_goal"] = msg
	}
	if _, bad := fields["max_goal"]; !bad && f.MinGoal != nil && f.MaxGoal != nil && *f.MaxGoal > 0 && *f.MinGoal > *f.MaxGoal {
		fields["max_goal"] = "must be greater than or equal to min_goal"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Equal reports whether two filter sets select the same campaigns.
// Optional fields are compared by value, not by pointer.
func (f Filters) Equal(other Filters) bool {
	a, b := f.Normalize(), other.Normalize()
	return a.Name == b.Name &&
		a.Status == b.Status &&
		a.SortBy == b.SortBy &&
		equalPtr(a.CategoryID, b.CategoryID) &&
		equalPtr(a.MinGoal, b.MinGoal) &&
		equalPtr(a.MaxGoal, b.MaxGoal)
}

// Clone returns a copy that shares no pointers with f.
func (f Filters) Clone() Filters {
	f.CategoryID = clonePtr(f.CategoryID)
	f.MinGoal = clonePtr(f.MinGoal)
	f.MaxGoal = clonePtr(f.MaxGoal)
	return f
}

// checkAmount returns a validation message for an unusable goal amount, or "".
func checkAmount(v *float64) string {
	switch {
	case v == nil:
		return ""
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		return "must be a finite number"
	case *v < 0:
		return "must not be negative"
	}
	return ""
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
