package campaign

// SortBy selects the ordering of search results.
type SortBy string

const (
	SortRecent     SortBy = "recent"
	SortPopular    SortBy = "popular"
	SortEndingSoon SortBy = "ending_soon"
	SortMostFunded SortBy = "most_funded"
	SortGoalAsc    SortBy = "goal_asc"
	SortGoalDesc   SortBy = "goal_desc"
)

// DefaultSort is applied whenever no ordering is requested.
const DefaultSort = SortRecent

// SortOptions returns every supported ordering, default first.
func SortOptions() []SortBy {
	return []SortBy{SortRecent, SortPopular, SortEndingSoon, SortMostFunded, SortGoalAsc, SortGoalDesc}
}

// IsValid returns true if the ordering is one of the defined constants.
func (s SortBy) IsValid() bool {
	switch s {
	case SortRecent, SortPopular, SortEndingSoon, SortMostFunded, SortGoalAsc, SortGoalDesc:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s SortBy) String() string {
	return string(s)
}
