// Package campaign implements the Anti-Corruption Layer translators for the
// campaign backend's search and category resources.
//
// The backend answers searches with exactly one documented shape:
//
//	{
//	  "data": [ {SummaryDTO}, ... ],
//	  "pagination": { "total_pages": 3, "total_count": 27 }
//	}
//
// and the category list with:
//
//	{ "data": [ {"id": 1, "name": "Technology"}, ... ] }
//
// The translators reject responses that deviate from these shapes.
package campaign

// SummaryDTO matches one row of the backend's search result.
type SummaryDTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Goal        float64      `json:"goal"`
	Raised      float64      `json:"raised"`
	Status      string       `json:"status"`
	Category    *CategoryDTO `json:"category"`
	Backers     int          `json:"backers"`
	DaysLeft    int          `json:"days_left"`
}

// CategoryDTO matches the backend's category object.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PaginationDTO matches the pagination block of a search response. Fields are
// pointers so a missing value can be told apart from zero.
type PaginationDTO struct {
	TotalPages *int `json:"total_pages"`
	TotalCount *int `json:"total_count"`
}

// SearchResponseDTO matches GET /campaigns/search. A nil Data slice means the
// field was absent or null; an empty result decodes to a non-nil empty slice.
type SearchResponseDTO struct {
	Data       []SummaryDTO   `json:"data"`
	Pagination *PaginationDTO `json:"pagination"`
}

// CategoryListResponseDTO matches GET /categories.
type CategoryListResponseDTO struct {
	Data []CategoryDTO `json:"data"`
}
