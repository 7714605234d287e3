// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

// CampaignResponse represents a single campaign search row.
type CampaignResponse struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Goal            float64          `json:"goal"`
	Raised          float64          `json:"raised"`
	ProgressPercent int              `json:"progress_percent"`
	Status          string           `json:"status"`
	Category        CategoryResponse `json:"category"`
	Backers         int              `json:"backers"`
	DaysLeft        int              `json:"days_left"`
}

// PaginationResponse describes where a page sits in the result set.
// NextPage and PrevPage are null at the boundaries.
type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	TotalCount int  `json:"total_count"`
	NextPage   *int `json:"next_page"`
	PrevPage   *int `json:"prev_page"`
}

// FiltersResponse echoes the filters that were applied. Unset filters are
// omitted.
type FiltersResponse struct {
	Name       string   `json:"name,omitempty"`
	Status     string   `json:"status,omitempty"`
	CategoryID *int64   `json:"category_id,omitempty"`
	SortBy     string   `json:"sort_by"`
	MinGoal    *float64 `json:"min_goal,omitempty"`
	MaxGoal    *float64 `json:"max_goal,omitempty"`
}

// SearchResponse is the body of GET /api/v1/campaigns/search.
type SearchResponse struct {
	Data       []CampaignResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
	Filters    FiltersResponse    `json:"filters"`
}

// CategoryResponse represents a single category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse is the body of GET /api/v1/categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}

// BrowseResponse is the body of GET /api/v1/campaigns/browse.
type BrowseResponse struct {
	Search     SearchResponse     `json:"search"`
	Categories []CategoryResponse `json:"categories"`
}

// ToCampaignResponse converts a domain Summary to an HTTP response DTO.
func ToCampaignResponse(s *campaign.Summary) CampaignResponse {
	return CampaignResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Goal:            s.Goal,
		Raised:          s.Raised,
		ProgressPercent: s.ProgressPercent(),
		Status:          s.Status.String(),
		Category:        ToCategoryResponse(s.Category),
		Backers:         s.Backers,
		DaysLeft:        s.DaysLeft,
	}
}

// ToPaginationResponse converts a PageState and page size to a pagination
// DTO.
func ToPaginationResponse(p campaign.PageState, perPage int) PaginationResponse {
	resp := PaginationResponse{
		Page:       p.Page,
		PerPage:    perPage,
		TotalPages: p.TotalPages,
		TotalCount: p.TotalCount,
	}
	if p.HasNext() {
		next := p.Page + 1
		resp.NextPage = &next
	}
	if p.HasPrevious() {
		prev := p.Page - 1
		resp.PrevPage = &prev
	}
	return resp
}

// ToFiltersResponse converts domain filters to their echoed form.
func ToFiltersResponse(f campaign.Filters) FiltersResponse {
	f = f.Normalize().Clone()
	return FiltersResponse{
		Name:       f.Name,
		Status:     f.Status.String(),
		CategoryID: f.CategoryID,
		SortBy:     f.SortBy.String(),
		MinGoal:    f.MinGoal,
		MaxGoal:    f.MaxGoal,
	}
}

// ToSearchResponse converts a search Result to an HTTP response DTO.
func ToSearchResponse(r *campaign.Result) SearchResponse {
	data := make([]CampaignResponse, len(r.Campaigns))
	for i := range r.Campaigns {
		data[i] = ToCampaignResponse(&r.Campaigns[i])
	}
	return SearchResponse{
		Data:       data,
		Pagination: ToPaginationResponse(r.Page, r.Query.PerPage),
		Filters:    ToFiltersResponse(r.Query.Filters),
	}
}

// ToCategoryResponse converts a domain Category to an HTTP response DTO.
func ToCategoryResponse(c campaign.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func toCategoryResponses(categories []campaign.Category) []CategoryResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return items
}

// ToCategoryListResponse converts a category list to an HTTP response DTO.
func ToCategoryListResponse(categories []campaign.Category) CategoryListResponse {
	items := toCategoryResponses(categories)
	return CategoryListResponse{
		Categories: items,
		Count:      len(items),
	}
}

// ToBrowseResponse converts a browse overview to an HTTP response DTO.
func ToBrowseResponse(o *ports.Overview) BrowseResponse {
	return BrowseResponse{
		Search:     ToSearchResponse(o.Result),
		Categories: toCategoryResponses(o.Categories),
	}
}
