package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/dto"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

func validSummary() campaign.Summary {
	return campaign.Summary{
		ID:          11,
		Title:       "Solar kettle",
		Description: "Boil water with sunlight",
		Goal:        2000,
		Raised:      500,
		Status:      campaign.StatusActive,
		Category:    campaign.Category{ID: 3, Name: "Design"},
		Backers:     42,
		DaysLeft:    9,
	}
}

func TestToCampaignResponse(t *testing.T) {
	t.Parallel()

	s := validSummary()
	got := dto.ToCampaignResponse(&s)

	if got.ID != 11 || got.Title != "Solar kettle" {
		t.Errorf("ID, Title = %d, %q, want 11, %q", got.ID, got.Title, "Solar kettle")
	}
	if got.ProgressPercent != 25 {
		t.Errorf("ProgressPercent = %d, want 25", got.ProgressPercent)
	}
	if got.Status != "active" {
		t.Errorf("Status = %q, want %q", got.Status, "active")
	}
	if got.Category.Name != "Design" {
		t.Errorf("Category.Name = %q, want %q", got.Category.Name, "Design")
	}
	if got.Backers != 42 || got.DaysLeft != 9 {
		t.Errorf("Backers, DaysLeft = %d, %d, want 42, 9", got.Backers, got.DaysLeft)
	}
}

func TestToPaginationResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     campaign.PageState
		wantNext *int
		wantPrev *int
	}{
		{"single page", campaign.NewPageState(1, 1, 3), nil, nil},
		{"first of many", campaign.NewPageState(1, 3, 30), intPtr(2), nil},
		{"middle", campaign.NewPageState(2, 3, 30), intPtr(3), intPtr(1)},
		{"last", campaign.NewPageState(3, 3, 30), nil, intPtr(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToPaginationResponse(tt.page, 10)

			if got.PerPage != 10 {
				t.Errorf("PerPage = %d, want 10", got.PerPage)
			}
			if !equalIntPtr(got.NextPage, tt.wantNext) {
				t.Errorf("NextPage = %v, want %v", deref(got.NextPage), deref(tt.wantNext))
			}
			if !equalIntPtr(got.PrevPage, tt.wantPrev) {
				t.Errorf("PrevPage = %v, want %v", deref(got.PrevPage), deref(tt.wantPrev))
			}
		})
	}
}

func TestSearchResponse_JSONShape(t *testing.T) {
	t.Parallel()

	categoryID := int64(3)
	result := &campaign.Result{
		Campaigns: []campaign.Summary{validSummary()},
		Page:      campaign.NewPageState(1, 1, 1),
		Query: campaign.Query{
			Filters: campaign.Filters{Name: "solar", CategoryID: &categoryID},
			Page:    1,
			PerPage: 12,
		},
	}

	data, err := json.Marshal(dto.ToSearchResponse(result))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	body := string(data)

	for _, want := range []string{
		`"next_page":null`,
		`"prev_page":null`,
		`"per_page":12`,
		`"total_count":1`,
		`"filters":{"name":"solar","category_id":3,"sort_by":"recent"}`,
		`"progress_percent":25`,
		`"days_left":9`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response JSON missing %s: %s", want, body)
		}
	}
}

func TestToSearchResponse_EmptyDataIsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToSearchResponse(&campaign.Result{Page: campaign.FirstPage()}))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"data":[]`) {
		t.Errorf("empty result should encode data as [], got %s", data)
	}
}

func TestToCategoryListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCategoryListResponse([]campaign.Category{{ID: 1, Name: "Art"}, {ID: 2, Name: "Games"}})
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if got.Categories[1].Name != "Games" {
		t.Errorf("Categories[1].Name = %q, want %q", got.Categories[1].Name, "Games")
	}

	empty := dto.ToCategoryListResponse(nil)
	if empty.Categories == nil || empty.Count != 0 {
		t.Errorf("ToCategoryListResponse(nil) = %+v, want empty non-nil list", empty)
	}
}

func TestToBrowseResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToBrowseResponse(&ports.Overview{
		Result: &campaign.Result{
			Campaigns: []campaign.Summary{validSummary()},
			Page:      campaign.NewPageState(1, 2, 14),
			Query:     campaign.Query{Filters: campaign.DefaultFilters(), Page: 1, PerPage: 12},
		},
		Categories: []campaign.Category{{ID: 3, Name: "Design"}},
	})

	if len(got.Search.Data) != 1 {
		t.Errorf("len(Search.Data) = %d, want 1", len(got.Search.Data))
	}
	if got.Search.Pagination.NextPage == nil || *got.Search.Pagination.NextPage != 2 {
		t.Errorf("Search.Pagination.NextPage = %v, want 2", deref(got.Search.Pagination.NextPage))
	}
	if len(got.Categories) != 1 {
		t.Errorf("len(Categories) = %d, want 1", len(got.Categories))
	}
}

func intPtr(i int) *int { return &i }

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
