package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

func validSummary(id int64) campaign.Summary {
	return campaign.Summary{
		ID:          id,
		Title:       "Solar kettle",
		Description: "Boil water with sunlight",
		Goal:        2000,
		Raised:      1500,
		Status:      campaign.StatusActive,
		Category:    campaign.Category{ID: 3, Name: "Design"},
		Backers:     120,
		DaysLeft:    4,
	}
}

func validResult(q campaign.Query, totalPages int, ids ...int64) *campaign.Result {
	r := &campaign.Result{
		Page:  campaign.NewPageState(q.Page, totalPages, totalPages*len(ids)),
		Query: q,
	}
	for _, id := range ids {
		r.Campaigns = append(r.Campaigns, validSummary(id))
	}
	return r
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
