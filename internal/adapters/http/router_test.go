package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/crowdfund-search/internal/adapters/http"
	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/auth"
	"github.com/jsamuelsen11/crowdfund-search/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockCatalogService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockCatalogService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ch := handlers.NewCampaignHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(ch, hh, middlewares...), svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/campaigns/search"},
		{http.MethodGet, "/api/v1/campaigns/browse"},
		{http.MethodGet, "/api/v1/categories"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
	if len(registered) != len(expectedRoutes) {
		t.Errorf("registered %d routes, want %d: %v", len(registered), len(expectedRoutes), registered)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, _, registry := newTestRouter(t, testMW)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationSearch(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	svc.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q campaign.Query) bool {
		return q.Filters.Name == "kettle" && q.Page == 1
	})).Return(&campaign.Result{Page: campaign.FirstPage()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/search?name=kettle", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_SessionReachesCatalog(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t, middleware.Session(nil))

	var token string
	svc.EXPECT().Categories(mock.Anything).RunAndReturn(func(ctx context.Context) ([]campaign.Category, error) {
		if s, ok := auth.FromContext(ctx); ok {
			token = s.Token()
		}
		return nil, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Authorization", "Bearer opaque-123")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if token != "opaque-123" {
		t.Errorf("catalog saw token %q, want %q", token, "opaque-123")
	}
}

func TestRouter_NotFoundReturnsProblem(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/search", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
