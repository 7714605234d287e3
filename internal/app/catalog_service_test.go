package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/auth"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/cache"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/telemetry"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
	"github.com/jsamuelsen11/crowdfund-search/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func testCatalogConfig() CatalogConfig {
	return CatalogConfig{
		PageSize:      campaign.PageSizeConfig{Default: 12, Max: 50},
		SearchTTL:     time.Minute,
		CategoryTTL:   time.Hour,
		BrowseWorkers: 2,
	}
}

func resultPage(page, totalPages, totalCount int, ids ...int64) *campaign.Result {
	r := &campaign.Result{Page: campaign.NewPageState(page, totalPages, totalCount)}
	for _, id := range ids {
		r.Campaigns = append(r.Campaigns, campaign.Summary{
			ID:       id,
			Title:    "Campaign",
			Goal:     1000,
			Raised:   250,
			Status:   campaign.StatusActive,
			Category: campaign.Category{ID: 2, Name: "Games"},
		})
	}
	return r
}

func queryWithPage(page int) func(campaign.Query) bool {
	return func(q campaign.Query) bool { return q.Page == page }
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	return signedTokenWithKey(t, subject, "test-secret")
}

func signedTokenWithKey(t *testing.T, subject, key string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return token
}

// --- NewCatalogService ---

func TestNewCatalogService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(mocks.NewMockCampaignClient(t), nil, CatalogConfig{}, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewCatalogService(nil logger) should create a no-op logger, got nil")
	}
	if svc.cfg.BrowseWorkers != 2 {
		t.Errorf("BrowseWorkers = %d, want 2", svc.cfg.BrowseWorkers)
	}
	if svc.cacheDriver != "" {
		t.Errorf("cacheDriver = %q, want empty without a cache", svc.cacheDriver)
	}
}

func TestNewCatalogService_CacheDriver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cache ports.Cache
		want  string
	}{
		{"memory", cache.NewMemory(), cache.DriverMemory},
		{"disabled", cache.Noop{}, cache.DriverNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewCatalogService(mocks.NewMockCampaignClient(t), tt.cache, CatalogConfig{}, nil, nil)
			if svc.cacheDriver != tt.want {
				t.Errorf("cacheDriver = %q, want %q", svc.cacheDriver, tt.want)
			}
		})
	}
}

func TestCatalogConfigFrom(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Search: config.SearchConfig{PerPage: 12, MaxPerPage: 48, BrowseWorkers: 3},
		Cache:  config.CacheConfig{SearchTTL: 30 * time.Second, CategoryTTL: 10 * time.Minute},
	}

	got := CatalogConfigFrom(cfg)
	want := CatalogConfig{
		PageSize:      campaign.PageSizeConfig{Default: 12, Max: 48},
		SearchTTL:     30 * time.Second,
		CategoryTTL:   10 * time.Minute,
		BrowseWorkers: 3,
	}
	if got != want {
		t.Errorf("CatalogConfigFrom() = %+v, want %+v", got, want)
	}
}

// --- Search ---

func TestCatalogService_Search(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the query before calling the backend", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.MatchedBy(func(q campaign.Query) bool {
			return q.Page == 1 &&
				q.PerPage == 50 &&
				q.Filters.Name == "robots" &&
				q.Filters.SortBy == campaign.DefaultSort
		})).Return(resultPage(1, 1, 1, 7), nil).Once()

		got, err := svc.Search(context.Background(), campaign.Query{
			Filters: campaign.Filters{Name: "  robots "},
			Page:    0,
			PerPage: 500,
		})
		if err != nil {
			t.Fatalf("Search() error = %v, want nil", err)
		}
		if len(got.Campaigns) != 1 || got.Campaigns[0].ID != 7 {
			t.Errorf("Search() campaigns = %+v, want one campaign with ID 7", got.Campaigns)
		}
		if got.Query.PerPage != 50 {
			t.Errorf("Search() Query.PerPage = %d, want 50", got.Query.PerPage)
		}
	})

	t.Run("rejects invalid filters without calling the backend", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		_, err := svc.Search(context.Background(), campaign.Query{
			Filters: campaign.Filters{MinGoal: float64Ptr(500), MaxGoal: float64Ptr(100)},
		})

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Search() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["max_goal"]; !ok {
			t.Errorf("ValidationError.Fields = %v, want max_goal entry", verr.Fields)
		}
	})

	t.Run("fetches the last page when the requested page no longer exists", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.MatchedBy(queryWithPage(5))).
			Return(resultPage(5, 3, 30), nil).Once()
		client.EXPECT().SearchCampaigns(mock.Anything, mock.MatchedBy(queryWithPage(3))).
			Return(resultPage(3, 3, 30, 21, 22), nil).Once()

		got, err := svc.Search(context.Background(), campaign.Query{Filters: campaign.DefaultFilters(), Page: 5})
		if err != nil {
			t.Fatalf("Search() error = %v, want nil", err)
		}
		if got.Page.Page != 3 {
			t.Errorf("Search() Page = %d, want 3", got.Page.Page)
		}
		if got.Query.Page != 3 {
			t.Errorf("Search() Query.Page = %d, want 3", got.Query.Page)
		}
		if len(got.Campaigns) != 2 {
			t.Errorf("Search() returned %d campaigns, want 2", len(got.Campaigns))
		}
	})

	t.Run("propagates backend errors", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.Search(context.Background(), campaign.Query{Page: 1})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Search() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("records metrics", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test-service")
		if err != nil {
			t.Fatalf("NewMetrics() error = %v", err)
		}
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), metrics, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 2, 1, 2), nil).Once()

		if _, err := svc.Search(context.Background(), campaign.Query{Page: 1}); err != nil {
			t.Fatalf("Search() error = %v, want nil", err)
		}
	})
}

func TestCatalogService_Search_Cache(t *testing.T) {
	t.Parallel()

	t.Run("serves repeated anonymous queries from cache", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 2, 20, 1, 2), nil).Once()

		q := campaign.Query{Filters: campaign.Filters{CategoryID: int64Ptr(2)}, Page: 1}
		first, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("first Search() error = %v", err)
		}
		second, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("second Search() error = %v", err)
		}

		if second.Page != first.Page {
			t.Errorf("cached Page = %+v, want %+v", second.Page, first.Page)
		}
		if len(second.Campaigns) != 2 || second.Campaigns[1].Category.Name != "Games" {
			t.Errorf("cached Campaigns = %+v, want two decoded campaigns", second.Campaigns)
		}
	})

	t.Run("different pages use different entries", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.MatchedBy(queryWithPage(1))).
			Return(resultPage(1, 2, 20, 1), nil).Once()
		client.EXPECT().SearchCampaigns(mock.Anything, mock.MatchedBy(queryWithPage(2))).
			Return(resultPage(2, 2, 20, 11), nil).Once()

		for _, page := range []int{1, 2, 1, 2} {
			if _, err := svc.Search(context.Background(), campaign.Query{Page: page}); err != nil {
				t.Fatalf("Search(page %d) error = %v", page, err)
			}
		}
	})

	t.Run("caches per credential", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 1, 1), nil).Times(2)

		alice, err := auth.NewSession(signedToken(t, "alice"))
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		bob, err := auth.NewSession(signedToken(t, "bob"))
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		q := campaign.Query{Page: 1}
		for _, s := range []*auth.Session{alice, bob, alice, bob} {
			if _, err := svc.Search(auth.WithSession(context.Background(), s), q); err != nil {
				t.Fatalf("Search() error = %v", err)
			}
		}
	})

	t.Run("token with a borrowed subject misses", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 1, 99), nil).Once()
		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized).Once()

		genuine, err := auth.NewSession(signedTokenWithKey(t, "alice", "test-secret"))
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		forged, err := auth.NewSession(signedTokenWithKey(t, "alice", "other-key"))
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		if forged.Subject() != genuine.Subject() {
			t.Fatalf("subjects differ: %q vs %q", forged.Subject(), genuine.Subject())
		}

		q := campaign.Query{Page: 1}
		if _, err := svc.Search(auth.WithSession(context.Background(), genuine), q); err != nil {
			t.Fatalf("Search(genuine) error = %v", err)
		}

		got, err := svc.Search(auth.WithSession(context.Background(), forged), q)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Search(forged) error = %v, want ErrUnauthorized from the backend", err)
		}
		if got != nil {
			t.Errorf("Search(forged) = %+v, want nil", got)
		}
	})

	t.Run("caches opaque tokens by credential", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 1, 1), nil).Times(2)

		first, err := auth.NewSession("opaque-token-a")
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		second, err := auth.NewSession("opaque-token-b")
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		for _, s := range []*auth.Session{first, first, second, second} {
			if _, err := svc.Search(auth.WithSession(context.Background(), s), campaign.Query{Page: 1}); err != nil {
				t.Fatalf("Search() error = %v", err)
			}
		}
	})

	t.Run("treats cache failures as misses", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		store := mocks.NewMockCache(t)
		svc := NewCatalogService(client, store, testCatalogConfig(), nil, logging.Discard())

		store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, errors.New("connection refused"))
		store.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(errors.New("connection refused"))
		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 1, 1), nil).Once()

		got, err := svc.Search(context.Background(), campaign.Query{Page: 1})
		if err != nil {
			t.Fatalf("Search() error = %v, want nil", err)
		}
		if len(got.Campaigns) != 1 {
			t.Errorf("Search() returned %d campaigns, want 1", len(got.Campaigns))
		}
	})

	t.Run("discards undecodable entries", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		store := mocks.NewMockCache(t)
		svc := NewCatalogService(client, store, testCatalogConfig(), nil, logging.Discard())

		store.EXPECT().Get(mock.Anything, mock.Anything).Return([]byte("{not json"), true, nil)
		store.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 0), nil).Once()

		if _, err := svc.Search(context.Background(), campaign.Query{Page: 1}); err != nil {
			t.Fatalf("Search() error = %v, want nil", err)
		}
	})
}

// --- Categories ---

func TestCatalogService_Categories(t *testing.T) {
	t.Parallel()

	t.Run("caches the category list", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, cache.NewMemory(), testCatalogConfig(), nil, logging.Discard())

		want := []campaign.Category{{ID: 1, Name: "Art"}, {ID: 2, Name: "Games"}}
		client.EXPECT().ListCategories(mock.Anything).Return(want, nil).Once()

		for range 3 {
			got, err := svc.Categories(context.Background())
			if err != nil {
				t.Fatalf("Categories() error = %v", err)
			}
			if len(got) != 2 || got[1].Name != "Games" {
				t.Errorf("Categories() = %+v, want %+v", got, want)
			}
		}
	})

	t.Run("returns error when client fails", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().ListCategories(mock.Anything).Return(nil, domain.ErrForbidden)

		_, err := svc.Categories(context.Background())
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Categories() error = %v, want ErrForbidden", err)
		}
	})
}

// --- Browse ---

func TestCatalogService_Browse(t *testing.T) {
	t.Parallel()

	t.Run("returns first page and categories", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.MatchedBy(func(q campaign.Query) bool {
			return q.Page == 1 && q.PerPage == 12 && q.Filters.SortBy == campaign.DefaultSort
		})).Return(resultPage(1, 4, 40, 1, 2, 3), nil).Once()
		client.EXPECT().ListCategories(mock.Anything).Return([]campaign.Category{{ID: 1, Name: "Art"}}, nil).Once()

		got, err := svc.Browse(context.Background())
		if err != nil {
			t.Fatalf("Browse() error = %v, want nil", err)
		}
		if len(got.Result.Campaigns) != 3 {
			t.Errorf("Browse() campaigns = %d, want 3", len(got.Result.Campaigns))
		}
		if got.Result.Page.TotalPages != 4 {
			t.Errorf("Browse() TotalPages = %d, want 4", got.Result.Page.TotalPages)
		}
		if len(got.Categories) != 1 {
			t.Errorf("Browse() categories = %d, want 1", len(got.Categories))
		}
	})

	t.Run("fails when either call fails", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCampaignClient(t)
		svc := NewCatalogService(client, nil, testCatalogConfig(), nil, logging.Discard())

		client.EXPECT().SearchCampaigns(mock.Anything, mock.Anything).Return(resultPage(1, 1, 0), nil).Maybe()
		client.EXPECT().ListCategories(mock.Anything).Return(nil, domain.ErrUnavailable)

		got, err := svc.Browse(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Browse() error = %v, want ErrUnavailable", err)
		}
		if got != nil {
			t.Errorf("Browse() = %+v, want nil", got)
		}
	})
}

func TestSearchCacheKey(t *testing.T) {
	t.Parallel()

	q := campaign.Query{Filters: campaign.Filters{Name: "robots"}, Page: 2, PerPage: 12}
	keyFor := func(t *testing.T, token string) string {
		t.Helper()
		session, err := auth.NewSession(token)
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		return searchCacheKey(auth.WithSession(context.Background(), session), q)
	}

	anonKey := searchCacheKey(context.Background(), q)
	if got := keyFor(t, ""); got != anonKey {
		t.Errorf("anonymous keys differ: %q vs %q", got, anonKey)
	}

	token := signedToken(t, "alice")
	userKey := keyFor(t, token)
	if userKey == anonKey {
		t.Errorf("token key %q should differ from anonymous key", userKey)
	}
	if got := keyFor(t, token); got != userKey {
		t.Errorf("same token keys differ: %q vs %q", got, userKey)
	}
	if got := keyFor(t, signedTokenWithKey(t, "alice", "other-key")); got == userKey {
		t.Error("tokens sharing a subject must not share a key")
	}
	if strings.Contains(userKey, token) || strings.Contains(userKey, "alice") {
		t.Errorf("key %q leaks the token or its claims", userKey)
	}
}
