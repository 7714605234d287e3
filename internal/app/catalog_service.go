// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/crowdfund-search/internal/app/fanout"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/auth"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/cache"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/telemetry"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// cacheVersion prefixes every cache key.
const cacheVersion = "v1"

const (
	kindSearch     = "search"
	kindCategories = "categories"
)

// CatalogConfig tunes paging and caching for CatalogService.
type CatalogConfig struct {
	PageSize      campaign.PageSizeConfig
	SearchTTL     time.Duration
	CategoryTTL   time.Duration
	BrowseWorkers int
}

// CatalogConfigFrom reads the search and cache sections of cfg.
func CatalogConfigFrom(cfg *config.Config) CatalogConfig {
	return CatalogConfig{
		PageSize: campaign.PageSizeConfig{
			Default: cfg.Search.PerPage,
			Max:     cfg.Search.MaxPerPage,
		},
		SearchTTL:     cfg.Cache.SearchTTL,
		CategoryTTL:   cfg.Cache.CategoryTTL,
		BrowseWorkers: cfg.Search.BrowseWorkers,
	}
}

// CatalogService implements ports.CatalogService on top of the campaign
// backend. It normalizes and validates queries, keeps the requested page
// inside the backend's page range, and caches idempotent reads. It contains
// no presentation state; see package search for the stateful paginator.
type CatalogService struct {
	client      ports.CampaignClient
	cache       ports.Cache
	cacheDriver string
	cfg         CatalogConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// NewCatalogService creates a CatalogService. A nil cache disables caching,
// nil metrics disables metric recording, and a nil logger discards logs.
func NewCatalogService(
	client ports.CampaignClient,
	resultCache ports.Cache,
	cfg CatalogConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.BrowseWorkers < 1 {
		cfg.BrowseWorkers = 2
	}
	s := &CatalogService{
		client:  client,
		cache:   resultCache,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
	if resultCache != nil {
		s.cacheDriver = cache.Kind(resultCache)
	}
	return s
}

// Search returns one page of campaigns. The query's filters are normalized
// and validated before any request is made; the page is raised to 1 and the
// page size clamped to the configured bounds.
//
// If the backend reports fewer pages than the page requested (results
// shrank since the caller last looked), the last page is fetched instead,
// once.
func (s *CatalogService) Search(ctx context.Context, q campaign.Query) (*campaign.Result, error) {
	q = s.normalize(q)
	if err := q.Filters.Validate(); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "searching campaigns",
		slog.String("query", q.CacheKey()),
	)

	result, err := s.search(ctx, q)
	if err != nil {
		return nil, err
	}

	if q.Page > result.Page.TotalPages {
		s.logger.InfoContext(ctx, "requested page beyond last page, fetching last page",
			slog.Int("requested_page", q.Page),
			slog.Int("total_pages", result.Page.TotalPages),
		)
		result, err = s.search(ctx, q.WithPage(result.Page.TotalPages))
		if err != nil {
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.SearchResults.Record(ctx, int64(len(result.Campaigns)))
	}
	return result, nil
}

// Categories returns the category list, cached for CategoryTTL.
func (s *CatalogService) Categories(ctx context.Context) ([]campaign.Category, error) {
	key := cacheVersion + ":categories"

	var cached []campaign.Category
	if s.lookup(ctx, kindCategories, key, &cached) {
		return cached, nil
	}

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "Categories"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.store(ctx, key, categories, s.cfg.CategoryTTL)
	return categories, nil
}

// Browse loads the default first page and the category list concurrently.
// Either failure fails the whole call.
func (s *CatalogService) Browse(ctx context.Context) (*ports.Overview, error) {
	var overview ports.Overview

	err := fanout.All(ctx, s.cfg.BrowseWorkers,
		func(ctx context.Context) error {
			result, err := s.Search(ctx, campaign.Query{Filters: campaign.DefaultFilters(), Page: 1})
			overview.Result = result
			return err
		},
		func(ctx context.Context) error {
			categories, err := s.Categories(ctx)
			overview.Categories = categories
			return err
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load browse overview",
			slog.String("operation", "Browse"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &overview, nil
}

func (s *CatalogService) normalize(q campaign.Query) campaign.Query {
	q.Filters = q.Filters.Normalize()
	if q.Page < 1 {
		q.Page = 1
	}
	q.PerPage = campaign.ClampPerPage(q.PerPage, s.cfg.PageSize)
	return q
}

// search performs one backend search through the cache.
func (s *CatalogService) search(ctx context.Context, q campaign.Query) (*campaign.Result, error) {
	key := searchCacheKey(ctx, q)

	var cached campaign.Result
	if s.lookup(ctx, kindSearch, key, &cached) {
		return &cached, nil
	}

	result, err := s.client.SearchCampaigns(ctx, q)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.ErrorContext(ctx, "campaign search failed",
				slog.String("operation", "Search"),
				slog.Int("page", q.Page),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	result.Query = q

	s.store(ctx, key, result, s.cfg.SearchTTL)
	return result, nil
}

// searchCacheKey scopes search results to the caller. Anonymous results are
// shared. Authenticated results are keyed by a digest of the whole token.
// Claims are unverified and never select a cache entry.
func searchCacheKey(ctx context.Context, q campaign.Query) string {
	scope := "anon"
	if session, ok := auth.FromContext(ctx); ok && !session.IsAnonymous() {
		sum := sha256.Sum256([]byte(session.Token()))
		scope = "tok:" + hex.EncodeToString(sum[:])
	}
	return cacheVersion + ":search:" + scope + ":" + q.CacheKey()
}

// lookup reads and decodes a cached value. Cache failures are logged and
// treated as misses.
func (s *CatalogService) lookup(ctx context.Context, kind, key string, dst any) bool {
	if s.cache == nil {
		return false
	}

	data, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.Any("error", err))
		s.recordLookup(ctx, kind, "error")
		return false
	case !ok:
		s.recordLookup(ctx, kind, "miss")
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))
		s.recordLookup(ctx, kind, "error")
		return false
	}
	s.recordLookup(ctx, kind, "hit")
	return true
}

// store encodes and writes a value. Failures are logged, never returned.
func (s *CatalogService) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.cache == nil || ttl <= 0 {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *CatalogService) recordLookup(ctx context.Context, kind, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CacheLookups.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCacheKind.String(kind),
		telemetry.AttrCacheDriver.String(s.cacheDriver),
		telemetry.AttrResult.String(result),
	))
}
