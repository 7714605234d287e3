package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

// CampaignClient defines the client port for the downstream campaign API.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to downstream API endpoints using domain terminology.
type CampaignClient interface {
	// SearchCampaigns fetches one page of campaigns matching the query.
	// Empty filter fields are omitted from the request. The returned
	// PageState reflects what the backend reported.
	SearchCampaigns(ctx context.Context, q campaign.Query) (*campaign.Result, error)

	// ListCategories returns every category available for filtering.
	ListCategories(ctx context.Context) ([]campaign.Category, error)
}

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implemented by the platform cache drivers (memory, redis, noop).
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// An error means the lookup itself failed, not that the key was absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl. A non-positive ttl stores nothing.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
