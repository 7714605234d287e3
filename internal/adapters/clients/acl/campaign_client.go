package acl

import (
	"context"
	"fmt"
	"log/slog"

	aclcampaign "github.com/jsamuelsen11/crowdfund-search/internal/adapters/clients/acl/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/httpclient"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

// Compile-time interface check.
var _ ports.CampaignClient = (*CampaignClient)(nil)

// Backend endpoint paths, relative to the client's base URL.
const (
	searchPath     = "/campaigns/search"
	categoriesPath = "/categories"
)

// CampaignClient is the outbound adapter for the campaign backend. It
// implements [ports.CampaignClient].
//
// Queries are sanitized by [campaign.Query.Params] before they leave the
// process, so empty filters never reach the backend. Responses are validated
// against the documented schema by the translators in [aclcampaign]; HTTP
// errors are mapped to domain errors by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, OpenTelemetry tracing, and
// bearer session propagation for every outbound call.
type CampaignClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewCampaignClient creates a CampaignClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the backend
// API root (e.g. "https://api.example.com/api").
func NewCampaignClient(client *httpclient.Client, logger *slog.Logger) *CampaignClient {
	return &CampaignClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// SearchCampaigns fetches one page from GET /campaigns/search.
func (c *CampaignClient) SearchCampaigns(ctx context.Context, q campaign.Query) (*campaign.Result, error) {
	var dto aclcampaign.SearchResponseDTO
	if err := c.req.Get(ctx, searchPath, q.Params(), &dto); err != nil {
		return nil, err
	}

	result, err := aclcampaign.ToDomainResult(&dto, q.Page)
	if err != nil {
		c.logger.ErrorContext(ctx, "search response rejected",
			slog.String("operation", "SearchCampaigns"),
			slog.Int("page", q.Page),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("GET %s: %w", searchPath, err)
	}
	return result, nil
}

// ListCategories fetches the filter categories from GET /categories.
func (c *CampaignClient) ListCategories(ctx context.Context) ([]campaign.Category, error) {
	var dto aclcampaign.CategoryListResponseDTO
	if err := c.req.Get(ctx, categoriesPath, nil, &dto); err != nil {
		return nil, err
	}

	categories, err := aclcampaign.ToDomainCategories(&dto)
	if err != nil {
		c.logger.ErrorContext(ctx, "category response rejected",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("GET %s: %w", categoriesPath, err)
	}
	return categories, nil
}
