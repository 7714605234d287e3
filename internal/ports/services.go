package ports

import (
	"context"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

// CatalogService defines the service port for campaign discovery.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the terminal browser).
type CatalogService interface {
	// Search normalizes and validates the query, then returns one page of
	// results. Returns domain.ErrValidation for bad filters.
	Search(ctx context.Context, q campaign.Query) (*campaign.Result, error)

	// Categories returns the category list used to populate filter choices.
	Categories(ctx context.Context) ([]campaign.Category, error)

	// Browse loads the first page of the default search together with the
	// category list, concurrently.
	Browse(ctx context.Context) (*Overview, error)
}

// Overview is the landing view: the default first page plus all categories.
type Overview struct {
	Result     *campaign.Result
	Categories []campaign.Category
}
