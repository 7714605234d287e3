// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/dto"
	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	campaignHandler *handlers.CampaignHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes. The API is read-only.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns/search", campaignHandler.Search)
		r.Get("/campaigns/browse", campaignHandler.Browse)
		r.Get("/categories", campaignHandler.Categories)
	})

	return r
}
