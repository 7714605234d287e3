package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/dto"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

// CampaignHandler serves the read-only campaign search API.
type CampaignHandler struct {
	catalog ports.CatalogService
}

// NewCampaignHandler creates a new CampaignHandler with the given catalog port.
func NewCampaignHandler(catalog ports.CatalogService) *CampaignHandler {
	return &CampaignHandler{catalog: catalog}
}

// Search handles GET /api/v1/campaigns/search.
func (h *CampaignHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseSearchRequest(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.catalog.Search(r.Context(), q)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSearchResponse(result))
}

// Categories handles GET /api/v1/categories.
func (h *CampaignHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Browse handles GET /api/v1/campaigns/browse.
func (h *CampaignHandler) Browse(w http.ResponseWriter, r *http.Request) {
	overview, err := h.catalog.Browse(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBrowseResponse(overview))
}
