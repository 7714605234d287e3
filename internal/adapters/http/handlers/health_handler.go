package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/dto"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a HealthHandler over registry. A failing check
// named in optional reports the service as degraded but still ready.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, optional: make(map[string]bool, len(optional))}
	for _, name := range optional {
		h.optional[name] = true
	}
	return h
}

// Liveness handles GET /health/live. It always answers 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. It answers 503 when a required check
// fails, and 200 with status "degraded" when only optional checks fail.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{Status: dto.HealthReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = dto.HealthOK
			continue
		}
		resp.Checks[name] = err.Error()
		switch {
		case !h.optional[name]:
			resp.Status = dto.HealthNotReady
			code = http.StatusServiceUnavailable
		case resp.Status == dto.HealthReady:
			resp.Status = dto.HealthDegraded
		}
	}

	writeJSON(w, r, code, resp)
}
