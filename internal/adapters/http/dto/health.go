package dto

// Health statuses reported by the liveness and readiness endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthDegraded = "degraded"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of GET /health/live and GET /health/ready.
// Checks maps each dependency to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
