package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name given to the
// underlying [httpclient.Client] for tracing and metrics.
func (c *CampaignClient) Name() string {
	return "campaign-api"
}

// HealthCheck reports the backend's availability from the circuit breaker
// state; no network call is made.
//
// State mapping:
//   - "closed"    -- backend is operating normally; returns nil.
//   - "half-open" -- the breaker is probing recovery; returns a degraded error.
//   - "open"      -- the breaker is rejecting requests; returns a failing error.
//
// This reports downstream status, not service readiness. Tying readiness to
// the backend would stop traffic reaching the breaker and it would never
// close again.
func (c *CampaignClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("campaign-api: degraded (circuit breaker half-open)")
	case "open":
		return fmt.Errorf("campaign-api: failing (circuit breaker open)")
	default:
		return fmt.Errorf("campaign-api: unknown circuit breaker state %q", state)
	}
}
