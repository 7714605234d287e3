package ports

import "context"

// HealthChecker reports whether one dependency of the search service can be
// reached. The campaign backend client and the result cache implement it.
type HealthChecker interface {
	// Name keys the check in readiness output, e.g. "campaign-api" or "cache".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honor
	// ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and returns its error keyed by Name; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
