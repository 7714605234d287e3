package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 10

	defaultSearchPerPage    = 12
	defaultSearchMaxPerPage = 50
	defaultBrowseWorkers    = 2
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "crowdfund-search",

		"search.per_page":         defaultSearchPerPage,
		"search.max_per_page":     defaultSearchMaxPerPage,
		"search.notification_ttl": "5s",
		"search.browse_workers":   defaultBrowseWorkers,

		"cache.driver":           "memory",
		"cache.search_ttl":       "30s",
		"cache.category_ttl":     "10m",
		"cache.redis.addr":       "localhost:6379",
		"cache.redis.password":   "",
		"cache.redis.db":         0,
		"cache.redis.key_prefix": "crowdfund:",

		"auth.token": "",

		"browse.log_file": "",
	}
}
