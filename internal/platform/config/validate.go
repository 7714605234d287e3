package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Search.validate(),
		c.Cache.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *SearchConfig) validate() error {
	var errs []error

	if s.PerPage < 1 {
		errs = append(errs, fmt.Errorf("search.per_page must be >= 1, got %d", s.PerPage))
	}
	if s.MaxPerPage < s.PerPage {
		errs = append(errs, fmt.Errorf("search.max_per_page must be >= search.per_page, got %d < %d",
			s.MaxPerPage, s.PerPage))
	}
	if s.NotificationTTL <= 0 {
		errs = append(errs, errors.New("search.notification_ttl must be positive"))
	}
	if s.BrowseWorkers < 1 {
		errs = append(errs, fmt.Errorf("search.browse_workers must be >= 1, got %d", s.BrowseWorkers))
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	var errs []error

	switch c.Driver {
	case "memory", "redis", "none":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("cache.driver must be one of: memory, redis, none; got %q", c.Driver))
	}

	if c.SearchTTL < 0 {
		errs = append(errs, errors.New("cache.search_ttl must not be negative"))
	}
	if c.CategoryTTL < 0 {
		errs = append(errs, errors.New("cache.category_ttl must not be negative"))
	}
	if c.Driver == "redis" && c.Redis.Addr == "" {
		errs = append(errs, errors.New("cache.redis.addr must not be empty when driver is redis"))
	}

	return errors.Join(errs...)
}
