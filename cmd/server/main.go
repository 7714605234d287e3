// Package main is the entry point for the campaign search API. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/crowdfund-search/internal/adapters/http"
	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/crowdfund-search/internal/app"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/cache"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/health"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/httpclient"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/telemetry"
	"github.com/jsamuelsen11/crowdfund-search/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.CampaignClient](injector))
	resultCache := do.MustInvoke[ports.Cache](injector)
	logger.Info("result cache ready", slog.String("driver", cache.Kind(resultCache)))
	if checker, ok := resultCache.(ports.HealthChecker); ok {
		registry.Register(checker)
	}

	// Serve until SIGINT/SIGTERM, then drain in-flight requests.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting campaign search API", slog.String("addr", server.Addr()), slog.String("profile", profile))
	if err := server.Run(sigCtx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if closer, ok := resultCache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Error("cache close error", slog.Any("error", err))
		}
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "campaign-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.CampaignClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewCampaignClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Cache, error) {
		return cache.New(ctx, &cfg.Cache, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogService, error) {
		client := do.MustInvoke[*acl.CampaignClient](i)
		resultCache := do.MustInvoke[ports.Cache](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCatalogService(client, resultCache, app.CatalogConfigFrom(cfg), metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CampaignHandler, error) {
		svc := do.MustInvoke[ports.CatalogService](i)
		return handlers.NewCampaignHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, cache.HealthCheckName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		campaignH := do.MustInvoke[*handlers.CampaignHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(campaignH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Session(nil),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
