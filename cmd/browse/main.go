// Package main is the interactive campaign browser. It shares the API
// server's configuration, backend client and cache, and drives a search
// session from the terminal.
//
// Logs go to browse.log_file when set and are discarded otherwise, since
// the terminal is owned by the UI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/tui"
	"github.com/jsamuelsen11/crowdfund-search/internal/app"
	"github.com/jsamuelsen11/crowdfund-search/internal/app/search"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/auth"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/cache"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/httpclient"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
)

const defaultProfile = "local"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.OpenFile(cfg.Log, cfg.Browse.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	session, err := auth.NewSession(cfg.Auth.Token)
	if err != nil {
		return fmt.Errorf("reading auth token: %w", err)
	}
	if session.Expired(time.Now()) {
		return errors.New("auth token has expired")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx = auth.WithSession(ctx, session)

	resultCache := cache.New(ctx, &cfg.Cache, logger)
	if closer, ok := resultCache.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	client := acl.NewCampaignClient(httpclient.New(&cfg.Client, "campaign-api", nil, logger), logger)
	catalog := app.NewCatalogService(client, resultCache, app.CatalogConfigFrom(cfg), nil, logger)

	paginator := search.NewSession(catalog,
		search.WithPerPage(cfg.Search.PerPage),
		search.WithNotificationTTL(cfg.Search.NotificationTTL),
		search.WithLogger(logger),
	)

	logger.Info("starting campaign browser",
		slog.String("profile", profile),
		slog.String("cache", cache.Kind(resultCache)),
		slog.Any("session", session),
	)

	program := tea.NewProgram(tui.New(ctx, paginator, catalog), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
