package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/app"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	// Load config
	cfg, source, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Services ===
	services, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	// === HTTP Setup ===
	api, err := v1.New(services.APIDeps(version), logger)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	logger.Info("server starting",
		"addr", cfg.Server.Addr(),
		"config", source,
		"tmdb", cfg.TMDB.BaseURL,
		"cache", cfg.Cache.Backend,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(api.Handler(), services.Taxonomy, server.Config{
		Addr:          cfg.Server.Addr(),
		PruneSchedule: cfg.Cache.PruneSchedule,
		WarmSchedule:  cfg.Cache.WarmSchedule,
		WarmOnStart:   true,
	}, logger)

	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
