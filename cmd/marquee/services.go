package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vmunix/marquee/internal/app"
	"github.com/vmunix/marquee/internal/config"
)

// newLogger logs to w. Only warnings show unless --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openApp wires the catalog services in-process from the resolved config.
// The caller must Close the result.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, _, err := config.Resolve(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return app.New(ctx, cfg, newLogger(os.Stderr))
}
