// Package server runs the daemon: the HTTP API plus scheduled cache upkeep.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Config for the daemon runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	PruneSchedule   string // cron spec; empty disables pruning
	WarmSchedule    string // cron spec; empty disables warming
	WarmOnStart     bool
}

// Maintainer is the cache upkeep the scheduler drives.
type Maintainer interface {
	Warm(ctx context.Context) error
	Prune(ctx context.Context) (int64, error)
}

// Runner manages the HTTP server and the scheduler.
type Runner struct {
	handler http.Handler
	cache   Maintainer
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cache Maintainer, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		cache:   cache,
		config:  cfg,
		logger:  logger.With("component", "runner"),
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln. It blocks until ctx is canceled or a
// component fails, and returns nil after a clean shutdown.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	sched, err := r.scheduler(ctx)
	if err != nil {
		_ = ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Use errgroup to manage component lifecycle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	sched.Start()
	g.Go(func() error {
		<-ctx.Done()
		// Wait for running jobs to return.
		<-sched.Stop().Done()
		return nil
	})

	if r.config.WarmOnStart && r.cache != nil {
		g.Go(func() error {
			r.warm(ctx)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) scheduler(ctx context.Context) (*cron.Cron, error) {
	logger := cronLogger{log: r.logger.With("component", "cron")}
	sched := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if r.cache == nil {
		return sched, nil
	}

	if spec := r.config.PruneSchedule; spec != "" {
		if _, err := sched.AddFunc(spec, func() { r.prune(ctx) }); err != nil {
			return nil, fmt.Errorf("prune schedule %q: %w", spec, err)
		}
	}
	if spec := r.config.WarmSchedule; spec != "" {
		if _, err := sched.AddFunc(spec, func() { r.warm(ctx) }); err != nil {
			return nil, fmt.Errorf("warm schedule %q: %w", spec, err)
		}
	}
	return sched, nil
}

func (r *Runner) warm(ctx context.Context) {
	start := time.Now()
	if err := r.cache.Warm(ctx); err != nil {
		r.logger.Warn("taxonomy warm failed", "error", err)
		return
	}
	r.logger.Info("taxonomy warmed", "duration_ms", time.Since(start).Milliseconds())
}

func (r *Runner) prune(ctx context.Context) {
	n, err := r.cache.Prune(ctx)
	if err != nil {
		r.logger.Warn("cache prune failed", "error", err)
		return
	}
	if n > 0 {
		r.logger.Info("cache pruned", "removed", n)
	}
}

// cronLogger routes scheduler output through slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
