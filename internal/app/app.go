// Package app builds the service graph shared by the daemon and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/details"
	"github.com/vmunix/marquee/internal/home"
	"github.com/vmunix/marquee/internal/taxonomy"
	"github.com/vmunix/marquee/pkg/tmdb"
)

// App holds the wired services.
type App struct {
	TMDB     *tmdb.Client
	Cache    taxonomy.Cache
	Catalog  *catalog.Service
	Details  *details.Service
	Home     *home.Service
	Taxonomy *taxonomy.Service
}

// New wires every service from cfg. The caller must Close the App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client := NewTMDBClient(cfg.TMDB, logger)

	cache, err := taxonomy.OpenCache(ctx, taxonomy.CacheOptions{
		Backend:  cfg.Cache.Backend,
		Path:     cfg.Cache.Path,
		RedisURL: cfg.Cache.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.Cache.Backend, err)
	}

	return &App{
		TMDB:     client,
		Cache:    cache,
		Catalog:  catalog.NewService(client, logger),
		Details:  details.NewService(client, logger),
		Home:     home.NewService(client, logger),
		Taxonomy: taxonomy.NewService(client, cache, cfg.Cache.TTL, logger),
	}, nil
}

// NewTMDBClient builds a TMDB client from its config section.
func NewTMDBClient(cfg config.TMDBConfig, logger *slog.Logger) *tmdb.Client {
	opts := []tmdb.Option{
		tmdb.WithLanguage(cfg.Language),
		tmdb.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		tmdb.WithLogger(logger),
		tmdb.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, tmdb.WithBaseURL(cfg.BaseURL))
	}
	if cfg.ReadToken != "" {
		opts = append(opts, tmdb.WithReadToken(cfg.ReadToken))
	}
	return tmdb.NewClient(cfg.APIKey, opts...)
}

// APIDeps returns the dependencies of the v1 API.
func (a *App) APIDeps(version string) v1.ServerDeps {
	return v1.ServerDeps{
		Catalog:  a.Catalog,
		Titles:   a.Details,
		Home:     a.Home,
		Taxonomy: a.Taxonomy,
		Searcher: a.TMDB,
		Checks:   a.Checks(),
		Version:  version,
	}
}

// Checks returns the connectivity checks reported by /verify.
func (a *App) Checks() []v1.Checker {
	return []v1.Checker{
		tmdbCheck{client: a.TMDB},
		cacheCheck{cache: a.Cache},
	}
}

// Close releases the cache.
func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}

type tmdbCheck struct {
	client *tmdb.Client
}

func (tmdbCheck) Name() string { return "tmdb" }

func (c tmdbCheck) Check(ctx context.Context) error {
	_, err := c.client.Genres(ctx, tmdb.MediaMovie)
	return err
}

const healthKey = "healthcheck"

type cacheCheck struct {
	cache taxonomy.Cache
}

func (cacheCheck) Name() string { return "cache" }

// Check reads a key that is never written; a miss means the backend answered.
func (c cacheCheck) Check(ctx context.Context) error {
	_, err := c.cache.Get(ctx, healthKey)
	if err == nil || errors.Is(err, taxonomy.ErrCacheMiss) {
		return nil
	}
	return err
}
