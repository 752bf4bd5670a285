// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validCacheBackends = map[string]bool{
	"memory": true, "sqlite": true, "redis": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// TMDB validation
	if c.TMDB.APIKey == "" && c.TMDB.ReadToken == "" {
		errs = append(errs, "tmdb: api_key or read_token required")
	}
	if c.TMDB.BaseURL != "" {
		if u, err := url.Parse(c.TMDB.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("tmdb.base_url: invalid URL %q", c.TMDB.BaseURL))
		}
	}
	if c.TMDB.Timeout < 0 {
		errs = append(errs, "tmdb.timeout: must not be negative")
	}
	if c.TMDB.RateLimit < 0 {
		errs = append(errs, "tmdb.rate_limit: must not be negative")
	}
	if c.TMDB.RateBurst < 0 {
		errs = append(errs, "tmdb.rate_burst: must not be negative")
	}

	// Cache validation
	if !validCacheBackends[c.Cache.Backend] {
		errs = append(errs, fmt.Sprintf("cache.backend: must be one of memory, sqlite, redis; got %q", c.Cache.Backend))
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisURL == "" {
		errs = append(errs, "cache.redis_url: required when backend is redis")
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, "cache.ttl: must not be negative")
	}
	if c.Cache.PruneSchedule != "" {
		if _, err := cron.ParseStandard(c.Cache.PruneSchedule); err != nil {
			errs = append(errs, fmt.Sprintf("cache.prune_schedule: %v", err))
		}
	}
	if c.Cache.WarmSchedule != "" {
		if _, err := cron.ParseStandard(c.Cache.WarmSchedule); err != nil {
			errs = append(errs, fmt.Sprintf("cache.warm_schedule: %v", err))
		}
	}

	return errs
}
