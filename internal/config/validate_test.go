// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{APIKey: "test-key"},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_ReadTokenOnly(t *testing.T) {
	cfg := &Config{TMDB: TMDBConfig{ReadToken: "token"}}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_NoCredentials(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "api_key or read_token"), "expected credential error, got %v", errs)
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_InvalidBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.BaseURL = "not a url"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "tmdb.base_url"), "expected base_url error, got %v", errs)
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.RateLimit = -1
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "tmdb.rate_limit"), "expected rate_limit error, got %v", errs)
}

func TestValidate_UnknownCacheBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Backend = "memcached"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache.backend"), "expected backend error, got %v", errs)
}

func TestValidate_RedisRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Backend = "redis"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache.redis_url"), "expected redis_url error, got %v", errs)

	cfg.Cache.RedisURL = "redis://localhost:6379/0"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_Schedules(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.PruneSchedule = "@every 30m"
	cfg.Cache.WarmSchedule = "0 4 * * *"
	assert.Empty(t, cfg.Validate())

	cfg.Cache.PruneSchedule = "every so often"
	cfg.Cache.WarmSchedule = "61 * * * *"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache.prune_schedule"), "expected prune_schedule error, got %v", errs)
	assert.True(t, containsError(errs, "cache.warm_schedule"), "expected warm_schedule error, got %v", errs)
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: -1, LogLevel: "loud"},
		Cache:  CacheConfig{Backend: "disk"},
	}
	errs := cfg.Validate()
	assert.Len(t, errs, 4)
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
