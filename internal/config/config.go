// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	TMDB   TMDBConfig   `toml:"tmdb"`
	Cache  CacheConfig  `toml:"cache"`
}

type ServerConfig struct {
	Host     string `toml:"host" env:"MARQUEE_HOST"`
	Port     int    `toml:"port" env:"MARQUEE_PORT"`
	LogLevel string `toml:"log_level" env:"MARQUEE_LOG_LEVEL"`
}

type TMDBConfig struct {
	APIKey    string        `toml:"api_key" env:"MARQUEE_TMDB_API_KEY"`
	ReadToken string        `toml:"read_token" env:"MARQUEE_TMDB_READ_TOKEN"`
	BaseURL   string        `toml:"base_url" env:"MARQUEE_TMDB_BASE_URL"`
	Timeout   time.Duration `toml:"timeout" env:"MARQUEE_TMDB_TIMEOUT"`
	Language  string        `toml:"language" env:"MARQUEE_TMDB_LANGUAGE"`
	RateLimit float64       `toml:"rate_limit" env:"MARQUEE_TMDB_RATE_LIMIT"`
	RateBurst int           `toml:"rate_burst" env:"MARQUEE_TMDB_RATE_BURST"`
}

// CacheConfig controls the genre/language lookup cache.
type CacheConfig struct {
	Backend       string        `toml:"backend" env:"MARQUEE_CACHE_BACKEND"`
	Path          string        `toml:"path" env:"MARQUEE_CACHE_PATH"`
	RedisURL      string        `toml:"redis_url" env:"MARQUEE_REDIS_URL"`
	TTL           time.Duration `toml:"ttl" env:"MARQUEE_CACHE_TTL"`
	PruneSchedule string        `toml:"prune_schedule" env:"MARQUEE_CACHE_PRUNE_SCHEDULE"`
	WarmSchedule  string        `toml:"warm_schedule" env:"MARQUEE_CACHE_WARM_SCHEDULE"`
}

const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 8585
	DefaultLogLevel      = "info"
	DefaultTMDBBaseURL   = "https://api.themoviedb.org"
	DefaultTMDBTimeout   = 10 * time.Second
	DefaultTMDBLanguage  = "en-US"
	DefaultCacheBackend  = "memory"
	DefaultCachePath     = "./data/marquee.db"
	DefaultCacheTTL      = 24 * time.Hour
	DefaultPruneSchedule = "@every 1h"
	DefaultWarmSchedule  = "0 4 * * *"
)

// Load reads and parses the configuration file, then validates it.
// Unresolved ${VAR} references and validation failures are returned together
// as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file without
// checking required values. Unresolved variables are left as written.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// FromEnv builds a configuration from defaults and MARQUEE_* environment
// variables alone, for running without a config file.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	cfgErr := &ConfigError{Path: EnvSource, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return &cfg, nil
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, nil, err
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

// applyEnv lets MARQUEE_* variables override file values. Unset variables
// leave fields untouched.
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}

	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = DefaultTMDBBaseURL
	}
	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	if c.TMDB.Timeout == 0 {
		c.TMDB.Timeout = DefaultTMDBTimeout
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = DefaultTMDBLanguage
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = DefaultCacheBackend
	}
	if c.Cache.Path == "" {
		c.Cache.Path = DefaultCachePath
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.PruneSchedule == "" {
		c.Cache.PruneSchedule = DefaultPruneSchedule
	}
	if c.Cache.WarmSchedule == "" {
		c.Cache.WarmSchedule = DefaultWarmSchedule
	}
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands ${VAR} references in content. It returns the
// expanded content and the unresolved variables, in order of appearance.
// Unresolved references are left as written. ${VAR:-default} falls back to
// default; ${VAR:?message} reports "VAR: message" when VAR is unset or empty.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		if value := os.Getenv(name); value != "" {
			return value
		}

		switch op {
		case ":-":
			return arg
		case ":?":
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name+": "+arg)
			}
		default:
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
		}
		return match
	})

	return result, missing
}
