// internal/config/write.go
package config

import (
	_ "embed"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the example config to the specified path.
// Creates parent directories if needed.
func WriteDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// Write serializes the config to TOML and writes it to the specified path.
// Secrets are written as-is; callers showing a config should use Redacted.
func (c *Config) Write(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// Redacted returns a copy of the config with credentials masked.
func (c *Config) Redacted() *Config {
	out := *c
	out.TMDB.APIKey = mask(c.TMDB.APIKey)
	out.TMDB.ReadToken = mask(c.TMDB.ReadToken)
	if c.Cache.RedisURL != "" {
		if u, err := url.Parse(c.Cache.RedisURL); err == nil {
			out.Cache.RedisURL = u.Redacted()
		}
	}
	return &out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}
