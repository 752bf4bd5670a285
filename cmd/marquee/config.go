package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/taxonomy"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long:  "Writes the default config to path, or to the XDG config location. Credentials are read from TMDB_API_KEY or TMDB_READ_TOKEN.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without contacting TMDB.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration with secrets masked",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print which config file would be used",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var errConfigInvalid = errors.New("configuration invalid")

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configTestCmd, configShowCmd, configPathCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return errConfigInvalid
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Resolve(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, map[string]any{"source": source, "config": cfg.Redacted()})
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	return toml.NewEncoder(out).Encode(cfg.Redacted())
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	}
	path, err := config.Discover()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s (log: %s)\n", cfg.Server.Addr(), cfg.Server.LogLevel)

	auth := "api key"
	if cfg.TMDB.ReadToken != "" {
		auth = "read token"
	}
	fmt.Fprintf(w, "  TMDB:       %s (%s, %s, timeout %s)\n", cfg.TMDB.BaseURL, auth, cfg.TMDB.Language, cfg.TMDB.Timeout)
	if cfg.TMDB.RateLimit > 0 {
		fmt.Fprintf(w, "  Rate limit: %g req/s (burst %d)\n", cfg.TMDB.RateLimit, cfg.TMDB.RateBurst)
	}

	cache := cfg.Cache.Backend
	switch cfg.Cache.Backend {
	case taxonomy.BackendSQLite:
		cache += " at " + cfg.Cache.Path
	case taxonomy.BackendRedis:
		cache += " at " + cfg.Redacted().Cache.RedisURL
	}
	fmt.Fprintf(w, "  Cache:      %s (ttl %s)\n", cache, cfg.Cache.TTL)
	fmt.Fprintf(w, "  Schedules:  prune %q, warm %q\n", cfg.Cache.PruneSchedule, cfg.Cache.WarmSchedule)
}
