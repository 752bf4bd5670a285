package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/taxonomy"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genre IDs for --genre",
	Args:  cobra.NoArgs,
	RunE:  runGenresCmd,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List language codes for --language",
	Args:  cobra.NoArgs,
	RunE:  runLanguagesCmd,
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the year, rating and sort choices",
	Args:  cobra.NoArgs,
	RunE:  runFiltersCmd,
}

func init() {
	rootCmd.AddCommand(genresCmd, languagesCmd, filtersCmd)
	genresCmd.Flags().String("kind", "movie", "Catalog (movie or tv)")
}

func runGenresCmd(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := media.ParseKind(kindFlag)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	genres, err := a.Taxonomy.Genres(cmd.Context(), kind)
	if err != nil {
		return fmt.Errorf("genres: %w", err)
	}
	return printOptions(cmd.OutOrStdout(), taxonomy.GenreOptions(genres))
}

func runLanguagesCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	langs, err := a.Taxonomy.Languages(cmd.Context())
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	return printOptions(cmd.OutOrStdout(), taxonomy.LanguageOptions(langs))
}

func runFiltersCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	groups := []struct {
		flag string
		opts []filter.Option
	}{
		{"--year", filter.YearOptions()},
		{"--rating", filter.RatingOptions()},
		{"--sort", filter.SortOptions()},
	}

	if jsonOutput {
		byFlag := make(map[string][]filter.Option, len(groups))
		for _, g := range groups {
			byFlag[g.flag[2:]] = g.opts
		}
		return printJSON(out, byFlag)
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, g.flag)
		writeOptions(out, g.opts)
	}
	return nil
}

func printOptions(w io.Writer, opts []filter.Option) error {
	if jsonOutput {
		return printJSON(w, opts)
	}
	writeOptions(w, opts)
	return nil
}

func writeOptions(w io.Writer, opts []filter.Option) {
	for _, o := range opts {
		fmt.Fprintf(w, "  %-18s %s\n", o.Value, o.Label)
	}
}
