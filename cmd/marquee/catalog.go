package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog [location]",
	Aliases: []string{"ls"},
	Short:   "List one page of the movie or TV catalog",
	Long: `List one page of the movie or TV catalog.

The page is described by a location string, the same one the web client
keeps in its address bar. Filter flags are applied on top of it; changing
any filter returns to page 1 unless --page is also given.

Examples:
  marquee catalog
  marquee catalog --genre 28 --year 2024 --rating 7
  marquee catalog "?genre=18&sortBy=vote_average.desc&page=3"
  marquee catalog --url "?genre=18&page=3" --page 4
  marquee catalog --kind tv --query "office"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogCmd,
}

// filterFlags maps catalog flags to the filter field they set.
var filterFlags = []struct {
	name  string
	field filter.Field
	usage string
}{
	{"genre", filter.FieldGenre, "Genre ID"},
	{"year", filter.FieldYear, "Year or range (2024, 2020-now, 2010-2019, ...)"},
	{"rating", filter.FieldRating, "Minimum rating (1-9)"},
	{"language", filter.FieldLanguage, "Original language (ISO 639-1)"},
	{"sort", filter.FieldSort, "Sort order"},
	{"query", filter.FieldQuery, "Free-text search"},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().String("kind", "movie", "Catalog (movie or tv)")
	catalogCmd.Flags().String("url", "", "Location to start from (same as the positional argument)")
	addFilterFlags(catalogCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	for _, f := range filterFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().Int("page", 1, "Page number")
}

// stateFromFlags decodes location and applies every filter flag that was set.
func stateFromFlags(cmd *cobra.Command, location string) filter.State {
	st := filter.DecodeString(location)
	flags := cmd.Flags()
	for _, f := range filterFlags {
		if flags.Changed(f.name) {
			v, _ := flags.GetString(f.name)
			st = st.With(f.field, v)
		}
	}
	if flags.Changed("page") {
		page, _ := flags.GetInt("page")
		st = st.WithPage(page)
	}
	return st
}

func runCatalogCmd(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := media.ParseKind(kindFlag)
	if err != nil {
		return err
	}

	location, _ := cmd.Flags().GetString("url")
	if len(args) > 0 {
		location = args[0]
	}
	st := stateFromFlags(cmd, location)

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	res, fetchErr := a.Catalog.Page(cmd.Context(), kind, st)
	view := listing.Present(st, res, fetchErr)

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := printJSON(out, view); err != nil {
			return err
		}
	} else {
		printListing(out, kind, view)
	}

	if fetchErr != nil {
		return fmt.Errorf("catalog: %w", fetchErr)
	}
	return nil
}
