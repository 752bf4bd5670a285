package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <term>...",
	Short: "Show search suggestions across movies and TV",
	Long: `Show up to five movies and TV shows matching a term, as the
search box dropdown lists them.

Examples:
  marquee suggest dune
  marquee suggest "breaking bad"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggestCmd,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggestCmd(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	items, err := suggest.Lookup(cmd.Context(), a.TMDB, term)
	if err != nil {
		return err
	}
	if items == nil {
		items = []suggest.Suggestion{}
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), items)
	}
	printSuggestions(cmd.OutOrStdout(), term, items)
	return nil
}

func printSuggestions(w io.Writer, term string, items []suggest.Suggestion) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No suggestions for %q\n", term)
		return
	}
	for i, s := range items {
		fmt.Fprintf(w, " %d. %s (%s) [%s] id=%d\n", i+1, s.Title, s.Year, s.Kind.Label(), s.ID)
	}
}
