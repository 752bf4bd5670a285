package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/app"
	"github.com/vmunix/marquee/internal/details"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/suggest"
)

var detailsCmd = &cobra.Command{
	Use:   "details [<kind> <id>]",
	Short: "Show a movie or TV show",
	Long: `Show the title page for a movie or TV show: overview, credits,
cast, trailer and recommendations.

Examples:
  marquee details movie 693134
  marquee details tv 1396
  marquee details --title "Dune Part Two"
  marquee details --title "The Office" --kind tv`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runDetailsCmd,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().String("title", "", "Look the title up by name instead of ID")
	detailsCmd.Flags().String("kind", "", "Restrict --title to movie or tv")
}

func runDetailsCmd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	if title == "" && len(args) != 2 {
		return fmt.Errorf("expected <kind> <id> or --title")
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	var kind media.Kind
	var id int64
	if title != "" {
		kindFlag, _ := cmd.Flags().GetString("kind")
		kind, id, err = resolveTitle(cmd, a, title, kindFlag)
	} else {
		kind, id, err = parseTitleArgs(args[0], args[1])
	}
	if err != nil {
		return err
	}

	view, err := a.Details.Get(cmd.Context(), kind, id)
	if err != nil {
		return fmt.Errorf("details: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), view)
	}
	printDetails(cmd.OutOrStdout(), view)
	return nil
}

func parseTitleArgs(kindArg, idArg string) (media.Kind, int64, error) {
	kind, err := media.ParseKind(kindArg)
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid title ID: %s", idArg)
	}
	return kind, id, nil
}

// resolveTitle finds the best suggestion for title, optionally within one
// kind.
func resolveTitle(cmd *cobra.Command, a *app.App, title, kindFlag string) (media.Kind, int64, error) {
	candidates, err := suggest.Lookup(cmd.Context(), a.TMDB, title)
	if err != nil {
		return "", 0, err
	}

	if kindFlag != "" {
		kind, err := media.ParseKind(kindFlag)
		if err != nil {
			return "", 0, err
		}
		candidates = onlyKind(candidates, kind)
	}

	m := suggest.BestMatch(title, candidates)
	if !m.Found() {
		return "", 0, fmt.Errorf("no match for %q", title)
	}
	if m.Confidence < suggest.ConfidenceHigh {
		newLogger(cmd.ErrOrStderr()).Warn("fuzzy title match",
			"term", title, "matched", m.Suggestion.Title, "confidence", m.Confidence.String())
	}
	return m.Suggestion.Kind, m.Suggestion.ID, nil
}

func onlyKind(items []suggest.Suggestion, kind media.Kind) []suggest.Suggestion {
	out := items[:0:0]
	for _, it := range items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

func printDetails(w io.Writer, v *details.View) {
	fmt.Fprintf(w, "%s (%s)  [%s]\n", v.Title, v.Year, v.Kind.Label())
	if v.Tagline != "" {
		fmt.Fprintf(w, "%q\n", v.Tagline)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Released:  %s\n", v.Date)
	fmt.Fprintf(w, "  Genres:    %s\n", v.Genres)
	fmt.Fprintf(w, "  Rating:    %s\n", v.Rating)
	fmt.Fprintf(w, "  Runtime:   %s\n", v.Runtime)
	fmt.Fprintf(w, "  %-10s %s\n", v.CreditLabel+":", v.Credit)

	trailer := "unavailable"
	if v.HasTrailer() {
		trailer = v.TrailerURL
	} else if v.VideosFailed {
		trailer = "unavailable (lookup failed)"
	}
	fmt.Fprintf(w, "  Trailer:   %s\n", trailer)

	if v.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", v.Overview)
	}

	if len(v.Cast) > 0 {
		fmt.Fprintln(w, "\nCast")
		for _, c := range v.Cast {
			if c.Character != "" {
				fmt.Fprintf(w, "  %s as %s\n", c.Name, c.Character)
			} else {
				fmt.Fprintf(w, "  %s\n", c.Name)
			}
		}
	}

	fmt.Fprintln(w, "\nRecommendations")
	switch {
	case v.RecommendationsFailed:
		fmt.Fprintln(w, "  Data unavailable")
	case len(v.Recommendations) == 0:
		fmt.Fprintln(w, "  None")
	default:
		printSummaries(w, v.Recommendations)
	}
}
