package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/home"
	"github.com/vmunix/marquee/internal/listing"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the home page: hero and trending/top-rated rails",
	Args:  cobra.NoArgs,
	RunE:  runHomeCmd,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHomeCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	view := a.Home.Load(cmd.Context())
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), view)
	}
	printHome(cmd.OutOrStdout(), view)
	return nil
}

func printHome(w io.Writer, v home.View) {
	fmt.Fprintln(w, "Featured")
	if v.HeroFailed {
		fmt.Fprintf(w, "  %s\n", listing.FailedMessage)
	}
	for _, h := range v.Hero {
		fmt.Fprintf(w, "  %s (%s)  %s  %s  %s\n", h.Title, h.Year, h.Score, h.Runtime, strings.Join(h.Genres, ", "))
	}

	for _, sec := range v.Sections {
		fmt.Fprintf(w, "\n%s\n", sec.Title)
		switch {
		case sec.Failed:
			fmt.Fprintf(w, "  %s\n", listing.FailedMessage)
		case len(sec.Items) == 0:
			fmt.Fprintf(w, "  %s\n", listing.EmptyMessage)
		default:
			printSummaries(w, sec.Items)
		}
	}
}
