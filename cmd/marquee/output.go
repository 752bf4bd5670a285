package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
)

const titleWidth = 42

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}

func kindPlural(k media.Kind) string {
	if k == media.KindTV {
		return "TV Shows"
	}
	return "Movies"
}

func printSummaries(w io.Writer, items []media.Summary) {
	fmt.Fprintf(w, "  # │ %-*s │ %-4s │ %6s │ %8s\n", titleWidth, "TITLE", "YEAR", "RATING", "ID")
	fmt.Fprintf(w, "────┼─%s─┼──────┼────────┼──────────\n", strings.Repeat("─", titleWidth))
	for i, it := range items {
		fmt.Fprintf(w, " %2d │ %-*s │ %-4s │ %6s │ %8d\n",
			i+1, titleWidth, truncate(it.Title, titleWidth), it.Year(), media.FormatRating(it.Rating), it.ID)
	}
}

// printListing renders a listing view the way the catalog screen shows it.
func printListing(w io.Writer, kind media.Kind, v listing.View) {
	fmt.Fprintf(w, "%s %s (%s)\n\n", kindPlural(kind), v.Location, v.Mode)

	if v.Status != listing.StatusReady {
		fmt.Fprintln(w, v.Message)
		return
	}

	printSummaries(w, v.Items)
	if v.Pager != nil {
		printPager(w, v.Pager)
	}
}

func printPager(w io.Writer, p *listing.Pager) {
	pages := make([]string, 0, len(p.Pages))
	for _, l := range p.Pages {
		if l.Current {
			pages = append(pages, fmt.Sprintf("[%d]", l.Page))
		} else {
			pages = append(pages, fmt.Sprintf("%d", l.Page))
		}
	}
	fmt.Fprintf(w, "\nPage %d of %d   %s\n", p.Current, p.TotalPages, strings.Join(pages, " "))
	if !p.Prev.Disabled {
		fmt.Fprintf(w, "  prev: %s\n", p.Prev.Href)
	}
	if !p.Next.Disabled {
		fmt.Fprintf(w, "  next: %s\n", p.Next.Href)
	}
}
