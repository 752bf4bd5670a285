package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/suggest"
)

var browseCmd = &cobra.Command{
	Use:   "browse [location]",
	Short: "Browse the catalog interactively",
	Long: `Browse the catalog interactively.

Every command moves to a new location and renders its page. Type 'help'
at the prompt for the command list.

Examples:
  marquee browse
  marquee browse --kind tv "?genre=18&rating=8"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowseCmd,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().String("kind", "movie", "Catalog (movie or tv)")
}

const browseHelp = `Commands:
  set <field> <value>   Set genre, year, rating, language, sort or query
  clear <field>         Reset one filter
  search <term>         Search titles (same as: set query <term>)
  page <n>              Go to page n
  next, prev            Move one page
  go <location>         Open a location such as ?genre=28&page=2
  kind <movie|tv>       Switch catalog (filters reset)
  reset                 Back to the default location
  suggest [term]        Show suggestions; no term closes the list
  url                   Print the current location
  quit                  Leave`

// browseCommand is one parsed REPL line.
type browseCommand struct {
	verb  string
	field filter.Field
	arg   string
	page  int
	kind  media.Kind
}

func parseBrowseCommand(line string) (browseCommand, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "?") {
		return browseCommand{verb: "go", arg: line}, nil
	}

	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)
	cmd := browseCommand{verb: verb}

	switch verb {
	case "", "next", "prev", "reset", "url", "help":
	case "quit", "exit", "q":
		cmd.verb = "quit"
	case "suggest":
		cmd.arg = rest
	case "search":
		cmd.verb = "set"
		cmd.field = filter.FieldQuery
		cmd.arg = rest
	case "set":
		name, value, _ := strings.Cut(rest, " ")
		field, err := filter.ParseField(name)
		if err != nil {
			return cmd, err
		}
		cmd.field = field
		cmd.arg = strings.TrimSpace(value)
	case "clear":
		field, err := filter.ParseField(rest)
		if err != nil {
			return cmd, err
		}
		cmd.field = field
	case "page":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return cmd, fmt.Errorf("invalid page %q", rest)
		}
		cmd.page = n
	case "go":
		if rest == "" {
			return cmd, errors.New("go needs a location")
		}
		cmd.arg = rest
	case "kind":
		kind, err := media.ParseKind(rest)
		if err != nil {
			return cmd, err
		}
		cmd.kind = kind
	default:
		return cmd, fmt.Errorf("unknown command %q (try 'help')", verb)
	}
	return cmd, nil
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := media.ParseKind(kindFlag)
	if err != nil {
		return err
	}

	var location string
	if len(args) > 0 {
		location = args[0]
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	logger := newLogger(cmd.ErrOrStderr())
	session := browse.NewSession(a.Catalog, kind, logger)
	defer session.Close()
	box := suggest.NewBox(a.TMDB, logger)

	return runBrowse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session, box, location)
}

// runBrowse reads commands from in until quit, EOF or ctx is done. Each
// command's page is fully rendered before the next prompt.
func runBrowse(ctx context.Context, in io.Reader, out io.Writer, s *browse.Session, box *suggest.Box, location string) error {
	kind := s.Kind()
	s.OnRender(func(v listing.View) {
		switch {
		case jsonOutput:
			if v.Status != listing.StatusLoading {
				_ = printJSON(out, v)
			}
		case v.Status == listing.StatusLoading:
			fmt.Fprintf(out, "%s %s\n", v.Message, v.Location)
		default:
			printListing(out, kind, v)
		}
	})

	s.NavigateTo(ctx, location)
	s.Wait()

	sc := bufio.NewScanner(in)
	for ctx.Err() == nil {
		fmt.Fprint(out, "\nmarquee> ")
		if !sc.Scan() {
			break
		}

		c, err := parseBrowseCommand(sc.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch c.verb {
		case "":
		case "quit":
			return nil
		case "help":
			fmt.Fprintln(out, browseHelp)
		case "url":
			fmt.Fprintln(out, s.Location())
		case "set":
			s.Apply(ctx, c.field, c.arg)
		case "clear":
			s.Clear(ctx, c.field)
		case "page":
			s.GoToPage(ctx, c.page)
		case "next":
			if !s.Next(ctx) {
				fmt.Fprintln(out, "No next page")
			}
		case "prev":
			if !s.Prev(ctx) {
				fmt.Fprintln(out, "Already on page 1")
			}
		case "go":
			s.NavigateTo(ctx, c.arg)
		case "reset":
			s.Reset(ctx)
		case "kind":
			kind = c.kind
			s.SwitchKind(ctx, c.kind)
		case "suggest":
			snap, err := box.Enter(ctx, c.arg)
			switch {
			case errors.Is(err, suggest.ErrStale):
			case err != nil:
				fmt.Fprintln(out, listing.FailedMessage)
			case !snap.Open:
				fmt.Fprintln(out, "Suggestions closed")
			default:
				printSuggestions(out, snap.Term, snap.Items)
			}
		}
		s.Wait()
	}
	fmt.Fprintln(out)
	return sc.Err()
}
