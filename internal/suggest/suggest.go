// Package suggest implements the header search box: an explicit-action lookup
// against multi search, independent of the catalog listing.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/pkg/tmdb"
)

//go:generate mockgen -destination=mocks/searcher_mock.go -package=mocks . Searcher

// Limit is the maximum number of suggestions shown.
const Limit = 5

// Searcher runs a multi-kind text search.
type Searcher interface {
	SearchMulti(ctx context.Context, query string, page int) (*tmdb.ListResponse, error)
}

// Suggestion is one entry of the dropdown.
type Suggestion struct {
	media.Summary
	Year string `json:"year"` // "N/A" when unknown
}

// Lookup returns up to Limit movies and series matching term. A blank term
// returns nil without calling upstream.
func Lookup(ctx context.Context, s Searcher, term string) ([]Suggestion, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	resp, err := s.SearchMulti(ctx, term, 1)
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", term, err)
	}

	out := make([]Suggestion, 0, Limit)
	for _, r := range resp.Results {
		// Multi search always sets media_type; entries without one are not
		// titles we can link to.
		if r.MediaType != tmdb.MediaMovie && r.MediaType != tmdb.MediaTV {
			continue
		}
		sum, ok := media.FromResult(r, "")
		if !ok {
			continue
		}
		out = append(out, Suggestion{Summary: sum, Year: sum.Year()})
		if len(out) == Limit {
			break
		}
	}
	return out, nil
}
