package catalog

import (
	"slices"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
)

// PostFilter applies the state's filters to one page of search results.
// Items with an unknown release date fail any year bound.
//
// Only the given page is filtered, so a filtered search page may be shorter
// than a full page while pagination still follows the upstream totals.
func PostFilter(items []media.Summary, s filter.State) []media.Summary {
	genre, hasGenre := s.GenreID()
	rating, hasRating := s.MinRating()
	hasLanguage := s.Language != "" && s.Language != filter.All
	years := s.YearRange()

	out := make([]media.Summary, 0, len(items))
	for _, item := range items {
		if hasGenre && !slices.Contains(item.GenreIDs, genre) {
			continue
		}
		if hasLanguage && item.Language != s.Language {
			continue
		}
		if hasRating && item.Rating < float64(rating) {
			continue
		}
		if years.Bounded() {
			released, ok := item.Released()
			if !ok || !years.Contains(released) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
