// Package filter holds the catalog filter state and its address-bar codec.
//
// The query string is the only place a State lives: every view decodes it
// from the location, and every user action encodes a new one.
package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// All is the sentinel for a filter that does not constrain the query.
const All = "all"

// SortKey is an upstream sort order.
type SortKey string

const (
	SortPopularityDesc  SortKey = "popularity.desc"
	SortReleaseDateDesc SortKey = "release_date.desc"
	SortReleaseDateAsc  SortKey = "release_date.asc"
	SortVoteAverageDesc SortKey = "vote_average.desc"
)

// DefaultSort is used when no sort is given.
const DefaultSort = SortPopularityDesc

// Valid reports whether k is one of the supported sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortPopularityDesc, SortReleaseDateDesc, SortReleaseDateAsc, SortVoteAverageDesc:
		return true
	}
	return false
}

// State describes what the user is looking at.
type State struct {
	Genre    string  `json:"genre"`
	Year     string  `json:"year"`
	Rating   string  `json:"rating"`
	Language string  `json:"language"`
	Sort     SortKey `json:"sort_by"`
	Query    string  `json:"query"`
	Page     int     `json:"page"`
}

// Default returns the unconstrained first page.
func Default() State {
	return State{
		Genre:    All,
		Year:     All,
		Rating:   All,
		Language: All,
		Sort:     DefaultSort,
		Page:     1,
	}
}

// Field names a State field as it appears in the query string.
type Field string

const (
	FieldGenre    Field = "genre"
	FieldYear     Field = "year"
	FieldRating   Field = "rating"
	FieldLanguage Field = "language"
	FieldSort     Field = "sortBy"
	FieldQuery    Field = "query"
	FieldPage     Field = "page"
)

// fieldOrder is the order fields are written in the query string.
var fieldOrder = []Field{FieldGenre, FieldYear, FieldRating, FieldLanguage, FieldSort, FieldQuery, FieldPage}

// ParseField resolves a field name, accepting a few aliases.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "genre", "with_genres":
		return FieldGenre, nil
	case "year":
		return FieldYear, nil
	case "rating", "minrating", "min_rating":
		return FieldRating, nil
	case "language", "lang":
		return FieldLanguage, nil
	case "sortby", "sort", "sort_by":
		return FieldSort, nil
	case "query", "q", "search":
		return FieldQuery, nil
	case "page":
		return FieldPage, nil
	}
	return "", fmt.Errorf("unknown filter field %q", name)
}

// With returns a copy with field set to value and the page reset to 1.
// Unrecognized values fall back to the field's default. Setting the page
// behaves like WithPage.
func (s State) With(field Field, value string) State {
	switch field {
	case FieldGenre:
		s.Genre = normalizeGenre(value)
	case FieldYear:
		s.Year = normalizeYear(value)
	case FieldRating:
		s.Rating = normalizeRating(value)
	case FieldLanguage:
		s.Language = normalizeLanguage(value)
	case FieldSort:
		s.Sort = normalizeSort(value)
	case FieldQuery:
		s.Query = strings.TrimSpace(value)
	case FieldPage:
		return s.WithPage(parsePage(value))
	default:
		return s
	}
	s.Page = 1
	return s
}

// Clear resets one field to its default. The page goes back to 1.
func (s State) Clear(field Field) State {
	switch field {
	case FieldQuery:
		return s.With(field, "")
	case FieldSort:
		return s.With(field, string(DefaultSort))
	case FieldPage:
		return s.WithPage(1)
	}
	return s.With(field, All)
}

// WithPage changes only the page. Pages below 1 clamp to 1.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// Reset returns the default state.
func (s State) Reset() State {
	return Default()
}

// Constrained reports whether any filter (genre, year, rating or language)
// narrows the result set.
func (s State) Constrained() bool {
	return s.Genre != All || s.Year != All || s.Rating != All || s.Language != All
}

// GenreID returns the numeric genre, if one is set.
func (s State) GenreID() (int, bool) {
	if s.Genre == All {
		return 0, false
	}
	id, err := strconv.Atoi(s.Genre)
	return id, err == nil
}

// MinRating returns the numeric minimum rating, if one is set.
func (s State) MinRating() (int, bool) {
	if s.Rating == All {
		return 0, false
	}
	r, err := strconv.Atoi(s.Rating)
	return r, err == nil
}

// YearRange returns the release window selected by Year.
func (s State) YearRange() YearRange {
	return RangeFor(s.Year)
}

// Get returns the query-string value of a field, "all" included.
func (s State) Get(field Field) string {
	switch field {
	case FieldGenre:
		return s.Genre
	case FieldYear:
		return s.Year
	case FieldRating:
		return s.Rating
	case FieldLanguage:
		return s.Language
	case FieldSort:
		return string(s.Sort)
	case FieldQuery:
		return s.Query
	case FieldPage:
		return strconv.Itoa(s.Page)
	}
	return ""
}
