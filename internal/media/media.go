// Package media defines the normalized catalog item shared by every view.
package media

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/vmunix/marquee/pkg/tmdb"
)

// Kind is the catalog a title belongs to.
type Kind string

const (
	KindMovie Kind = tmdb.MediaMovie
	KindTV    Kind = tmdb.MediaTV
)

// DateLayout is the upstream date format.
const DateLayout = "2006-01-02"

// ParseKind accepts "movie" or "tv" (case-insensitive, "series" as an alias).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies":
		return KindMovie, nil
	case "tv", "series", "show":
		return KindTV, nil
	}
	return "", fmt.Errorf("%w: %q", tmdb.ErrInvalidKind, s)
}

// Valid reports whether k is movie or tv.
func (k Kind) Valid() bool {
	return k == KindMovie || k == KindTV
}

func (k Kind) String() string { return string(k) }

// Label is the human name of the kind.
func (k Kind) Label() string {
	if k == KindTV {
		return "TV Show"
	}
	return "Movie"
}

// Summary is one catalog item, normalized from the upstream wire shape.
// It lives for one response only.
type Summary struct {
	ID           int64   `json:"id"`
	Kind         Kind    `json:"kind"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	Rating       float64 `json:"rating"`
	GenreIDs     []int   `json:"genre_ids"`
	ReleaseDate  string  `json:"release_date"` // "YYYY-MM-DD" or ""
	Language     string  `json:"language,omitempty"`
}

// FromResult normalizes a TMDB list entry. Entries that carry their own
// media_type use it; others take fallback. Anything that is not a movie or a
// series (people, mostly) is rejected.
func FromResult(r tmdb.Result, fallback Kind) (Summary, bool) {
	kind := fallback
	if r.MediaType != "" {
		kind = Kind(r.MediaType)
	}
	if !kind.Valid() {
		return Summary{}, false
	}

	s := Summary{
		ID:           r.ID,
		Kind:         kind,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		Overview:     r.Overview,
		Rating:       r.VoteAverage,
		GenreIDs:     r.GenreIDs,
		Language:     r.OriginalLanguage,
	}
	if s.GenreIDs == nil {
		s.GenreIDs = []int{}
	}

	// Movies carry title/release_date, series name/first_air_date, but
	// trending and multi search are loose about it.
	if kind == KindMovie {
		s.Title = firstNonEmpty(r.Title, r.Name, r.OriginalTitle)
		s.ReleaseDate = firstNonEmpty(r.ReleaseDate, r.FirstAirDate)
	} else {
		s.Title = firstNonEmpty(r.Name, r.Title, r.OriginalName)
		s.ReleaseDate = firstNonEmpty(r.FirstAirDate, r.ReleaseDate)
	}
	return s, true
}

// FromResults normalizes a page, dropping rejected entries.
func FromResults(results []tmdb.Result, fallback Kind) []Summary {
	out := make([]Summary, 0, len(results))
	for _, r := range results {
		if s, ok := FromResult(r, fallback); ok {
			out = append(out, s)
		}
	}
	return out
}

// Released parses ReleaseDate.
func (s Summary) Released() (time.Time, bool) {
	return ParseDate(s.ReleaseDate)
}

// Year returns the release year, or "N/A" when the date is unknown.
func (s Summary) Year() string {
	if t, ok := s.Released(); ok {
		return t.Format("2006")
	}
	return NotAvailable
}

// PosterURL returns the poster image URL at the given CDN size.
func (s Summary) PosterURL(size string) string {
	return tmdb.ImageURL(size, s.PosterPath)
}

// BackdropURL returns the backdrop image URL at the given CDN size.
func (s Summary) BackdropURL(size string) string {
	return tmdb.ImageURL(size, s.BackdropPath)
}

// ParseDate parses an upstream "YYYY-MM-DD" date. Empty or malformed dates
// are reported as unknown.
func ParseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LanguageName returns the English display name of an ISO 639-1 code, or the
// code itself when it is unknown.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
