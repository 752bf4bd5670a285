// Package catalog turns a filter state into an upstream listing request.
//
// Upstream discovery supports filters but not free text; upstream search
// supports free text but not filters. A state with a query is searched and
// then filtered locally, one page at a time.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
)

// Mode selects the upstream endpoint.
type Mode string

const (
	ModeDiscover Mode = "discover"
	ModeSearch   Mode = "search"
)

// ModeOf returns ModeSearch when the state carries a query.
func ModeOf(s filter.State) Mode {
	if strings.TrimSpace(s.Query) != "" {
		return ModeSearch
	}
	return ModeDiscover
}

// Request is an outbound listing request.
type Request struct {
	Mode   Mode
	Kind   media.Kind
	Params url.Values
}

// Upstream parameter names.
const (
	paramPage       = "page"
	paramQuery      = "query"
	paramSortBy     = "sort_by"
	paramGenres     = "with_genres"
	paramLanguage   = "with_original_language"
	paramMinRating  = "vote_average.gte"
	movieDateFrom   = "primary_release_date.gte"
	movieDateTo     = "primary_release_date.lte"
	tvDateFrom      = "first_air_date.gte"
	tvDateTo        = "first_air_date.lte"
	tvSortDateField = "first_air_date"
)

// BuildRequest maps a state onto upstream parameters. Filters left at "all"
// are omitted entirely. In search mode only the query and page are sent.
func BuildRequest(kind media.Kind, s filter.State) Request {
	page := s.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set(paramPage, strconv.Itoa(page))

	mode := ModeOf(s)
	if mode == ModeSearch {
		params.Set(paramQuery, strings.TrimSpace(s.Query))
		return Request{Mode: mode, Kind: kind, Params: params}
	}

	params.Set(paramSortBy, sortParam(kind, s.Sort))
	if s.Genre != "" && s.Genre != filter.All {
		params.Set(paramGenres, s.Genre)
	}
	if s.Language != "" && s.Language != filter.All {
		params.Set(paramLanguage, s.Language)
	}
	if s.Rating != "" && s.Rating != filter.All {
		params.Set(paramMinRating, s.Rating)
	}

	from, to := movieDateFrom, movieDateTo
	if kind == media.KindTV {
		from, to = tvDateFrom, tvDateTo
	}
	yr := s.YearRange()
	if yr.From != nil {
		params.Set(from, yr.From.Format(media.DateLayout))
	}
	if yr.To != nil {
		params.Set(to, yr.To.Format(media.DateLayout))
	}

	return Request{Mode: mode, Kind: kind, Params: params}
}

// sortParam returns the upstream sort key. Series have no release_date, so
// release-date sorts use first_air_date there.
func sortParam(kind media.Kind, key filter.SortKey) string {
	if !key.Valid() {
		key = filter.DefaultSort
	}
	if kind == media.KindTV {
		if field, dir, ok := strings.Cut(string(key), "."); ok && field == "release_date" {
			return tvSortDateField + "." + dir
		}
	}
	return string(key)
}
