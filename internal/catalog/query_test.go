package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
)

func TestModeOf(t *testing.T) {
	assert.Equal(t, ModeDiscover, ModeOf(filter.Default()))
	assert.Equal(t, ModeSearch, ModeOf(filter.Default().With(filter.FieldQuery, "dune")))
}

func TestBuildRequest_DiscoverDefaults(t *testing.T) {
	req := BuildRequest(media.KindMovie, filter.Default())

	assert.Equal(t, ModeDiscover, req.Mode)
	assert.Equal(t, "1", req.Params.Get("page"))
	assert.Equal(t, "popularity.desc", req.Params.Get("sort_by"))
	assert.Len(t, req.Params, 2, "unconstrained filters must be omitted: %v", req.Params)
}

func TestBuildRequest_DiscoverGenreOnly(t *testing.T) {
	s := filter.Default().With(filter.FieldGenre, "28").WithPage(3)
	req := BuildRequest(media.KindMovie, s)

	assert.Equal(t, []string{"28"}, req.Params["with_genres"])
	assert.Equal(t, "3", req.Params.Get("page"))
	for _, key := range []string{"with_original_language", "vote_average.gte", "primary_release_date.gte", "primary_release_date.lte", "query"} {
		assert.NotContains(t, req.Params, key)
	}
}

func TestBuildRequest_DiscoverAllFilters(t *testing.T) {
	s := filter.State{
		Genre:    "18",
		Year:     "2010-2019",
		Rating:   "7",
		Language: "fr",
		Sort:     filter.SortReleaseDateDesc,
		Page:     2,
	}

	movie := BuildRequest(media.KindMovie, s)
	assert.Equal(t, "18", movie.Params.Get("with_genres"))
	assert.Equal(t, "fr", movie.Params.Get("with_original_language"))
	assert.Equal(t, "7", movie.Params.Get("vote_average.gte"))
	assert.Equal(t, "2010-01-01", movie.Params.Get("primary_release_date.gte"))
	assert.Equal(t, "2019-12-31", movie.Params.Get("primary_release_date.lte"))
	assert.Equal(t, "release_date.desc", movie.Params.Get("sort_by"))

	tv := BuildRequest(media.KindTV, s)
	assert.Equal(t, "2010-01-01", tv.Params.Get("first_air_date.gte"))
	assert.Equal(t, "2019-12-31", tv.Params.Get("first_air_date.lte"))
	assert.NotContains(t, tv.Params, "primary_release_date.gte")
	assert.Equal(t, "first_air_date.desc", tv.Params.Get("sort_by"))
}

func TestBuildRequest_OpenEndedYear(t *testing.T) {
	req := BuildRequest(media.KindMovie, filter.Default().With(filter.FieldYear, "2020-now"))

	assert.Equal(t, "2020-01-01", req.Params.Get("primary_release_date.gte"))
	assert.NotContains(t, req.Params, "primary_release_date.lte")
}

func TestBuildRequest_SearchSendsOnlyQueryAndPage(t *testing.T) {
	s := filter.State{
		Genre:    "28",
		Year:     "2024",
		Rating:   "8",
		Language: "en",
		Sort:     filter.SortVoteAverageDesc,
		Query:    "  alien ",
		Page:     4,
	}

	for _, kind := range []media.Kind{media.KindMovie, media.KindTV} {
		req := BuildRequest(kind, s)
		assert.Equal(t, ModeSearch, req.Mode)
		assert.Len(t, req.Params, 2, "search request carried filters: %v", req.Params)
		assert.Equal(t, "alien", req.Params.Get("query"))
		assert.Equal(t, "4", req.Params.Get("page"))
	}
}

func TestSortParam(t *testing.T) {
	assert.Equal(t, "popularity.desc", sortParam(media.KindTV, filter.SortPopularityDesc))
	assert.Equal(t, "first_air_date.asc", sortParam(media.KindTV, filter.SortReleaseDateAsc))
	assert.Equal(t, "vote_average.desc", sortParam(media.KindTV, filter.SortVoteAverageDesc))
	assert.Equal(t, "release_date.asc", sortParam(media.KindMovie, filter.SortReleaseDateAsc))
	assert.Equal(t, "popularity.desc", sortParam(media.KindMovie, ""))
}
