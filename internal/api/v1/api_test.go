// internal/api/v1/api_test.go
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/marquee/internal/api/v1/mocks"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/details"
	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/home"
	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
	suggestmocks "github.com/vmunix/marquee/internal/suggest/mocks"
	"github.com/vmunix/marquee/pkg/tmdb"
)

type stubHome struct {
	view home.View
}

func (s stubHome) Load(context.Context) home.View { return s.view }

type testServer struct {
	handler  http.Handler
	catalog  *mocks.MockCatalog
	titles   *mocks.MockTitles
	taxonomy *mocks.MockTaxonomy
	searcher *suggestmocks.MockSearcher
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, checks ...Checker) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		catalog:  mocks.NewMockCatalog(ctrl),
		titles:   mocks.NewMockTitles(ctrl),
		taxonomy: mocks.NewMockTaxonomy(ctrl),
		searcher: suggestmocks.NewMockSearcher(ctrl),
	}
	srv, err := New(ServerDeps{
		Catalog:  ts.catalog,
		Titles:   ts.titles,
		Home:     stubHome{view: home.View{Hero: []home.HeroItem{}, Sections: []home.Section{{Name: home.SectionTrendingTV, Items: []media.Summary{}}}}},
		Taxonomy: ts.taxonomy,
		Searcher: ts.searcher,
		Checks:   checks,
		Version:  "1.2.3",
	}, discardLogger())
	require.NoError(t, err)
	ts.handler = srv.Handler()
	return ts
}

func (ts *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func summaries(n int) []media.Summary {
	out := make([]media.Summary, n)
	for i := range out {
		out[i] = media.Summary{ID: int64(i + 1), Kind: media.KindMovie, Title: fmt.Sprintf("Movie %d", i+1), GenreIDs: []int{28}}
	}
	return out
}

func TestNew_MissingDependency(t *testing.T) {
	_, err := New(ServerDeps{}, discardLogger())
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestListCatalog(t *testing.T) {
	ts := newTestServer(t)

	want := filter.DecodeString("genre=28&year=2024&rating=7")
	ts.catalog.EXPECT().
		Page(gomock.Any(), media.KindMovie, want).
		Return(&catalog.PageResult{Items: summaries(20), Page: 1, TotalPages: 3, Mode: catalog.ModeDiscover}, nil)

	w := ts.get(t, "/api/v1/catalog/movie?genre=28&year=2024&rating=7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Kind       media.Kind      `json:"kind"`
		Status     listing.Status  `json:"status"`
		Location   string          `json:"location"`
		Mode       catalog.Mode    `json:"mode"`
		Items      []media.Summary `json:"items"`
		Pagination *listing.Pager  `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, media.KindMovie, resp.Kind)
	assert.Equal(t, listing.StatusReady, resp.Status)
	assert.Equal(t, "?genre=28&year=2024&rating=7&page=1", resp.Location)
	assert.Equal(t, catalog.ModeDiscover, resp.Mode)
	assert.Len(t, resp.Items, listing.DisplayLimit)
	require.NotNil(t, resp.Pagination)
	assert.True(t, resp.Pagination.Prev.Disabled)
	assert.Equal(t, "?genre=28&year=2024&rating=7&page=2", resp.Pagination.Next.Href)
}

func TestListCatalog_ShortPageHasNoPagination(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.EXPECT().
		Page(gomock.Any(), media.KindTV, gomock.Any()).
		Return(&catalog.PageResult{Items: summaries(10), Page: 1, TotalPages: 3, Mode: catalog.ModeDiscover}, nil)

	w := ts.get(t, "/api/v1/catalog/tv")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp, "pagination")
}

func TestListCatalog_Empty(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.EXPECT().
		Page(gomock.Any(), media.KindMovie, gomock.Any()).
		Return(&catalog.PageResult{Page: 1, TotalPages: 0, Mode: catalog.ModeSearch}, nil)

	w := ts.get(t, "/api/v1/catalog/movie?query=zzzz")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  listing.Status  `json:"status"`
		Message string          `json:"message"`
		Items   []media.Summary `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, listing.StatusEmpty, resp.Status)
	assert.Equal(t, listing.EmptyMessage, resp.Message)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestListCatalog_InvalidKind(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/api/v1/catalog/person")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_KIND", resp.Code)
	assert.Contains(t, resp.Error, "movie tv")
}

func TestListCatalog_UpstreamFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.EXPECT().
		Page(gomock.Any(), media.KindMovie, gomock.Any()).
		Return(nil, fmt.Errorf("discover movie: %w", &tmdb.StatusError{StatusCode: 500, Status: "500 Internal Server Error"}))

	w := ts.get(t, "/api/v1/catalog/movie")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "FETCH_FAILED", resp.Code)
	assert.Equal(t, listing.FailedMessage, resp.Error)
}

func TestListSuggestions(t *testing.T) {
	ts := newTestServer(t)
	ts.searcher.EXPECT().
		SearchMulti(gomock.Any(), "matrix", 1).
		Return(&tmdb.ListResponse{Results: []tmdb.Result{
			{ID: 603, MediaType: tmdb.MediaMovie, Title: "The Matrix", ReleaseDate: "1999-03-31"},
			{ID: 1, MediaType: tmdb.MediaPerson, Name: "Keanu Reeves"},
			{ID: 2, MediaType: tmdb.MediaTV, Name: "The Matrix Files"},
		}}, nil)

	w := ts.get(t, "/api/v1/suggestions?query=+matrix+")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Query string `json:"query"`
		Items []struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
			Year  string `json:"year"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "matrix", resp.Query)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "1999", resp.Items[0].Year)
	assert.Equal(t, "The Matrix Files", resp.Items[1].Title)
}

func TestListSuggestions_BlankQuery(t *testing.T) {
	ts := newTestServer(t)
	// No SearchMulti expectation: gomock fails the test on any call.

	w := ts.get(t, "/api/v1/suggestions?query=%20%20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"query":"","items":[]}`, w.Body.String())
}

func TestGetTitle(t *testing.T) {
	ts := newTestServer(t)
	ts.titles.EXPECT().
		Get(gomock.Any(), media.KindMovie, int64(550)).
		Return(&details.View{ID: 550, Kind: media.KindMovie, Title: "Fight Club", Runtime: "2 hr 19 min", Cast: []details.Cast{}}, nil)

	w := ts.get(t, "/api/v1/titles/movie/550")
	require.Equal(t, http.StatusOK, w.Code)

	var resp details.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fight Club", resp.Title)
	assert.Equal(t, "2 hr 19 min", resp.Runtime)
}

func TestGetTitle_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.titles.EXPECT().
		Get(gomock.Any(), media.KindTV, int64(9)).
		Return(nil, fmt.Errorf("details tv 9: %w", &tmdb.StatusError{StatusCode: http.StatusNotFound}))

	w := ts.get(t, "/api/v1/titles/tv/9")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
}

func TestGetTitle_BadParams(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path string
		code string
	}{
		{"/api/v1/titles/movie/abc", "INVALID_ID"},
		{"/api/v1/titles/movie/0", "INVALID_PARAM"},
		{"/api/v1/titles/movie/-4", "INVALID_PARAM"},
		{"/api/v1/titles/person/5", "INVALID_PARAM"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := ts.get(t, tt.path)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestGetHome(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/api/v1/home")
	require.Equal(t, http.StatusOK, w.Code)

	var resp home.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, home.SectionTrendingTV, resp.Sections[0].Name)
}

func TestListGenres(t *testing.T) {
	ts := newTestServer(t)
	ts.taxonomy.EXPECT().
		Genres(gomock.Any(), media.KindTV).
		Return([]tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comedy"}}, nil)

	w := ts.get(t, "/api/v1/genres/tv")
	require.Equal(t, http.StatusOK, w.Code)

	var resp optionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []filter.Option{
		{Value: filter.All, Label: "All Genres"},
		{Value: "18", Label: "Drama"},
		{Value: "35", Label: "Comedy"},
	}, resp.Options)
}

func TestListLanguages_ParseFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.taxonomy.EXPECT().
		Languages(gomock.Any()).
		Return(nil, fmt.Errorf("decode: %w", tmdb.ErrParseFailed))

	w := ts.get(t, "/api/v1/languages")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "PARSE_FAILED", decodeError(t, w).Code)
}

func TestListLanguages(t *testing.T) {
	ts := newTestServer(t)
	ts.taxonomy.EXPECT().
		Languages(gomock.Any()).
		Return([]tmdb.Language{{ISO6391: "fr", EnglishName: "French"}}, nil)

	w := ts.get(t, "/api/v1/languages")
	require.Equal(t, http.StatusOK, w.Code)

	var resp optionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Options, 2)
	assert.Equal(t, filter.Option{Value: "fr", Label: "French"}, resp.Options[1])
}

func TestListFilters(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/api/v1/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var resp filtersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, filter.All, resp.Years[0].Value)
	assert.Len(t, resp.Years, 7)
	assert.Len(t, resp.Ratings, 10)
	assert.Len(t, resp.Sorts, 4)
}

func TestGetStatus(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","version":"1.2.3"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get(t, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestWriteUpstreamError_Unknown(t *testing.T) {
	srv := &Server{log: discardLogger()}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()

	srv.writeUpstreamError(w, req, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, w).Code)
}
