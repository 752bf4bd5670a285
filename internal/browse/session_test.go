package browse_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/browse/mocks"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/pkg/tmdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func page(title string, n, totalPages int) *catalog.PageResult {
	items := make([]media.Summary, n)
	for i := range items {
		items[i] = media.Summary{ID: int64(i + 1), Title: title, Kind: media.KindMovie}
	}
	return &catalog.PageResult{Items: items, Page: 1, TotalPages: totalPages, Mode: catalog.ModeDiscover}
}

// renders collects every view the session shows.
type renders struct {
	mu    sync.Mutex
	views []listing.View
}

func (r *renders) add(v listing.View) {
	r.mu.Lock()
	r.views = append(r.views, v)
	r.mu.Unlock()
}

func (r *renders) all() []listing.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]listing.View(nil), r.views...)
}

func TestSession_NavigateRendersLoadingThenReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	want := filter.DecodeString("genre=28")
	loader.EXPECT().Page(gomock.Any(), media.KindMovie, want).Return(page("Action", 20, 5), nil)

	sess := browse.NewSession(loader, media.KindMovie, testLogger())
	var r renders
	sess.OnRender(r.add)

	sess.Navigate(context.Background(), want)
	assert.Equal(t, "?genre=28&page=1", sess.Location(), "location is written before the fetch resolves")
	sess.Wait()

	views := r.all()
	require.Len(t, views, 2)
	assert.Equal(t, listing.StatusLoading, views[0].Status)
	assert.Equal(t, listing.StatusReady, views[1].Status)
	assert.Len(t, sess.View().Items, listing.DisplayLimit)
	require.NotNil(t, sess.View().Pager)
}

func TestSession_StaleResponseIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	s1 := filter.Default().With(filter.FieldGenre, "28")
	s2 := filter.Default().With(filter.FieldGenre, "35")

	aStarted := make(chan struct{})
	releaseA := make(chan struct{})
	loader.EXPECT().Page(gomock.Any(), media.KindMovie, s1).
		DoAndReturn(func(context.Context, media.Kind, filter.State) (*catalog.PageResult, error) {
			close(aStarted)
			<-releaseA // ignores cancellation on purpose
			return page("Action", 20, 3), nil
		})
	loader.EXPECT().Page(gomock.Any(), media.KindMovie, s2).
		Return(page("Comedy", 20, 3), nil)

	sess := browse.NewSession(loader, media.KindMovie, testLogger())
	var r renders
	sess.OnRender(r.add)

	sess.Navigate(context.Background(), s1)
	<-aStarted
	sess.Navigate(context.Background(), s2)

	// B resolves first.
	require.Eventually(t, func() bool {
		return sess.View().Status == listing.StatusReady
	}, timeout, tick)
	assert.Equal(t, "Comedy", sess.View().Items[0].Title)

	// A resolves afterwards and must not overwrite B.
	close(releaseA)
	sess.Wait()

	assert.Equal(t, "Comedy", sess.View().Items[0].Title)
	assert.Equal(t, s2.String(), sess.Location())
	for _, v := range r.all() {
		if v.Status == listing.StatusReady {
			assert.Equal(t, "Comedy", v.Items[0].Title, "stale page was rendered")
		}
	}
}

func TestSession_SupersededFetchIsCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	s1 := filter.Default().With(filter.FieldQuery, "slow")
	s2 := filter.Default().With(filter.FieldQuery, "fast")

	started := make(chan struct{})
	canceled := make(chan struct{})
	loader.EXPECT().Page(gomock.Any(), media.KindTV, s1).
		DoAndReturn(func(ctx context.Context, _ media.Kind, _ filter.State) (*catalog.PageResult, error) {
			close(started)
			<-ctx.Done()
			close(canceled)
			return nil, ctx.Err()
		})
	loader.EXPECT().Page(gomock.Any(), media.KindTV, s2).Return(page("Fast", 3, 1), nil)

	sess := browse.NewSession(loader, media.KindTV, testLogger())
	sess.Navigate(context.Background(), s1)
	<-started
	sess.Navigate(context.Background(), s2)
	sess.Wait()

	select {
	case <-canceled:
	default:
		t.Fatal("superseded fetch was not canceled")
	}
	assert.Equal(t, listing.StatusReady, sess.View().Status)
	assert.Nil(t, sess.View().Pager, "short single page has no pagination")
}

func TestSession_FailureAndEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	gomock.InOrder(
		loader.EXPECT().Page(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tmdb.ErrFetchFailed),
		loader.EXPECT().Page(gomock.Any(), gomock.Any(), gomock.Any()).Return(&catalog.PageResult{Items: []media.Summary{}}, nil),
	)

	sess := browse.NewSession(loader, media.KindMovie, testLogger())

	sess.Reset(context.Background())
	sess.Wait()
	assert.Equal(t, listing.StatusFailed, sess.View().Status)

	sess.Apply(context.Background(), filter.FieldYear, "1990-1999")
	sess.Wait()
	assert.Equal(t, listing.StatusEmpty, sess.View().Status)
	assert.Equal(t, "?year=1990-1999&page=1", sess.Location())
}

func TestSession_PagingDerivesFromLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	var mu sync.Mutex
	var pages []int
	loader.EXPECT().Page(gomock.Any(), media.KindMovie, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ media.Kind, st filter.State) (*catalog.PageResult, error) {
			mu.Lock()
			pages = append(pages, st.Page)
			mu.Unlock()
			res := page("Any", 20, 3)
			res.Page = st.Page
			return res, nil
		}).AnyTimes()

	sess := browse.NewSession(loader, media.KindMovie, testLogger())
	ctx := context.Background()

	assert.False(t, sess.Prev(ctx), "previous is disabled on page 1")

	sess.Apply(ctx, filter.FieldGenre, "28")
	sess.Wait()
	require.True(t, sess.Next(ctx))
	sess.Wait()
	require.True(t, sess.Next(ctx))
	sess.Wait()
	assert.Equal(t, 3, sess.State().Page)
	assert.False(t, sess.Next(ctx), "next is disabled on the last page")

	require.True(t, sess.Prev(ctx))
	sess.Wait()
	assert.Equal(t, "?genre=28&page=2", sess.Location())

	// Changing a filter resets the page.
	sess.Apply(ctx, filter.FieldRating, "6")
	sess.Wait()
	assert.Equal(t, 1, sess.State().Page)

	sess.GoToPage(ctx, 0)
	sess.Wait()
	assert.Equal(t, 1, sess.State().Page)

	mu.Lock()
	assert.Equal(t, []int{1, 2, 3, 2, 1, 1}, pages)
	mu.Unlock()
}

func TestSession_SwitchKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Page(gomock.Any(), media.KindMovie, gomock.Any()).Return(page("M", 1, 1), nil)
	loader.EXPECT().Page(gomock.Any(), media.KindTV, filter.Default()).Return(page("T", 1, 1), nil)

	sess := browse.NewSession(loader, media.KindMovie, testLogger())
	sess.NavigateTo(context.Background(), "?genre=18&page=4")
	sess.Wait()

	sess.SwitchKind(context.Background(), media.KindTV)
	sess.Wait()
	assert.Equal(t, media.KindTV, sess.Kind())
	assert.Equal(t, "?page=1", sess.Location())
	sess.Close()
}

func TestSession_FailedViewHasNoStaleItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Page(gomock.Any(), gomock.Any(), gomock.Any()).Return(page("Old", 20, 2), nil),
		loader.EXPECT().Page(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")),
	)

	sess := browse.NewSession(loader, media.KindMovie, testLogger())
	sess.Reset(context.Background())
	sess.Wait()
	require.NotEmpty(t, sess.View().Items)

	sess.GoToPage(context.Background(), 2)
	assert.Empty(t, sess.View().Items, "loading view must not show the previous page")
	sess.Wait()
	assert.Equal(t, listing.StatusFailed, sess.View().Status)
	assert.Empty(t, sess.View().Items)
}
