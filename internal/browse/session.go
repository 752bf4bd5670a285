// Package browse runs a listing screen the way the web client does: the
// location is the only state, every change navigates, and only the response
// for the latest location is ever rendered.
package browse

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/generation"
	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
)

//go:generate mockgen -destination=mocks/loader_mock.go -package=mocks . Loader

// Loader fetches one listing page.
type Loader interface {
	Page(ctx context.Context, kind media.Kind, s filter.State) (*catalog.PageResult, error)
}

// RenderFunc receives every view the session shows. It is called with the
// session locked and must not call back into the session.
type RenderFunc func(listing.View)

// Session is one browsing screen.
type Session struct {
	loader Loader
	log    *slog.Logger
	gen    generation.Counter
	wg     sync.WaitGroup

	mu       sync.Mutex
	kind     media.Kind
	location string
	view     listing.View
	cancel   context.CancelFunc
	onRender RenderFunc
}

// NewSession creates a session for kind at the default location. Nothing is
// fetched until the first navigation.
func NewSession(loader Loader, kind media.Kind, log *slog.Logger) *Session {
	s := filter.Default()
	return &Session{
		loader:   loader,
		log:      log.With("component", "browse", "kind", kind),
		kind:     kind,
		location: s.String(),
		view:     listing.Loading(s),
	}
}

// OnRender sets the render callback.
func (s *Session) OnRender(fn RenderFunc) {
	s.mu.Lock()
	s.onRender = fn
	s.mu.Unlock()
}

// Kind returns the catalog being browsed.
func (s *Session) Kind() media.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

// Location returns the current address-bar query, with its leading "?".
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// State decodes the current location.
func (s *Session) State() filter.State {
	return filter.DecodeString(s.Location())
}

// View returns the last rendered view.
func (s *Session) View() listing.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Navigate makes st the current location and fetches its page.
//
// The location and the loading view change before Navigate returns; the
// fetch runs in the background. Any fetch still in flight for an older
// location is canceled, and its response is dropped if it arrives anyway.
func (s *Session) Navigate(ctx context.Context, st filter.State) generation.Tag {
	st = filter.DecodeString(st.Encode())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	tag := s.gen.Next()
	s.location = st.String()
	s.setViewLocked(listing.Loading(st))

	s.wg.Add(1)
	go s.fetch(fetchCtx, tag, s.kind, st)
	return tag
}

// NavigateTo navigates to a raw location such as "?genre=28&page=2".
func (s *Session) NavigateTo(ctx context.Context, location string) generation.Tag {
	return s.Navigate(ctx, filter.DecodeString(location))
}

// SwitchKind moves to another catalog. Filters do not carry over.
func (s *Session) SwitchKind(ctx context.Context, kind media.Kind) generation.Tag {
	s.mu.Lock()
	s.kind = kind
	s.log = s.log.With("kind", kind)
	s.mu.Unlock()
	return s.Navigate(ctx, filter.Default())
}

// Apply changes one filter field and navigates. The page resets to 1.
func (s *Session) Apply(ctx context.Context, field filter.Field, value string) generation.Tag {
	return s.Navigate(ctx, s.State().With(field, value))
}

// Clear resets one filter field and navigates.
func (s *Session) Clear(ctx context.Context, field filter.Field) generation.Tag {
	return s.Navigate(ctx, s.State().Clear(field))
}

// Reset navigates to the default location.
func (s *Session) Reset(ctx context.Context) generation.Tag {
	return s.Navigate(ctx, filter.Default())
}

// GoToPage navigates to page n of the current location.
func (s *Session) GoToPage(ctx context.Context, n int) generation.Tag {
	return s.Navigate(ctx, s.State().WithPage(n))
}

// Next goes one page forward. It reports false when the rendered view has
// no enabled Next control.
func (s *Session) Next(ctx context.Context) bool {
	v := s.View()
	if v.Pager == nil || v.Pager.Next.Disabled {
		return false
	}
	s.Navigate(ctx, s.State().WithPage(v.Pager.Current+1))
	return true
}

// Prev goes one page back. It reports false on page 1.
func (s *Session) Prev(ctx context.Context) bool {
	st := s.State()
	if st.Page <= 1 {
		return false
	}
	s.Navigate(ctx, st.WithPage(st.Page-1))
	return true
}

// Wait blocks until every fetch started so far has settled.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels any fetch in flight.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Session) fetch(ctx context.Context, tag generation.Tag, kind media.Kind, st filter.State) {
	defer s.wg.Done()

	res, err := s.loader.Page(ctx, kind, st)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gen.IsCurrent(tag) {
		s.log.Debug("discarding stale page", "location", st.String(), "tag", tag)
		return
	}
	if err != nil {
		s.log.Warn("page fetch failed", "location", st.String(), "error", err)
	}
	s.setViewLocked(listing.Present(st, res, err))
}

func (s *Session) setViewLocked(v listing.View) {
	s.view = v
	if s.onRender != nil {
		s.onRender(v)
	}
}
