package suggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/vmunix/marquee/internal/generation"
)

// ErrStale is returned for a lookup that was superseded before it finished.
// Its result has been discarded.
var ErrStale = errors.New("suggestion lookup superseded")

// Snapshot is the visible state of the search box.
type Snapshot struct {
	Term    string       `json:"term"`
	Open    bool         `json:"open"`
	Loading bool         `json:"loading"`
	Items   []Suggestion `json:"items"`
}

// Box holds the search box state. Lookups only happen on Enter or Click;
// typing alone never queries upstream.
//
// Every lookup is tagged with a generation. Only the latest generation may
// write the items, so a slow response can never overwrite a newer one.
type Box struct {
	searcher Searcher
	log      *slog.Logger
	gen      generation.Counter

	mu    sync.Mutex
	state Snapshot
}

// NewBox creates an empty, closed search box.
func NewBox(searcher Searcher, log *slog.Logger) *Box {
	return &Box{
		searcher: searcher,
		log:      log.With("component", "suggest"),
	}
}

// Snapshot returns a copy of the current state.
func (b *Box) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Type records the term without querying.
func (b *Box) Type(term string) {
	b.mu.Lock()
	b.state.Term = term
	b.mu.Unlock()
}

// Enter handles the Enter key. A blank term closes the box and clears the
// items immediately; anything else opens the box and looks the term up.
func (b *Box) Enter(ctx context.Context, term string) (Snapshot, error) {
	b.mu.Lock()
	b.state.Term = term
	if strings.TrimSpace(term) == "" {
		b.gen.Next() // drop anything in flight
		b.state.Open = false
		b.state.Loading = false
		b.state.Items = nil
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, nil
	}
	b.mu.Unlock()
	return b.lookup(ctx, term)
}

// Click handles the search button. An open box with items closes and resets;
// otherwise a non-blank term opens the box and looks it up.
func (b *Box) Click(ctx context.Context, term string) (Snapshot, error) {
	b.mu.Lock()
	if b.state.Open && len(b.state.Items) > 0 {
		b.gen.Next()
		b.state = Snapshot{}
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, nil
	}
	b.state.Term = term
	if strings.TrimSpace(term) == "" {
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, nil
	}
	b.mu.Unlock()
	return b.lookup(ctx, term)
}

func (b *Box) lookup(ctx context.Context, term string) (Snapshot, error) {
	b.mu.Lock()
	tag := b.gen.Next()
	b.state.Open = true
	b.state.Loading = true
	b.mu.Unlock()

	items, err := Lookup(ctx, b.searcher, term)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gen.IsCurrent(tag) {
		b.log.Debug("discarding stale suggestions", "term", term, "tag", tag)
		return b.snapshotLocked(), ErrStale
	}

	b.state.Loading = false
	if err != nil {
		b.log.Warn("suggestion lookup failed", "term", term, "error", err)
		b.state.Items = nil
		return b.snapshotLocked(), err
	}
	b.state.Items = items
	return b.snapshotLocked(), nil
}

func (b *Box) snapshotLocked() Snapshot {
	s := b.state
	s.Items = append(make([]Suggestion, 0, len(b.state.Items)), b.state.Items...)
	return s
}
