package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/pkg/tmdb"
)

//go:generate mockgen -destination=mocks/upstream_mock.go -package=mocks . Upstream

// Upstream is the part of the TMDB client the catalog needs.
type Upstream interface {
	Discover(ctx context.Context, kind string, params url.Values) (*tmdb.ListResponse, error)
	Search(ctx context.Context, kind string, params url.Values) (*tmdb.ListResponse, error)
}

// PageResult is one listing page ready for presentation.
type PageResult struct {
	Items      []media.Summary `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Mode       Mode            `json:"mode"`
}

// Service fetches listing pages.
type Service struct {
	upstream Upstream
	log      *slog.Logger
}

// NewService creates a catalog service.
func NewService(upstream Upstream, log *slog.Logger) *Service {
	return &Service{
		upstream: upstream,
		log:      log.With("component", "catalog"),
	}
}

// Page fetches the listing page described by s.
//
// Upstream failures are returned wrapped; no partial page is ever returned
// with an error. Zero items is a valid result.
func (s *Service) Page(ctx context.Context, kind media.Kind, state filter.State) (*PageResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", tmdb.ErrInvalidKind, kind)
	}

	req := BuildRequest(kind, state)

	var (
		resp *tmdb.ListResponse
		err  error
	)
	switch req.Mode {
	case ModeSearch:
		resp, err = s.upstream.Search(ctx, string(kind), req.Params)
	default:
		resp, err = s.upstream.Discover(ctx, string(kind), req.Params)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Mode, kind, err)
	}

	items := media.FromResults(resp.Results, kind)
	fetched := len(items)
	if req.Mode == ModeSearch {
		items = PostFilter(items, state)
	}

	page := resp.Page
	if page < 1 {
		page = state.WithPage(state.Page).Page
	}

	s.log.Debug("catalog page fetched",
		"kind", kind,
		"mode", req.Mode,
		"page", page,
		"total_pages", resp.TotalPages,
		"fetched", fetched,
		"kept", len(items),
	)

	return &PageResult{
		Items:      items,
		Page:       page,
		TotalPages: resp.TotalPages,
		Mode:       req.Mode,
	}, nil
}
