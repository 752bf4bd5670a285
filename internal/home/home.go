// Package home assembles the landing page: a hero carousel and four title
// rails. Each section loads on its own and fails on its own.
package home

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/pkg/tmdb"
)

//go:generate mockgen -destination=mocks/upstream_mock.go -package=mocks . Upstream

// Upstream is the part of the TMDB client the home page needs.
type Upstream interface {
	Trending(ctx context.Context, kind, window string) (*tmdb.ListResponse, error)
	TopRated(ctx context.Context, kind string, page int) (*tmdb.ListResponse, error)
	Details(ctx context.Context, kind string, id int64) (*tmdb.Detail, error)
}

// Section names.
const (
	SectionHero           = "hero"
	SectionTrendingMovies = "trending_movies"
	SectionTopRatedMovies = "top_rated_movies"
	SectionTrendingTV     = "trending_tv"
	SectionTopRatedTV     = "top_rated_tv"
)

const (
	heroSize = 3
	railSize = 7
)

// HeroItem is a hero slide: a trending movie with a few detail fields.
type HeroItem struct {
	media.Summary
	Year    string   `json:"year"`
	Genres  []string `json:"genres"`
	Runtime string   `json:"runtime"`
	Score   string   `json:"score"`
}

// Section is one rail. A failed section has no items.
type Section struct {
	Name   string          `json:"name"`
	Title  string          `json:"title"`
	Items  []media.Summary `json:"items"`
	Failed bool            `json:"failed,omitempty"`
}

// View is the whole home page.
type View struct {
	Hero       []HeroItem `json:"hero"`
	HeroFailed bool       `json:"hero_failed,omitempty"`
	Sections   []Section  `json:"sections"`
}

// Service builds the home page.
type Service struct {
	upstream Upstream
	log      *slog.Logger
}

// NewService creates a home service.
func NewService(upstream Upstream, log *slog.Logger) *Service {
	return &Service{
		upstream: upstream,
		log:      log.With("component", "home"),
	}
}

type rail struct {
	name  string
	title string
	load  func(ctx context.Context) ([]media.Summary, error)
}

// Load fetches every section concurrently. It never fails as a whole: a
// section whose fetch failed is marked and left empty.
func (s *Service) Load(ctx context.Context) View {
	rails := []rail{
		{SectionTrendingMovies, "Trending Movies", func(ctx context.Context) ([]media.Summary, error) {
			// The first three trending movies are in the hero.
			return s.trending(ctx, media.KindMovie, heroSize, heroSize+railSize)
		}},
		{SectionTopRatedMovies, "Top Rated Movies", func(ctx context.Context) ([]media.Summary, error) {
			return s.topRated(ctx, media.KindMovie)
		}},
		{SectionTrendingTV, "Trending TV Series", func(ctx context.Context) ([]media.Summary, error) {
			return s.trending(ctx, media.KindTV, 0, railSize)
		}},
		{SectionTopRatedTV, "Top Rated TV Series", func(ctx context.Context) ([]media.Summary, error) {
			return s.topRated(ctx, media.KindTV)
		}},
	}

	view := View{Sections: make([]Section, len(rails))}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hero, err := s.hero(gctx)
		if err != nil {
			s.log.Warn("home section failed", "section", SectionHero, "error", err)
			view.HeroFailed = true
			view.Hero = []HeroItem{}
			return nil
		}
		view.Hero = hero
		return nil
	})
	for i, r := range rails {
		g.Go(func() error {
			sec := Section{Name: r.name, Title: r.title}
			items, err := r.load(gctx)
			if err != nil {
				s.log.Warn("home section failed", "section", r.name, "error", err)
				sec.Failed = true
				items = []media.Summary{}
			}
			sec.Items = items
			view.Sections[i] = sec
			return nil
		})
	}
	// Section goroutines never return an error.
	_ = g.Wait()
	return view
}

func (s *Service) trending(ctx context.Context, kind media.Kind, from, to int) ([]media.Summary, error) {
	resp, err := s.upstream.Trending(ctx, string(kind), "week")
	if err != nil {
		return nil, err
	}
	return window(media.FromResults(resp.Results, kind), from, to), nil
}

func (s *Service) topRated(ctx context.Context, kind media.Kind) ([]media.Summary, error) {
	resp, err := s.upstream.TopRated(ctx, string(kind), 1)
	if err != nil {
		return nil, err
	}
	return window(media.FromResults(resp.Results, kind), 0, railSize), nil
}

// hero loads the first trending movies and enriches each with its details.
// A detail failure leaves that slide without genres and runtime.
func (s *Service) hero(ctx context.Context) ([]HeroItem, error) {
	movies, err := s.trending(ctx, media.KindMovie, 0, heroSize)
	if err != nil {
		return nil, err
	}

	items := make([]HeroItem, len(movies))
	var wg sync.WaitGroup
	for i, m := range movies {
		items[i] = HeroItem{
			Summary: m,
			Year:    m.Year(),
			Genres:  []string{},
			Runtime: media.NotAvailable,
			Score:   media.FormatRating(m.Rating),
		}
		if m.Kind != media.KindMovie {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := s.upstream.Details(ctx, string(media.KindMovie), m.ID)
			if err != nil {
				s.log.Debug("hero details unavailable", "id", m.ID, "error", err)
				return
			}
			for _, g := range d.Genres {
				items[i].Genres = append(items[i].Genres, g.Name)
			}
			items[i].Runtime = media.FormatRuntime(d.Runtime)
		}()
	}
	wg.Wait()
	return items, nil
}

func window(items []media.Summary, from, to int) []media.Summary {
	if from > len(items) {
		from = len(items)
	}
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
