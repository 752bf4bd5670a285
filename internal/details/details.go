// Package details builds the title page: the detail record with credits,
// the trailer and recommendations.
package details

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/pkg/tmdb"
)

// Upstream is the part of the TMDB client the title page needs.
type Upstream interface {
	Details(ctx context.Context, kind string, id int64) (*tmdb.Detail, error)
	Videos(ctx context.Context, kind string, id int64) ([]tmdb.Video, error)
	Recommendations(ctx context.Context, kind string, id int64, page int) (*tmdb.ListResponse, error)
}

const (
	castLimit           = 8
	recommendationLimit = 10

	trailerEmbedURL = "https://www.youtube.com/embed/%s?autoplay=1&mute=1"
)

// Credit labels.
const (
	LabelDirector = "Director"
	LabelCreator  = "Creator"
)

// Cast is one billed actor.
type Cast struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// View is the title page.
type View struct {
	ID           int64      `json:"id"`
	Kind         media.Kind `json:"kind"`
	Title        string     `json:"title"`
	Tagline      string     `json:"tagline,omitempty"`
	Overview     string     `json:"overview"`
	Date         string     `json:"date"`
	Year         string     `json:"year"`
	PosterPath   string     `json:"poster_path,omitempty"`
	BackdropPath string     `json:"backdrop_path,omitempty"`
	Genres       string     `json:"genres"`
	Rating       string     `json:"rating"`
	Runtime      string     `json:"runtime"`
	CreditLabel  string     `json:"credit_label"`
	Credit       string     `json:"credit"`
	Cast         []Cast     `json:"cast"`

	// TrailerURL is empty when there is no YouTube trailer; the trailer
	// control is then disabled.
	TrailerURL string `json:"trailer_url"`

	Recommendations       []media.Summary `json:"recommendations"`
	RecommendationsFailed bool            `json:"recommendations_failed,omitempty"`
	VideosFailed          bool            `json:"videos_failed,omitempty"`
}

// HasTrailer reports whether the trailer control is enabled.
func (v *View) HasTrailer() bool {
	return v.TrailerURL != ""
}

// Service builds title pages.
type Service struct {
	upstream Upstream
	log      *slog.Logger
}

// NewService creates a details service.
func NewService(upstream Upstream, log *slog.Logger) *Service {
	return &Service{
		upstream: upstream,
		log:      log.With("component", "details"),
	}
}

// Get loads the title page for kind/id. The detail record is required;
// videos and recommendations degrade to empty on failure.
func (s *Service) Get(ctx context.Context, kind media.Kind, id int64) (*View, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", tmdb.ErrInvalidKind, kind)
	}

	var (
		detail *tmdb.Detail
		videos []tmdb.Video
		recs   *tmdb.ListResponse
		vidErr error
		recErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.upstream.Details(gctx, string(kind), id)
		if err != nil {
			return fmt.Errorf("details %s/%d: %w", kind, id, err)
		}
		return nil
	})
	g.Go(func() error {
		videos, vidErr = s.upstream.Videos(gctx, string(kind), id)
		return nil
	})
	g.Go(func() error {
		recs, recErr = s.upstream.Recommendations(gctx, string(kind), id, 1)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	v := build(kind, detail)

	if vidErr != nil {
		s.log.Warn("videos unavailable", "kind", kind, "id", id, "error", vidErr)
		v.VideosFailed = true
	} else {
		v.TrailerURL = TrailerURL(videos)
	}

	v.Recommendations = []media.Summary{}
	if recErr != nil {
		s.log.Warn("recommendations unavailable", "kind", kind, "id", id, "error", recErr)
		v.RecommendationsFailed = true
	} else {
		v.Recommendations = recommendations(kind, recs.Results)
	}

	return v, nil
}

func build(kind media.Kind, d *tmdb.Detail) *View {
	v := &View{
		ID:           d.ID,
		Kind:         kind,
		Tagline:      d.Tagline,
		Overview:     d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Rating:       media.FormatRating(d.VoteAverage),
		Genres:       media.NotAvailable,
		Cast:         []Cast{},
	}

	if kind == media.KindMovie {
		v.Title = d.Title
		v.Date = d.ReleaseDate
		v.Runtime = media.FormatRuntime(d.Runtime)
		v.CreditLabel = LabelDirector
		v.Credit = director(d.Credits)
	} else {
		v.Title = d.Name
		v.Date = d.FirstAirDate
		v.Runtime = media.FormatSeasons(d.NumberOfSeasons)
		v.CreditLabel = LabelCreator
		v.Credit = creators(d.CreatedBy)
	}

	v.Year = media.NotAvailable
	if t, ok := media.ParseDate(v.Date); ok {
		v.Year = t.Format("2006")
	}

	if len(d.Genres) > 0 {
		names := make([]string, 0, len(d.Genres))
		for _, g := range d.Genres {
			names = append(names, g.Name)
		}
		v.Genres = strings.Join(names, ", ")
	}

	if d.Credits != nil {
		for _, c := range d.Credits.Cast {
			if len(v.Cast) == castLimit {
				break
			}
			v.Cast = append(v.Cast, Cast{Name: c.Name, Character: c.Character, ProfilePath: c.ProfilePath})
		}
	}
	return v
}

func director(c *tmdb.Credits) string {
	if c == nil {
		return media.NotAvailable
	}
	for _, crew := range c.Crew {
		if crew.Job == "Director" && crew.Name != "" {
			return crew.Name
		}
	}
	return media.NotAvailable
}

func creators(people []tmdb.Person) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	if len(names) == 0 {
		return media.NotAvailable
	}
	return strings.Join(names, ", ")
}

// TrailerURL returns the embed URL of the first YouTube trailer, or "".
func TrailerURL(videos []tmdb.Video) string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Key != "" {
			return fmt.Sprintf(trailerEmbedURL, v.Key)
		}
	}
	return ""
}

// recommendations normalizes the first results and tags them with the
// page's kind so their links open the right catalog.
func recommendations(kind media.Kind, results []tmdb.Result) []media.Summary {
	out := make([]media.Summary, 0, recommendationLimit)
	for _, r := range results {
		if len(out) == recommendationLimit {
			break
		}
		r.MediaType = ""
		if s, ok := media.FromResult(r, kind); ok {
			out = append(out, s)
		}
	}
	return out
}
