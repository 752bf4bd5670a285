package taxonomy

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/pkg/tmdb"
)

// DefaultTTL is used when the service is given no TTL.
const DefaultTTL = 24 * time.Hour

// Upstream is the part of the TMDB client taxonomy needs.
type Upstream interface {
	Genres(ctx context.Context, kind string) ([]tmdb.Genre, error)
	Languages(ctx context.Context) ([]tmdb.Language, error)
}

// Service serves cached genre and language lists.
//
// The cache is best effort: a failed read or write is logged and the
// request goes to upstream.
type Service struct {
	upstream Upstream
	cache    Cache
	ttl      time.Duration
	log      *slog.Logger
}

// NewService creates a taxonomy service. A nil cache disables caching.
func NewService(upstream Upstream, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		upstream: upstream,
		cache:    cache,
		ttl:      ttl,
		log:      log.With("component", "taxonomy"),
	}
}

func genresKey(kind media.Kind) string { return "genres:" + string(kind) }

const languagesKey = "languages"

// Genres returns the genres of a catalog.
func (s *Service) Genres(ctx context.Context, kind media.Kind) ([]tmdb.Genre, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", tmdb.ErrInvalidKind, kind)
	}
	return cached(ctx, s, genresKey(kind), func(ctx context.Context) ([]tmdb.Genre, error) {
		return s.upstream.Genres(ctx, string(kind))
	})
}

// Languages returns every language, sorted by English name.
func (s *Service) Languages(ctx context.Context) ([]tmdb.Language, error) {
	return cached(ctx, s, languagesKey, func(ctx context.Context) ([]tmdb.Language, error) {
		langs, err := s.upstream.Languages(ctx)
		if err != nil {
			return nil, err
		}
		slices.SortFunc(langs, func(a, b tmdb.Language) int {
			return cmp.Or(cmp.Compare(a.EnglishName, b.EnglishName), cmp.Compare(a.ISO6391, b.ISO6391))
		})
		return langs, nil
	})
}

// Warm loads every list into the cache, replacing what is there.
func (s *Service) Warm(ctx context.Context) error {
	var errs []error
	for _, kind := range []media.Kind{media.KindMovie, media.KindTV} {
		s.invalidate(ctx, genresKey(kind))
		if _, err := s.Genres(ctx, kind); err != nil {
			errs = append(errs, fmt.Errorf("warm %s genres: %w", kind, err))
		}
	}
	s.invalidate(ctx, languagesKey)
	if _, err := s.Languages(ctx); err != nil {
		errs = append(errs, fmt.Errorf("warm languages: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.log.Info("taxonomy cache warmed")
	return nil
}

// Prune removes expired cache entries.
func (s *Service) Prune(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	n, err := s.cache.Prune(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("pruned taxonomy cache", "removed", n)
	}
	return n, nil
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn("cache delete failed", "key", key, "error", err)
	}
}

func cached[T any](ctx context.Context, s *Service, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var out []T
			jsonErr := json.Unmarshal(data, &out)
			if jsonErr == nil {
				s.log.Debug("cache hit", "key", key)
				return out, nil
			}
			s.log.Warn("cache entry unreadable", "key", key, "error", jsonErr)
		case !errors.Is(err, ErrCacheMiss):
			s.log.Warn("cache read failed", "key", key, "error", err)
		}
	}

	out, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				s.log.Warn("cache write failed", "key", key, "error", err)
			}
		}
	}
	return out, nil
}

// GenreOptions turns genres into dropdown options.
func GenreOptions(genres []tmdb.Genre) []filter.Option {
	opts := make([]filter.Option, 0, len(genres))
	for _, g := range genres {
		opts = append(opts, filter.Option{Value: strconv.Itoa(g.ID), Label: g.Name})
	}
	return opts
}

// LanguageOptions turns languages into dropdown options. A language without
// an English name is labeled from CLDR data.
func LanguageOptions(langs []tmdb.Language) []filter.Option {
	opts := make([]filter.Option, 0, len(langs))
	for _, l := range langs {
		label := l.EnglishName
		if label == "" {
			label = media.LanguageName(l.ISO6391)
		}
		opts = append(opts, filter.Option{Value: l.ISO6391, Label: label})
	}
	return opts
}
