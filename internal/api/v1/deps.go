package v1

import (
	"context"
	"errors"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/details"
	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/home"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/suggest"
	"github.com/vmunix/marquee/pkg/tmdb"
)

//go:generate mockgen -destination=mocks/deps_mock.go -package=mocks . Catalog,Titles,Taxonomy,Checker

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog fetches listing pages.
type Catalog interface {
	Page(ctx context.Context, kind media.Kind, state filter.State) (*catalog.PageResult, error)
}

// Titles fetches title pages.
type Titles interface {
	Get(ctx context.Context, kind media.Kind, id int64) (*details.View, error)
}

// Home builds the home page. Section failures are reported inside the view.
type Home interface {
	Load(ctx context.Context) home.View
}

// Taxonomy lists the values of the genre and language dropdowns.
type Taxonomy interface {
	Genres(ctx context.Context, kind media.Kind) ([]tmdb.Genre, error)
	Languages(ctx context.Context) ([]tmdb.Language, error)
}

// Checker is a named connectivity check reported by /verify.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog  Catalog
	Titles   Titles
	Home     Home
	Taxonomy Taxonomy
	Searcher suggest.Searcher

	// Optional
	Checks  []Checker
	Version string
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	switch {
	case d.Catalog == nil:
		return errors.Join(ErrMissingDependency, errors.New("catalog is required"))
	case d.Titles == nil:
		return errors.Join(ErrMissingDependency, errors.New("titles is required"))
	case d.Home == nil:
		return errors.Join(ErrMissingDependency, errors.New("home is required"))
	case d.Taxonomy == nil:
		return errors.Join(ErrMissingDependency, errors.New("taxonomy is required"))
	case d.Searcher == nil:
		return errors.Join(ErrMissingDependency, errors.New("searcher is required"))
	}
	return nil
}
