package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for TMDB API calls.
var (
	// ErrFetchFailed covers transport failures and any non-2xx response.
	ErrFetchFailed = errors.New("tmdb fetch failed")

	// ErrParseFailed indicates the response body was not valid JSON for the
	// expected shape.
	ErrParseFailed = errors.New("tmdb response parse failed")

	// ErrNotFound is returned when the requested resource doesn't exist.
	// It always also matches ErrFetchFailed.
	ErrNotFound = errors.New("tmdb resource not found")

	// ErrInvalidKind is returned for a media kind other than movie or tv.
	ErrInvalidKind = errors.New("invalid media kind")
)

// StatusError is returned when TMDB answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API error: %s (%s)", e.Status, e.Path)
}

// Is lets errors.Is match ErrFetchFailed for every status and ErrNotFound
// for 404 responses.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrFetchFailed:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnavailable reports whether err means "data unavailable" for a view:
// either the fetch or the decode failed.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrFetchFailed) || errors.Is(err, ErrParseFailed)
}
