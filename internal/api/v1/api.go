// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/listing"
	"github.com/vmunix/marquee/internal/media"
	"github.com/vmunix/marquee/internal/suggest"
	"github.com/vmunix/marquee/internal/taxonomy"
	"github.com/vmunix/marquee/pkg/tmdb"
)

// Server is the v1 API server.
type Server struct {
	deps     ServerDeps
	validate *validator.Validate
	log      *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		deps:     deps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With("component", "api"),
	}, nil
}

// Handler returns the full HTTP handler, middleware included.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(s.log))
	r.Use(Recover(s.log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "No such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Route("/api/v1", s.RegisterRoutes)
	return r
}

// RegisterRoutes registers API routes on the given router.
func (s *Server) RegisterRoutes(r chi.Router) {
	// Listings
	r.Get("/catalog/{kind}", s.listCatalog)
	r.Get("/suggestions", s.listSuggestions)

	// Pages
	r.Get("/titles/{kind}/{id}", s.getTitle)
	r.Get("/home", s.getHome)

	// Filter options
	r.Get("/genres/{kind}", s.listGenres)
	r.Get("/languages", s.listLanguages)
	r.Get("/filters", s.listFilters)

	// System
	r.Get("/status", s.getStatus)
	r.Get("/verify", s.verify)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeUpstreamError maps a TMDB failure onto a status. Fetch and parse
// failures both mean the data is unavailable.
func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn("upstream request failed",
		"path", r.URL.Path,
		"request_id", RequestIDFrom(r.Context()),
		"error", err,
	)
	switch {
	case errors.Is(err, tmdb.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Title not found")
	case errors.Is(err, tmdb.ErrParseFailed):
		writeError(w, http.StatusBadGateway, "PARSE_FAILED", listing.FailedMessage)
	case errors.Is(err, tmdb.ErrFetchFailed):
		writeError(w, http.StatusBadGateway, "FETCH_FAILED", listing.FailedMessage)
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

type kindParams struct {
	Kind string `validate:"required,oneof=movie tv"`
}

type titleParams struct {
	Kind string `validate:"required,oneof=movie tv"`
	ID   int64  `validate:"gt=0"`
}

// pathKind extracts and validates the {kind} path parameter.
func (s *Server) pathKind(w http.ResponseWriter, r *http.Request) (media.Kind, bool) {
	p := kindParams{Kind: chi.URLParam(r, "kind")}
	if err := s.validate.StructCtx(r.Context(), p); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", validationMessage(err))
		return "", false
	}
	return media.Kind(p.Kind), true
}

// validationMessage flattens validator errors into one line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// catalogResponse is the response for GET /catalog/{kind}.
type catalogResponse struct {
	Kind media.Kind `json:"kind"`
	listing.View
}

func (s *Server) listCatalog(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.pathKind(w, r)
	if !ok {
		return
	}

	state := filter.Decode(r.URL.Query())
	res, err := s.deps.Catalog.Page(r.Context(), kind, state)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, catalogResponse{
		Kind: kind,
		View: listing.Present(state, res, nil),
	})
}

// suggestionsResponse is the response for GET /suggestions.
type suggestionsResponse struct {
	Query string               `json:"query"`
	Items []suggest.Suggestion `json:"items"`
}

func (s *Server) listSuggestions(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	items, err := suggest.Lookup(r.Context(), s.deps.Searcher, query)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	if items == nil {
		items = []suggest.Suggestion{}
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{Query: query, Items: items})
}

func (s *Server) getTitle(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("invalid id %q", idStr))
		return
	}

	p := titleParams{Kind: chi.URLParam(r, "kind"), ID: id}
	if err := s.validate.StructCtx(r.Context(), p); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", validationMessage(err))
		return
	}

	view, err := s.deps.Titles.Get(r.Context(), media.Kind(p.Kind), p.ID)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) getHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Home.Load(r.Context()))
}

// optionsResponse lists dropdown entries, the unconstrained entry first.
type optionsResponse struct {
	Options []filter.Option `json:"options"`
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.pathKind(w, r)
	if !ok {
		return
	}

	genres, err := s.deps.Taxonomy.Genres(r.Context(), kind)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, optionsResponse{
		Options: filter.WithAll("All Genres", taxonomy.GenreOptions(genres)),
	})
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := s.deps.Taxonomy.Languages(r.Context())
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, optionsResponse{
		Options: filter.WithAll("All Languages", taxonomy.LanguageOptions(langs)),
	})
}

// filtersResponse is the response for GET /filters.
type filtersResponse struct {
	Years   []filter.Option `json:"years"`
	Ratings []filter.Option `json:"ratings"`
	Sorts   []filter.Option `json:"sorts"`
}

func (s *Server) listFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, filtersResponse{
		Years:   filter.WithAll("All Years", filter.YearOptions()),
		Ratings: filter.WithAll("Any Rating", filter.RatingOptions()),
		Sorts:   filter.SortOptions(),
	})
}

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Version: s.deps.Version})
}
