// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// Media types as they appear in TMDB paths and in the media_type field.
const (
	MediaMovie  = "movie"
	MediaTV     = "tv"
	MediaPerson = "person"
)

// ImageBaseURL is the TMDB image CDN root.
const ImageBaseURL = "https://image.tmdb.org/t/p/"

// Result is one entry of any TMDB list endpoint (discover, search, trending,
// top rated, recommendations). Movies fill Title/ReleaseDate, series fill
// Name/FirstAirDate.
type Result struct {
	ID               int64   `json:"id"`
	MediaType        string  `json:"media_type,omitempty"` // only set by multi search and trending/all
	Title            string  `json:"title,omitempty"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Name             string  `json:"name,omitempty"`
	OriginalName     string  `json:"original_name,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date,omitempty"`   // "2024-03-01"
	FirstAirDate     string  `json:"first_air_date,omitempty"` // "2008-01-20"
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
}

// ListResponse is the paged envelope shared by all list endpoints.
type ListResponse struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre represents a movie or series genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreList struct {
	Genres []Genre `json:"genres"`
}

// Language is an entry of /configuration/languages.
type Language struct {
	ISO6391     string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

// Person is a creator reference on series details.
type Person struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

// CastMember is one billed actor.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

// Credits is appended to details via append_to_response=credits.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Detail is the flat detail object for a movie or series.
type Detail struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title,omitempty"`
	Name             string   `json:"name,omitempty"`
	Tagline          string   `json:"tagline"`
	Overview         string   `json:"overview"`
	Status           string   `json:"status"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	ReleaseDate      string   `json:"release_date,omitempty"`
	FirstAirDate     string   `json:"first_air_date,omitempty"`
	OriginalLanguage string   `json:"original_language"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Runtime          int      `json:"runtime"` // minutes, movies only
	NumberOfSeasons  int      `json:"number_of_seasons"`
	Genres           []Genre  `json:"genres"`
	CreatedBy        []Person `json:"created_by"`
	Credits          *Credits `json:"credits,omitempty"`
}

// Year extracts the year from ReleaseDate or FirstAirDate.
func (d *Detail) Year() int {
	date := d.ReleaseDate
	if date == "" {
		date = d.FirstAirDate
	}
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (d *Detail) PosterURL(size string) string {
	return ImageURL(size, d.PosterPath)
}

// ImageURL joins a CDN size and an image path. Empty paths stay empty.
func ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + size + path
}

// Video is one entry of /{kind}/{id}/videos.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"` // "YouTube", "Vimeo"
	Type     string `json:"type"` // "Trailer", "Teaser", "Clip", ...
	Official bool   `json:"official"`
}

type videoList struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}
