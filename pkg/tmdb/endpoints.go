package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func checkKind(kind string) error {
	if kind != MediaMovie && kind != MediaTV {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return nil
}

func (c *Client) list(ctx context.Context, path string, params url.Values) (*ListResponse, error) {
	var resp ListResponse
	if err := c.FetchJSON(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func pageParams(page int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	return params
}

// Discover queries /discover/{kind}. Params are passed through untouched;
// callers decide which filters to send.
func (c *Client) Discover(ctx context.Context, kind string, params url.Values) (*ListResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return c.list(ctx, "/3/discover/"+kind, params)
}

// Search queries /search/{kind}. Upstream only honors query and page here.
func (c *Client) Search(ctx context.Context, kind string, params url.Values) (*ListResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return c.list(ctx, "/3/search/"+kind, params)
}

// SearchMulti queries /search/multi, which mixes movies, series and people.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*ListResponse, error) {
	params := pageParams(page)
	params.Set("query", query)
	return c.list(ctx, "/3/search/multi", params)
}

// Trending returns trending titles of a kind for window "day" or "week".
func (c *Client) Trending(ctx context.Context, kind, window string) (*ListResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	if window != "day" {
		window = "week"
	}
	return c.list(ctx, fmt.Sprintf("/3/trending/%s/%s", kind, window), nil)
}

// TopRated returns the top rated titles of a kind.
func (c *Client) TopRated(ctx context.Context, kind string, page int) (*ListResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return c.list(ctx, fmt.Sprintf("/3/%s/top_rated", kind), pageParams(page))
}

// Details fetches a movie or series with its credits appended.
func (c *Client) Details(ctx context.Context, kind string, id int64) (*Detail, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("append_to_response", "credits")

	var detail Detail
	if err := c.FetchJSON(ctx, fmt.Sprintf("/3/%s/%d", kind, id), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Videos lists trailers, teasers and clips for a title.
func (c *Client) Videos(ctx context.Context, kind string, id int64) ([]Video, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("language", c.language)

	var resp videoList
	if err := c.FetchJSON(ctx, fmt.Sprintf("/3/%s/%d/videos", kind, id), params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Recommendations lists titles recommended alongside a title.
func (c *Client) Recommendations(ctx context.Context, kind string, id int64, page int) (*ListResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	params := pageParams(page)
	params.Set("language", c.language)
	return c.list(ctx, fmt.Sprintf("/3/%s/%d/recommendations", kind, id), params)
}

// Genres returns the genre taxonomy for a kind.
func (c *Client) Genres(ctx context.Context, kind string) ([]Genre, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("language", c.language)

	var resp genreList
	if err := c.FetchJSON(ctx, "/3/genre/"+kind+"/list", params, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// Languages returns every language TMDB knows about.
func (c *Client) Languages(ctx context.Context) ([]Language, error) {
	var langs []Language
	if err := c.FetchJSON(ctx, "/3/configuration/languages", nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}
