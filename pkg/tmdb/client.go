package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.themoviedb.org"
const defaultLanguage = "en-US"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// Client is a TMDB API client.
//
// It performs no retries and keeps no response cache. Identical GETs that are
// in flight at the same time share one upstream round trip.
type Client struct {
	apiKey     string
	readToken  string
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger

	inflight singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithReadToken authenticates with a v4 read access token instead of the
// api_key query parameter.
func WithReadToken(token string) Option {
	return func(c *Client) {
		c.readToken = token
	}
}

// WithLanguage sets the language passed to detail endpoints.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithRateLimit throttles outbound requests to rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchJSON GETs path (e.g. "/3/discover/movie") with params and decodes the
// body into dst.
//
// Any non-2xx status yields a *StatusError matching ErrFetchFailed; a body that
// is not valid JSON yields ErrParseFailed. The body is read completely before
// decoding, so dst is never filled from a truncated payload.
func (c *Client) FetchJSON(ctx context.Context, path string, params url.Values, dst any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w: %w", path, ErrParseFailed, err)
	}
	return nil
}

func (c *Client) buildURL(path string, params url.Values) string {
	q := url.Values{}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	if c.readToken == "" && c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u := c.baseURL + path
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// get returns the raw body for a successful response. Concurrent callers asking
// for the same URL share a single request; each caller can still give up early
// through its own ctx.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.buildURL(path, params)

	// The shared request must not die with whichever caller happened to start it.
	shared := context.WithoutCancel(ctx)
	ch := c.inflight.DoChan(u, func() (any, error) {
		return c.do(shared, path, u)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared && c.log != nil {
			c.log.Debug("deduplicated request", "path", path)
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) do(ctx context.Context, path, u string) ([]byte, error) {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", ErrFetchFailed, err)
		}
	}

	// Build request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.readToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.readToken)
	}

	// Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Handle errors
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.log != nil {
			c.log.Debug("request failed", "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Path: path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	if c.log != nil {
		c.log.Debug("request completed", "path", path, "bytes", len(body), "duration_ms", time.Since(start).Milliseconds())
	}
	return body, nil
}
