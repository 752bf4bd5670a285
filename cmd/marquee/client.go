package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"
)

// Client wraps HTTP calls to a running marqueed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new marqueed API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get decodes the body of a GET into result. Statuses in accept besides 200
// are decoded too; anything else is an error carrying the server's message.
func (c *Client) get(path string, result any, accept ...int) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && !slices.Contains(accept, resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, errorMessage(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// errorMessage pulls the message out of an API error envelope, falling back
// to the raw body.
func errorMessage(body []byte) string {
	var env ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		if env.Code != "" {
			return env.Error + " (" + env.Code + ")"
		}
		return env.Error
	}
	return strings.TrimSpace(string(body))
}

// API response types (mirror server types)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type VerifyCheck struct {
	Name       string `json:"name"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type VerifyResponse struct {
	Checked int           `json:"checked"`
	Passed  int           `json:"passed"`
	Checks  []VerifyCheck `json:"checks"`
}

// Failed reports whether any check failed.
func (r *VerifyResponse) Failed() bool {
	return r.Passed < r.Checked
}

// ErrChecksFailed is returned by verify when the server reports failures.
var ErrChecksFailed = errors.New("checks failed")

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify runs the server's connectivity checks. A 503 still carries the
// per-check results.
func (c *Client) Verify() (*VerifyResponse, error) {
	var resp VerifyResponse
	if err := c.get("/api/v1/verify", &resp, http.StatusServiceUnavailable); err != nil {
		return nil, err
	}
	return &resp, nil
}
