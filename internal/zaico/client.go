// ABOUTME: HTTP client for the ZAICO inventory REST API.
// ABOUTME: Issues one bearer-authenticated call per request and normalizes the body into a CallResult.

package zaico

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CallResult is the normalized outcome of one upstream call. Non-2xx
// statuses are reported here with OK false, never as a Go error.
type CallResult struct {
	Status int  `json:"status"`
	OK     bool `json:"ok"`
	Data   any  `json:"data"`
}

// Request describes a single upstream call.
type Request struct {
	Token  string
	Method string
	Path   string     // appended to the base URL, e.g. "/inventories/42"
	Query  url.Values // encoded into the query string when non-empty
	Body   any        // JSON-encoded when non-nil
}

// ClientConfig holds configuration for the API client.
type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout bounds each call; zero leaves calls bounded only by the caller's context.
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// Client talks to the ZAICO REST API. It holds no credentials; every
// request carries its own token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a client for the given base URL.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "zaico-mcp"
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		timeout:    cfg.Timeout,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs the request and returns the normalized result. An error is
// returned only when no HTTP response was obtained (bad request, network
// failure, cancellation) or the body could not be read.
func (c *Client) Do(ctx context.Context, req Request) (*CallResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("upstream request failed",
			"method", req.Method,
			"path", req.Path,
			"error", err,
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug("upstream request",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return &CallResult{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode <= 299,
		Data:   parseBody(raw),
	}, nil
}

// parseBody decodes a response body as a single JSON value, keeping numbers
// as json.Number so they round-trip unchanged. Anything else, including an
// empty body, is wrapped as {"raw": text}.
func parseBody(raw []byte) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return map[string]any{"raw": string(raw)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return map[string]any{"raw": string(raw)}
	}
	return v
}
