// Package api implements the authenticated HTTP client for the Murmur REST
// API. All request plumbing lives here: base URL resolution, bearer token
// attachment, JSON encoding, error mapping, tracing, and metrics. Callers
// get typed methods per endpoint and never touch net/http directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"murmur/internal/observability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TokenFunc returns the current bearer token, or "" when unauthenticated.
type TokenFunc func(ctx context.Context) string

// Client issues authenticated JSON requests against a configured base URL.
type Client struct {
	base   *url.URL
	http   *http.Client
	token  TokenFunc
	logger *observability.RequestLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenFunc sets the bearer token source. Without one the client only
// issues anonymous requests.
func WithTokenFunc(fn TokenFunc) Option {
	return func(c *Client) { c.token = fn }
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", baseURL)
	}

	c := &Client{
		base:   base,
		http:   &http.Client{Timeout: 15 * time.Second},
		token:  func(context.Context) string { return "" },
		logger: observability.NewRequestLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetTokenFunc swaps the token source after construction. The store wires
// itself in here once it owns the persisted token.
func (c *Client) SetTokenFunc(fn TokenFunc) {
	c.token = fn
}

// do performs one request. route is the low-cardinality path template used
// for metric labels and span names; path is the concrete request path.
// body (if non-nil) is JSON-encoded; out (if non-nil) receives the decoded
// response body. Any transport failure or non-2xx status is returned as *Error.
func (c *Client) do(ctx context.Context, method, route, path string, body, out any) error {
	ctx, span := observability.Tracer.Start(ctx, method+" "+route)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	if observability.ExtractCorrelationID(ctx) == "" {
		ctx = observability.WithCorrelationID(ctx, observability.GenerateCorrelationID())
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "failed to encode request body", Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return &Error{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.APIRequestErrors.WithLabelValues(method, route).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.LogRequest(ctx, method, path, 0, err)
		return &Error{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	observability.ObserveAPIRequest(method, route, resp.StatusCode, start)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.LogRequest(ctx, method, path, resp.StatusCode, nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return &Error{Status: resp.StatusCode, Message: "failed to decode response body", Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, route, path string, out any) error {
	return c.do(ctx, http.MethodGet, route, path, nil, out)
}

func (c *Client) post(ctx context.Context, route, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, route, path, body, out)
}

func (c *Client) put(ctx context.Context, route, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, route, path, body, out)
}

func (c *Client) delete(ctx context.Context, route, path string, out any) error {
	return c.do(ctx, http.MethodDelete, route, path, nil, out)
}
