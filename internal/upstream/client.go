// Package upstream is the single chokepoint through which the portal talks
// to the Kindy backend. Every call forwards the browser's session cookies,
// decodes the shared response envelope and normalises failures into the
// network/server/application error taxonomy. There are no retries, no
// caching and no request deduplication; the backend is presumed reliable.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

// Meta carries collection metadata from the backend.
type Meta struct {
	TotalCount *int `json:"total_count,omitempty"`
}

// Envelope is the backend's uniform response shape.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// Result pairs a decoded envelope with the session cookies the backend set,
// so login handlers can relay them to the browser.
type Result struct {
	Envelope *Envelope
	Cookies  []*http.Cookie
}

// Recorder observes upstream calls for metrics. A nil Recorder is valid.
type Recorder interface {
	ObserveUpstreamCall(method, path string, status int, duration time.Duration)
}

// Client issues HTTP requests against the backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics Recorder
}

// New constructs a Client. timeout bounds each request end to end.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, metrics Recorder) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: metrics,
	}
}

type cookieKey struct{}

// WithCookies stores the browser's raw Cookie header on the context so the
// upstream call can present the same session the browser holds.
func WithCookies(ctx context.Context, rawCookieHeader string) context.Context {
	if rawCookieHeader == "" {
		return ctx
	}
	return context.WithValue(ctx, cookieKey{}, rawCookieHeader)
}

func cookiesFrom(ctx context.Context) string {
	if v, ok := ctx.Value(cookieKey{}).(string); ok {
		return v
	}
	return ""
}

// Do issues a JSON request. body may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*Result, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}
	return c.roundTrip(ctx, method, path, "application/json", reader)
}

// DoMultipart streams a multipart form through to the backend. contentType
// must carry the multipart boundary.
func (c *Client) DoMultipart(ctx context.Context, path, contentType string, body io.Reader) (*Result, error) {
	return c.roundTrip(ctx, http.MethodPost, path, contentType, body)
}

func (c *Client) roundTrip(ctx context.Context, method, path, contentType string, body io.Reader) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build request")
	}
	if body != nil || method != http.MethodGet {
		req.Header.Set("Content-Type", contentType)
	}
	if raw := cookiesFrom(ctx); raw != "" {
		req.Header.Set("Cookie", raw)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveUpstreamCall(method, path, 0, time.Since(start))
		}
		c.logger.Warn("upstream unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, appErrors.NetworkError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if c.metrics != nil {
		c.metrics.ObserveUpstreamCall(method, path, resp.StatusCode, time.Since(start))
	}

	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env Envelope
		if readErr == nil && json.Unmarshal(raw, &env) == nil && env.Message != "" {
			return nil, appErrors.ApplicationError(resp.StatusCode, env.Message)
		}
		return nil, appErrors.ServerError(resp.StatusCode)
	}

	env := &Envelope{Status: "success"}
	if readErr == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, env); err != nil {
			// A 2xx with an unreadable body still counts as success; the
			// backend occasionally answers mutations with empty bodies.
			c.logger.Warn("upstream body not parseable, treating as success",
				zap.String("method", method), zap.String("path", path))
			env = &Envelope{Status: "success"}
		}
	}

	if env.Status == "error" {
		return nil, appErrors.ApplicationError(resp.StatusCode, env.Message)
	}

	return &Result{Envelope: env, Cookies: resp.Cookies()}, nil
}

// Data decodes the envelope's data field into T. A missing data field
// yields T's zero value, matching how the views treat absent collections.
func Data[T any](res *Result) (T, error) {
	var out T
	if res == nil || res.Envelope == nil || len(res.Envelope.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(res.Envelope.Data, &out); err != nil {
		return out, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decode upstream payload")
	}
	return out, nil
}
