package upstream

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Prober answers "can this session use that endpoint" by trial access:
// the backend has no capability manifest, so authorization is discovered
// by issuing a lightweight GET and reading the status code. Swap the
// implementation if the backend ever grows an explicit capabilities call.
type Prober interface {
	Accessible(ctx context.Context, path string) bool
}

// EndpointProber probes by GET against the backend.
type EndpointProber struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewProber constructs an EndpointProber with its own, shorter timeout.
func NewProber(baseURL string, timeout time.Duration, logger *zap.Logger) *EndpointProber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EndpointProber{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Accessible returns true only for a 2xx answer. 401 and 403 mean the
// session lacks access; anything else (including network failure) is also
// treated as no access rather than surfaced as an error.
func (p *EndpointProber) Accessible(ctx context.Context, path string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return false
	}
	if raw := cookiesFrom(ctx); raw != "" {
		req.Header.Set("Cookie", raw)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		p.logger.Debug("probe failed", zap.String("path", path), zap.Error(err))
		return false
	}
	defer resp.Body.Close() //nolint:errcheck

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
