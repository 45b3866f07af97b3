package suggest

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/moodreel/moodreel-server/internal/ratelimit"
)

const (
	// LLM-backed workflows are slow; give them room.
	defaultTimeout = 60 * time.Second

	maxBodyBytes = 4 << 20

	userAgent = "moodreel/1.0"
)

// Config configures a Client.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

// Client posts recommendation requests to the webhook. It is safe for
// concurrent use.
type Client struct {
	http       *http.Client
	limiter    *ratelimit.KeyedRateLimiter
	logger     *slog.Logger
	webhookURL string
}

// New creates a webhook client. A nil limiter disables outbound pacing.
func New(cfg Config, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if limiter == nil {
		limiter = ratelimit.New(0, 0)
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:    limiter,
		logger:     logger,
		webhookURL: cfg.WebhookURL,
	}
}

// Configured reports whether a webhook URL is set.
func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Fetch sends req to the webhook and returns the normalized suggestions in
// the order the webhook listed them. Non-2xx answers return *UpstreamError;
// unrecognizable bodies return ErrMalformedResponse.
func (c *Client) Fetch(ctx context.Context, req Request) ([]Suggestion, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	if err := c.limiter.WaitURL(ctx, c.webhookURL); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("webhook response",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Excerpt:    excerpt(body),
		}
	}

	suggestions, err := ParseResponse(body)
	if err != nil {
		c.logger.Warn("webhook response not understood", "error", err, "excerpt", excerpt(body))
		return nil, err
	}
	return suggestions, nil
}
