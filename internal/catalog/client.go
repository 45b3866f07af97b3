package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/moodreel/moodreel-server/internal/ratelimit"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultImageBaseURL is the TMDB image CDN root.
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	defaultLanguage = "en-US"
	defaultRegion   = "US"
	defaultTimeout  = 30 * time.Second

	// Detail responses with full credits can be large; anything past this is garbage.
	maxBodyBytes = 8 << 20

	userAgent = "moodreel/1.0"
)

// Config configures a Client.
type Config struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Region       string // watch-provider market, e.g. "US"
	Timeout      time.Duration
}

// Client is a TMDB API client. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	http         *http.Client
	limiter      *ratelimit.KeyedRateLimiter
	logger       *slog.Logger
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	region       string
}

// New creates a TMDB client. A nil limiter disables outbound pacing.
func New(cfg Config, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
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
		limiter:      limiter,
		logger:       logger,
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		language:     cfg.Language,
		region:       strings.ToUpper(cfg.Region),
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Region returns the watch-provider market.
func (c *Client) Region() string {
	return c.region
}

// doRequest executes a GET against the API with pacing and key injection.
// It returns the HTTP status alongside the error so callers can report it.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	if err := c.limiter.WaitURL(ctx, c.baseURL); err != nil {
		return nil, 0, fmt.Errorf("rate limit wait: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	// Never log the query: it carries the API key.
	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("tmdb request failed", "path", path, "status", resp.StatusCode)
		return nil, resp.StatusCode, statusError(resp.StatusCode)
	}

	return body, resp.StatusCode, nil
}
