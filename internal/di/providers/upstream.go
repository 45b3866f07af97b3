package providers

import (
	"github.com/samber/do/v2"

	"github.com/moodreel/moodreel-server/internal/catalog"
	"github.com/moodreel/moodreel-server/internal/config"
	"github.com/moodreel/moodreel-server/internal/logger"
	"github.com/moodreel/moodreel-server/internal/ratelimit"
	"github.com/moodreel/moodreel-server/internal/suggest"
)

// ProvideRateLimiter provides the per-host limiter shared by outbound clients.
func ProvideRateLimiter(i do.Injector) (*ratelimit.KeyedRateLimiter, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return ratelimit.New(cfg.Upstream.RequestsPerSecond, cfg.Upstream.Burst), nil
}

// CatalogClientHandle wraps the TMDB client with shutdown capability.
type CatalogClientHandle struct {
	*catalog.Client
}

// Shutdown implements do.Shutdownable.
func (h *CatalogClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideCatalogClient provides the TMDB API client.
func ProvideCatalogClient(i do.Injector) (*CatalogClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	limiter := do.MustInvoke[*ratelimit.KeyedRateLimiter](i)

	client := catalog.New(catalog.Config{
		APIKey:       cfg.TMDB.APIKey,
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Language:     cfg.TMDB.Language,
		Region:       cfg.TMDB.Region,
		Timeout:      cfg.Upstream.Timeout,
	}, limiter, log.Component("catalog"))

	log.Info("TMDB client initialized",
		"base_url", cfg.TMDB.BaseURL,
		"region", client.Region(),
	)

	return &CatalogClientHandle{Client: client}, nil
}

// SuggestClientHandle wraps the webhook client with shutdown capability.
type SuggestClientHandle struct {
	*suggest.Client
}

// Shutdown implements do.Shutdownable.
func (h *SuggestClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideSuggestClient provides the recommendation webhook client.
func ProvideSuggestClient(i do.Injector) (*SuggestClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	limiter := do.MustInvoke[*ratelimit.KeyedRateLimiter](i)

	client := suggest.New(suggest.Config{
		WebhookURL: cfg.Webhook.URL,
		Timeout:    cfg.Webhook.Timeout,
	}, limiter, log.Component("suggest"))

	log.Info("Webhook client initialized", "timeout", cfg.Webhook.Timeout)

	return &SuggestClientHandle{Client: client}, nil
}
