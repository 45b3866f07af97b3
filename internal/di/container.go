// Package di provides dependency injection configuration for the moodreel server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/moodreel/moodreel-server/internal/config"
	"github.com/moodreel/moodreel-server/internal/di/providers"
	"github.com/moodreel/moodreel-server/internal/logger"
	"github.com/moodreel/moodreel-server/internal/ratelimit"
	"github.com/moodreel/moodreel-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Upstream clients
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideCatalogClient)
	do.Provide(injector, providers.ProvideSuggestClient)

	// Business services
	do.Provide(injector, providers.ProvideRecommendationService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and starts the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*ratelimit.KeyedRateLimiter](injector)
	_ = do.MustInvoke[*providers.CatalogClientHandle](injector)
	_ = do.MustInvoke[*providers.SuggestClientHandle](injector)
	_ = do.MustInvoke[*service.RecommendationService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
