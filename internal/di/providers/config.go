// Package providers contains dependency injection providers for the moodreel server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/moodreel/moodreel-server/internal/config"
	"github.com/moodreel/moodreel-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting moodreel server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"webhook_configured", cfg.WebhookConfigured(),
		"tmdb_configured", cfg.TMDBConfigured(),
		"resolve_concurrency", cfg.Enrichment.Concurrency,
	)

	if !cfg.WebhookConfigured() || !cfg.TMDBConfigured() {
		log.Warn("Upstream credentials missing, recommendation requests will fail until configured")
	}

	return log, nil
}
