package providers

import (
	"github.com/samber/do/v2"

	"github.com/moodreel/moodreel-server/internal/config"
	"github.com/moodreel/moodreel-server/internal/logger"
	"github.com/moodreel/moodreel-server/internal/service"
)

// ProvideRecommendationService provides the recommendation service.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	suggestHandle := do.MustInvoke[*SuggestClientHandle](i)
	catalogHandle := do.MustInvoke[*CatalogClientHandle](i)

	return service.NewRecommendationService(
		suggestHandle.Client,
		catalogHandle.Client,
		cfg.Enrichment.Concurrency,
		log.Component("recommendations"),
	), nil
}
