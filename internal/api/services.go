package api

import (
	"context"

	"github.com/moodreel/moodreel-server/internal/domain"
)

// Recommender is the recommendation facade the handlers call.
type Recommender interface {
	Generate(ctx context.Context, req domain.RecommendationRequest) ([]domain.Media, error)
	MovieDetails(ctx context.Context, id string) (*domain.Movie, error)
	SeriesDetails(ctx context.Context, id string) (*domain.Series, error)
	Readiness() (webhookReady, catalogReady bool)
}

// Services groups the business logic used by the API server.
type Services struct {
	Recommendations Recommender
}
