package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moodreel/moodreel-server/internal/api/dto"
	"github.com/moodreel/moodreel-server/internal/domain"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "generateRecommendations",
		Method:        http.MethodPost,
		Path:          "/api/recommendations",
		Summary:       "Generate recommendations",
		Description:   "Asks the recommendation webhook for titles matching the mood and enriches each one with TMDB metadata",
		Tags:          []string{"Recommendations"},
		DefaultStatus: http.StatusOK,
	}, s.handleGenerateRecommendations)
}

func (s *Server) handleGenerateRecommendations(ctx context.Context, input *dto.RecommendationInput) (*dto.RecommendationOutput, error) {
	media, err := s.services.Recommendations.Generate(ctx, domain.RecommendationRequest{
		Mood:          input.Body.Mood,
		Genres:        input.Body.Genres,
		ContentType:   domain.ContentType(input.Body.ContentType),
		TimeAvailable: domain.TimeAvailable(input.Body.TimeAvailable),
	})
	if err != nil {
		return nil, toAPIError(err)
	}

	return &dto.RecommendationOutput{
		CacheControl: CacheNoStore,
		Body: dto.RecommendationResponse{
			Recommendations: dto.FromMediaList(media),
		},
	}, nil
}
