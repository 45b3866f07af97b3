package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moodreel/moodreel-server/internal/api/dto"
)

func (s *Server) registerMediaRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getMovie",
		Method:      http.MethodGet,
		Path:        "/api/movies/{id}",
		Summary:     "Get movie",
		Description: "Returns an enriched movie by TMDB id",
		Tags:        []string{"Media"},
	}, s.handleGetMovie)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSeries",
		Method:      http.MethodGet,
		Path:        "/api/series/{id}",
		Summary:     "Get series",
		Description: "Returns an enriched series by TMDB id",
		Tags:        []string{"Media"},
	}, s.handleGetSeries)
}

func (s *Server) handleGetMovie(ctx context.Context, input *dto.MediaLookupInput) (*dto.MovieOutput, error) {
	movie, err := s.services.Recommendations.MovieDetails(ctx, input.ID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &dto.MovieOutput{
		Body: dto.MovieResponse{Movie: dto.FromMedia(movie)},
	}, nil
}

func (s *Server) handleGetSeries(ctx context.Context, input *dto.MediaLookupInput) (*dto.SeriesOutput, error) {
	series, err := s.services.Recommendations.SeriesDetails(ctx, input.ID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &dto.SeriesOutput{
		Body: dto.SeriesResponse{Series: dto.FromMedia(series)},
	}, nil
}
