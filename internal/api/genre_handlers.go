package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moodreel/moodreel-server/internal/api/dto"
	"github.com/moodreel/moodreel-server/internal/domain"
	"github.com/moodreel/moodreel-server/internal/genre"
)

func (s *Server) registerGenreRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listGenres",
		Method:      http.MethodGet,
		Path:        "/api/genres",
		Summary:     "List genres and moods",
		Description: "Returns the built-in genres and moods clients can offer in their pickers",
		Tags:        []string{"Genres"},
	}, s.handleListGenres)
}

func (s *Server) handleListGenres(_ context.Context, _ *struct{}) (*dto.CatalogOptionsOutput, error) {
	genres := make([]dto.GenreEntry, 0, len(genre.DefaultGenres))
	for _, g := range genre.DefaultGenres {
		genres = append(genres, dto.GenreEntry{Name: g.Name, Slug: g.Slug})
	}

	return &dto.CatalogOptionsOutput{
		CacheControl: CacheOneDay,
		Body: dto.CatalogOptionsResponse{
			Genres: genres,
			Moods:  append([]string(nil), domain.Moods...),
		},
	}, nil
}
