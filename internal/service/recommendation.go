package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/moodreel/moodreel-server/internal/catalog"
	"github.com/moodreel/moodreel-server/internal/domain"
	domainerrors "github.com/moodreel/moodreel-server/internal/errors"
	"github.com/moodreel/moodreel-server/internal/genre"
	"github.com/moodreel/moodreel-server/internal/id"
	"github.com/moodreel/moodreel-server/internal/suggest"
	"github.com/moodreel/moodreel-server/internal/validation"
)

// SuggestionSource produces raw suggestions for a request.
type SuggestionSource interface {
	Configured() bool
	Fetch(ctx context.Context, req suggest.Request) ([]suggest.Suggestion, error)
}

// CatalogSource is a Catalog that can report whether it has credentials.
type CatalogSource interface {
	Catalog
	Configured() bool
}

// RecommendationService validates requests and runs the suggestion and
// enrichment steps.
type RecommendationService struct {
	suggestions SuggestionSource
	catalog     CatalogSource
	enricher    *Enricher
	validator   *validation.Validator
	logger      *slog.Logger
}

// NewRecommendationService creates the recommendation facade.
func NewRecommendationService(
	suggestions SuggestionSource,
	catalogSource CatalogSource,
	concurrency int,
	logger *slog.Logger,
) *RecommendationService {
	return &RecommendationService{
		suggestions: suggestions,
		catalog:     catalogSource,
		enricher:    NewEnricher(catalogSource, concurrency, logger),
		validator:   validation.New(),
		logger:      logger,
	}
}

// Generate returns enriched recommendations for req.
func (s *RecommendationService) Generate(ctx context.Context, req domain.RecommendationRequest) ([]domain.Media, error) {
	req = normalizeRequest(req)

	if req.Mood == "" || len(req.Genres) == 0 {
		return nil, domainerrors.Validation("Mood and at least one genre are required")
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.checkConfigured(true); err != nil {
		return nil, err
	}

	batchID := id.MustGenerate("rec")
	log := s.logger.With("batch_id", batchID)
	start := time.Now()

	log.Info("generating recommendations",
		"mood", req.Mood,
		"genres", req.Genres,
		"content_type", req.ContentType,
		"time_available", req.TimeAvailable,
	)

	suggestions, err := s.suggestions.Fetch(ctx, suggest.Request{
		Mood:          req.Mood,
		Genres:        req.Genres,
		ContentType:   req.ContentType,
		TimeAvailable: req.TimeAvailable,
	})
	if err != nil {
		log.Warn("suggestion webhook failed", "error", err)
		return nil, mapSuggestError(err)
	}

	media, err := s.enricher.Resolve(ctx, suggestions)
	if err != nil {
		log.Warn("enrichment failed", "error", err)
		return nil, mapCatalogError(err, false)
	}

	log.Info("recommendations generated",
		"suggested", len(suggestions),
		"resolved", len(media),
		"duration", time.Since(start),
	)

	return media, nil
}

// MovieDetails looks up a movie by its TMDB id.
func (s *RecommendationService) MovieDetails(ctx context.Context, rawID string) (*domain.Movie, error) {
	tmdbID, err := s.prepareLookup(rawID)
	if err != nil {
		return nil, err
	}
	movie, err := s.enricher.MovieDetails(ctx, tmdbID)
	if err != nil {
		return nil, mapCatalogError(err, true)
	}
	return movie, nil
}

// SeriesDetails looks up a series by its TMDB id.
func (s *RecommendationService) SeriesDetails(ctx context.Context, rawID string) (*domain.Series, error) {
	tmdbID, err := s.prepareLookup(rawID)
	if err != nil {
		return nil, err
	}
	series, err := s.enricher.SeriesDetails(ctx, tmdbID)
	if err != nil {
		return nil, mapCatalogError(err, true)
	}
	return series, nil
}

// Readiness reports which upstreams have credentials.
func (s *RecommendationService) Readiness() (webhookReady, catalogReady bool) {
	return s.suggestions.Configured(), s.catalog.Configured()
}

func (s *RecommendationService) prepareLookup(rawID string) (int, error) {
	tmdbID, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil || tmdbID <= 0 {
		return 0, domainerrors.Validationf("invalid id %q", rawID)
	}
	if err := s.checkConfigured(false); err != nil {
		return 0, err
	}
	return tmdbID, nil
}

// checkConfigured fails when a credential the call needs is missing.
func (s *RecommendationService) checkConfigured(needWebhook bool) error {
	var missing []string
	if needWebhook && !s.suggestions.Configured() {
		missing = append(missing, "N8N_WEBHOOK_URL")
	}
	if !s.catalog.Configured() {
		missing = append(missing, "TMDB_API_KEY")
	}
	if len(missing) > 0 {
		return domainerrors.Configuration("Server missing " + strings.Join(missing, " and "))
	}
	return nil
}

func normalizeRequest(req domain.RecommendationRequest) domain.RecommendationRequest {
	req.Mood = strings.TrimSpace(req.Mood)
	req.Genres = genre.Normalize(req.Genres)
	if req.ContentType == "" {
		req.ContentType = domain.ContentBoth
	}
	return req
}

func mapSuggestError(err error) error {
	var upstream *suggest.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return domainerrors.Upstream(err, upstream.Error())
	case errors.Is(err, suggest.ErrMalformedResponse):
		return domainerrors.MalformedResponse(err, "Failed to parse recommendations from webhook")
	default:
		return domainerrors.Upstream(err, "Recommendation webhook request failed")
	}
}

// mapCatalogError converts a catalog failure. Only direct lookups report a
// missing title as not found; inside a run every failure is an upstream error.
func mapCatalogError(err error, direct bool) error {
	var catalogErr *catalog.Error
	if errors.As(err, &catalogErr) {
		if direct && errors.Is(err, catalog.ErrNotFound) {
			return domainerrors.NotFoundf("%s %d not found", mediaLabel(catalogErr.MediaType), catalogErr.ID)
		}
		msg := fmt.Sprintf("TMDB %s failed", catalogErr.Op)
		if catalogErr.Status != 0 {
			msg = fmt.Sprintf("%s: %d", msg, catalogErr.Status)
		}
		return domainerrors.Upstream(err, msg)
	}
	return domainerrors.Upstream(err, "TMDB request failed")
}

func mediaLabel(t catalog.MediaType) string {
	if t == catalog.MediaTV {
		return "series"
	}
	return "movie"
}
