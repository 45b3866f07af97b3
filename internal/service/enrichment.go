package service

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/moodreel/moodreel-server/internal/catalog"
	"github.com/moodreel/moodreel-server/internal/domain"
	"github.com/moodreel/moodreel-server/internal/suggest"
)

const (
	maxCast = 5

	imdbTitleURL     = "https://www.imdb.com/title/"
	letterboxdSearch = "https://letterboxd.com/search/"
)

// Catalog is the part of the TMDB client the enricher depends on.
type Catalog interface {
	Search(ctx context.Context, title string, year *int, mediaType catalog.MediaType) ([]catalog.SearchResult, error)
	GetDetails(ctx context.Context, id int, mediaType catalog.MediaType) (*catalog.Details, error)
	GetStreamingProviders(ctx context.Context, id int, mediaType catalog.MediaType) []domain.StreamingPlatform
	ImageURL(path string, size catalog.ImageSize) string
}

// Enricher resolves suggestions against the catalog and builds Media values.
type Enricher struct {
	catalog     Catalog
	concurrency int
	logger      *slog.Logger
}

// NewEnricher creates an enricher resolving up to concurrency suggestions at
// once. Values below one resolve sequentially.
func NewEnricher(c Catalog, concurrency int, logger *slog.Logger) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		catalog:     c,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Resolve turns suggestions into Media. Output keeps input order. Suggestions
// with no search hit are skipped; any catalog search or detail failure
// aborts the whole call.
func (e *Enricher) Resolve(ctx context.Context, suggestions []suggest.Suggestion) ([]domain.Media, error) {
	if len(suggestions) == 0 {
		return []domain.Media{}, nil
	}

	// Each task owns one slot, so no locking is needed.
	slots := make([]domain.Media, len(suggestions))

	p := pool.New().
		WithMaxGoroutines(min(e.concurrency, len(suggestions))).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, s := range suggestions {
		p.Go(func(ctx context.Context) error {
			media, err := e.resolveOne(ctx, s)
			if err != nil {
				return err
			}
			slots[i] = media
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Media, 0, len(slots))
	for _, m := range slots {
		if m != nil {
			out = append(out, m)
		}
	}

	if skipped := len(suggestions) - len(out); skipped > 0 {
		e.logger.Debug("suggestions skipped", "skipped", skipped, "resolved", len(out))
	}

	return out, nil
}

// resolveOne returns a nil Media when the suggestion has no catalog match.
func (e *Enricher) resolveOne(ctx context.Context, s suggest.Suggestion) (domain.Media, error) {
	mediaType := mediaTypeFor(s.Type)

	if strings.TrimSpace(s.Title) == "" {
		e.logger.Debug("skipping suggestion without title")
		return nil, nil
	}

	results, err := e.catalog.Search(ctx, s.Title, s.Year, mediaType)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		e.logger.Debug("no catalog match", "title", s.Title, "type", mediaType)
		return nil, nil
	}

	// First hit wins; TMDB's relevance order is trusted as is.
	details, err := e.catalog.GetDetails(ctx, results[0].ID, mediaType)
	if err != nil {
		return nil, err
	}

	if mediaType == catalog.MediaTV {
		return e.buildSeries(ctx, details, s.Year, s.MoodMatch), nil
	}
	return e.buildMovie(ctx, details, s.Year, s.MoodMatch), nil
}

// MovieDetails builds a Movie straight from a TMDB id.
func (e *Enricher) MovieDetails(ctx context.Context, id int) (*domain.Movie, error) {
	details, err := e.catalog.GetDetails(ctx, id, catalog.MediaMovie)
	if err != nil {
		return nil, err
	}
	return e.buildMovie(ctx, details, nil, ""), nil
}

// SeriesDetails builds a Series straight from a TMDB id.
func (e *Enricher) SeriesDetails(ctx context.Context, id int) (*domain.Series, error) {
	details, err := e.catalog.GetDetails(ctx, id, catalog.MediaTV)
	if err != nil {
		return nil, err
	}
	return e.buildSeries(ctx, details, nil, ""), nil
}

func (e *Enricher) buildMovie(ctx context.Context, d *catalog.Details, fallbackYear *int, moodMatch string) *domain.Movie {
	runtime := 0
	if d.Runtime != nil {
		runtime = *d.Runtime
	}
	return &domain.Movie{
		MediaBase: e.buildBase(ctx, d, catalog.MediaMovie, d.Title, d.ReleaseDate, fallbackYear, moodMatch),
		Director:  director(d.Credits.Crew),
		Runtime:   runtime,
	}
}

func (e *Enricher) buildSeries(ctx context.Context, d *catalog.Details, fallbackYear *int, moodMatch string) *domain.Series {
	creator := ""
	if len(d.CreatedBy) > 0 {
		creator = d.CreatedBy[0].Name
	}
	seasons := 1
	if d.NumberOfSeasons != nil && *d.NumberOfSeasons > 0 {
		seasons = *d.NumberOfSeasons
	}
	episodes := 0
	if d.NumberOfEpisodes != nil {
		episodes = *d.NumberOfEpisodes
	}
	return &domain.Series{
		MediaBase:    e.buildBase(ctx, d, catalog.MediaTV, d.Name, d.FirstAirDate, fallbackYear, moodMatch),
		Creator:      creator,
		Seasons:      seasons,
		EpisodeCount: episodes,
	}
}

func (e *Enricher) buildBase(
	ctx context.Context,
	d *catalog.Details,
	mediaType catalog.MediaType,
	title, date string,
	fallbackYear *int,
	moodMatch string,
) domain.MediaBase {
	year := yearFromDate(date)
	if year == 0 && fallbackYear != nil {
		year = *fallbackYear
	}

	cast, castDetails := e.topCast(d.Credits.Cast)

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}

	imdb := ""
	if d.ExternalIDs.IMDbID != "" {
		imdb = imdbTitleURL + d.ExternalIDs.IMDbID + "/"
	}

	return domain.MediaBase{
		ID:                 strconv.Itoa(d.ID),
		Title:              title,
		Year:               year,
		Cast:               cast,
		CastDetails:        castDetails,
		Synopsis:           d.Overview,
		PosterURL:          e.catalog.ImageURL(d.PosterPath, catalog.PosterSize),
		BackdropURL:        e.catalog.ImageURL(d.BackdropPath, catalog.BackdropSize),
		Rating:             d.VoteAverage,
		Genres:             genres,
		StreamingPlatforms: e.catalog.GetStreamingProviders(ctx, d.ID, mediaType),
		TrailerURL:         catalog.TrailerURLFromVideos(d.Videos),
		IMDbURL:            imdb,
		LetterboxdURL:      letterboxdURL(title, year),
		MoodMatch:          moodMatch,
	}
}

// topCast takes the first billed entries and drops unnamed ones.
func (e *Enricher) topCast(credits []catalog.CastCredit) ([]string, []domain.CastMember) {
	if len(credits) > maxCast {
		credits = credits[:maxCast]
	}
	names := make([]string, 0, len(credits))
	members := make([]domain.CastMember, 0, len(credits))
	for _, c := range credits {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		names = append(names, c.Name)
		members = append(members, domain.CastMember{
			Name:       c.Name,
			ProfileURL: e.catalog.ImageURL(c.ProfilePath, catalog.ProfileSize),
		})
	}
	return names, members
}

func director(crew []catalog.CrewCredit) string {
	for _, c := range crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return ""
}

func mediaTypeFor(kind domain.MediaKind) catalog.MediaType {
	if kind == domain.KindSeries {
		return catalog.MediaTV
	}
	return catalog.MediaMovie
}

// yearFromDate reads the year from a YYYY-MM-DD date, or 0.
func yearFromDate(date string) int {
	if len(date) > 4 {
		date = date[:4]
	}
	year, err := strconv.Atoi(date)
	if err != nil || year < 0 {
		return 0
	}
	return year
}

// letterboxdURL links to a Letterboxd search for "title year". It is a
// convenience link and may not land on the exact film.
func letterboxdURL(title string, year int) string {
	query := title + " "
	if year != 0 {
		query += strconv.Itoa(year)
	}
	return letterboxdSearch + componentEscaper.Replace(url.QueryEscape(query)) + "/"
}

// componentEscaper turns QueryEscape output into encodeURIComponent form:
// spaces as %20 and the marks ! ' ( ) * left literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
