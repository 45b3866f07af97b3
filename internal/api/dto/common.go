// Package dto provides request and response types for the moodreel API.
// These types are used by huma to generate OpenAPI documentation.
package dto

import "github.com/moodreel/moodreel-server/internal/domain"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" doc:"Human-readable error message"`
}

// MediaEntity is a movie or series ready for display. Fields belonging to
// the other variant are absent.
type MediaEntity struct {
	Type               string                     `json:"type" enum:"movie,series" doc:"Media variant"`
	ID                 string                     `json:"id" doc:"TMDB id"`
	Title              string                     `json:"title"`
	Year               int                        `json:"year" doc:"Release or first air year, 0 when unknown"`
	Cast               []string                   `json:"cast" doc:"Up to five top-billed names"`
	CastDetails        []domain.CastMember        `json:"castDetails"`
	Synopsis           string                     `json:"synopsis"`
	PosterURL          string                     `json:"posterUrl"`
	BackdropURL        string                     `json:"backdropUrl"`
	Rating             float64                    `json:"rating" doc:"TMDB vote average, 0-10"`
	Genres             []string                   `json:"genres"`
	StreamingPlatforms []domain.StreamingPlatform `json:"streamingPlatforms"`
	TrailerURL         string                     `json:"trailerUrl,omitempty"`
	IMDbURL            string                     `json:"imdbUrl,omitempty"`
	LetterboxdURL      string                     `json:"letterboxdUrl" doc:"Letterboxd search link for title and year"`
	MoodMatch          string                     `json:"moodMatch" doc:"Why the title fits the mood, empty for direct lookups"`

	// Movie only.
	Director *string `json:"director,omitempty"`
	Runtime  *int    `json:"runtime,omitempty" doc:"Minutes"`

	// Series only.
	Creator      *string `json:"creator,omitempty"`
	Seasons      *int    `json:"seasons,omitempty"`
	EpisodeCount *int    `json:"episodeCount,omitempty"`
}

// FromMedia converts a domain Media into its API shape.
func FromMedia(m domain.Media) MediaEntity {
	b := m.Base()
	e := MediaEntity{
		Type:               string(m.Kind()),
		ID:                 b.ID,
		Title:              b.Title,
		Year:               b.Year,
		Cast:               nonNil(b.Cast),
		CastDetails:        nonNil(b.CastDetails),
		Synopsis:           b.Synopsis,
		PosterURL:          b.PosterURL,
		BackdropURL:        b.BackdropURL,
		Rating:             b.Rating,
		Genres:             nonNil(b.Genres),
		StreamingPlatforms: nonNil(b.StreamingPlatforms),
		TrailerURL:         b.TrailerURL,
		IMDbURL:            b.IMDbURL,
		LetterboxdURL:      b.LetterboxdURL,
		MoodMatch:          b.MoodMatch,
	}

	switch v := m.(type) {
	case *domain.Movie:
		e.Director = &v.Director
		e.Runtime = &v.Runtime
	case *domain.Series:
		e.Creator = &v.Creator
		e.Seasons = &v.Seasons
		e.EpisodeCount = &v.EpisodeCount
	}

	return e
}

// FromMediaList converts a list, preserving order.
func FromMediaList(media []domain.Media) []MediaEntity {
	out := make([]MediaEntity, 0, len(media))
	for _, m := range media {
		out = append(out, FromMedia(m))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
