package dto

// RecommendationRequest is the request body for generating recommendations.
// Required fields are checked by the service so every failure reads the same.
type RecommendationRequest struct {
	_             struct{} `json:"-" additionalProperties:"true"`
	Mood          string   `json:"mood,omitempty" doc:"How the viewer feels" example:"Happy"`
	Genres        []string `json:"genres,omitempty" doc:"At least one genre"`
	ContentType   string   `json:"contentType,omitempty" enum:"movie,series,both" default:"both" doc:"Which kinds of media to suggest"`
	TimeAvailable string   `json:"timeAvailable,omitempty" enum:"short,standard,long,series" doc:"Viewing time budget"`
}

// RecommendationInput wraps the recommendation request for huma.
type RecommendationInput struct {
	Body RecommendationRequest
}

// RecommendationResponse contains the enriched recommendations in suggestion order.
type RecommendationResponse struct {
	Recommendations []MediaEntity `json:"recommendations"`
}

// RecommendationOutput wraps the recommendation response for huma.
type RecommendationOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         RecommendationResponse
}

// MediaLookupInput identifies a title by TMDB id.
type MediaLookupInput struct {
	ID string `path:"id" doc:"TMDB id" example:"27205"`
}

// MovieResponse wraps a single movie.
type MovieResponse struct {
	Movie MediaEntity `json:"movie"`
}

// MovieOutput wraps the movie response for huma.
type MovieOutput struct {
	Body MovieResponse
}

// SeriesResponse wraps a single series.
type SeriesResponse struct {
	Series MediaEntity `json:"series"`
}

// SeriesOutput wraps the series response for huma.
type SeriesOutput struct {
	Body SeriesResponse
}

// GenreEntry is a genre offered in pickers.
type GenreEntry struct {
	Name string `json:"name" example:"Sci-Fi"`
	Slug string `json:"slug" example:"sci-fi"`
}

// CatalogOptionsResponse lists the genres and moods clients can offer.
type CatalogOptionsResponse struct {
	Genres []GenreEntry `json:"genres"`
	Moods  []string     `json:"moods"`
}

// CatalogOptionsOutput wraps the options response for huma.
type CatalogOptionsOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         CatalogOptionsResponse
}
