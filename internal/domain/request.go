package domain

// ContentType restricts which kinds of media a request asks for.
type ContentType string

// Content types.
const (
	ContentMovie  ContentType = "movie"
	ContentSeries ContentType = "series"
	ContentBoth   ContentType = "both"
)

// Valid reports whether c is a known content type.
func (c ContentType) Valid() bool {
	switch c {
	case ContentMovie, ContentSeries, ContentBoth:
		return true
	}
	return false
}

// TimeAvailable is the viewer's time budget.
type TimeAvailable string

// Time budgets.
const (
	TimeShort    TimeAvailable = "short"
	TimeStandard TimeAvailable = "standard"
	TimeLong     TimeAvailable = "long"
	TimeSeries   TimeAvailable = "series"
)

// RecommendationRequest is the input to a recommendation run.
type RecommendationRequest struct {
	Mood          string        `json:"mood" validate:"required"`
	Genres        []string      `json:"genres" validate:"required,min=1,dive,required"`
	ContentType   ContentType   `json:"contentType" validate:"required,oneof=movie series both"`
	TimeAvailable TimeAvailable `json:"timeAvailable,omitempty" validate:"omitempty,oneof=short standard long series"`
}

// Moods lists the moods offered to clients.
var Moods = []string{
	"Happy",
	"Sad",
	"Excited",
	"Relaxed",
	"Romantic",
	"Adventurous",
	"Thoughtful",
	"Scared",
	"Energetic",
}
