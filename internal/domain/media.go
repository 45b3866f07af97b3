// Package domain contains the core entities produced by the recommendation pipeline.
package domain

// MediaKind discriminates the two Media variants.
type MediaKind string

// Media kinds.
const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
)

// Media is a resolved, enriched recommendation. It is implemented only by
// *Movie and *Series; consumers branch on the concrete type or on Kind.
type Media interface {
	Kind() MediaKind
	Base() *MediaBase
	media()
}

// MediaBase holds the fields shared by movies and series.
type MediaBase struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Year               int                 `json:"year"`
	Cast               []string            `json:"cast"`
	CastDetails        []CastMember        `json:"castDetails"`
	Synopsis           string              `json:"synopsis"`
	PosterURL          string              `json:"posterUrl"`
	BackdropURL        string              `json:"backdropUrl"`
	Rating             float64             `json:"rating"`
	Genres             []string            `json:"genres"`
	StreamingPlatforms []StreamingPlatform `json:"streamingPlatforms"`
	TrailerURL         string              `json:"trailerUrl,omitempty"`
	IMDbURL            string              `json:"imdbUrl,omitempty"`
	// LetterboxdURL points at a Letterboxd search page, not a verified film page.
	LetterboxdURL string `json:"letterboxdUrl"`
	MoodMatch     string `json:"moodMatch"`
}

// Base returns the shared fields.
func (b *MediaBase) Base() *MediaBase { return b }

// CastMember is a billed cast entry with an optional headshot.
type CastMember struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// StreamingPlatform is a provider offering the title in the configured region.
type StreamingPlatform struct {
	Name     string `json:"name"`
	LogoPath string `json:"logoPath,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Movie is a feature film.
type Movie struct {
	MediaBase
	Director string `json:"director"`
	Runtime  int    `json:"runtime"` // minutes
}

// Kind implements Media.
func (*Movie) Kind() MediaKind { return KindMovie }

func (*Movie) media() {}

// Series is a television series.
type Series struct {
	MediaBase
	Creator      string `json:"creator"`
	Seasons      int    `json:"seasons"`
	EpisodeCount int    `json:"episodeCount"`
}

// Kind implements Media.
func (*Series) Kind() MediaKind { return KindSeries }

func (*Series) media() {}
