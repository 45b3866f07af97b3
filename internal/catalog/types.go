// Package catalog provides a client for the TMDB v3 metadata API.
package catalog

// MediaType is the TMDB collection a title belongs to.
type MediaType string

// TMDB media types.
const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Valid returns true if this is a recognized media type.
func (m MediaType) Valid() bool {
	return m == MediaMovie || m == MediaTV
}

// ImageSize is a TMDB image size token.
type ImageSize string

// Supported image sizes.
const (
	SizeW185     ImageSize = "w185"
	SizeW342     ImageSize = "w342"
	SizeW500     ImageSize = "w500"
	SizeW780     ImageSize = "w780"
	SizeOriginal ImageSize = "original"
)

// Sizes used for each kind of image.
const (
	PosterSize   = SizeW500
	BackdropSize = SizeW780
	ProfileSize  = SizeW185
	LogoSize     = SizeW185
)

// SearchResult is one hit from /search/movie or /search/tv.
type SearchResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`          // movies
	Name         string  `json:"name"`           // tv
	ReleaseDate  string  `json:"release_date"`   // movies
	FirstAirDate string  `json:"first_air_date"` // tv
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	Popularity   float64 `json:"popularity"`
}

// Details is the combined detail record for one title, including the
// appended credits, videos and external ids.
type Details struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []Genre `json:"genres"`

	// Movie only.
	Runtime *int `json:"runtime"`

	// TV only.
	CreatedBy        []Creator `json:"created_by"`
	NumberOfSeasons  *int      `json:"number_of_seasons"`
	NumberOfEpisodes *int      `json:"number_of_episodes"`

	Credits     Credits     `json:"credits"`
	Videos      Videos      `json:"videos"`
	ExternalIDs ExternalIDs `json:"external_ids"`
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Creator is an entry of a series' created_by list.
type Creator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits holds billed cast and crew.
type Credits struct {
	Cast []CastCredit `json:"cast"`
	Crew []CrewCredit `json:"crew"`
}

// CastCredit is a cast member in billing order.
type CastCredit struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewCredit is a crew member.
type CrewCredit struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Videos is the appended videos block.
type Videos struct {
	Results []Video `json:"results"`
}

// Video is a hosted video attached to a title.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// ExternalIDs holds identifiers on other services.
type ExternalIDs struct {
	IMDbID string `json:"imdb_id"`
}

// Raw API response types (internal)

type searchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

type providersResponse struct {
	ID      int                       `json:"id"`
	Results map[string]regionProviders `json:"results"`
}

type regionProviders struct {
	Link     string        `json:"link"`
	Flatrate []rawProvider `json:"flatrate"`
	Rent     []rawProvider `json:"rent"`
	Buy      []rawProvider `json:"buy"`
}

type rawProvider struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}
