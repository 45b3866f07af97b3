package genre

// Seed is a genre offered to clients.
type Seed struct {
	Name string
	Slug string
}

// DefaultGenres is the built-in genre list, in display order.
var DefaultGenres = []Seed{
	{Name: "Action", Slug: "action"},
	{Name: "Comedy", Slug: "comedy"},
	{Name: "Drama", Slug: "drama"},
	{Name: "Horror", Slug: "horror"},
	{Name: "Sci-Fi", Slug: "sci-fi"},
	{Name: "Romance", Slug: "romance"},
	{Name: "Thriller", Slug: "thriller"},
	{Name: "Documentary", Slug: "documentary"},
	{Name: "Fantasy", Slug: "fantasy"},
	{Name: "Mystery", Slug: "mystery"},
	{Name: "Animation", Slug: "animation"},
}
