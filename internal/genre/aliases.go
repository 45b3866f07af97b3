package genre

import "strings"

// CanonicalAliases maps common spellings to the slug of a default genre.
var CanonicalAliases = map[string]string{
	"science-fiction":  "sci-fi",
	"scifi":            "sci-fi",
	"sf":               "sci-fi",
	"romcom":           "romance",
	"rom-com":          "romance",
	"romantic":         "romance",
	"animated":         "animation",
	"anime":            "animation",
	"cartoon":          "animation",
	"docs":             "documentary",
	"documentaries":    "documentary",
	"doc":              "documentary",
	"suspense":         "thriller",
	"thrillers":        "thriller",
	"scary":            "horror",
	"funny":            "comedy",
	"comedies":         "comedy",
	"dramas":           "drama",
	"whodunit":         "mystery",
	"crime-mystery":    "mystery",
	"action-adventure": "action",
}

// Canonical returns the slug used to compare s with other genres.
// Known aliases collapse onto the default genre they stand for.
func Canonical(s string) string {
	slug := Slugify(s)
	if target, ok := CanonicalAliases[slug]; ok {
		return target
	}
	return slug
}

// Normalize trims genres, drops blanks and removes entries whose canonical
// slug was already seen. The first spelling of each genre is kept in order.
func Normalize(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		key := Canonical(g)
		if key == "" {
			key = strings.ToLower(g)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}
