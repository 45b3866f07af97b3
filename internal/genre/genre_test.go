package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Science Fiction", "science-fiction"},
		{"Sci-Fi", "sci-fi"},
		{"  Rom-Com ", "rom-com"},
		{"Film Noir / Crime", "film-noir-crime"},
		{"Telenovela Clásica", "telenovela-clasica"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestCanonical_ResolvesAliases(t *testing.T) {
	assert.Equal(t, "sci-fi", Canonical("Science Fiction"))
	assert.Equal(t, "sci-fi", Canonical("SciFi"))
	assert.Equal(t, "romance", Canonical("rom-com"))
	assert.Equal(t, "western", Canonical("Western"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "keeps order and spelling",
			in:   []string{"Drama", "Comedy"},
			want: []string{"Drama", "Comedy"},
		},
		{
			name: "drops blanks and trims",
			in:   []string{"  ", "Horror ", ""},
			want: []string{"Horror"},
		},
		{
			name: "dedupes case and aliases",
			in:   []string{"Sci-Fi", "sci fi", "Science Fiction", "comedy", "Comedy"},
			want: []string{"Sci-Fi", "comedy"},
		},
		{
			name: "punctuation only entries compare verbatim",
			in:   []string{"???", "???", "!!"},
			want: []string{"???", "!!"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
