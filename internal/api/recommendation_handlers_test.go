package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodreel/moodreel-server/internal/domain"
	domainerrors "github.com/moodreel/moodreel-server/internal/errors"
)

func TestGenerateRecommendations_Success(t *testing.T) {
	ts := setupTestServer(t)
	ts.rec.media = []domain.Media{sampleMovie(), sampleSeries()}

	resp := ts.api.Post("/api/recommendations", map[string]any{
		"mood":          "Thoughtful",
		"genres":        []string{"Drama", "Sci-Fi"},
		"contentType":   "both",
		"timeAvailable": "long",
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, CacheNoStore, resp.Header().Get("Cache-Control"))

	assert.Equal(t, domain.RecommendationRequest{
		Mood:          "Thoughtful",
		Genres:        []string{"Drama", "Sci-Fi"},
		ContentType:   domain.ContentBoth,
		TimeAvailable: domain.TimeLong,
	}, ts.rec.gotReq)

	body := decodeBody(t, resp)
	recs, ok := body["recommendations"].([]any)
	require.True(t, ok)
	require.Len(t, recs, 2)

	movie := recs[0].(map[string]any)
	assert.Equal(t, "movie", movie["type"])
	assert.Equal(t, "Inception", movie["title"])
	assert.Equal(t, float64(2010), movie["year"])
	assert.Equal(t, "Christopher Nolan", movie["director"])
	assert.Equal(t, float64(148), movie["runtime"])
	assert.Equal(t, "mind-bending", movie["moodMatch"])
	assert.NotContains(t, movie, "creator")
	assert.NotContains(t, movie, "seasons")
	assert.NotContains(t, movie, "episodeCount")

	series := recs[1].(map[string]any)
	assert.Equal(t, "series", series["type"])
	assert.Equal(t, "Vince Gilligan", series["creator"])
	assert.Equal(t, float64(5), series["seasons"])
	assert.Equal(t, float64(62), series["episodeCount"])
	assert.NotContains(t, series, "director")
	assert.NotContains(t, series, "runtime")
	assert.Equal(t, []any{}, series["cast"])
	assert.Equal(t, []any{}, series["streamingPlatforms"])
}

func TestGenerateRecommendations_VariantZeroValuesPresent(t *testing.T) {
	ts := setupTestServer(t)
	movie := sampleMovie()
	movie.Director = ""
	movie.Runtime = 0
	ts.rec.media = []domain.Media{movie}

	resp := ts.api.Post("/api/recommendations", map[string]any{
		"mood":   "Happy",
		"genres": []string{"Comedy"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	recs := decodeBody(t, resp)["recommendations"].([]any)
	require.Len(t, recs, 1)

	m := recs[0].(map[string]any)
	assert.Equal(t, "", m["director"])
	assert.Equal(t, float64(0), m["runtime"])
}

func TestGenerateRecommendations_Empty(t *testing.T) {
	ts := setupTestServer(t)
	ts.rec.media = []domain.Media{}

	resp := ts.api.Post("/api/recommendations", map[string]any{
		"mood":   "Happy",
		"genres": []string{"Comedy"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"recommendations":[]}`, resp.Body.String())
}

func TestGenerateRecommendations_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     domainerrors.Validation("Mood and at least one genre are required"),
			status:  http.StatusBadRequest,
			message: "Mood and at least one genre are required",
		},
		{
			name:    "configuration",
			err:     domainerrors.Configuration("Server missing N8N_WEBHOOK_URL and TMDB_API_KEY"),
			status:  http.StatusInternalServerError,
			message: "Server missing N8N_WEBHOOK_URL and TMDB_API_KEY",
		},
		{
			name:    "upstream",
			err:     domainerrors.Upstream(errors.New("502"), "webhook error: 502 Bad Gateway oops"),
			status:  http.StatusBadRequest,
			message: "webhook error: 502 Bad Gateway oops",
		},
		{
			name:    "malformed",
			err:     domainerrors.MalformedResponse(errors.New("bad"), "Failed to parse recommendations from webhook"),
			status:  http.StatusBadRequest,
			message: "Failed to parse recommendations from webhook",
		},
		{
			name:    "unknown",
			err:     errors.New("disk on fire"),
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServer(t)
			ts.rec.err = tt.err

			resp := ts.api.Post("/api/recommendations", map[string]any{
				"mood":   "Happy",
				"genres": []string{"Comedy"},
			})

			assert.Equal(t, tt.status, resp.Code)
			assert.Equal(t, tt.message, errorMessage(t, resp))
		})
	}
}

func TestGenerateRecommendations_MalformedBody(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/recommendations",
		"Content-Type: application/json",
		strings.NewReader(`{"mood": "Happy", "genres": [`),
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotEmpty(t, errorMessage(t, resp))
	assert.Zero(t, ts.rec.calls)
}

func TestGenerateRecommendations_UnknownContentType(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/recommendations", map[string]any{
		"mood":        "Happy",
		"genres":      []string{"Comedy"},
		"contentType": "podcast",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotEmpty(t, errorMessage(t, resp))
	assert.Zero(t, ts.rec.calls)
}

func TestGenerateRecommendations_ExtraFieldsIgnored(t *testing.T) {
	ts := setupTestServer(t)
	ts.rec.media = []domain.Media{}

	resp := ts.api.Post("/api/recommendations", map[string]any{
		"mood":     "Happy",
		"genres":   []string{"Comedy"},
		"clientId": "web",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}
