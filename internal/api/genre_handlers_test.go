package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodreel/moodreel-server/internal/api/dto"
	"github.com/moodreel/moodreel-server/internal/domain"
	"github.com/moodreel/moodreel-server/internal/genre"
)

func TestListGenres(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/genres")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, CacheOneDay, resp.Header().Get("Cache-Control"))

	var body dto.CatalogOptionsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	require.Len(t, body.Genres, len(genre.DefaultGenres))
	assert.Equal(t, dto.GenreEntry{Name: "Action", Slug: "action"}, body.Genres[0])
	assert.Contains(t, body.Genres, dto.GenreEntry{Name: "Sci-Fi", Slug: "sci-fi"})
	assert.Equal(t, domain.Moods, body.Moods)

	assert.Zero(t, ts.rec.calls)
}
