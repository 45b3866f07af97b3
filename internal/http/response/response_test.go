package response

import (
	"encoding/json/v2"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/moodreel/moodreel-server/internal/errors"
	"github.com/moodreel/moodreel-server/internal/logger"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1, "error body carries only the message")
	msg, ok := body["error"].(string)
	require.True(t, ok, "error field is a string")
	return msg
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger.Discard())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
	}{
		{"method not allowed", func(w http.ResponseWriter) { MethodNotAllowed(w, "nope", nil) }, http.StatusMethodNotAllowed},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "nope", nil) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "nope", decodeError(t, w))
		})
	}
}

func TestHandleError_DomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", domainerrors.Validation("Mood and at least one genre are required"), http.StatusBadRequest, "Mood and at least one genre are required"},
		{"configuration", domainerrors.Configuration("Server missing TMDB_API_KEY"), http.StatusInternalServerError, "Server missing TMDB_API_KEY"},
		{"upstream", domainerrors.Upstream(errors.New("dial tcp"), "TMDB search failed"), http.StatusBadRequest, "TMDB search failed"},
		{"not found", domainerrors.NotFound("movie 1 not found"), http.StatusNotFound, "movie 1 not found"},
		{"internal", domainerrors.Internal("internal server error"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err, logger.Discard())

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, decodeError(t, w))
		})
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.New("boom"), logger.Discard())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w))
}
