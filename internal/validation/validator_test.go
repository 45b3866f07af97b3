package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/moodreel/moodreel-server/internal/errors"
	"github.com/moodreel/moodreel-server/internal/validation"
)

type testRequest struct {
	Mood   string   `json:"mood" validate:"required"`
	Genres []string `json:"genres" validate:"required,min=1,dive,required"`
	Kind   string   `json:"kind,omitempty" validate:"omitempty,oneof=movie series both"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Mood: "Happy", Genres: []string{"Comedy"}, Kind: "movie"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing mood",
			req:       testRequest{Genres: []string{"Comedy"}},
			wantField: "mood",
			wantMsg:   "mood is required",
		},
		{
			name:      "empty genres",
			req:       testRequest{Mood: "Happy", Genres: []string{}},
			wantField: "genres",
			wantMsg:   "genres must contain at least 1 item(s)",
		},
		{
			name:      "blank genre entry",
			req:       testRequest{Mood: "Happy", Genres: []string{""}},
			wantField: "genres[0]",
			wantMsg:   "genres[0] is required",
		},
		{
			name:      "unknown kind",
			req:       testRequest{Mood: "Happy", Genres: []string{"Drama"}, Kind: "podcast"},
			wantField: "kind",
			wantMsg:   "kind must be one of: movie series both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
			assert.Equal(t, tt.wantMsg, domainErr.Message)

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tt.wantField)
		})
	}
}
