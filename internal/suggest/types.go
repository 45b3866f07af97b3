// Package suggest is a client for the AI recommendation webhook.
package suggest

import "github.com/moodreel/moodreel-server/internal/domain"

// Request is the body POSTed to the webhook.
type Request struct {
	Mood          string               `json:"mood"`
	Genres        []string             `json:"genres"`
	ContentType   domain.ContentType   `json:"contentType"`
	TimeAvailable domain.TimeAvailable `json:"timeAvailable,omitempty"`
}

// Suggestion is one unresolved title proposed by the webhook.
type Suggestion struct {
	Title     string
	Year      *int // nil when the webhook gave no usable year
	MoodMatch string
	Type      domain.MediaKind
}
