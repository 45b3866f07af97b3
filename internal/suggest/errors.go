package suggest

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse means the webhook answered 2xx but no recommendation
// list could be recovered from the body.
var ErrMalformedResponse = errors.New("suggest: malformed webhook response")

// maxExcerpt bounds the body excerpt carried by UpstreamError.
const maxExcerpt = 300

// UpstreamError reports a non-2xx answer from the webhook.
type UpstreamError struct {
	StatusCode int
	StatusText string
	Excerpt    string // first 300 characters of the body
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webhook error: %d %s %s", e.StatusCode, e.StatusText, e.Excerpt)
}

func malformed(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, reason)
}

// excerpt returns at most maxExcerpt characters of body.
func excerpt(body []byte) string {
	runes := []rune(string(body))
	if len(runes) > maxExcerpt {
		runes = runes[:maxExcerpt]
	}
	return string(runes)
}
