package suggest

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"math"
	"strconv"
	"strings"

	"github.com/moodreel/moodreel-server/internal/domain"
)

// decodeOptions accept duplicate names (the last one wins) and invalid UTF-8,
// which is replaced with U+FFFD. Model output is not always strict JSON.
var decodeOptions = json.JoinOptions(
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
)

// ParseResponse recovers the suggestion list from a webhook body.
//
// The body may be the recommendation object itself, or an array of wrapper
// items whose first object carries the payload either as a nested "json"
// object or as an "output" string holding (possibly fenced) JSON text.
func ParseResponse(body []byte) ([]Suggestion, error) {
	doc, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}

	payload, err := unwrapEnvelope(doc)
	if err != nil {
		return nil, err
	}

	items, ok := payload["recommendations"].([]any)
	if !ok {
		return nil, malformed("no recommendations array")
	}

	suggestions := make([]Suggestion, 0, len(items))
	for i, item := range items {
		s, ok := decodeItem(item)
		if !ok {
			return nil, malformed("recommendation " + strconv.Itoa(i) + " matches no known shape")
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}

// decodeDocument parses body as JSON, falling back to the outermost {...}
// block when the body has text around the object.
func decodeDocument(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc, decodeOptions); err == nil {
		return doc, nil
	}

	block, ok := extractObject(string(body))
	if !ok {
		return nil, malformed("body is not JSON")
	}
	if err := json.Unmarshal([]byte(block), &doc, decodeOptions); err != nil {
		return nil, malformed("body is not JSON")
	}
	return doc, nil
}

func unwrapEnvelope(doc any) (map[string]any, error) {
	switch v := doc.(type) {
	case map[string]any:
		return v, nil
	case []any:
		return unwrapArray(v)
	default:
		return nil, malformed("body is neither an object nor an array")
	}
}

func unwrapArray(items []any) (map[string]any, error) {
	var first map[string]any
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			first = obj
			break
		}
	}
	if first == nil {
		return nil, malformed("array has no object item")
	}

	if nested, ok := first["json"].(map[string]any); ok {
		return nested, nil
	}

	output, ok := first["output"].(string)
	if !ok {
		return nil, malformed("array item has neither json nor output")
	}

	block, ok := extractObject(stripFences(output))
	if !ok {
		return nil, malformed("array item output has no JSON object")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(block), &payload, decodeOptions); err != nil {
		return nil, malformed("array item output is not valid JSON")
	}
	return payload, nil
}

// stripFences removes markdown code fence markers (```json and ```).
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractObject returns the text from the first '{' to the last '}'.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// itemShape names the keys one accepted item layout uses.
type itemShape struct {
	title     string
	year      string
	moodMatch string
	kind      string
	// reject lists keys whose presence means the item belongs to a later shape.
	reject []string
}

// itemShapes are tried in order; the first that accepts an item wins.
var itemShapes = []itemShape{
	{title: "title", year: "year", moodMatch: "moodMatch", kind: "type", reject: []string{"moodmatch"}},
	{title: "Movie title", year: "Year", moodMatch: "MoodMatch", kind: "Type"},
	{title: "title", year: "year", moodMatch: "moodmatch", kind: "type"},
}

func decodeItem(item any) (Suggestion, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Suggestion{}, false
	}
	for _, shape := range itemShapes {
		if s, ok := shape.decode(obj); ok {
			return s, true
		}
	}
	return Suggestion{}, false
}

// decode builds a Suggestion from obj, or reports false without side effects.
func (sh itemShape) decode(obj map[string]any) (Suggestion, bool) {
	if _, has := obj[sh.moodMatch]; !has {
		for _, key := range sh.reject {
			if _, found := obj[key]; found {
				return Suggestion{}, false
			}
		}
	}

	title, ok := obj[sh.title].(string)
	if !ok {
		return Suggestion{}, false
	}

	year, ok := parseYear(obj[sh.year])
	if !ok {
		return Suggestion{}, false
	}

	moodMatch, ok := optionalString(obj[sh.moodMatch])
	if !ok {
		return Suggestion{}, false
	}

	kind, ok := optionalString(obj[sh.kind])
	if !ok {
		return Suggestion{}, false
	}

	return Suggestion{
		Title:     title,
		Year:      year,
		MoodMatch: moodMatch,
		Type:      parseKind(kind),
	}, true
}

// parseYear accepts an integral number or a numeric string. Absent, null,
// blank and non-numeric strings yield no year. Other types are rejected.
func parseYear(v any) (*int, bool) {
	switch y := v.(type) {
	case nil:
		return nil, true
	case float64:
		if y != math.Trunc(y) || math.IsInf(y, 0) {
			return nil, false
		}
		n := int(y)
		return &n, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return nil, true
		}
		return &n, true
	default:
		return nil, false
	}
}

func optionalString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	default:
		return "", false
	}
}

func parseKind(s string) domain.MediaKind {
	if strings.EqualFold(s, string(domain.KindSeries)) {
		return domain.KindSeries
	}
	return domain.KindMovie
}
