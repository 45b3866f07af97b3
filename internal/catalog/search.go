package catalog

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"
)

// Search queries /search/{movie|tv} for title. When year is set it is sent
// as the release year for movies and the first-air year for series.
// Results come back in TMDB's relevance order.
func (c *Client) Search(ctx context.Context, title string, year *int, mediaType MediaType) ([]SearchResult, error) {
	if !mediaType.Valid() {
		return nil, wrapError("search", mediaType, 0, 0, ErrInvalidMediaType)
	}

	query := url.Values{}
	query.Set("query", title)
	query.Set("include_adult", "false")
	query.Set("language", c.language)
	if year != nil && *year > 0 {
		switch mediaType {
		case MediaMovie:
			query.Set("year", strconv.Itoa(*year))
		case MediaTV:
			query.Set("first_air_date_year", strconv.Itoa(*year))
		}
	}

	body, status, err := c.doRequest(ctx, "/search/"+string(mediaType), query)
	if err != nil {
		return nil, wrapError("search", mediaType, 0, status, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("search", mediaType, 0, status, fmt.Errorf("parse response: %w", err))
	}

	c.logger.Debug("tmdb search",
		"type", mediaType,
		"title", title,
		"results", len(resp.Results),
	)

	return resp.Results, nil
}
