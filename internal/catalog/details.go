package catalog

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"
)

// appendToResponse embeds the related resources in a single detail call.
const appendToResponse = "credits,videos,release_dates,content_ratings,external_ids"

// GetDetails fetches the full record for id, including credits, videos and
// external ids.
func (c *Client) GetDetails(ctx context.Context, id int, mediaType MediaType) (*Details, error) {
	if !mediaType.Valid() {
		return nil, wrapError("details", mediaType, id, 0, ErrInvalidMediaType)
	}

	query := url.Values{}
	query.Set("language", c.language)
	query.Set("append_to_response", appendToResponse)

	body, status, err := c.doRequest(ctx, "/"+string(mediaType)+"/"+strconv.Itoa(id), query)
	if err != nil {
		return nil, wrapError("details", mediaType, id, status, err)
	}

	var details Details
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, wrapError("details", mediaType, id, status, fmt.Errorf("parse response: %w", err))
	}

	return &details, nil
}
