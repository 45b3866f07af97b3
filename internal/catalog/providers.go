package catalog

import (
	"context"
	"encoding/json/v2"
	"strconv"

	"github.com/moodreel/moodreel-server/internal/domain"
)

// GetStreamingProviders returns the providers offering id in the configured
// region: subscription first, then rental, then purchase, each name once.
// Providers are optional enrichment, so any failure yields an empty list.
func (c *Client) GetStreamingProviders(ctx context.Context, id int, mediaType MediaType) []domain.StreamingPlatform {
	if !mediaType.Valid() {
		return []domain.StreamingPlatform{}
	}

	path := "/" + string(mediaType) + "/" + strconv.Itoa(id) + "/watch/providers"
	body, status, err := c.doRequest(ctx, path, nil)
	if err != nil {
		c.logger.Debug("tmdb providers unavailable",
			"type", mediaType,
			"id", id,
			"status", status,
			"error", err,
		)
		return []domain.StreamingPlatform{}
	}

	var resp providersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Debug("tmdb providers unparsable", "type", mediaType, "id", id, "error", err)
		return []domain.StreamingPlatform{}
	}

	return c.flattenProviders(resp.Results[c.region])
}

// flattenProviders concatenates the offer lists and drops repeated names,
// keeping the first occurrence.
func (c *Client) flattenProviders(region regionProviders) []domain.StreamingPlatform {
	all := make([]rawProvider, 0, len(region.Flatrate)+len(region.Rent)+len(region.Buy))
	all = append(all, region.Flatrate...)
	all = append(all, region.Rent...)
	all = append(all, region.Buy...)

	seen := make(map[string]struct{}, len(all))
	platforms := make([]domain.StreamingPlatform, 0, len(all))
	for _, p := range all {
		if _, dup := seen[p.ProviderName]; dup {
			continue
		}
		seen[p.ProviderName] = struct{}{}
		platforms = append(platforms, domain.StreamingPlatform{
			Name:     p.ProviderName,
			LogoPath: c.ImageURL(p.LogoPath, LogoSize),
			URL:      region.Link,
		})
	}
	return platforms
}
