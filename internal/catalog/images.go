package catalog

// ImageURL builds a CDN URL for path at size. An empty path means "no image"
// and yields an empty string.
func (c *Client) ImageURL(path string, size ImageSize) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = PosterSize
	}
	return c.imageBaseURL + "/" + string(size) + path
}

const (
	trailerSite  = "YouTube"
	trailerType  = "Trailer"
	youtubeWatch = "https://www.youtube.com/watch?v="
)

// TrailerURLFromVideos returns a watch URL for the first YouTube trailer in
// videos, or "" when there is none. Later trailers are never considered.
func TrailerURLFromVideos(videos Videos) string {
	for _, v := range videos.Results {
		if v.Site == trailerSite && v.Type == trailerType {
			return youtubeWatch + v.Key
		}
	}
	return ""
}
