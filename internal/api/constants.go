package api

// Version is reported in the OpenAPI document.
const Version = "1.0.0"

// Cache-Control header values.
const (
	CacheOneDay  = "public, max-age=86400"
	CacheNoStore = "no-store"
)
