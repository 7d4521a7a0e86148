package services

import (
	"context"
)

// MediaFetcher defines the interface for fetching raw media payloads from a
// resolved tunnel/redirect URL.
type MediaFetcher interface {
	// Fetch retrieves the raw bytes behind the given media URL.
	Fetch(ctx context.Context, mediaURL string) ([]byte, error)

	// Close releases any resources held by the fetcher (e.g., cache connections).
	Close() error
}
