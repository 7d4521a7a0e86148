package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/codl-go/codl/internal/apperrors"
	"github.com/codl-go/codl/internal/cache"
	"github.com/codl-go/codl/internal/config"
	"github.com/codl-go/codl/internal/metrics"
)

// DefaultMediaFetcher implements MediaFetcher with payload caching.
// Tunnel URLs stay valid for a while on the instance side, so repeated
// downloads of the same resolution are served from cache.
type DefaultMediaFetcher struct {
	httpClient   *http.Client
	payloadCache cache.Cache
}

// NewMediaFetcher creates a media fetcher that shares the given HTTP client
// and caches fetched payloads in payloadCache. The fetcher takes ownership of
// the cache and closes it on Close.
func NewMediaFetcher(httpClient *http.Client, payloadCache cache.Cache) MediaFetcher {
	return &DefaultMediaFetcher{
		httpClient:   httpClient,
		payloadCache: payloadCache,
	}
}

// Fetch retrieves the raw media bytes behind mediaURL, serving repeated
// fetches of the same URL from cache.
func (f *DefaultMediaFetcher) Fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	logger := config.GetLogger()

	if cached, found := f.payloadCache.Get(mediaURL); found {
		logger.Debug().
			Str("url", mediaURL).
			Int("size", len(cached)).
			Msg("Serving media payload from cache")
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		metrics.MediaDownloadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create media request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())

	resp, err := f.httpClient.Do(req)
	if err != nil {
		metrics.MediaDownloadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.MediaDownloadsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.NewUnexpectedStatusCodeError(resp.StatusCode, mediaURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.MediaDownloadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read media payload: %w", err)
	}

	f.payloadCache.Set(mediaURL, data)

	metrics.MediaDownloadsTotal.WithLabelValues("success").Inc()
	metrics.MediaDownloadBytesTotal.Add(float64(len(data)))

	logger.Debug().
		Str("url", mediaURL).
		Int("size", len(data)).
		Msg("Fetched media payload")

	return data, nil
}

// Close releases the payload cache.
func (f *DefaultMediaFetcher) Close() error {
	return f.payloadCache.Close()
}
