package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"

	"github.com/codl-go/codl/internal/apperrors"
	"github.com/codl-go/codl/internal/cache"
	"github.com/codl-go/codl/internal/config"
	"github.com/codl-go/codl/internal/models"
	"github.com/codl-go/codl/internal/services"
)

// Client defines the interface for talking to a cobalt instance
type Client interface {
	// Info fetches basic information about the instance.
	Info(ctx context.Context) (*models.ServerInfo, error)

	// Process asks the instance to resolve a media URL. A nil options value
	// means instance defaults.
	Process(ctx context.Context, mediaURL string, options *models.ProcessOptions) (*models.ProcessResult, error)

	// Download resolves a media URL via Process and fetches the raw payload.
	// For picker responses the first item is chosen; callers needing a
	// different selection should call Process and handle the result themselves.
	Download(ctx context.Context, mediaURL string, options *models.ProcessOptions) (*models.DownloadResult, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient   *http.Client
	instanceURL  string
	authHeader   string // rendered "Api-Key <token>" value, empty when unauthenticated
	mediaFetcher services.MediaFetcher
}

// cacheLogger adapts zerolog to the cache package's Logger interface.
type cacheLogger struct {
	logger zerolog.Logger
}

func (l cacheLogger) Error(err error, msg string) {
	l.logger.Error().Err(err).Msg(msg)
}

// NewClient creates a new cobalt client from the given configuration.
// No network call is made at construction. An error is returned only for
// configuration problems, such as an auth token that cannot be rendered
// into a valid Authorization header.
func NewClient(cfg *config.Config) (Client, error) {
	logger := config.GetLogger()

	authHeader := ""
	if cfg.AuthToken != "" {
		authHeader = "Api-Key " + cfg.AuthToken
		if !httpguts.ValidHeaderFieldValue(authHeader) {
			return nil, apperrors.NewInvalidTokenError()
		}
	}

	// Parse timeout duration
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts,
	// connection pooling, HTTP/2, etc.), then wrap it with compression support.
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}

	payloadCache, err := newPayloadCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &client{
		httpClient:   httpClient,
		instanceURL:  cfg.InstanceURL,
		authHeader:   authHeader,
		mediaFetcher: services.NewMediaFetcher(httpClient, payloadCache),
	}, nil
}

// newPayloadCache builds the media payload cache from config, defaulting to a
// small in-memory LRU when no provider is configured.
func newPayloadCache(cfg *config.Config, logger zerolog.Logger) (cache.Cache, error) {
	provider := cfg.Cache.Provider
	if provider == "" {
		provider = "memory"
	}

	size := cfg.Cache.Size
	if size <= 0 {
		size = 16
	}

	ttl := 10 * time.Minute
	if cfg.Cache.TTL != "" {
		if parsedTTL, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 10m")
		} else {
			ttl = parsedTTL
		}
	}

	return cache.New(provider, cache.ProviderConfig{
		Size:          size,
		TTL:           ttl,
		Logger:        cacheLogger{logger: logger},
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         "media",
	})
}

// newRequest builds a request against the instance with the default headers applied.
func (c *client) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.GetUserAgent())
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}
	return req, nil
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	return c.mediaFetcher.Close()
}
