package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/codl-go/codl/internal/apperrors"
	"github.com/codl-go/codl/internal/config"
	"github.com/codl-go/codl/internal/models"
)

// Info fetches basic information about the cobalt instance
func (c *client) Info(ctx context.Context) (*models.ServerInfo, error) {
	logger := config.GetLogger()

	req, err := c.newRequest(ctx, http.MethodGet, c.instanceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instance info: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apperrors.NewUnexpectedStatusCodeError(resp.StatusCode, c.instanceURL)
	}

	var info models.ServerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode instance info: %w", err)
	}

	logger.Debug().
		Str("version", info.Cobalt.Version).
		Int("services", len(info.Cobalt.Services)).
		Msg("Fetched instance info")

	return &info, nil
}

// isSuccess reports whether code is a 2xx HTTP status.
func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
