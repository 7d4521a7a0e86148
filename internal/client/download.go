package client

import (
	"context"

	"github.com/codl-go/codl/internal/apperrors"
	"github.com/codl-go/codl/internal/config"
	"github.com/codl-go/codl/internal/models"
)

// Download resolves mediaURL via Process and fetches the raw media payload.
// Picker responses deterministically select the first item, paired with the
// shared audio filename; an empty picker is an error.
func (c *client) Download(ctx context.Context, mediaURL string, options *models.ProcessOptions) (*models.DownloadResult, error) {
	logger := config.GetLogger()

	result, err := c.Process(ctx, mediaURL, options)
	if err != nil {
		return nil, err
	}

	targetURL, filename, err := resolveTarget(result)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("url", targetURL).
		Str("filename", filename).
		Str("status", result.Status).
		Msg("Resolved media target")

	data, err := c.mediaFetcher.Fetch(ctx, targetURL)
	if err != nil {
		return nil, err
	}

	return &models.DownloadResult{
		Filename: filename,
		Data:     data,
	}, nil
}

// resolveTarget reduces a process result to a single URL and filename.
func resolveTarget(result *models.ProcessResult) (string, string, error) {
	switch {
	case result.TunnelRedirect != nil:
		return result.TunnelRedirect.URL, result.TunnelRedirect.Filename, nil

	case result.Picker != nil:
		if len(result.Picker.Items) == 0 {
			return "", "", apperrors.NewEmptyPickerError()
		}
		return result.Picker.Items[0].URL, result.Picker.AudioFilename, nil

	default:
		return "", "", apperrors.NewBadResponseError("process result carries no target")
	}
}
