package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/codl-go/codl/internal/apperrors"
	"github.com/codl-go/codl/internal/config"
	"github.com/codl-go/codl/internal/metrics"
	"github.com/codl-go/codl/internal/models"
)

// processRequest is the POST body for a process call: the target URL plus the
// caller's options, flattened into one object. Unset options are omitted.
type processRequest struct {
	URL string `json:"url"`
	models.ProcessOptions
}

// responseEnvelope carries only the fields needed to classify a response
// before committing to a concrete result type.
type responseEnvelope struct {
	Status string `json:"status"`
	Error  *struct {
		Code string `json:"code"`
	} `json:"error"`
}

// instanceError extracts a machine-readable cobalt error code from a response
// body, if there is one.
func instanceError(body []byte) *apperrors.ErrInstanceError {
	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if envelope.Status == models.StatusError && envelope.Error != nil && envelope.Error.Code != "" {
		return apperrors.NewInstanceError(envelope.Error.Code)
	}
	return nil
}

// Process asks the instance to resolve mediaURL and classifies the response
// by its status discriminator. A nil options value means instance defaults.
func (c *client) Process(ctx context.Context, mediaURL string, options *models.ProcessOptions) (*models.ProcessResult, error) {
	logger := config.GetLogger()

	if options == nil {
		options = &models.ProcessOptions{}
	}

	body, err := json.Marshal(processRequest{URL: mediaURL, ProcessOptions: *options})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize process request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.instanceURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute process request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read process response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		// Error responses still carry a JSON body with a machine-readable
		// code; surface it when present so callers can branch on it.
		if instErr := instanceError(respBody); instErr != nil {
			metrics.ProcessRequestsTotal.WithLabelValues(models.StatusError).Inc()
			return nil, instErr
		}
		metrics.ProcessRequestsTotal.WithLabelValues(models.StatusError).Inc()
		return nil, apperrors.NewUnexpectedStatusCodeError(resp.StatusCode, c.instanceURL)
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode process response: %w", err)
	}

	logger.Debug().
		Str("url", mediaURL).
		Str("status", envelope.Status).
		Msg("Process request completed")

	switch envelope.Status {
	case models.StatusTunnel, models.StatusRedirect:
		var tunnel models.TunnelRedirect
		if err := json.Unmarshal(respBody, &tunnel); err != nil {
			return nil, fmt.Errorf("failed to decode tunnel/redirect response: %w", err)
		}
		metrics.ProcessRequestsTotal.WithLabelValues(envelope.Status).Inc()
		return &models.ProcessResult{Status: envelope.Status, TunnelRedirect: &tunnel}, nil

	case models.StatusPicker:
		var picker models.Picker
		if err := json.Unmarshal(respBody, &picker); err != nil {
			return nil, fmt.Errorf("failed to decode picker response: %w", err)
		}
		metrics.ProcessRequestsTotal.WithLabelValues(envelope.Status).Inc()
		return &models.ProcessResult{Status: envelope.Status, Picker: &picker}, nil

	case models.StatusError:
		metrics.ProcessRequestsTotal.WithLabelValues(models.StatusError).Inc()
		if instErr := instanceError(respBody); instErr != nil {
			return nil, instErr
		}
		return nil, apperrors.NewBadResponseError("error status without error code")

	default:
		metrics.ProcessRequestsTotal.WithLabelValues(models.StatusError).Inc()
		return nil, apperrors.NewBadResponseError(fmt.Sprintf("unrecognized status %q", envelope.Status))
	}
}
