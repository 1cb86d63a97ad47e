package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/generation"
)

// defaultEndpoint is the completion URL used when the configuration does
// not override it.
const defaultEndpoint = "https://api.openai.com/v1/responses"

// Client implements the generation.Completer interface against an
// OpenAI-compatible endpoint. Each Complete call makes exactly one HTTP
// request under the configured timeout; there are no retries.
type Client struct {
	// httpClient carries the fixed request timeout.
	httpClient *http.Client

	// endpoint is the completion URL.
	endpoint string

	// apiKey is sent as a bearer token.
	apiKey string

	// model is the model identifier sent with each request.
	model string

	// temperature is the sampling temperature sent with each request.
	temperature float64

	// logger is used for structured logging.
	logger *slog.Logger
}

// Ensure Client implements the Completer interface.
var _ generation.Completer = (*Client)(nil)

// NewClient creates a new completion client from the LLM configuration.
// Returns an error if the API key, model name, or timeout is missing.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		endpoint:    endpoint,
		apiKey:      cfg.APIKey,
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		logger:      logger.With("component", "openai_client"),
	}, nil
}

// Complete implements generation.Completer. Every failure mode (transport
// error, timeout, non-success status, undecodable body, unexpected
// envelope) is reported as an error wrapping generation.ErrServiceFailure
// so the caller can treat them uniformly.
func (c *Client) Complete(ctx context.Context, instruction string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       c.model,
		Input:       instruction,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", generation.ErrServiceFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", generation.ErrServiceFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.DebugContext(ctx, "calling completion endpoint",
		"model", c.model,
		"temperature", c.temperature,
		"instruction_length", len(instruction))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", generation.ErrServiceFailure, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.ErrorContext(ctx, "completion endpoint returned non-success status",
			"status_code", resp.StatusCode,
			"body", string(body))
		return "", fmt.Errorf("%w: unexpected status %d", generation.ErrServiceFailure, resp.StatusCode)
	}

	var envelope completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", generation.ErrServiceFailure, err)
	}

	text, ok := envelope.text()
	if !ok {
		return "", fmt.Errorf("%w: unexpected response structure", generation.ErrServiceFailure)
	}

	c.logger.DebugContext(ctx, "completion received", "response_length", len(text))

	return text, nil
}
