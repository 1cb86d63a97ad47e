// Package gemini provides a generation.Completer implementation backed by
// Google's Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/generation"
	"google.golang.org/genai"
)

// Client implements the generation.Completer interface using the Gemini
// API. Like the openai client it makes exactly one attempt per call under
// the configured timeout.
type Client struct {
	// client is the Gemini API client for making requests.
	client *genai.Client

	// model is the name of the Gemini model to use.
	model string

	// temperature is the sampling temperature sent with each request.
	temperature float32

	// timeout bounds each generation call.
	timeout time.Duration

	// logger is used for structured logging.
	logger *slog.Logger
}

// Ensure Client implements the Completer interface.
var _ generation.Completer = (*Client)(nil)

// NewClient creates a new Gemini completion client from the LLM
// configuration. Returns an error if the API key or model name is missing
// or the underlying client cannot be initialized.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		client:      client,
		model:       cfg.ModelName,
		temperature: float32(cfg.Temperature),
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:      logger.With("component", "gemini_client"),
	}, nil
}

// Complete implements generation.Completer. Every failure mode (transport
// error, timeout, empty candidate set) is reported as an error wrapping
// generation.ErrServiceFailure.
func (c *Client) Complete(ctx context.Context, instruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.DebugContext(ctx, "calling Gemini API",
		"model", c.model,
		"instruction_length", len(instruction))

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(instruction),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(c.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: Gemini call failed: %v", generation.ErrServiceFailure, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no content generated", generation.ErrServiceFailure)
	}

	c.logger.DebugContext(ctx, "completion received", "response_length", len(text))

	return text, nil
}
