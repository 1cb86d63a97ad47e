package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns an LLMConfig pointed at the given test server.
func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Provider:       "openai",
		APIKey:         "test-key",
		ModelName:      "gpt-4.1-mini",
		Temperature:    0.7,
		TimeoutSeconds: 5,
		Endpoint:       endpoint,
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.LLMConfig)
	}{
		{"missing_api_key", func(c *config.LLMConfig) { c.APIKey = "" }},
		{"missing_model", func(c *config.LLMConfig) { c.ModelName = "" }},
		{"zero_timeout", func(c *config.LLMConfig) { c.TimeoutSeconds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("http://localhost:1")
			tt.mutate(&cfg)

			_, err := NewClient(cfg, nil)
			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		})
	}
}

func TestCompleteChatEnvelope(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotPayload completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"generated text"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "write a deck about Go")
	require.NoError(t, err)

	assert.Equal(t, "generated text", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4.1-mini", gotPayload.Model)
	assert.Equal(t, "write a deck about Go", gotPayload.Input)
	assert.InDelta(t, 0.7, gotPayload.Temperature, 1e-9)
}

func TestCompleteResponsesEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":[{"content":[{"text":"alternate envelope text"}]}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "instruction")
	require.NoError(t, err)
	assert.Equal(t, "alternate envelope text", text)
}

func TestCompleteServiceFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http_500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "internal error", http.StatusInternalServerError)
			},
		},
		{
			name: "http_429",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed_json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices": [`))
			},
		},
		{
			name: "unexpected_envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": "text"}`))
			},
		},
		{
			name: "empty_output_content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"output":[{"content":[]}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client, err := NewClient(testConfig(server.URL), nil)
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), "instruction")
			assert.ErrorIs(t, err, generation.ErrServiceFailure)
		})
	}
}

func TestCompleteTransportError(t *testing.T) {
	t.Parallel()

	// Server is closed before the call, so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "instruction")
	assert.ErrorIs(t, err, generation.ErrServiceFailure)
}

func TestCompleteContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Complete(ctx, "instruction")
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrServiceFailure))
}
