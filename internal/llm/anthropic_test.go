package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicClientComplete(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "msg-1",
			"model": "claude-3-5-haiku-latest",
			"content": []map[string]string{
				{"type": "text", "text": `{"category":"whyInterested"}`},
			},
		})
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "sk-ant", Endpoint: server.URL})
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), CompletionRequest{
		System:    "system prompt",
		Prompt:    "user prompt",
		MaxTokens: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"category":"whyInterested"}`, content)

	assert.Equal(t, "sk-ant", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "claude-3-5-haiku-latest", gotBody["model"])
	assert.Equal(t, "system prompt", gotBody["system"], "system prompt rides the top-level field, not a message")
}

func TestAnthropicClientProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"max_tokens required"}}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "sk-ant", Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
	assert.Equal(t, "max_tokens required", providerErr.Message)
}

func TestAnthropicClientEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"msg-1","content":[]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "sk-ant", Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNewAnthropicClientRequiresKey(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	assert.Error(t, err)
}
