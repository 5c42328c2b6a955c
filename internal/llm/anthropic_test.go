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

func TestAnthropicChat(t *testing.T) {
	var gotReq anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, anthropicAPIVersion, r.Header.Get("anthropic-version"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "hello there"}], "stop_reason": "end_turn"}`))
	}))
	defer server.Close()

	c := NewAnthropic(AnthropicConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	out, err := c.Chat(context.Background(), "be brief", []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hey"},
		{Role: "user", Content: "how are you"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)
	assert.Equal(t, "be brief", gotReq.System)
	assert.Len(t, gotReq.Messages, 3)
	assert.Equal(t, defaultAnthropicModel, gotReq.Model)
}

func TestAnthropicComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
	}))
	defer server.Close()

	c := NewAnthropic(AnthropicConfig{APIKey: "k", BaseURL: server.URL})

	_, err := c.Complete(context.Background(), "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestAnthropicComplete_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": []}`))
	}))
	defer server.Close()

	c := NewAnthropic(AnthropicConfig{APIKey: "k", BaseURL: server.URL})

	_, err := c.Complete(context.Background(), "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
