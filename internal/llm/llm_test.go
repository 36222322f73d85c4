package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/sukoon/internal/config"
	"github.com/rcliao/sukoon/internal/model"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not configured", ErrNotConfigured, true},
		{"wrapped not configured", fmt.Errorf("call: %w", ErrNotConfigured), true},
		{"api key marker", errors.New("Invalid API_KEY provided"), true},
		{"authentication marker", errors.New("Authentication failed"), true},
		{"unauthorized", errors.New("401 Unauthorized"), true},
		{"timeout", context.DeadlineExceeded, false},
		{"server error", errors.New("500 internal server error"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthError(tt.err))
		})
	}
}

type chatRequest struct {
	Model       string          `json:"model"`
	Messages    []model.Message `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

func chatServer(t *testing.T, status int, reply string, got *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
}

func TestOpenAIClient_Complete(t *testing.T) {
	var got chatRequest
	srv := chatServer(t, http.StatusOK, "I'm here with you.", &got)
	defer srv.Close()

	c := NewOpenAIClient(srv.URL, "test-key", option.WithMaxRetries(0))
	out, err := c.Complete(context.Background(), Request{
		Model: "llama-test",
		Messages: []model.Message{
			{Role: model.RoleSystem, Content: "persona"},
			{Role: model.RoleUser, Content: "earlier"},
			{Role: model.RoleAssistant, Content: "reply"},
			{Role: model.RoleUser, Content: "now"},
		},
		MaxTokens:   600,
		Temperature: 0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, "I'm here with you.", out)

	assert.Equal(t, "llama-test", got.Model)
	assert.Equal(t, 600, got.MaxTokens)
	assert.InDelta(t, 0.8, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, model.RoleSystem, got.Messages[0].Role)
	assert.Equal(t, model.RoleAssistant, got.Messages[2].Role)
	assert.Equal(t, "now", got.Messages[3].Content)
}

func TestOpenAIClient_AuthFailure(t *testing.T) {
	srv := chatServer(t, http.StatusUnauthorized, "", nil)
	defer srv.Close()

	c := NewOpenAIClient(srv.URL, "bad-key", option.WithMaxRetries(0))
	_, err := c.Complete(context.Background(), Request{Model: "m", Messages: []model.Message{{Role: model.RoleUser, Content: "hi"}}})
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}

func TestNotConfigured(t *testing.T) {
	for _, c := range []Completer{
		NewOpenAIClient("", ""),
		NewAnthropicClient(""),
		NewGeminiClient(""),
	} {
		assert.False(t, c.Configured(), c.Provider())
		_, err := c.Complete(context.Background(), Request{Model: "m"})
		assert.ErrorIs(t, err, ErrNotConfigured, c.Provider())
	}
}

func TestNew(t *testing.T) {
	for _, p := range []string{"openai", "anthropic", "gemini"} {
		c, err := New(config.LLMConfig{Provider: p, APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, p, c.Provider())
		assert.True(t, c.Configured())
	}
	_, err := New(config.LLMConfig{Provider: "nope"})
	assert.Error(t, err)
}

func TestSplitSystem(t *testing.T) {
	system, rest := splitSystem([]model.Message{
		{Role: model.RoleSystem, Content: "a"},
		{Role: model.RoleUser, Content: "u"},
		{Role: model.RoleSystem, Content: "b"},
	})
	assert.Equal(t, "a\n\nb", system)
	assert.Equal(t, []model.Message{{Role: model.RoleUser, Content: "u"}}, rest)
}

func TestConvertMessagesToGemini(t *testing.T) {
	out := convertMessagesToGemini([]model.Message{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "user", out[0].Role)
	assert.Equal(t, "model", out[1].Role)
	assert.Equal(t, "hello", out[1].Parts[0].Text)
}
