// Package llm adapts hosted chat-completion APIs to a single request shape.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rcliao/sukoon/internal/config"
	"github.com/rcliao/sukoon/internal/model"
)

// ErrNotConfigured is returned by Complete when the client has no credentials.
var ErrNotConfigured = errors.New("completion backend not configured")

// Request is a single completion call.
type Request struct {
	Model       string
	Messages    []model.Message
	MaxTokens   int
	Temperature float64
}

// Completer generates a reply for a role-tagged message sequence.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Configured reports whether credentials are present. Callers use it to
	// surface a setup message instead of attempting a call.
	Configured() bool
	Provider() string
}

// New builds the completer named by cfg.Provider.
func New(cfg config.LLMConfig) (Completer, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey), nil
	case "anthropic":
		return NewAnthropicClient(cfg.APIKey), nil
	case "gemini":
		return NewGeminiClient(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// splitSystem separates leading system messages from the conversation, for
// APIs that take the system prompt out of band.
func splitSystem(msgs []model.Message) (string, []model.Message) {
	var system string
	rest := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == model.RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
