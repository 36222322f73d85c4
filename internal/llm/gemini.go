package llm

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/rcliao/sukoon/internal/logger"
	"github.com/rcliao/sukoon/internal/model"
)

// GeminiClient creates its SDK client lazily on first use, since
// genai.NewClient needs a context and may fail.
type GeminiClient struct {
	apiKey string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey}
}

func (c *GeminiClient) Configured() bool { return c.apiKey != "" }
func (c *GeminiClient) Provider() string { return "gemini" }

func (c *GeminiClient) initializeClientIfNeeded(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	logger.Debug("Gemini client initialized", "provider", "gemini")
	return client, nil
}

func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	client, err := c.initializeClientIfNeeded(ctx)
	if err != nil {
		return "", err
	}

	system, convo := splitSystem(req.Messages)
	temp := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	logger.Debug("Sending Gemini request", "model", req.Model, "message_count", len(convo))
	result, err := client.Models.GenerateContent(ctx, req.Model, convertMessagesToGemini(convo), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	content := result.Text()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

func convertMessagesToGemini(msgs []model.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		var role genai.Role
		switch m.Role {
		case model.RoleAssistant:
			role = genai.RoleModel
		default:
			role = genai.RoleUser
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}
