package research

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/unmai/unmai/internal/llm"
	"github.com/unmai/unmai/internal/model"
)

// Completer is the hosted web-research capability: a system prompt plus a
// user prompt in, free text out.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client talks to the Perplexity chat-completions API, which is
// OpenAI-compatible; the sonar models perform live web research.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a research client. Returns nil (not an error) when no
// API key is configured: research then degrades to a fallback shape
// instead of failing the pipeline.
func NewClient(cfg model.ResearchConfig) *Client {
	if cfg.APIKey == "" {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = "sonar-pro"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   m,
		timeout: timeout,
	}
}

// Complete submits the research prompt and returns the raw text reply
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", llm.ClassifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.NewError(llm.ClassMalformed, 0, "no choices in research reply", nil)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", llm.NewError(llm.ClassMalformed, 0, "empty research reply", nil)
	}

	return text, nil
}
