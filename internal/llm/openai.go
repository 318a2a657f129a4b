package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/unmai/unmai/internal/model"
)

// OpenAIReasoner implements Reasoner on an OpenAI-compatible
// chat-completions API.
type OpenAIReasoner struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIReasoner creates an OpenAI-backed reasoner
func NewOpenAIReasoner(cfg model.LLMConfig) (*OpenAIReasoner, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = openai.GPT4oMini
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIReasoner{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   m,
		timeout: timeout,
	}, nil
}

// Name returns the provider name
func (r *OpenAIReasoner) Name() string {
	return "openai"
}

// Send submits a prompt and returns the model's text reply
func (r *OpenAIReasoner) Send(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", ClassifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", NewError(ClassMalformed, 0, "no choices in reply", nil)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", NewError(ClassMalformed, 0, "empty reply", nil)
	}

	return text, nil
}

// ClassifyOpenAIError converts a go-openai error into a classified *Error.
// Shared by every OpenAI-compatible client in the module.
func ClassifyOpenAIError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return NewError(ClassifyStatus(apiErr.HTTPStatusCode), apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return NewError(ClassifyStatus(reqErr.HTTPStatusCode), reqErr.HTTPStatusCode, reqErr.Error(), err)
	}
	return NewError(ClassUnavailable, 0, err.Error(), err)
}
