package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/unmai/unmai/internal/model"
)

// GeminiReasoner implements Reasoner on the Google GenAI API
type GeminiReasoner struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiReasoner creates a Gemini-backed reasoner
func NewGeminiReasoner(cfg model.LLMConfig) (*GeminiReasoner, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	m := cfg.Model
	if m == "" {
		m = "gemini-2.0-flash"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &GeminiReasoner{
		client:  client,
		model:   m,
		timeout: timeout,
	}, nil
}

// Name returns the provider name
func (r *GeminiReasoner) Name() string {
	return "gemini"
}

// Send submits a prompt and returns the model's text reply
func (r *GeminiReasoner) Send(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", NewError(ClassMalformed, 0, "empty Gemini reply", nil)
	}

	return text, nil
}

func classifyGeminiError(err error) *Error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return NewError(ClassifyStatus(apiErr.Code), apiErr.Code, apiErr.Message, err)
	}
	return NewError(ClassUnavailable, 0, err.Error(), err)
}
