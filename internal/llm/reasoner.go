package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/unmai/unmai/internal/model"
)

// Reasoner is the LLM-reasoning capability used for claim structuring,
// translation, and verdict generation. Replies are free text to be parsed
// and policed by the caller, never trusted.
type Reasoner interface {
	// Name returns the provider name
	Name() string

	// Send submits a prompt and returns the model's text reply. Failures
	// are returned as a classified *Error.
	Send(ctx context.Context, prompt string) (string, error)
}

// NewReasoner creates a reasoner for the configured provider
func NewReasoner(cfg model.LLMConfig) (Reasoner, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return NewGeminiReasoner(cfg)

	case "openai":
		return NewOpenAIReasoner(cfg)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: gemini, openai)", cfg.Provider)
	}
}
