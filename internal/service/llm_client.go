package service

import (
	"context"
	"fmt"

	"cityviewer/internal/config"
)

// LLMClient is the interface for generative model providers. The engine only
// requires that a rendered prompt comes back as some text; which model
// produced it is irrelevant to the pipeline.
type LLMClient interface {
	// Generate sends a prompt to the model and returns the raw response text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider and model for logging.
	Name() string

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// NewLLMClient selects a provider implementation from configuration.
func NewLLMClient(ctx context.Context, cfg *config.LLMConfig) (LLMClient, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	case "openai":
		return NewOpenAIClient(cfg), nil
	case "rest":
		return NewRESTClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
