package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"cityviewer/internal/config"

	genai "google.golang.org/genai"
)

// GeminiClient talks to the Gemini API through the official genai client.
// The preferred model is tried first; older models are fallbacks for keys
// that do not have access to it yet.
type GeminiClient struct {
	cli    *genai.Client
	models []string
	cfg    *config.LLMConfig

	mu       sync.Mutex
	resolved string // first model that answered successfully
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, cfg *config.LLMConfig) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	models := append([]string{cfg.GeminiModel}, cfg.GeminiFallbackModels...)
	return &GeminiClient{cli: cli, models: models, cfg: cfg}, nil
}

// Name identifies the provider and preferred model.
func (c *GeminiClient) Name() string {
	return "Gemini:" + c.models[0]
}

// IsEnabled returns whether the client is configured and ready
func (c *GeminiClient) IsEnabled() bool {
	return c.cfg.GeminiAPIKey != ""
}

// Generate sends the prompt to the first available model in the chain and
// returns the candidate text. Once a model answers, later calls go straight
// to it.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, model := range c.candidates() {
		text, err := c.generateWith(ctx, model, prompt)
		if err != nil {
			log.Printf("Gemini model %s failed: %v", model, err)
			lastErr = err
			continue
		}
		c.remember(model)
		return text, nil
	}
	return "", fmt.Errorf("all Gemini models failed: %w", lastErr)
}

func (c *GeminiClient) generateWith(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiClient) candidates() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resolved != "" {
		return []string{c.resolved}
	}
	return c.models
}

func (c *GeminiClient) remember(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resolved == "" {
		c.resolved = model
		log.Printf("Using Gemini model %s", model)
	}
}
