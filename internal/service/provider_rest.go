package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cityviewer/internal/config"
)

// responseDecoder extracts the answer text from one known response shape.
// Decoders are tried in order; the first that recognizes the payload wins.
type responseDecoder interface {
	Decode(body []byte) (string, bool)
}

// textFieldDecoder handles objects carrying the answer in a "text" field.
type textFieldDecoder struct{}

func (textFieldDecoder) Decode(body []byte) (string, bool) {
	var payload struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Text == nil {
		return "", false
	}
	return *payload.Text, true
}

// resultFieldDecoder handles objects carrying the answer in a "result" field.
type resultFieldDecoder struct{}

func (resultFieldDecoder) Decode(body []byte) (string, bool) {
	var payload struct {
		Result *string `json:"result"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Result == nil {
		return "", false
	}
	return *payload.Result, true
}

// rawStringDecoder handles responses that are a bare JSON string.
type rawStringDecoder struct{}

func (rawStringDecoder) Decode(body []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(body, &s); err != nil {
		return "", false
	}
	return s, true
}

// plainBodyDecoder accepts any non-empty body verbatim. Kept last so the
// structured shapes always win.
type plainBodyDecoder struct{}

func (plainBodyDecoder) Decode(body []byte) (string, bool) {
	text := strings.TrimSpace(string(body))
	return text, text != ""
}

// RESTClient talks to a generic JSON endpoint: POST {"prompt": ...} and
// tolerate whatever shape comes back.
type RESTClient struct {
	config     *config.LLMConfig
	httpClient *http.Client
	decoders   []responseDecoder
}

// NewRESTClient creates a client for a generic model endpoint.
func NewRESTClient(cfg *config.LLMConfig) *RESTClient {
	return &RESTClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		decoders: []responseDecoder{
			textFieldDecoder{},
			resultFieldDecoder{},
			rawStringDecoder{},
			plainBodyDecoder{},
		},
	}
}

// Name identifies the provider.
func (c *RESTClient) Name() string {
	return "REST:" + c.config.RESTEndpoint
}

// IsEnabled returns whether the client is configured and ready
func (c *RESTClient) IsEnabled() bool {
	return c.config.RESTEndpoint != ""
}

// Generate posts the prompt and extracts the answer text through the
// decoder chain.
func (c *RESTClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.IsEnabled() {
		return "", fmt.Errorf("REST provider is not enabled (missing endpoint)")
	}

	reqBody, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.RESTEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return c.decode(body)
}

func (c *RESTClient) decode(body []byte) (string, error) {
	for _, d := range c.decoders {
		if text, ok := d.Decode(body); ok {
			return text, nil
		}
	}
	return "", fmt.Errorf("could not extract text from model response")
}
