package service

import (
	"testing"

	"cityviewer/internal/config"
)

func TestRESTClientDecode(t *testing.T) {
	c := NewRESTClient(&config.LLMConfig{RESTEndpoint: "http://localhost:9999/generate"})

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "object with text field",
			body: `{"text": "hello from text"}`,
			want: "hello from text",
		},
		{
			name: "object with result field",
			body: `{"result": "hello from result"}`,
			want: "hello from result",
		},
		{
			name: "text field wins over result field",
			body: `{"text": "primary", "result": "secondary"}`,
			want: "primary",
		},
		{
			name: "bare JSON string",
			body: `"a raw string answer"`,
			want: "a raw string answer",
		},
		{
			name: "plain body as last resort",
			body: "unstructured model output",
			want: "unstructured model output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.decode([]byte(tt.body))
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRESTClientDecodeEmpty(t *testing.T) {
	c := NewRESTClient(&config.LLMConfig{RESTEndpoint: "http://localhost:9999/generate"})
	if _, err := c.decode([]byte("   ")); err == nil {
		t.Error("expected an error for an empty body")
	}
}

func TestRESTClientDisabled(t *testing.T) {
	c := NewRESTClient(&config.LLMConfig{})
	if c.IsEnabled() {
		t.Error("client without endpoint should be disabled")
	}
}
