package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Catalog CatalogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// LLMConfig holds generative model provider configuration
type LLMConfig struct {
	Provider string // gemini, openai, or rest

	// Gemini (google-generativeai). The key may come from either variable,
	// matching the original deployment.
	GeminiAPIKey string
	GeminiModel  string
	// Fallback chain tried in order when the preferred model is unavailable.
	GeminiFallbackModels []string

	// OpenAI-compatible endpoint.
	OpenAIAPIKey    string
	OpenAIAPIBase   string
	OpenAIChatModel string
	Temperature     float64
	MaxTokens       int

	// Generic REST endpoint returning JSON of varying shape.
	RESTEndpoint string

	Timeout int // seconds, applies to HTTP-based providers
	Enabled bool
}

// CatalogConfig holds building catalog configuration
type CatalogConfig struct {
	Path            string // JSON file of raw building attribute maps
	OverpassURL     string
	OverpassBBox    string // south,west,north,east
	OverpassEnabled bool
	Timeout         int // seconds
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	geminiKey := getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", ""))
	openaiKey := getEnv("OPENAI_API_KEY", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 5000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("FRONTEND_URL", "*"),
		},
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "gemini"),
			GeminiAPIKey: geminiKey,
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			GeminiFallbackModels: []string{
				"gemini-1.5-pro",
				"gemini-pro",
			},
			OpenAIAPIKey:    openaiKey,
			OpenAIAPIBase:   getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			OpenAIChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			Temperature:     getEnvAsFloat("LLM_TEMPERATURE", 0.2),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 4096),
			RESTEndpoint:    getEnv("LLM_REST_ENDPOINT", ""),
			Timeout:         getEnvAsInt("LLM_TIMEOUT", 30),
			Enabled:         geminiKey != "" || openaiKey != "" || getEnv("LLM_REST_ENDPOINT", "") != "",
		},
		Catalog: CatalogConfig{
			Path:            getEnv("CATALOG_PATH", ""),
			OverpassURL:     getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			OverpassBBox:    getEnv("OVERPASS_BBOX", "51.0420,-114.0770,51.0500,-114.0580"),
			OverpassEnabled: getEnv("OVERPASS_ENABLED", "") == "true",
			Timeout:         getEnvAsInt("CATALOG_TIMEOUT", 60),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
