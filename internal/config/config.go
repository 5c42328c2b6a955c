package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Catalogs
	QuotesPath string
	SongsPath  string

	// Session store
	DatabasePath string

	// LLM provider: "anthropic" or "openai"
	LLMProvider     string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	ModelName       string // provider-specific model, empty uses the client default

	// Conversation
	ReframeStyle string // gentle, humorous, direct, cbt
	MatchCount   int    // quotes/songs returned per turn
	MaxMessages  int    // per-session message budget, 0 disables

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		QuotesPath:      getEnv("QUOTES_PATH", "data/quotes.json"),
		SongsPath:       getEnv("SONGS_PATH", "data/songs.json"),
		DatabasePath:    getEnv("DATABASE_PATH", "data/uplift.db"),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		ModelName:       getEnv("MODEL_NAME", ""),
		ReframeStyle:    getEnv("REFRAME_STYLE", "gentle"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	matchCount, err := strconv.Atoi(getEnv("MATCH_COUNT", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_COUNT: %w", err)
	}
	cfg.MatchCount = matchCount

	maxMessages, err := strconv.Atoi(getEnv("MAX_MESSAGES_PER_SESSION", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_MESSAGES_PER_SESSION: %w", err)
	}
	cfg.MaxMessages = maxMessages

	return cfg, nil
}

// Validate checks that offline commands have what they need.
func (c *Config) Validate() error {
	if c.QuotesPath == "" {
		return fmt.Errorf("QUOTES_PATH is required")
	}
	if c.SongsPath == "" {
		return fmt.Errorf("SONGS_PATH is required")
	}
	if c.MatchCount <= 0 {
		return fmt.Errorf("MATCH_COUNT must be positive")
	}
	return nil
}

// ValidateForLLM checks configuration needed for classification,
// reframing, and conversation.
func (c *Config) ValidateForLLM() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.LLMProvider {
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER is anthropic")
		}
	case "openai", "":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER is openai")
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER: %s (must be 'anthropic' or 'openai')", c.LLMProvider)
	}
	return nil
}

// ValidateForChat checks everything the interactive chat needs.
func (c *Config) ValidateForChat() error {
	if err := c.ValidateForLLM(); err != nil {
		return err
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
