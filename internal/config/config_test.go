package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "data/quotes.json", cfg.QuotesPath)
		assert.Equal(t, "data/songs.json", cfg.SongsPath)
		assert.Equal(t, "data/uplift.db", cfg.DatabasePath)
		assert.Equal(t, "openai", cfg.LLMProvider)
		assert.Equal(t, "gentle", cfg.ReframeStyle)
		assert.Equal(t, 3, cfg.MatchCount)
		assert.Equal(t, 50, cfg.MaxMessages)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("QUOTES_PATH", "/custom/quotes.json")
		os.Setenv("LLM_PROVIDER", "anthropic")
		os.Setenv("ANTHROPIC_API_KEY", "sk-test")
		os.Setenv("MATCH_COUNT", "5")
		os.Setenv("REFRAME_STYLE", "cbt")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/custom/quotes.json", cfg.QuotesPath)
		assert.Equal(t, "anthropic", cfg.LLMProvider)
		assert.Equal(t, "sk-test", cfg.AnthropicAPIKey)
		assert.Equal(t, 5, cfg.MatchCount)
		assert.Equal(t, "cbt", cfg.ReframeStyle)
	})

	t.Run("invalid integer", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("MATCH_COUNT", "notanumber")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MATCH_COUNT")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{QuotesPath: "q.json", SongsPath: "s.json", MatchCount: 3}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing quotes path", func(t *testing.T) {
		cfg := &Config{SongsPath: "s.json", MatchCount: 3}
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive match count", func(t *testing.T) {
		cfg := &Config{QuotesPath: "q.json", SongsPath: "s.json"}
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_ValidateForLLM(t *testing.T) {
	base := Config{QuotesPath: "q.json", SongsPath: "s.json", MatchCount: 3}

	t.Run("openai requires key", func(t *testing.T) {
		cfg := base
		cfg.LLMProvider = "openai"
		assert.Error(t, cfg.ValidateForLLM())

		cfg.OpenAIAPIKey = "sk-test"
		assert.NoError(t, cfg.ValidateForLLM())
	})

	t.Run("anthropic requires key", func(t *testing.T) {
		cfg := base
		cfg.LLMProvider = "anthropic"
		assert.Error(t, cfg.ValidateForLLM())

		cfg.AnthropicAPIKey = "sk-ant-test"
		assert.NoError(t, cfg.ValidateForLLM())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base
		cfg.LLMProvider = "cohere"
		err := cfg.ValidateForLLM()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_PROVIDER")
	})
}

func TestConfig_ValidateForChat(t *testing.T) {
	cfg := Config{
		QuotesPath:   "q.json",
		SongsPath:    "s.json",
		MatchCount:   3,
		LLMProvider:  "openai",
		OpenAIAPIKey: "sk-test",
	}
	assert.Error(t, cfg.ValidateForChat())

	cfg.DatabasePath = "uplift.db"
	assert.NoError(t, cfg.ValidateForChat())
}
