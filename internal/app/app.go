package app

import (
	"context"
	"fmt"

	"github.com/upliftbot/uplift/internal/catalog"
	"github.com/upliftbot/uplift/internal/chatbot"
	"github.com/upliftbot/uplift/internal/config"
	"github.com/upliftbot/uplift/internal/emotion"
	"github.com/upliftbot/uplift/internal/llm"
	"github.com/upliftbot/uplift/internal/match"
	"github.com/upliftbot/uplift/internal/session"
)

// App is the main application container holding all dependencies.
type App struct {
	Config      *config.Config
	Quotes      *match.Engine[catalog.Quote]
	Songs       *match.Engine[catalog.Song]
	Analyzer    *emotion.Analyzer
	Transformer *emotion.Transformer
	Chat        *chatbot.Engine
	Store       *session.Store
}

// New creates a fully wired application instance for the interactive chat.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	quotes, songs, err := LoadEngines(cfg)
	if err != nil {
		return nil, err
	}

	client, err := NewLLMClient(cfg)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	return &App{
		Config:      cfg,
		Quotes:      quotes,
		Songs:       songs,
		Analyzer:    emotion.NewAnalyzer(client),
		Transformer: emotion.NewTransformer(client, cfg.ReframeStyle),
		Chat:        chatbot.New(chatbot.Config{Client: client}),
		Store:       store,
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// LoadEngines loads both catalogs and builds their matching engines.
func LoadEngines(cfg *config.Config) (*match.Engine[catalog.Quote], *match.Engine[catalog.Song], error) {
	quoteCatalog, err := catalog.LoadQuotes(cfg.QuotesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load quotes: %w", err)
	}
	songCatalog, err := catalog.LoadSongs(cfg.SongsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load songs: %w", err)
	}

	return match.NewQuoteEngine(quoteCatalog, nil), match.NewSongEngine(songCatalog, nil), nil
}

// NewLLMClient builds the completion client for the configured provider.
func NewLLMClient(cfg *config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		return llm.NewAnthropic(llm.AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.ModelName,
		}), nil
	case "openai", "":
		return llm.NewOpenAI(llm.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.ModelName,
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}
