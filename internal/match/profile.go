package match

import (
	"math/rand"

	"github.com/upliftbot/uplift/internal/catalog"
)

// Profile describes how one content type is matched: how a primary
// emotion expands into catalog tags, which tags mark broad-appeal
// fallback items, and which attributes earn scoring bonuses.
type Profile struct {
	// Expansions maps a primary emotion to related catalog tags, in
	// priority order. An emotion mapped to an empty list (quote
	// "neutral") skips narrow matching and goes straight to fallback.
	Expansions map[string][]string

	// FallbackTags select broad-appeal items when no tag matches.
	FallbackTags []string

	// RecencyFloor earns +3, RecencyCeil an additional +2.
	RecencyFloor int
	RecencyCeil  int

	// CategoryBoost earns +2 for items whose category is listed.
	CategoryBoost []string
}

// QuoteProfile returns the matching configuration for movie quotes.
func QuoteProfile() Profile {
	return Profile{
		Expansions: map[string][]string{
			"sadness":        {"sadness", "despair", "hopelessness", "loss"},
			"anxiety":        {"anxiety", "fear", "worry", "stress", "uncertainty"},
			"anger":          {"anger", "frustration", "bitterness"},
			"loneliness":     {"loneliness", "isolation"},
			"disappointment": {"disappointment", "failure", "defeat", "regret"},
			"fear":           {"fear", "anxiety", "scared"},
			"frustration":    {"frustration", "anger", "impatience"},
			"joy":            {"joy", "happiness"},
			"neutral":        {},
		},
		FallbackTags:  []string{"hope", "perseverance"},
		RecencyFloor:  2000,
		RecencyCeil:   2010,
		CategoryBoost: []string{"animation", "drama"},
	}
}

// SongProfile returns the matching configuration for songs. The song
// catalog's tag vocabulary is richer, so the expansions differ from the
// quote table.
func SongProfile() Profile {
	return Profile{
		Expansions: map[string][]string{
			"sadness":        {"sadness", "heartbreak", "bittersweet", "longing"},
			"anxiety":        {"anxiety", "fear", "worry", "stress", "shyness"},
			"anger":          {"anger", "frustration", "empowerment"},
			"loneliness":     {"loneliness", "isolation", "longing"},
			"disappointment": {"disappointment", "defeat", "acceptance"},
			"fear":           {"fear", "anxiety", "vulnerability"},
			"frustration":    {"frustration", "anger", "determination"},
			"joy":            {"joy", "happiness", "excitement", "confidence"},
			"neutral":        {"hope", "comfort", "peace"},
		},
		FallbackTags:  []string{"joy", "hope"},
		RecencyFloor:  2020,
		RecencyCeil:   2023,
		CategoryBoost: []string{"BTS", "SEVENTEEN", "IU", "BLACKPINK"},
	}
}

// genericQuote is the absolute last resort when the quote catalog is empty.
func genericQuote() catalog.Quote {
	return catalog.Quote{
		ID:          "fallback-1",
		Text:        "Keep going. You're doing better than you think.",
		Movie:       "General Wisdom",
		Character:   "Life",
		ReleaseYear: 2024,
		Emotions:    []string{"all"},
		ThemeTags:   []string{"encouragement"},
		Genre:       "wisdom",
	}
}

// genericSong is the absolute last resort when the song catalog is empty.
func genericSong() catalog.Song {
	return catalog.Song{
		ID:          "fallback-1",
		Title:       "Dynamite",
		Artist:      "BTS",
		Emotions:    []string{"joy"},
		Theme:       "Uplifting energy and joy",
		Genre:       "K-pop Disco",
		ReleaseYear: 2020,
		SpotifyURL:  "https://open.spotify.com/track/5QDLhrAOJJdNAmCTJ8xMyW",
		YouTubeURL:  "https://www.youtube.com/watch?v=gdZLi9oWNZg",
		WhyItHelps:  "充滿活力的節奏帶來快樂和正能量",
	}
}

// NewQuoteEngine builds the quote matching engine. Pass a nil rng to
// use an unseeded time-based source.
func NewQuoteEngine(c *catalog.Catalog[catalog.Quote], rng *rand.Rand) *Engine[catalog.Quote] {
	return New(Config[catalog.Quote]{
		Catalog: c,
		Profile: QuoteProfile(),
		Generic: genericQuote(),
		Rand:    rng,
	})
}

// NewSongEngine builds the song matching engine.
func NewSongEngine(c *catalog.Catalog[catalog.Song], rng *rand.Rand) *Engine[catalog.Song] {
	return New(Config[catalog.Song]{
		Catalog: c,
		Profile: SongProfile(),
		Generic: genericSong(),
		Rand:    rng,
	})
}
