package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upliftbot/uplift/internal/catalog"
)

func quoteCatalog(t *testing.T, quotes ...catalog.Quote) *catalog.Catalog[catalog.Quote] {
	t.Helper()
	c, err := catalog.New(quotes)
	require.NoError(t, err)
	return c
}

func seededEngine(t *testing.T, seed int64, quotes ...catalog.Quote) *Engine[catalog.Quote] {
	t.Helper()
	return NewQuoteEngine(quoteCatalog(t, quotes...), rand.New(rand.NewSource(seed)))
}

func ids(quotes []catalog.Quote) []string {
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.ID)
	}
	return out
}

func TestMatch_RanksExactAndRecencyFirst(t *testing.T) {
	// Both match "sadness" exactly; "a" additionally wins both recency
	// bonuses. Two candidates means no shuffle, so order is fixed.
	e := seededEngine(t, 1,
		catalog.Quote{ID: "a", Emotions: []string{"sadness"}, ReleaseYear: 2021},
		catalog.Quote{ID: "b", Emotions: []string{"sadness", "hope"}, ReleaseYear: 2015},
	)

	got := e.Match("sadness", 2, nil)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestMatch_ExpansionTagOrderBreaksTies(t *testing.T) {
	// Neither quote matches "sadness" literally, both are scored 0:
	// the one reached through the earlier expansion tag leads.
	e := seededEngine(t, 1,
		catalog.Quote{ID: "late", Emotions: []string{"loss"}, ReleaseYear: 1990},
		catalog.Quote{ID: "early", Emotions: []string{"despair"}, ReleaseYear: 1990},
	)

	got := e.Match("sadness", 2, nil)
	assert.Equal(t, []string{"early", "late"}, ids(got))
}

func TestMatch_CategoryBoost(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "thriller", Emotions: []string{"fear"}, Genre: "thriller"},
		catalog.Quote{ID: "cartoon", Emotions: []string{"fear"}, Genre: "animation"},
	)

	got := e.Match("fear", 2, nil)
	assert.Equal(t, []string{"cartoon", "thriller"}, ids(got))
}

func TestMatch_RespectsExclusions(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "a", Emotions: []string{"anger"}},
		catalog.Quote{ID: "b", Emotions: []string{"anger"}},
		catalog.Quote{ID: "c", Emotions: []string{"anger"}},
	)

	got := e.Match("anger", 3, map[string]bool{"b": true})
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestMatch_NoDuplicates(t *testing.T) {
	// "both" is reachable through two expansion tags but must appear once.
	e := seededEngine(t, 1,
		catalog.Quote{ID: "both", Emotions: []string{"fear", "anxiety"}},
		catalog.Quote{ID: "single", Emotions: []string{"fear"}},
	)

	got := e.Match("fear", 10, nil)
	assert.Equal(t, []string{"both", "single"}, ids(got))
}

func TestMatch_BoundedByCount(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "a", Emotions: []string{"joy"}},
		catalog.Quote{ID: "b", Emotions: []string{"joy"}},
		catalog.Quote{ID: "c", Emotions: []string{"joy"}},
	)

	assert.Len(t, e.Match("joy", 2, nil), 2)
	assert.Len(t, e.Match("joy", 5, nil), 3)
}

func TestMatch_DeterministicForSeed(t *testing.T) {
	quotes := make([]catalog.Quote, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		quotes = append(quotes, catalog.Quote{ID: id, Emotions: []string{"sadness"}})
	}

	first := seededEngine(t, 42, quotes...).Match("sadness", 8, nil)
	second := seededEngine(t, 42, quotes...).Match("sadness", 8, nil)
	assert.Equal(t, ids(first), ids(second))
}

func TestMatch_ShuffleRotatesTopFive(t *testing.T) {
	quotes := make([]catalog.Quote, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		quotes = append(quotes, catalog.Quote{ID: id, Emotions: []string{"sadness"}})
	}
	e := seededEngine(t, 7, quotes...)

	// Equal scores: the tail keeps rank order on every call, the head
	// rotates. Across a handful of calls the head must not stay fixed.
	varied := false
	baseline := ids(e.Match("sadness", 8, nil))
	for i := 0; i < 10 && !varied; i++ {
		next := ids(e.Match("sadness", 8, nil))
		assert.Equal(t, baseline[5:], next[5:])
		for j := 0; j < 5; j++ {
			if next[j] != baseline[j] {
				varied = true
			}
		}
	}
	assert.True(t, varied, "top five never rotated")

	// Membership of the top group is stable even though order is not.
	next := e.Match("sadness", 8, nil)
	assert.ElementsMatch(t, baseline[:5], ids(next)[:5])
}

func TestMatch_UnknownEmotionPassesThrough(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "w", Emotions: []string{"wanderlust"}},
	)

	got := e.Match("wanderlust", 3, nil)
	assert.Equal(t, []string{"w"}, ids(got))
}

func TestMatch_FallbackToBroadAppealThemes(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "hopeful", Emotions: []string{"joy"}, ThemeTags: []string{"hope"}},
		catalog.Quote{ID: "other", Emotions: []string{"joy"}, ThemeTags: []string{"love"}},
	)

	// No quote is tagged with any "sadness" expansion tag.
	got := e.Match("sadness", 3, nil)
	assert.Equal(t, []string{"hopeful"}, ids(got))
}

func TestMatch_NeutralGoesStraightToFallback(t *testing.T) {
	// "neutral" expands to nothing for quotes even when a quote carries
	// the literal tag; fallback serves the first items in load order.
	e := seededEngine(t, 1,
		catalog.Quote{ID: "n", Emotions: []string{"neutral"}, ThemeTags: []string{"calm"}},
		catalog.Quote{ID: "m", Emotions: []string{"joy"}, ThemeTags: []string{"love"}},
	)

	got := e.Match("neutral", 5, nil)
	assert.Equal(t, []string{"n", "m"}, ids(got))
}

func TestMatch_FallbackFirstTenInLoadOrder(t *testing.T) {
	quotes := make([]catalog.Quote, 0, 12)
	for i := 0; i < 12; i++ {
		quotes = append(quotes, catalog.Quote{
			ID:       string(rune('a' + i)),
			Emotions: []string{"joy"},
		})
	}
	e := seededEngine(t, 3, quotes...)

	got := e.Match("sadness", 20, nil)
	assert.Len(t, got, 10)
}

func TestGetAnother_RelaxesExhaustedExclusions(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "a", Emotions: []string{"sadness"}, ReleaseYear: 2021},
		catalog.Quote{ID: "b", Emotions: []string{"sadness", "hope"}, ReleaseYear: 2015},
	)
	shown := map[string]bool{"a": true, "b": true}

	assert.Empty(t, e.Match("sadness", 2, shown))

	item, repeat := e.GetAnother("sadness", shown)
	assert.True(t, repeat)
	assert.Contains(t, []string{"a", "b"}, item.ID)
}

func TestGetAnother_FreshItemIsNotARepeat(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "a", Emotions: []string{"sadness"}},
		catalog.Quote{ID: "b", Emotions: []string{"sadness"}},
	)

	item, repeat := e.GetAnother("sadness", map[string]bool{"a": true})
	assert.False(t, repeat)
	assert.Equal(t, "b", item.ID)
}

func TestGetAnother_EmptyCatalogReturnsGeneric(t *testing.T) {
	e := seededEngine(t, 1)

	item, repeat := e.GetAnother("sadness", nil)
	assert.False(t, repeat)
	assert.Equal(t, "fallback-1", item.ID)
	assert.NotEmpty(t, item.Text)
}

func TestGetAnother_NeverEmptyForAnyEmotion(t *testing.T) {
	e := seededEngine(t, 1,
		catalog.Quote{ID: "only", Emotions: []string{"joy"}},
	)

	for _, emotion := range []string{"sadness", "joy", "neutral", "zeal", ""} {
		item, _ := e.GetAnother(emotion, nil)
		assert.Equal(t, "only", item.ID, "emotion %q", emotion)
	}
}

func TestSongEngine_Profile(t *testing.T) {
	c, err := catalog.New([]catalog.Song{
		{ID: "s1", Title: "T", Artist: "BTS", Emotions: []string{"heartbreak"}, ReleaseYear: 2024},
		{ID: "s2", Title: "U", Artist: "Nobody", Emotions: []string{"sadness"}, ReleaseYear: 2010},
	})
	require.NoError(t, err)
	e := NewSongEngine(c, rand.New(rand.NewSource(1)))

	// s2 matches "sadness" exactly (+10) and beats s1's recency (+5)
	// plus artist boost (+2).
	got := e.Match("sadness", 2, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[0].ID)
	assert.Equal(t, "s1", got[1].ID)
}

func TestSongEngine_NeutralMatchesComfortTags(t *testing.T) {
	c, err := catalog.New([]catalog.Song{
		{ID: "calm", Title: "T", Artist: "A", Emotions: []string{"peace"}},
		{ID: "loud", Title: "U", Artist: "B", Emotions: []string{"anger"}},
	})
	require.NoError(t, err)
	e := NewSongEngine(c, rand.New(rand.NewSource(1)))

	got := e.Match("neutral", 5, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "calm", got[0].ID)
}
