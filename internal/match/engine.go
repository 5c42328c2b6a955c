// Package match selects, deduplicates, ranks, and rotates catalog items
// for a classified emotion. One generic engine serves both content
// types; the differences live in the Profile.
package match

import (
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/upliftbot/uplift/internal/catalog"
)

const (
	exactTagBonus    = 10
	recencyBonus     = 3
	recencyCeilBonus = 2
	categoryBonus    = 2

	// shuffleDepth is how many top-ranked items rotate among themselves
	// on every call. This is the only source of session-to-session
	// variety.
	shuffleDepth = 5

	// fallbackSlice is how many load-order items serve as the last
	// in-catalog fallback.
	fallbackSlice = 10
)

// Engine matches one content type. It is stateless between calls apart
// from its random source, which is not safe for concurrent use.
type Engine[T catalog.Item] struct {
	catalog *catalog.Catalog[T]
	profile Profile
	generic T
	rand    *rand.Rand
}

// Config holds engine construction parameters.
type Config[T catalog.Item] struct {
	Catalog *catalog.Catalog[T]
	Profile Profile
	Generic T // returned when the catalog itself is empty
	Rand    *rand.Rand
}

// New creates an engine. A nil Rand gets a time-seeded source; tests
// pass a fixed seed to pin the rotation.
func New[T catalog.Item](cfg Config[T]) *Engine[T] {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine[T]{
		catalog: cfg.Catalog,
		profile: cfg.Profile,
		generic: cfg.Generic,
		rand:    rng,
	}
}

// Match returns up to count items for the emotion, skipping excluded
// IDs. The result never contains duplicate IDs. Excluding every
// candidate yields an empty slice; use GetAnother when the caller must
// always receive something.
func (e *Engine[T]) Match(emotion string, count int, exclude map[string]bool) []T {
	candidates := e.collect(emotion)
	unique := dedupe(candidates, exclude)
	ranked := e.rank(unique, emotion)

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	slog.Debug("matched items",
		"emotion", emotion,
		"candidates", len(candidates),
		"unique", len(unique),
		"returned", len(ranked),
	)
	return ranked
}

// GetAnother returns one item, never failing while the catalog has
// entries. When shown IDs have exhausted every candidate it retries
// without exclusions; repeat reports that relaxation so the caller can
// warn the user they may see something again.
func (e *Engine[T]) GetAnother(emotion string, shown map[string]bool) (item T, repeat bool) {
	if matches := e.Match(emotion, fallbackSlice, shown); len(matches) > 0 {
		return matches[0], false
	}

	if matches := e.Match(emotion, 1, nil); len(matches) > 0 {
		slog.Debug("exclusions exhausted, repeating", "emotion", emotion)
		return matches[0], true
	}

	// Catalog is empty.
	return e.generic, false
}

// All returns the full catalog snapshot in load order.
func (e *Engine[T]) All() []T {
	return e.catalog.All()
}

// SetRand swaps the random source, pinning the rotation for tests and
// reproducible debugging.
func (e *Engine[T]) SetRand(rng *rand.Rand) {
	if rng != nil {
		e.rand = rng
	}
}

// collect gathers candidates for each expanded tag in table order, so
// earlier tags surface first and settle score ties. Unknown emotions
// pass through as their own tag; an empty candidate set falls back to
// broad-appeal items, then to the head of the catalog.
func (e *Engine[T]) collect(emotion string) []T {
	tags, ok := e.profile.Expansions[emotion]
	if !ok {
		tags = []string{emotion}
	}

	var candidates []T
	for _, tag := range tags {
		candidates = append(candidates, e.catalog.ByTag(tag)...)
	}
	if len(candidates) > 0 {
		return candidates
	}
	return e.fallback()
}

// fallback returns items whose themes intersect the broad-appeal set,
// or failing that the first items in load order.
func (e *Engine[T]) fallback() []T {
	var broad []T
	for _, item := range e.catalog.All() {
		if intersects(item.Themes(), e.profile.FallbackTags) {
			broad = append(broad, item)
		}
	}
	if len(broad) > 0 {
		return broad
	}

	all := e.catalog.All()
	if len(all) > fallbackSlice {
		all = all[:fallbackSlice]
	}
	return all
}

// dedupe keeps the first occurrence of each non-excluded ID,
// preserving order so ranking stays deterministic for a given seed.
func dedupe[T catalog.Item](candidates []T, exclude map[string]bool) []T {
	seen := make(map[string]bool, len(candidates))
	unique := make([]T, 0, len(candidates))
	for _, item := range candidates {
		id := item.ItemID()
		if seen[id] || exclude[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, item)
	}
	return unique
}

// rank orders items by descending relevance score. The sort is stable:
// at equal score, items matched by an earlier expansion tag keep their
// lead. When more than shuffleDepth items remain, the top of the list
// is shuffled to avoid serving the same head every session.
func (e *Engine[T]) rank(items []T, emotion string) []T {
	scores := make(map[string]int, len(items))
	for _, item := range items {
		scores[item.ItemID()] = e.score(item, emotion)
	}

	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ItemID()] > scores[ranked[j].ItemID()]
	})

	if len(ranked) > shuffleDepth {
		e.rand.Shuffle(shuffleDepth, func(i, j int) {
			ranked[i], ranked[j] = ranked[j], ranked[i]
		})
	}
	return ranked
}

func (e *Engine[T]) score(item T, emotion string) int {
	score := 0
	if contains(item.Tags(), emotion) {
		score += exactTagBonus
	}
	if item.Year() >= e.profile.RecencyFloor {
		score += recencyBonus
	}
	if item.Year() >= e.profile.RecencyCeil {
		score += recencyCeilBonus
	}
	if contains(e.profile.CategoryBoost, item.Category()) {
		score += categoryBonus
	}
	return score
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
