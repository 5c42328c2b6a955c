// Package session owns per-conversation state: which items have been
// shown, favorites, and the message budget. The matching engine stays
// stateless; it only reads the exclusion sets carried here.
package session

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultMessageLimit caps messages per session.
const DefaultMessageLimit = 50

// Content types for shown-item and favorite records.
const (
	ContentQuote = "quote"
	ContentSong  = "song"
)

// Session is one conversation's state. Sessions are never shared: each
// conversation owns its exclusion sets.
type Session struct {
	ID           string
	CreatedAt    time.Time
	MessageCount int
	MessageLimit int

	ShownQuotes map[string]bool
	ShownSongs  map[string]bool

	Favorites []Favorite
}

// Favorite marks an item the user wants to keep.
type Favorite struct {
	ContentType string
	ItemID      string
	AddedAt     time.Time
}

// New creates a fresh session with a ULID identifier.
func New() *Session {
	return &Session{
		ID:           ulid.Make().String(),
		CreatedAt:    time.Now().UTC(),
		MessageLimit: DefaultMessageLimit,
		ShownQuotes:  make(map[string]bool),
		ShownSongs:   make(map[string]bool),
	}
}

// AllowMessage reports whether another message fits the budget and
// counts it if so.
func (s *Session) AllowMessage() bool {
	if s.MessageLimit > 0 && s.MessageCount >= s.MessageLimit {
		return false
	}
	s.MessageCount++
	return true
}

// MarkQuoteShown records a quote in the exclusion set.
func (s *Session) MarkQuoteShown(id string) {
	s.ShownQuotes[id] = true
}

// MarkSongShown records a song in the exclusion set.
func (s *Session) MarkSongShown(id string) {
	s.ShownSongs[id] = true
}

// AddFavorite records a favorite unless already present.
func (s *Session) AddFavorite(contentType, itemID string) bool {
	for _, f := range s.Favorites {
		if f.ContentType == contentType && f.ItemID == itemID {
			return false
		}
	}
	s.Favorites = append(s.Favorites, Favorite{
		ContentType: contentType,
		ItemID:      itemID,
		AddedAt:     time.Now().UTC(),
	})
	return true
}
