package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists sessions and shown-item history so a conversation can
// resume its exclusion state across process restarts.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	message_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS shown_items (
	session_id TEXT NOT NULL REFERENCES sessions(id),
	content_type TEXT NOT NULL,
	item_id TEXT NOT NULL,
	shown_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, content_type, item_id)
);

CREATE TABLE IF NOT EXISTS favorites (
	session_id TEXT NOT NULL REFERENCES sessions(id),
	content_type TEXT NOT NULL,
	item_id TEXT NOT NULL,
	added_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, content_type, item_id)
);
`

// NewStore opens (and if needed creates) the session database.
func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the session row.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, created_at, message_count)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET message_count = excluded.message_count
	`, sess.ID, sess.CreatedAt, sess.MessageCount)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load restores a session and its shown-item and favorite state.
func (s *Store) Load(ctx context.Context, id string) (*Session, error) {
	sess := &Session{
		ID:           id,
		MessageLimit: DefaultMessageLimit,
		ShownQuotes:  make(map[string]bool),
		ShownSongs:   make(map[string]bool),
	}

	err := s.db.QueryRowContext(ctx,
		"SELECT created_at, message_count FROM sessions WHERE id = ?", id,
	).Scan(&sess.CreatedAt, &sess.MessageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT content_type, item_id FROM shown_items WHERE session_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load shown items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var contentType, itemID string
		if err := rows.Scan(&contentType, &itemID); err != nil {
			return nil, fmt.Errorf("scan shown item: %w", err)
		}
		switch contentType {
		case ContentQuote:
			sess.ShownQuotes[itemID] = true
		case ContentSong:
			sess.ShownSongs[itemID] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shown items: %w", err)
	}

	favRows, err := s.db.QueryContext(ctx,
		"SELECT content_type, item_id, added_at FROM favorites WHERE session_id = ? ORDER BY added_at", id)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	defer favRows.Close()

	for favRows.Next() {
		var f Favorite
		if err := favRows.Scan(&f.ContentType, &f.ItemID, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		sess.Favorites = append(sess.Favorites, f)
	}
	if err := favRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return sess, nil
}

// MarkShown records one shown item; repeats are ignored.
func (s *Store) MarkShown(ctx context.Context, sessionID, contentType, itemID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shown_items (session_id, content_type, item_id, shown_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, sessionID, contentType, itemID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark shown: %w", err)
	}
	return nil
}

// AddFavorite records one favorite; repeats are ignored.
func (s *Store) AddFavorite(ctx context.Context, sessionID, contentType, itemID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorites (session_id, content_type, item_id, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, sessionID, contentType, itemID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// LatestSessionID returns the most recently created session, if any.
func (s *Store) LatestSessionID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM sessions ORDER BY created_at DESC LIMIT 1",
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest session: %w", err)
	}
	return id, nil
}

// Stats summarizes the store for reporting.
type Stats struct {
	Sessions    int
	ShownQuotes int
	ShownSongs  int
	Favorites   int
}

// CollectStats counts sessions and history rows.
func (s *Store) CollectStats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions").Scan(&st.Sessions); err != nil {
		return Stats{}, fmt.Errorf("count sessions: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM shown_items WHERE content_type = ?", ContentQuote,
	).Scan(&st.ShownQuotes); err != nil {
		return Stats{}, fmt.Errorf("count shown quotes: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM shown_items WHERE content_type = ?", ContentSong,
	).Scan(&st.ShownSongs); err != nil {
		return Stats{}, fmt.Errorf("count shown songs: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM favorites").Scan(&st.Favorites); err != nil {
		return Stats{}, fmt.Errorf("count favorites: %w", err)
	}
	return st, nil
}
