// Package catalog loads tagged content catalogs from JSON and serves
// them from an in-memory emotion-tag index.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

// Catalog holds an immutable, ordered set of items plus a tag index.
// Build it once with a loader; after that it is safe for concurrent reads.
type Catalog[T Item] struct {
	items []T
	byTag map[string][]T
	byID  map[string]T
}

// New builds a catalog from items already in hand. Duplicate IDs are an
// error: silently shadowing an entry loses data.
func New[T Item](items []T) (*Catalog[T], error) {
	c := &Catalog[T]{
		byTag: make(map[string][]T),
		byID:  make(map[string]T, len(items)),
	}
	for _, item := range items {
		id := item.ItemID()
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("duplicate item id %q", id)
		}
		c.byID[id] = item
		c.items = append(c.items, item)
		for _, tag := range item.Tags() {
			tag = strings.ToLower(tag)
			c.byTag[tag] = append(c.byTag[tag], item)
		}
	}
	return c, nil
}

// All returns every item in load order.
func (c *Catalog[T]) All() []T {
	return c.items
}

// ByTag returns items carrying the tag, in load order. Unknown tags
// return an empty slice.
func (c *Catalog[T]) ByTag(tag string) []T {
	return c.byTag[strings.ToLower(tag)]
}

// ByID looks up a single item.
func (c *Catalog[T]) ByID(id string) (T, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of items.
func (c *Catalog[T]) Len() int {
	return len(c.items)
}

// LoadQuotes reads the quote catalog from path. The file may be a bare
// array or an object with a "quotes" key.
func LoadQuotes(path string) (*Catalog[Quote], error) {
	return load[Quote](path, "quotes")
}

// LoadSongs reads the song catalog from path. The file may be a bare
// array or an object with a "songs" key.
func LoadSongs(path string) (*Catalog[Song], error) {
	return load[Song](path, "songs")
}

// load reads and validates item records from a JSON file.
//
// Failure policy: a missing file degrades to an empty catalog with a
// warning, and a record that fails validation is skipped with a warning.
// A duplicate ID fails the whole load.
func load[T Item](path, wrapperKey string) (*Catalog[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("catalog file not found, starting empty", "path", path)
			return New[T](nil)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	records, err := unwrapRecords(data, wrapperKey)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	items := make([]T, 0, len(records))
	for i, raw := range records {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			slog.Warn("skipping malformed catalog record",
				"path", path, "index", i, "error", err)
			continue
		}
		if err := validate.Struct(item); err != nil {
			slog.Warn("skipping invalid catalog record",
				"path", path, "index", i, "id", item.ItemID(),
				"error", describeValidation(err))
			continue
		}
		items = append(items, item)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("index catalog %s: %w", path, err)
	}

	slog.Info("catalog loaded", "path", path, "items", c.Len(), "tags", len(c.byTag))
	return c, nil
}

// unwrapRecords accepts either a bare JSON array or an object holding
// the array under wrapperKey.
func unwrapRecords(data []byte, wrapperKey string) ([]json.RawMessage, error) {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	var records []json.RawMessage
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	raw, ok := wrapper[wrapperKey]
	if !ok {
		return nil, fmt.Errorf("missing %q key", wrapperKey)
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// describeValidation names the first failed field so load warnings say
// what was wrong, not just that something was.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("field %s failed %q", verrs[0].Field(), verrs[0].Tag())
	}
	return err.Error()
}
