package gloss

import (
	"context"
	"strings"
	"time"
)

// Mode selects which remote source and extraction rules a lookup uses.
type Mode string

// Lookup modes.
const (
	ModeDefinition Mode = "definition"
	ModeEtymology  Mode = "etymology"
)

// Valid reports whether m is a known lookup mode.
func (m Mode) Valid() bool {
	return m == ModeDefinition || m == ModeEtymology
}

// ParseMode converts a string into a Mode.
// Returns EINVALID for unrecognized values.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDefinition:
		return ModeDefinition, nil
	case ModeEtymology:
		return ModeEtymology, nil
	default:
		return "", Errorf(EINVALID, "unknown mode %q", s)
	}
}

// Normalize canonicalizes a word for use as a cache key and in request URLs:
// lowercased, trimmed, with internal whitespace runs collapsed to single
// spaces. "Word", " word ", and "word" all normalize identically.
func Normalize(word string) string {
	return strings.ToLower(strings.Join(strings.Fields(word), " "))
}

// Entry represents a cached lookup result. Entries are immutable once
// written; a repeated lookup of the same (word, mode) key never overwrites
// an existing entry.
type Entry struct {
	Word      string    `json:"word"` // normalized
	Mode      Mode      `json:"mode"`
	Text      string    `json:"text"` // final plain text, ready for display
	TextHash  string    `json:"textHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	if !e.Mode.Valid() {
		return Errorf(EINVALID, "unknown mode %q", e.Mode)
	}
	if e.Text == "" {
		return Errorf(EINVALID, "entry text required")
	}
	return nil
}

// EntryService represents a service for managing cached lookup results.
type EntryService interface {
	// FindEntry retrieves the entry for a (word, mode) key.
	// Returns ENOTFOUND if no entry exists. Never mutates the store.
	FindEntry(ctx context.Context, word string, mode Mode) (*Entry, error)

	// CreateEntry inserts a new entry. If an entry already exists for the
	// key, the call is a no-op that still succeeds; existing content is
	// never overwritten (write-once semantics).
	CreateEntry(ctx context.Context, entry *Entry) error

	// ReplaceEntry upserts an entry, overwriting any existing content for
	// the key. This is the only sanctioned way to change a stored entry and
	// exists to back explicit, user-initiated refreshes.
	ReplaceEntry(ctx context.Context, entry *Entry) error

	// ListEntries enumerates all cached entries, ordered by creation time.
	ListEntries(ctx context.Context) ([]*Entry, error)

	// DeleteEntry removes one entry. Removed content is handed to the
	// configured Recycler before deletion so it remains recoverable.
	// Returns ENOTFOUND if no entry exists for the key.
	DeleteEntry(ctx context.Context, word string, mode Mode) error

	// DeleteAllEntries removes every entry, recycling removed content first.
	DeleteAllEntries(ctx context.Context) error
}

// Recycler receives entries that are about to be removed from the cache.
// Implementations decide what "removed" means at the OS level: fs.TrashBin
// writes content to a recoverable location, fs.Discard drops it permanently.
// A Recycler error aborts the deletion.
type Recycler interface {
	Recycle(ctx context.Context, entries []*Entry) error
}
