package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	gloss "github.com/theodore-s-beers/gloss-word"
)

// Compile-time interface verification.
var _ gloss.EntryService = (*EntryService)(nil)

// EntryService implements gloss.EntryService using SQLite.
type EntryService struct {
	db       *DB
	recycler gloss.Recycler
}

// NewEntryService creates a new EntryService. The recycler receives entries
// removed by DeleteEntry and DeleteAllEntries; pass fs.Discard{} for
// permanent deletion.
func NewEntryService(db *DB, recycler gloss.Recycler) *EntryService {
	return &EntryService{db: db, recycler: recycler}
}

// hashText computes xxHash of text and returns a hex string.
func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// FindEntry retrieves the entry for a (word, mode) key.
func (s *EntryService) FindEntry(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
	var entry gloss.Entry
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT word, mode, text, text_hash, created_at
		FROM entries
		WHERE word = ? AND mode = ?
	`, gloss.Normalize(word), string(mode)).Scan(&entry.Word, &entry.Mode, &entry.Text, &entry.TextHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, gloss.Errorf(gloss.ENOTFOUND, "no cached %s for %q", mode, word)
	}
	if err != nil {
		return nil, err
	}

	entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// CreateEntry inserts a new entry with write-once semantics. If an entry
// already exists for the key the call succeeds without touching it, even
// when the new text diverges from the stored text.
func (s *EntryService) CreateEntry(ctx context.Context, entry *gloss.Entry) error {
	entry.Word = gloss.Normalize(entry.Word)
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.CreatedAt = time.Now().UTC()
	entry.TextHash = hashText(entry.Text)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (word, mode, text, text_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (word, mode) DO NOTHING
	`, entry.Word, string(entry.Mode), entry.Text, entry.TextHash,
		entry.CreatedAt.Format(time.RFC3339))

	return err
}

// ReplaceEntry upserts an entry, overwriting any existing content for the
// key. Used only for explicit, user-initiated refreshes.
func (s *EntryService) ReplaceEntry(ctx context.Context, entry *gloss.Entry) error {
	entry.Word = gloss.Normalize(entry.Word)
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.CreatedAt = time.Now().UTC()
	entry.TextHash = hashText(entry.Text)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (word, mode, text, text_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (word, mode) DO UPDATE SET
			text = excluded.text,
			text_hash = excluded.text_hash,
			created_at = excluded.created_at
	`, entry.Word, string(entry.Mode), entry.Text, entry.TextHash,
		entry.CreatedAt.Format(time.RFC3339))

	return err
}

// ListEntries enumerates all cached entries, ordered by creation time.
func (s *EntryService) ListEntries(ctx context.Context) ([]*gloss.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word, mode, text, text_hash, created_at
		FROM entries
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*gloss.Entry
	for rows.Next() {
		var entry gloss.Entry
		var createdAt string

		if err := rows.Scan(&entry.Word, &entry.Mode, &entry.Text, &entry.TextHash, &createdAt); err != nil {
			return nil, err
		}

		entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntry removes one entry, recycling its content first.
func (s *EntryService) DeleteEntry(ctx context.Context, word string, mode gloss.Mode) error {
	entry, err := s.FindEntry(ctx, word, mode)
	if err != nil {
		return err
	}

	// Recycle before deleting; a recycler failure aborts the delete so
	// content obtained over the network is never lost silently.
	if s.recycler != nil {
		if err := s.recycler.Recycle(ctx, []*gloss.Entry{entry}); err != nil {
			return fmt.Errorf("failed to recycle entry: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx,
		"DELETE FROM entries WHERE word = ? AND mode = ?",
		entry.Word, string(entry.Mode))
	return err
}

// DeleteAllEntries removes every entry, recycling removed content first.
func (s *EntryService) DeleteAllEntries(ctx context.Context) error {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	if s.recycler != nil {
		if err := s.recycler.Recycle(ctx, entries); err != nil {
			return fmt.Errorf("failed to recycle entries: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, "DELETE FROM entries")
	return err
}
