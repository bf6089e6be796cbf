// Package fs provides file-based recovery for deleted cache entries.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	gloss "github.com/theodore-s-beers/gloss-word"
)

// Ensure implementations satisfy gloss.Recycler at compile time.
var (
	_ gloss.Recycler = (*TrashBin)(nil)
	_ gloss.Recycler = Discard{}
)

// TrashBin writes removed entries to a recoverable location before they are
// deleted from the store. Cached content costs a network round trip to
// obtain, so clearing the cache must not destroy it outright.
type TrashBin struct {
	dir string
}

// NewTrashBin creates a TrashBin rooted at dir. The directory is created on
// first use.
func NewTrashBin(dir string) *TrashBin {
	return &TrashBin{dir: dir}
}

// Recycle writes each entry as a plain-text file under a fresh subdirectory
// of the bin, one subdirectory per clear operation.
func (b *TrashBin) Recycle(ctx context.Context, entries []*gloss.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	runDir := filepath.Join(b.dir, uuid.New().String())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("failed to create trash directory: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(runDir, entryFileName(entry))
		if err := os.WriteFile(path, []byte(entry.Text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}

// entryFileName derives a safe file name for a recycled entry.
// Example: "status quo" under definition mode → "status_quo.definition.txt".
func entryFileName(entry *gloss.Entry) string {
	word := strings.ReplaceAll(entry.Word, " ", "_")
	return fmt.Sprintf("%s.%s.txt", word, entry.Mode)
}

// Discard is the permanent-delete variant of gloss.Recycler: removed entries
// are dropped without recovery.
type Discard struct{}

// Recycle is a no-op.
func (Discard) Recycle(ctx context.Context, entries []*gloss.Entry) error {
	return nil
}
