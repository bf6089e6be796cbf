package main

import (
	"fmt"
	"strings"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	entries := deps.Entries
	if c.Purge {
		entries = deps.PurgeEntries
	}

	if len(c.Word) == 0 {
		if err := entries.DeleteAllEntries(deps.Ctx); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintln(deps.Stdout, "Cache cleared.")
		return nil
	}

	word := strings.Join(c.Word, " ")
	mode := gloss.ModeDefinition
	if c.Etymology {
		mode = gloss.ModeEtymology
	}

	if err := entries.DeleteEntry(deps.Ctx, word, mode); err != nil {
		if gloss.ErrorCode(err) == gloss.ENOTFOUND {
			return fmt.Errorf("no cached %s entry for %q", mode, word)
		}
		return fmt.Errorf("failed to remove entry: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Removed %s entry for %q.\n", mode, word)
	return nil
}
