package main

import (
	"fmt"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.ListEntries(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to list cached entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached entries.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04"),
			entry.Mode,
			entry.Word,
		)
	}
	return nil
}
