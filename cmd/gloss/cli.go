package main

import (
	"context"
	"io"
	"log/slog"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Entries is the cache store; deletions through it are recoverable.
	Entries gloss.EntryService

	// PurgeEntries is the same store with permanent deletion, used by
	// "clear --purge".
	PurgeEntries gloss.EntryService

	Fetcher   gloss.Fetcher
	Extractor gloss.Extractor
	Converter gloss.Converter
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`

	Lookup LookupCmd `cmd:"" default:"withargs" help:"Look up a word or phrase"`
	List   ListCmd   `cmd:"" help:"List cached entries"`
	Clear  ClearCmd  `cmd:"" help:"Clear one cached entry, or the whole cache"`
}

// LookupCmd is the "lookup" subcommand and the default command.
type LookupCmd struct {
	Word        []string `arg:"" help:"The word or phrase to look up"`
	Etymology   bool     `short:"e" help:"Search for etymology instead of definition"`
	FetchUpdate bool     `short:"f" help:"Fetch new data; update cache if applicable"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Word      []string `arg:"" optional:"" help:"Word to remove; omit to clear everything"`
	Etymology bool     `short:"e" help:"Remove the etymology entry instead of the definition"`
	Purge     bool     `help:"Delete permanently instead of moving content to the trash directory"`
}
