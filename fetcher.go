package gloss

import "context"

// Document represents a fetched remote dictionary page. It is transient:
// it exists only within a single pipeline run and is never persisted.
type Document struct {
	HTML      string
	SourceURL string
}

// Fetcher retrieves raw markup for a word from the mode's remote source.
type Fetcher interface {
	// Fetch issues a single blocking request for the word against the
	// mode-specific endpoint and returns the raw document.
	// Returns ENOTFOUND when the remote source has no entry for the word
	// (non-2xx response or empty body) and ENETWORK for connectivity or
	// timeout failures. The context controls timeout and cancellation.
	Fetch(ctx context.Context, word string, mode Mode) (*Document, error)
}
