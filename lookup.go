package gloss

import "context"

// Outcome is the result of a successful lookup: either final plain text, or
// a list of suggested alternate words when the remote source returned a
// disambiguation page instead of an entry.
type Outcome struct {
	Text        string
	Suggestions []string
}

// LookupService resolves a (word, mode) query to an Outcome, consulting the
// cache first and the remote source only on a miss.
type LookupService interface {
	Lookup(ctx context.Context, word string, mode Mode) (*Outcome, error)
}
