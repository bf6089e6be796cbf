package gloss

import "context"

// Converter converts an extracted markup fragment into clean plain text.
type Converter interface {
	// Convert serializes the fragment and pipes it through an external
	// document-conversion process, returning display-ready plain text.
	// Returns EUNAVAILABLE if the external tool is missing or not
	// executable, and EINTERNAL (with captured diagnostics) if it exits
	// non-zero. The context bounds the subprocess's lifetime.
	Convert(ctx context.Context, fragment *Fragment) (string, error)
}
