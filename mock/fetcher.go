package mock

import (
	"context"

	gloss "github.com/theodore-s-beers/gloss-word"
)

var _ gloss.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gloss.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error)
}

func (f *Fetcher) Fetch(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
	return f.FetchFn(ctx, word, mode)
}
