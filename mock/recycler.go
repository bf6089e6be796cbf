package mock

import (
	"context"

	gloss "github.com/theodore-s-beers/gloss-word"
)

var _ gloss.Recycler = (*Recycler)(nil)

// Recycler is a mock implementation of gloss.Recycler.
type Recycler struct {
	RecycleFn func(ctx context.Context, entries []*gloss.Entry) error
}

func (r *Recycler) Recycle(ctx context.Context, entries []*gloss.Entry) error {
	return r.RecycleFn(ctx, entries)
}
