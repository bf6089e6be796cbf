package mock

import (
	"context"

	gloss "github.com/theodore-s-beers/gloss-word"
)

var _ gloss.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of gloss.LookupService.
type LookupService struct {
	LookupFn func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Outcome, error)
}

func (s *LookupService) Lookup(ctx context.Context, word string, mode gloss.Mode) (*gloss.Outcome, error) {
	return s.LookupFn(ctx, word, mode)
}
