package mock

import (
	"context"

	gloss "github.com/theodore-s-beers/gloss-word"
)

var _ gloss.Converter = (*Converter)(nil)

// Converter is a mock implementation of gloss.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, fragment *gloss.Fragment) (string, error)
}

func (c *Converter) Convert(ctx context.Context, fragment *gloss.Fragment) (string, error) {
	return c.ConvertFn(ctx, fragment)
}
