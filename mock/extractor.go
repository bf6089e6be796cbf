package mock

import gloss "github.com/theodore-s-beers/gloss-word"

var _ gloss.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of gloss.Extractor.
type Extractor struct {
	ExtractFn func(doc *gloss.Document, mode gloss.Mode) (*gloss.Extraction, error)
}

func (e *Extractor) Extract(doc *gloss.Document, mode gloss.Mode) (*gloss.Extraction, error) {
	return e.ExtractFn(doc, mode)
}
