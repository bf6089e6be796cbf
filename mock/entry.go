package mock

import (
	"context"

	gloss "github.com/theodore-s-beers/gloss-word"
)

var _ gloss.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of gloss.EntryService.
type EntryService struct {
	FindEntryFn        func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error)
	CreateEntryFn      func(ctx context.Context, entry *gloss.Entry) error
	ReplaceEntryFn     func(ctx context.Context, entry *gloss.Entry) error
	ListEntriesFn      func(ctx context.Context) ([]*gloss.Entry, error)
	DeleteEntryFn      func(ctx context.Context, word string, mode gloss.Mode) error
	DeleteAllEntriesFn func(ctx context.Context) error
}

func (s *EntryService) FindEntry(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
	return s.FindEntryFn(ctx, word, mode)
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *gloss.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) ReplaceEntry(ctx context.Context, entry *gloss.Entry) error {
	return s.ReplaceEntryFn(ctx, entry)
}

func (s *EntryService) ListEntries(ctx context.Context) ([]*gloss.Entry, error) {
	return s.ListEntriesFn(ctx)
}

func (s *EntryService) DeleteEntry(ctx context.Context, word string, mode gloss.Mode) error {
	return s.DeleteEntryFn(ctx, word, mode)
}

func (s *EntryService) DeleteAllEntries(ctx context.Context) error {
	return s.DeleteAllEntriesFn(ctx)
}
