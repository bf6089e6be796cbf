package slog

import (
	"context"
	"log/slog"
	"time"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// Ensure LoggingEntryService implements gloss.EntryService.
var _ gloss.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with debug logging for cache
// reads and writes.
type LoggingEntryService struct {
	next   gloss.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next gloss.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// FindEntry delegates to the wrapped service and logs hit or miss.
func (s *LoggingEntryService) FindEntry(ctx context.Context, word string, mode gloss.Mode) (entry *gloss.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache read",
			"word", word,
			"mode", mode,
			"hit", err == nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntry(ctx, word, mode)
}

// CreateEntry delegates to the wrapped service and logs the write.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, entry *gloss.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache write",
			"word", entry.Word,
			"mode", entry.Mode,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, entry)
}

// ReplaceEntry delegates to the wrapped service and logs the refresh.
func (s *LoggingEntryService) ReplaceEntry(ctx context.Context, entry *gloss.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache refresh",
			"word", entry.Word,
			"mode", entry.Mode,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceEntry(ctx, entry)
}

// ListEntries delegates to the wrapped service.
func (s *LoggingEntryService) ListEntries(ctx context.Context) ([]*gloss.Entry, error) {
	return s.next.ListEntries(ctx)
}

// DeleteEntry delegates to the wrapped service and logs the removal.
func (s *LoggingEntryService) DeleteEntry(ctx context.Context, word string, mode gloss.Mode) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache delete",
			"word", word,
			"mode", mode,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntry(ctx, word, mode)
}

// DeleteAllEntries delegates to the wrapped service and logs the removal.
func (s *LoggingEntryService) DeleteAllEntries(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache clear",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAllEntries(ctx)
}
