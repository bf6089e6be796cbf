// Package slog provides logging decorators for gloss services.
package slog

import (
	"context"
	"log/slog"
	"time"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// Ensure LoggingFetcher implements gloss.Fetcher.
var _ gloss.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   gloss.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next gloss.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, word string, mode gloss.Mode) (doc *gloss.Document, err error) {
	defer func(begin time.Time) {
		size := 0
		if doc != nil {
			size = len(doc.HTML)
		}
		f.logger.Info("remote fetch",
			"word", word,
			"mode", mode,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, word, mode)
}
