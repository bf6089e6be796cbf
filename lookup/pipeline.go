// Package lookup provides the lookup pipeline orchestration.
// It coordinates the cache check, remote fetch, content extraction,
// plain-text conversion, and write-through persistence of results.
package lookup

import (
	"context"
	"io"
	"log/slog"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// Ensure Pipeline implements gloss.LookupService at compile time.
var _ gloss.LookupService = (*Pipeline)(nil)

// Pipeline resolves lookups read-through: cache check, then on a miss
// fetch, extract, and convert in sequence, persisting the result before
// returning it. Each invocation is strictly sequential; any stage failure
// aborts the remaining stages.
type Pipeline struct {
	Fetcher   gloss.Fetcher
	Extractor gloss.Extractor
	Converter gloss.Converter
	Entries   gloss.EntryService

	// Refresh skips the cache check and replaces any stored entry with the
	// freshly fetched result. Backs the CLI's --fetch-update flag.
	Refresh bool

	// Logger receives cache and persistence warnings. Nil discards them.
	Logger *slog.Logger
}

// Lookup resolves a (word, mode) query.
//
// A cache hit returns the stored text without touching the network,
// extractor, or converter. On a miss the full pipeline runs; the converted
// text is written to the cache before being returned, but a persistence
// failure only degrades to a warning: the answer's correctness must not
// depend on cache durability. A "not found" outcome is never cached.
func (p *Pipeline) Lookup(ctx context.Context, word string, mode gloss.Mode) (*gloss.Outcome, error) {
	word = gloss.Normalize(word)
	if word == "" {
		return nil, gloss.Errorf(gloss.EINVALID, "word required")
	}
	if !mode.Valid() {
		return nil, gloss.Errorf(gloss.EINVALID, "unknown mode %q", mode)
	}

	if !p.Refresh {
		entry, err := p.Entries.FindEntry(ctx, word, mode)
		if err == nil {
			return &gloss.Outcome{Text: entry.Text}, nil
		}
		if gloss.ErrorCode(err) != gloss.ENOTFOUND {
			// An unreadable store is non-fatal on the read path as long as
			// a fresh fetch can still satisfy the request.
			p.logger().Warn("cache read failed, falling back to fetch",
				"word", word,
				"mode", mode,
				"err", err,
			)
		}
	}

	doc, err := p.Fetcher.Fetch(ctx, word, mode)
	if err != nil {
		return nil, err
	}

	extraction, err := p.Extractor.Extract(doc, mode)
	if err != nil {
		return nil, err
	}

	// A disambiguation page is surfaced as-is: nothing to convert, nothing
	// worth caching under the misspelled key.
	if extraction.Fragment == nil {
		return &gloss.Outcome{Suggestions: extraction.Suggestions}, nil
	}

	text, err := p.Converter.Convert(ctx, extraction.Fragment)
	if err != nil {
		return nil, err
	}

	entry := &gloss.Entry{Word: word, Mode: mode, Text: text}
	if err := p.persist(ctx, entry); err != nil {
		p.logger().Warn("failed to cache result",
			"word", word,
			"mode", mode,
			"err", err,
		)
	}

	return &gloss.Outcome{Text: text}, nil
}

func (p *Pipeline) persist(ctx context.Context, entry *gloss.Entry) error {
	if p.Refresh {
		return p.Entries.ReplaceEntry(ctx, entry)
	}
	return p.Entries.CreateEntry(ctx, entry)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
