package main

import (
	"fmt"
	"strings"

	gloss "github.com/theodore-s-beers/gloss-word"
	"github.com/theodore-s-beers/gloss-word/lookup"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	word := strings.Join(c.Word, " ")

	mode := gloss.ModeDefinition
	if c.Etymology {
		mode = gloss.ModeEtymology
	}

	pipeline := &lookup.Pipeline{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Entries:   deps.Entries,
		Refresh:   c.FetchUpdate,
		Logger:    deps.Logger,
	}

	outcome, err := pipeline.Lookup(deps.Ctx, word, mode)
	if err != nil {
		return formatLookupError(word, mode, err)
	}

	if len(outcome.Suggestions) > 0 {
		fmt.Fprintf(deps.Stdout, "Did you mean:\n")
		for _, s := range outcome.Suggestions {
			fmt.Fprintf(deps.Stdout, "  %s\n", s)
		}
		return nil
	}

	fmt.Fprint(deps.Stdout, ensureTrailingNewline(outcome.Text))
	return nil
}

// formatLookupError maps pipeline failures to user-facing messages.
func formatLookupError(word string, mode gloss.Mode, err error) error {
	switch gloss.ErrorCode(err) {
	case gloss.ENOTFOUND:
		if mode == gloss.ModeEtymology {
			return fmt.Errorf("no etymology found for %q", word)
		}
		return fmt.Errorf("no definition found for %q", word)
	case gloss.ENOCONTENT:
		return fmt.Errorf("no usable content found for %q", word)
	case gloss.ENETWORK:
		return fmt.Errorf("network error: %s", gloss.ErrorMessage(err))
	case gloss.EUNAVAILABLE:
		return fmt.Errorf("%s", gloss.ErrorMessage(err))
	default:
		return fmt.Errorf("lookup failed: %s", gloss.ErrorMessage(err))
	}
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
