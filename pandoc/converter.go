// Package pandoc provides the gloss.Converter implementation backed by the
// external pandoc process. Pandoc is a required dependency of the tool; it
// is invoked as a subprocess with markup on stdin and is not reimplemented.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// DefaultBinary is the converter executable looked up on PATH.
const DefaultBinary = "pandoc"

// Substitutions applied between the two conversion passes. A single pass to
// plain text loses the indentation style wanted for sub-senses, so the
// intermediate markdown is adjusted first.
var (
	// Un-bold numbered sense labels: **1.** becomes 1.
	reNumberedLabel = regexp.MustCompile(`\n\*\*(\d+\.)\*\*`)
	// Un-bold and indent lettered sub-sense labels under their parent sense.
	reLetteredLabel = regexp.MustCompile(`\n\*\*([a-z]\.)\*\*`)
	// Figure images at the end of etymology sections carry no text content.
	reFigure = regexp.MustCompile(`(?m)\n\n!\[.+$`)
	// Insert a missing space before the part of speech in a headword line,
	// e.g. "cummerbund(n.)" becomes "cummerbund (n.)".
	rePartOfSpeech = regexp.MustCompile(`(\S)(\([a-z]{1,3}\.\))\n`)
)

// Ensure Converter implements gloss.Converter at compile time.
var _ gloss.Converter = (*Converter)(nil)

// Converter converts extracted markup fragments to plain text via pandoc.
type Converter struct {
	binary string
}

// Option configures a Converter.
type Option func(*Converter)

// WithBinary overrides the pandoc executable path. Used in tests.
func WithBinary(path string) Option {
	return func(c *Converter) {
		c.binary = path
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{binary: DefaultBinary}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert serializes the fragment and runs it through pandoc twice: first to
// markdown, where sense numbering is normalized, then to plain text.
func (c *Converter) Convert(ctx context.Context, fragment *gloss.Fragment) (string, error) {
	if fragment == nil || len(fragment.Sections) == 0 {
		return "", gloss.Errorf(gloss.EINVALID, "empty fragment")
	}

	markup := strings.Join(fragment.Sections, "")

	markdown, err := c.run(ctx, markup, "-f", "html+smart-native_divs", "-t", "markdown", "--wrap=none")
	if err != nil {
		return "", err
	}

	markdown = normalizeMarkdown(markdown, fragment.Mode)

	plain, err := c.run(ctx, markdown, "-t", "plain")
	if err != nil {
		return "", err
	}

	if fragment.Mode == gloss.ModeEtymology {
		plain = rePartOfSpeech.ReplaceAllString(plain, "${1} ${2}\n")
	}

	return plain, nil
}

// run executes one pandoc pass with input on stdin.
func (c *Converter) run(ctx context.Context, input string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", gloss.Errorf(gloss.EINTERNAL, "pandoc exited with status %d: %s",
				exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", gloss.Errorf(gloss.EUNAVAILABLE,
			"pandoc is not available (%v); install pandoc and ensure it is on PATH", err)
	}

	return stdout.String(), nil
}

// normalizeMarkdown applies the mode's deterministic substitutions to the
// intermediate markdown.
func normalizeMarkdown(markdown string, mode gloss.Mode) string {
	if mode == gloss.ModeEtymology {
		markdown = reFigure.ReplaceAllString(markdown, "")
	} else {
		markdown = reNumberedLabel.ReplaceAllString(markdown, "\n${1}")
		markdown = reLetteredLabel.ReplaceAllString(markdown, "\n    ${1}")
	}

	// Pandoc escapes double quotes in the intermediate markdown; the final
	// plain-text pass must see them unescaped.
	return strings.ReplaceAll(markdown, `\\"`, `"`)
}
