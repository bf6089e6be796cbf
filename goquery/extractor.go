// Package goquery provides the selector-based implementation of
// gloss.Extractor, written against the structure of the two remote sources.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	gloss "github.com/theodore-s-beers/gloss-word"
)

// Selectors for the relevant region of each source's markup. Any breaking
// change to a site's structure degrades to ENOCONTENT, never a crash.
const (
	definitionSectionSelector = `div#Definition section[data-src="hm"]`
	definitionElementSelector = "div.pseg, h2, hr.hmsep"
	etymologySectionSelector  = "h2.scroll-m-16 span, section.-mt-4"
	suggestionsSelector       = "ul.suggestions li"
)

// thesaurusMarker splits a definition page ahead of parsing. Everything at
// and after the marker is thesaurus content we never select from, and
// skipping it avoids parsing the bulk of the document.
const thesaurusMarker = `<div id="Thesaurus">`

// Ensure Extractor implements gloss.Extractor at compile time.
var _ gloss.Extractor = (*Extractor)(nil)

// Extractor isolates the sense or etymology blocks of a fetched page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract applies the mode's selectors to the document. Matched sections are
// returned as outer HTML in source document order. A definition page with no
// entry block but a "did you mean" list yields Suggestions instead.
func (e *Extractor) Extract(doc *gloss.Document, mode gloss.Mode) (*gloss.Extraction, error) {
	html := doc.HTML
	if mode == gloss.ModeDefinition {
		html, _, _ = strings.Cut(html, thesaurusMarker)
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gloss.Errorf(gloss.ENOCONTENT, "failed to parse document from %s: %v", doc.SourceURL, err)
	}

	var sections []string
	if mode == gloss.ModeEtymology {
		// An etymology page can carry multiple sections (one per sense).
		parsed.Find(etymologySectionSelector).Each(func(_ int, sel *goquery.Selection) {
			if markup, err := goquery.OuterHtml(sel); err == nil {
				sections = append(sections, markup)
			}
		})
	} else {
		// A definition page has at most one entry block; collect the
		// desired elements from the first (only) matched section.
		entry := parsed.Find(definitionSectionSelector).First()
		entry.Find(definitionElementSelector).Each(func(_ int, sel *goquery.Selection) {
			if markup, err := goquery.OuterHtml(sel); err == nil {
				sections = append(sections, markup)
			}
		})
	}

	if len(sections) > 0 {
		return &gloss.Extraction{
			Fragment: &gloss.Fragment{Mode: mode, Sections: sections},
		}, nil
	}

	// No entry block. A definition page may instead be a disambiguation
	// page listing alternate headwords.
	if mode == gloss.ModeDefinition {
		var suggestions []string
		parsed.Find(suggestionsSelector).Each(func(_ int, sel *goquery.Selection) {
			if word := strings.TrimSpace(sel.Text()); word != "" {
				suggestions = append(suggestions, word)
			}
		})
		if len(suggestions) > 0 {
			return &gloss.Extraction{Suggestions: suggestions}, nil
		}
	}

	return nil, gloss.Errorf(gloss.ENOCONTENT, "no %s content recognized at %s", mode, doc.SourceURL)
}
