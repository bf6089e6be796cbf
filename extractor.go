package gloss

// Fragment holds the markup sections relevant to a single lookup, in source
// document order. The order is relied upon by the Converter and must be
// preserved exactly: numbered senses must not be reordered.
type Fragment struct {
	Mode     Mode
	Sections []string
}

// Extraction is the outcome of extracting a fetched document.
// Exactly one of Fragment or Suggestions is set: Fragment when the document
// contained the mode's content, Suggestions when it was a disambiguation
// page listing alternate headwords.
type Extraction struct {
	Fragment    *Fragment
	Suggestions []string
}

// Extractor isolates the subset of a document's structure relevant to a mode.
type Extractor interface {
	// Extract applies the mode's structural selectors to the document.
	// Returns ENOCONTENT when the document loaded but its structure did not
	// contain the expected markers (e.g., remote site layout drift).
	Extract(doc *Document, mode Mode) (*Extraction, error)
}
