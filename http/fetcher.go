// Package http provides the HTTP-based implementation of gloss.Fetcher,
// retrieving dictionary pages from the mode-specific remote sources.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	gloss "github.com/theodore-s-beers/gloss-word"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Default remote sources per mode.
const (
	DefaultDefinitionBaseURL = "https://www.thefreedictionary.com"
	DefaultEtymologyBaseURL  = "https://www.etymonline.com/word"
)

// Ensure Fetcher implements gloss.Fetcher at compile time.
var _ gloss.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves dictionary pages over HTTP. Both remote sources serve
// usable content without JavaScript rendering, so a plain GET suffices.
type Fetcher struct {
	client            *http.Client
	timeout           time.Duration
	definitionBaseURL string
	etymologyBaseURL  string
	userAgent         string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithDefinitionBaseURL overrides the definition source. Used in tests.
func WithDefinitionBaseURL(url string) Option {
	return func(f *Fetcher) {
		f.definitionBaseURL = strings.TrimSuffix(url, "/")
	}
}

// WithEtymologyBaseURL overrides the etymology source. Used in tests.
func WithEtymologyBaseURL(url string) Option {
	return func(f *Fetcher) {
		f.etymologyBaseURL = strings.TrimSuffix(url, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:           DefaultFetchTimeout,
		definitionBaseURL: DefaultDefinitionBaseURL,
		etymologyBaseURL:  DefaultEtymologyBaseURL,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// LookupURL builds the request URL for a word and mode. The word is
// normalized first; spaces encode as "+" for definitions and "%20" for
// etymologies, matching what each site expects.
func (f *Fetcher) LookupURL(word string, mode gloss.Mode) string {
	word = gloss.Normalize(word)
	if mode == gloss.ModeEtymology {
		return f.etymologyBaseURL + "/" + strings.ReplaceAll(word, " ", "%20")
	}
	return f.definitionBaseURL + "/" + strings.ReplaceAll(word, " ", "+")
}

// Fetch issues a single blocking GET for the word against the mode's source.
// A non-2xx response or empty body means the source has no entry for the
// word (ENOTFOUND); transport failures are ENETWORK. Neither outcome is
// retried: a manual lookup doesn't warrant automatic retry policy.
func (f *Fetcher) Fetch(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
	url := f.LookupURL(word, mode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, gloss.Errorf(gloss.EINVALID, "invalid lookup URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, gloss.Errorf(gloss.ENETWORK, "failed to reach %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, gloss.Errorf(gloss.ENOTFOUND, "no %s found for %q", mode, gloss.Normalize(word))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gloss.Errorf(gloss.ENETWORK, "failed to read response from %s: %v", url, err)
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, gloss.Errorf(gloss.ENOTFOUND, "no %s found for %q", mode, gloss.Normalize(word))
	}

	return &gloss.Document{HTML: string(body), SourceURL: url}, nil
}
