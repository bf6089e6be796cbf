package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	gloss "github.com/theodore-s-beers/gloss-word"
	"github.com/theodore-s-beers/gloss-word/fs"
	"github.com/theodore-s-beers/gloss-word/mock"
	"github.com/theodore-s-beers/gloss-word/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDeps returns Dependencies with buffers for output and mocks that
// fail the test if an unexpected service is invoked.
func newTestDeps(t *testing.T) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
				t.Fatal("unexpected fetch")
				return nil, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(doc *gloss.Document, mode gloss.Mode) (*gloss.Extraction, error) {
				t.Fatal("unexpected extract")
				return nil, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(ctx context.Context, fragment *gloss.Fragment) (string, error) {
				t.Fatal("unexpected convert")
				return "", nil
			},
		},
	}
	return deps, &stdout, &stderr
}

func TestLookupCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints cached text", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				assert.Equal(t, "lighthouse", word)
				assert.Equal(t, gloss.ModeDefinition, mode)
				return &gloss.Entry{Word: word, Mode: mode, Text: "light·house\n\n1. a tower\n"}, nil
			},
		}

		cmd := &LookupCmd{Word: []string{"lighthouse"}}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "light·house\n\n1. a tower\n", stdout.String())
	})

	t.Run("joins multi-word phrase before lookup", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				assert.Equal(t, "status quo", word)
				return &gloss.Entry{Word: word, Mode: mode, Text: "existing state\n"}, nil
			},
		}

		cmd := &LookupCmd{Word: []string{"status", "quo"}}
		require.NoError(t, cmd.Run(deps))
	})

	t.Run("etymology flag selects etymology mode", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				assert.Equal(t, gloss.ModeEtymology, mode)
				return &gloss.Entry{Word: word, Mode: mode, Text: "from Old English\n"}, nil
			},
		}

		cmd := &LookupCmd{Word: []string{"lighthouse"}, Etymology: true}
		require.NoError(t, cmd.Run(deps))
	})

	t.Run("prints suggestions for unrecognized word", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				return nil, gloss.Errorf(gloss.ENOTFOUND, "no cached entry")
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
				return &gloss.Document{HTML: "<html></html>"}, nil
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(doc *gloss.Document, mode gloss.Mode) (*gloss.Extraction, error) {
				return &gloss.Extraction{Suggestions: []string{"lighthouse", "lightheaded"}}, nil
			},
		}

		cmd := &LookupCmd{Word: []string{"lighthosue"}}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Did you mean:")
		assert.Contains(t, stdout.String(), "  lighthouse\n")
		assert.Contains(t, stdout.String(), "  lightheaded\n")
	})

	t.Run("fetch-update flag replaces cached entry", func(t *testing.T) {
		t.Parallel()

		var replaced bool
		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				t.Fatal("cache must be bypassed under fetch-update")
				return nil, nil
			},
			ReplaceEntryFn: func(ctx context.Context, entry *gloss.Entry) error {
				replaced = true
				assert.Equal(t, "fresh text", entry.Text)
				return nil
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
				return &gloss.Document{HTML: "<html>x</html>"}, nil
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(doc *gloss.Document, mode gloss.Mode) (*gloss.Extraction, error) {
				return &gloss.Extraction{Fragment: &gloss.Fragment{Mode: mode, Sections: []string{"<div>x</div>"}}}, nil
			},
		}
		deps.Converter = &mock.Converter{
			ConvertFn: func(ctx context.Context, fragment *gloss.Fragment) (string, error) {
				return "fresh text", nil
			},
		}

		cmd := &LookupCmd{Word: []string{"lighthouse"}, FetchUpdate: true}
		require.NoError(t, cmd.Run(deps))
		assert.True(t, replaced)
		assert.Equal(t, "fresh text\n", stdout.String())
	})

	t.Run("not found yields friendly error", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				return nil, gloss.Errorf(gloss.ENOTFOUND, "no cached entry")
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
				return nil, gloss.Errorf(gloss.ENOTFOUND, "no entry for %q", word)
			},
		}

		cmd := &LookupCmd{Word: []string{"zzzzzz"}}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no definition found for "zzzzzz"`)
	})

	t.Run("etymology not found names the mode", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			FindEntryFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Entry, error) {
				return nil, gloss.Errorf(gloss.ENOTFOUND, "no cached entry")
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, word string, mode gloss.Mode) (*gloss.Document, error) {
				return nil, gloss.Errorf(gloss.ENOTFOUND, "no entry for %q", word)
			},
		}

		cmd := &LookupCmd{Word: []string{"zzzzzz"}, Etymology: true}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no etymology found for "zzzzzz"`)
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("empty cache", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			ListEntriesFn: func(ctx context.Context) ([]*gloss.Entry, error) {
				return nil, nil
			},
		}

		cmd := &ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "No cached entries.\n", stdout.String())
	})

	t.Run("lists entries with timestamp and mode", func(t *testing.T) {
		t.Parallel()

		created := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			ListEntriesFn: func(ctx context.Context) ([]*gloss.Entry, error) {
				return []*gloss.Entry{
					{Word: "lighthouse", Mode: gloss.ModeDefinition, Text: "a tower", CreatedAt: created},
					{Word: "filigree", Mode: gloss.ModeEtymology, Text: "from Latin", CreatedAt: created.Add(time.Hour)},
				}, nil
			},
		}

		cmd := &ListCmd{}
		require.NoError(t, cmd.Run(deps))
		output := stdout.String()
		assert.Contains(t, output, "2026-03-14 09:26")
		assert.Contains(t, output, "definition")
		assert.Contains(t, output, "lighthouse")
		assert.Contains(t, output, "etymology")
		assert.Contains(t, output, "filigree")
	})
}

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("clears whole cache without word", func(t *testing.T) {
		t.Parallel()

		var cleared bool
		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			DeleteAllEntriesFn: func(ctx context.Context) error {
				cleared = true
				return nil
			},
		}

		cmd := &ClearCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.True(t, cleared)
		assert.Equal(t, "Cache cleared.\n", stdout.String())
	})

	t.Run("removes single entry", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			DeleteEntryFn: func(ctx context.Context, word string, mode gloss.Mode) error {
				assert.Equal(t, "lighthouse", word)
				assert.Equal(t, gloss.ModeEtymology, mode)
				return nil
			},
		}

		cmd := &ClearCmd{Word: []string{"lighthouse"}, Etymology: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), `Removed etymology entry for "lighthouse".`)
	})

	t.Run("purge uses the permanent-delete store", func(t *testing.T) {
		t.Parallel()

		var purged bool
		deps, _, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			DeleteAllEntriesFn: func(ctx context.Context) error {
				t.Fatal("recoverable store must not be used under --purge")
				return nil
			},
		}
		deps.PurgeEntries = &mock.EntryService{
			DeleteAllEntriesFn: func(ctx context.Context) error {
				purged = true
				return nil
			},
		}

		cmd := &ClearCmd{Purge: true}
		require.NoError(t, cmd.Run(deps))
		assert.True(t, purged)
	})

	t.Run("missing entry yields friendly error", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps(t)
		deps.Entries = &mock.EntryService{
			DeleteEntryFn: func(ctx context.Context, word string, mode gloss.Mode) error {
				return gloss.Errorf(gloss.ENOTFOUND, "no cached entry")
			},
		}

		cmd := &ClearCmd{Word: []string{"zzzzzz"}}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no cached definition entry for "zzzzzz"`)
	})
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("list on fresh cache", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := &Main{
			DBPath:   filepath.Join(dir, "entries.sqlite"),
			TrashDir: filepath.Join(dir, "trash"),
		}

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "No cached entries.\n", stdout.String())
	})

	t.Run("lookup served from pre-seeded cache", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		dbPath := filepath.Join(dir, "entries.sqlite")

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		svc := sqlite.NewEntryService(db, fs.Discard{})
		require.NoError(t, svc.CreateEntry(context.Background(), &gloss.Entry{
			Word: "lighthouse",
			Mode: gloss.ModeDefinition,
			Text: "light·house\n\n1. a tower with a light\n",
		}))
		require.NoError(t, db.Close())

		m := &Main{
			DBPath:   dbPath,
			TrashDir: filepath.Join(dir, "trash"),
		}

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"lighthouse"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "light·house\n\n1. a tower with a light\n", stdout.String())
	})

	t.Run("no arguments returns usage error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := &Main{
			DBPath:   filepath.Join(dir, "entries.sqlite"),
			TrashDir: filepath.Join(dir, "trash"),
		}

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no word specified")
	})
}
