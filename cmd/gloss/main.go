package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/theodore-s-beers/gloss-word/fs"
	"github.com/theodore-s-beers/gloss-word/goquery"
	glosshttp "github.com/theodore-s-beers/gloss-word/http"
	"github.com/theodore-s-beers/gloss-word/pandoc"
	glosslog "github.com/theodore-s-beers/gloss-word/slog"
	"github.com/theodore-s-beers/gloss-word/sqlite"
)

// userAgent identifies the tool to the remote sources.
const userAgent = "gloss-word (+https://github.com/theodore-s-beers/gloss-word)"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Directory recoverable deletions are written to.
	TrashDir string

	// SQLite database used by the cache store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	cacheDir := defaultCacheDir()
	return &Main{
		DBPath:   defaultDBPath(cacheDir),
		TrashDir: filepath.Join(cacheDir, "trash"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gloss"),
		kong.Description("Look up definitions and etymologies of English words, with local caching."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no word specified. Run 'gloss --help' to see usage")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GLOSS_DB to use a different cache path\n")
		return fmt.Errorf("failed to open cache at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire services into dependencies
	deps.Entries = sqlite.NewEntryService(m.DB, fs.NewTrashBin(m.TrashDir))
	deps.PurgeEntries = sqlite.NewEntryService(m.DB, fs.Discard{})
	deps.Fetcher = glosshttp.NewFetcher(glosshttp.WithUserAgent(userAgent))
	deps.Extractor = goquery.NewExtractor()
	deps.Converter = pandoc.NewConverter()

	if cli.Verbose {
		deps.Entries = glosslog.NewLoggingEntryService(deps.Entries, logger)
		deps.Fetcher = glosslog.NewLoggingFetcher(deps.Fetcher, logger)
	}

	return kongCtx.Run(deps)
}

// defaultCacheDir returns the per-user cache directory for the tool.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".gloss-word"
	}
	return filepath.Join(base, "gloss-word")
}

// defaultDBPath returns the cache database path, honoring GLOSS_DB.
func defaultDBPath(cacheDir string) string {
	if path := os.Getenv("GLOSS_DB"); path != "" {
		return path
	}
	_ = os.MkdirAll(cacheDir, 0o755)
	return filepath.Join(cacheDir, "entries.sqlite")
}
