package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch/freshness"
	"github.com/fwojciec/docsearch/github"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/snapshot"
	"github.com/fwojciec/docsearch/sqlite"
)

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
	// Default database path, overridable with --db. Set before calling Run().
	DBPath string

	// API root for release lookups. Empty means api.github.com.
	APIURL string

	// Now returns the current time.
	Now func() time.Time

	// SQLite database backing the snapshot cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Now:    time.Now,
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
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search documentation entries from a cached release index."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"db":      m.DBPath,
			"repo":    github.DefaultOwner + "/" + github.DefaultRepo,
			"timeout": github.DefaultTimeout.String(),
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	cache := snapshot.NewStore(sqlite.NewKVStore(m.DB))
	if m.Now != nil {
		cache.Now = m.Now
	}
	deps.Cache = cache

	owner, repo, err := github.ParseRepository(cli.Repo)
	if err != nil {
		return err
	}
	opts := []github.Option{github.WithTimeout(cli.Timeout)}
	if m.APIURL != "" {
		opts = append(opts, github.WithBaseURL(m.APIURL))
	}
	resolver, err := github.NewReleaseResolver(owner, repo, opts...)
	if err != nil {
		return err
	}

	coordinator := freshness.NewCoordinator(cache, dsslog.NewLoggingReleaseResolver(resolver, logger))
	coordinator.Logger = logger
	if m.Now != nil {
		coordinator.Now = m.Now
	}
	deps.Metadata = dsslog.NewLoggingMetadataService(coordinator, logger)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsearch.db"
	}
	dir := filepath.Join(home, ".docsearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsearch.db")
}
