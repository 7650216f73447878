package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scorelib"
	"github.com/fwojciec/scorelib/fs"
	"github.com/fwojciec/scorelib/library"
	"github.com/fwojciec/scorelib/pdfcpu"
	"github.com/fwojciec/scorelib/pdftoppm"
	scoreslog "github.com/fwojciec/scorelib/slog"
	"github.com/fwojciec/scorelib/sqlite"
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
	// Library root directory. Set before calling Run().
	RootPath string

	// SQLite database backing the catalog when --sqlite-index is given.
	DB *sqlite.DB

	// Library service, exposed for end-to-end testing.
	Library *library.Library
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		RootPath: defaultRootPath(),
	}
}

// Close gracefully stops the program, waiting for any in-flight thumbnail
// renders so their files land before the process exits.
func (m *Main) Close() error {
	if m.Library != nil {
		m.Library.Wait()
	}
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
		kong.Name("scorelib"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scorelib --help' to see available commands")
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

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	paths := fs.NewPaths(m.RootPath)
	if err := paths.EnsureStructure(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SCORELIB_ROOT to use a different library path\n")
		return fmt.Errorf("failed to initialize library at %q: %w", m.RootPath, err)
	}

	var catalog scorelib.CatalogStore
	if cli.SQLiteIndex != "" {
		m.DB = sqlite.NewDB(cli.SQLiteIndex)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open catalog database at %q: %w", cli.SQLiteIndex, err)
		}
		catalog = sqlite.NewCatalogStore(m.DB)
	} else {
		catalog = fs.NewCatalogStore(paths)
	}
	defer m.Close()

	scores := fs.NewScoreStore(paths)
	m.Library = &library.Library{
		Metadata:   fs.NewMetadataStore(paths),
		Catalog:    scoreslog.NewCatalog(catalog, logger),
		Config:     fs.NewConfigStore(paths),
		Scores:     scores,
		Validator:  pdfcpu.NewValidator(),
		Thumbnails: scoreslog.NewThumbnailGenerator(pdftoppm.NewGenerator(), logger),
	}

	deps.Library = m.Library
	deps.Config = m.Library.Config
	deps.Scores = scores

	return kongCtx.Run(deps)
}

func defaultRootPath() string {
	if path := os.Getenv("SCORELIB_ROOT"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scorelib"
	}
	return filepath.Join(home, ".scorelib")
}
