package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/build"
	"github.com/fwojciec/locwidget/fs"
	"github.com/fwojciec/locwidget/goquery"
	"github.com/fwojciec/locwidget/htmltomarkdown"
	lochttp "github.com/fwojciec/locwidget/http"
	"github.com/fwojciec/locwidget/markdown"
	locslog "github.com/fwojciec/locwidget/slog"
	"github.com/fwojciec/locwidget/sqlite"
	"github.com/fwojciec/locwidget/yaml"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// ReportedError marks an error the command has already written to stderr.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// ReportError writes err to w unless a command already reported it.
func ReportError(w io.Writer, err error) {
	var reported *ReportedError
	if err == nil || errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(w, "error: %s\n", describe(err))
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding dataset snapshots. Opened only by commands
	// that need it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("locwidget"),
		kong.Description("Build, check and serve the facility directory widget"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locwidget --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.Dataset != "" {
		cfg.Dataset = cli.Dataset
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher := lochttp.NewFetcher(lochttp.WithTimeout(cfg.Timeout))
	defer fetcher.Close()
	deps.Fetcher = locslog.NewLoggingFetcher(fetcher, deps.Logger)

	// Open database only when snapshots are read or written
	if cmd == "sync" || cmd == "snapshots" || cfg.Dataset == locwidget.SnapshotSource {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LOCWIDGET_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Snapshots = locslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), deps.Logger)
	}

	switch cmd {
	case "extract":
		out := cli.Extract.Out
		if out == "" {
			out = cfg.Out
		}
		store := fs.NewBundleStoreForPath(out)
		deps.Builder = &build.Builder{
			Instructions: markdown.NewInstructionsWriter(),
			Store:        locslog.NewLoggingBundleStore(store, store.Dir(), deps.Logger),
		}
		deps.Converter = htmltomarkdown.NewConverter()
	case "check":
		deps.Checker = goquery.NewHostChecker()
	case "list", "serve", "sync":
		loader, err := newDatasetLoader(cfg, deps.Fetcher, deps.Snapshots)
		if err != nil {
			return err
		}
		deps.Loader = locslog.NewLoggingDatasetLoader(loader, cfg.Dataset, deps.Logger)
		deps.Listings = markdown.NewListingWriter()
	}

	if err := kongCtx.Run(deps); err != nil {
		return &ReportedError{Err: err}
	}
	return nil
}

// loadConfig merges the configuration file, if any, over the defaults.
// An explicitly named file must exist.
func loadConfig(path string) (locwidget.Config, error) {
	cfg := locwidget.DefaultConfig()

	found := yaml.FindConfigFile(path)
	if found == "" {
		if path != "" {
			return cfg, fmt.Errorf("config file %q: %w", path, yaml.ErrConfigNotFound)
		}
		return cfg, nil
	}

	fileCfg, err := yaml.LoadConfig(found)
	if err != nil {
		if errors.Is(err, yaml.ErrConfigNotFound) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg.Merge(fileCfg), nil
}

// newDatasetLoader selects the dataset loader for the configured source.
func newDatasetLoader(cfg locwidget.Config, fetcher locwidget.Fetcher, snapshots locwidget.SnapshotService) (locwidget.DatasetLoader, error) {
	switch {
	case cfg.Dataset == locwidget.SnapshotSource:
		return sqlite.NewDatasetLoader(snapshots), nil
	case cfg.IsRemoteDataset():
		return lochttp.NewDatasetLoader(fetcher, cfg.Dataset), nil
	case cfg.Dataset != "":
		return fs.NewDatasetLoader(cfg.Dataset), nil
	default:
		return nil, locwidget.Errorf(locwidget.EINVALID, "dataset source required")
	}
}

func defaultDBPath() string {
	if path := os.Getenv("LOCWIDGET_DB"); path != "" {
		return path
	}
	return yaml.DefaultDBPath()
}
