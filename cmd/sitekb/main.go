package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitekb"
	"github.com/fwojciec/sitekb/crawl"
	"github.com/fwojciec/sitekb/gemini"
	"github.com/fwojciec/sitekb/goquery"
	kbhtml "github.com/fwojciec/sitekb/html"
	"github.com/fwojciec/sitekb/htmltomarkdown"
	kbhttp "github.com/fwojciec/sitekb/http"
	"github.com/fwojciec/sitekb/readability"
	"github.com/fwojciec/sitekb/rod"
	kbslog "github.com/fwojciec/sitekb/slog"
	"github.com/fwojciec/sitekb/sqlite"
	"github.com/fwojciec/sitekb/trafilatura"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService sitekb.CollectionService
	DocumentService   sitekb.DocumentService
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
		kong.Name("sitekb"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitekb --help' to see available commands")
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
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEKB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CollectionService = sqlite.NewCollectionService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Collections = m.CollectionService
	deps.Documents = m.DocumentService
	deps.Sitemaps = kbslog.NewLoggingSitemapService(kbhttp.NewSitemapService(nil), logger)

	// The crawler is only assembled for a real crawl; preview just needs
	// sitemap discovery.
	if cmd == "add" && !cli.Add.Preview {
		fetcher, err := newFetcher(cli.Add.Render, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		var translator sitekb.Translator
		if cli.Add.TranslateTo != "" {
			translator = kbslog.NewLoggingTranslator(
				gemini.NewTranslator(os.Getenv("GEMINI_API_KEY"), logger), logger)
		}

		deps.Crawler = &crawl.Crawler{
			Sitemaps:    deps.Sitemaps,
			Fetcher:     kbslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   newExtractor(cli.Add.Extract),
			Links:       goquery.NewLinkExtractor(),
			Translator:  translator,
			Limiter:     crawl.NewDomainLimiter(cli.Add.RPS),
			Concurrency: cli.Add.Concurrency,
			MaxPages:    cli.Add.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the plain HTTP fetcher, or a headless Chrome fetcher
// when rendering is requested.
func newFetcher(render bool, stderr io.Writer) (sitekb.Fetcher, error) {
	if !render {
		return kbhttp.NewFetcher(), nil
	}
	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// newExtractor maps the --extract flag to an extractor implementation.
func newExtractor(mode string) sitekb.Extractor {
	switch mode {
	case "markdown":
		return htmltomarkdown.NewExtractor()
	case "main":
		return trafilatura.NewExtractor()
	case "article":
		return readability.NewExtractor()
	default:
		return kbhtml.NewExtractor()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SITEKB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitekb.db"
	}
	dir := filepath.Join(home, ".sitekb")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitekb.db")
}
