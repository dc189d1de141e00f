package main

import (
	"context"
	"io"

	"github.com/fwojciec/sitekb"
	"github.com/fwojciec/sitekb/crawl"
	"github.com/fwojciec/sitekb/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Collections sitekb.CollectionService
	Documents   sitekb.DocumentService
	Sitemaps    sitekb.SitemapService
	Crawler     *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches, discovery and translation to stderr"`

	Add    AddCmd    `cmd:"" help:"Create a collection and crawl its seed URLs"`
	List   ListCmd   `cmd:"" help:"List all collections"`
	Docs   DocsCmd   `cmd:"" help:"List documents in a collection"`
	Export ExportCmd `cmd:"" help:"Export a collection as markdown files"`
	Delete DeleteCmd `cmd:"" help:"Delete a collection and its documents"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name string   `arg:"" help:"Collection name"`
	URLs []string `arg:"" name:"url" help:"Seed URLs (first determines the crawl domain)"`

	Recursive   bool    `short:"r" help:"Follow in-domain links when the site has no sitemap"`
	TranslateTo string  `name:"translate-to" help:"Translate extracted text to this language code (requires GEMINI_API_KEY)"`
	Extract     string  `enum:"text,markdown,main,article" default:"text" help:"Extraction mode: text, markdown, main content, or reader-view article"`
	Render      bool    `help:"Render pages in headless Chrome (for JavaScript-heavy sites)"`
	Preview     bool    `short:"p" help:"Show discovered URLs without creating the collection"`
	Force       bool    `short:"f" help:"Delete an existing collection of the same name first"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int     `name:"max-pages" default:"1000" help:"Maximum pages fetched in one crawl"`
	RPS         float64 `default:"1" help:"Maximum requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Collection name"`
	Full bool   `help:"Show full document content"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Collection name"`
	Dir  string `short:"d" default:"." help:"Parent directory for the export"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}
