// Package htmltomarkdown provides a markdown-producing implementation of
// sitekb.Extractor built on html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitekb"
)

// Ensure Extractor implements sitekb.Extractor at compile time.
var _ sitekb.Extractor = (*Extractor)(nil)

// Extractor converts an HTML body into Markdown, preserving document
// structure (headings, lists, tables, links) that plain text extraction
// discards.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract transforms HTML content into Markdown. Empty input yields empty
// output; malformed markup is converted best-effort.
func (e *Extractor) Extract(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := e.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
