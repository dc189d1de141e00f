// Package trafilatura provides a boilerplate-removing implementation of
// sitekb.Extractor built on go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/sitekb"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements sitekb.Extractor at compile time.
var _ sitekb.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of a page as plain text, dropping
// navigation, footers, sidebars and other boilerplate. Useful for sites
// whose chrome would otherwise dominate the extracted text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main textual content of rawHTML.
// Pages where no main content can be identified yield empty output rather
// than an error, keeping extraction failures non-fatal to a crawl.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Trafilatura errors on pages without identifiable content;
		// treat that as "nothing extracted".
		return "", nil
	}

	return strings.TrimSpace(result.ContentText), nil
}
