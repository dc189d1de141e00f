// Package readability provides a sitekb.Extractor built on go-readability's
// article extraction.
package readability

import (
	"strings"

	"github.com/fwojciec/sitekb"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitekb.Extractor at compile time.
var _ sitekb.Extractor = (*Extractor)(nil)

// Extractor extracts the readable article text of a page, the same
// simplification browsers apply in reader view. Compared to trafilatura it
// is more aggressive about discarding anything outside the main article.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article text of rawHTML. Pages go-readability cannot
// parse into an article yield empty output rather than an error.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", nil
	}

	return strings.TrimSpace(article.TextContent), nil
}
