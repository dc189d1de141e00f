// Package html provides a plain-text implementation of sitekb.Extractor
// built on the golang.org/x/net/html tokenizer.
package html

import (
	"strings"

	"github.com/fwojciec/sitekb"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitekb.Extractor at compile time.
var _ sitekb.Extractor = (*Extractor)(nil)

// Extractor strips markup from an HTML body and returns the concatenated
// visible text. Script, style, and similar non-visible elements are
// skipped. The tokenizer never fails on malformed input, so broken markup
// yields best-effort text rather than an error.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// invisible lists elements whose text content is never rendered.
var invisible = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
}

// Extract returns the visible text of rawHTML with markup stripped.
// Text runs are joined with single newlines; leading and trailing
// whitespace is trimmed.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(rawHTML))

	var sb strings.Builder
	skipDepth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF and malformed input both end tokenization.
			return strings.TrimSpace(sb.String()), nil

		case html.StartTagToken:
			name, _ := z.TagName()
			if invisible[string(name)] {
				skipDepth++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if invisible[string(name)] && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(z.Text()))
			if text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(text)
		}
	}
}
