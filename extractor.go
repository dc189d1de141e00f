package sitekb

// Extractor converts a raw HTML body into document content.
// Implementations decide the output shape (plain text, markdown, main
// content only) but must be deterministic, pure, and tolerant of malformed
// markup: broken HTML yields best-effort output, never an error.
type Extractor interface {
	Extract(html string) (string, error)
}
