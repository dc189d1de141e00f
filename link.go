package sitekb

// LinkExtractor harvests outbound links from an HTML body.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the anchor targets resolved to
	// absolute URLs against baseURL, in document order with fragments
	// stripped. Non-HTTP schemes (mailto:, javascript:, ...) are skipped.
	// Scope filtering is the caller's concern.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
