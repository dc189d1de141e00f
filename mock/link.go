package mock

import "github.com/fwojciec/sitekb"

var _ sitekb.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitekb.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}
