package mock

import "github.com/fwojciec/sitekb"

var _ sitekb.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitekb.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
