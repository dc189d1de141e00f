package mock

import (
	"context"

	"github.com/fwojciec/sitekb"
)

var _ sitekb.Translator = (*Translator)(nil)

// Translator is a mock implementation of sitekb.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, text, targetLanguage string) (string, error)
}

func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return t.TranslateFn(ctx, text, targetLanguage)
}
