package sitekb

import "context"

// Translator transforms text into a target language.
//
// Translation is never fatal to a crawl: implementations degrade to
// returning the original text unchanged when the underlying client cannot
// be initialized or a call fails.
type Translator interface {
	// Translate returns text translated to the target ISO 639-1 language
	// code, or the original text when translation is unavailable.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
