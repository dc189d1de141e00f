package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitekb"
)

// Ensure LoggingTranslator implements sitekb.Translator.
var _ sitekb.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with debug logging.
type LoggingTranslator struct {
	next   sitekb.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next sitekb.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// Translate delegates to the wrapped translator and logs the operation.
func (t *LoggingTranslator) Translate(ctx context.Context, text, targetLanguage string) (out string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"target", targetLanguage,
			"in_bytes", len(text),
			"out_bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, text, targetLanguage)
}
