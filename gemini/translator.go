// Package gemini implements translation using the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fwojciec/sitekb"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Translator implements sitekb.Translator at compile time.
var _ sitekb.Translator = (*Translator)(nil)

// Translator implements sitekb.Translator using Google Gemini.
//
// The underlying API client is created lazily on the first Translate call so
// that constructing a Translator never requires credentials. If client
// creation fails, the failure is logged once and every subsequent call
// returns the input text unchanged.
type Translator struct {
	apiKey string
	logger *slog.Logger

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewTranslator creates a new Translator authenticated with apiKey.
// If logger is nil, slog.Default() is used.
func NewTranslator(apiKey string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Translator{apiKey: apiKey, logger: logger}
}

// Translate translates text into targetLanguage, a BCP-47 language code such
// as "en" or "pt-BR". If the API client could not be initialized, the input
// text is returned unchanged.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == "" {
		return "", sitekb.Errorf(sitekb.EINVALID, "target language required")
	}
	if text == "" {
		return "", nil
	}

	t.once.Do(func() {
		t.client, t.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  t.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if t.initErr != nil {
			t.logger.Warn("translation disabled", "error", t.initErr)
		}
	})
	if t.initErr != nil {
		return text, nil
	}

	config := BuildTranslationConfig()
	prompt := BuildTranslationPrompt(text, targetLanguage)

	result, err := t.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil || result.Text() == "" {
		return "", sitekb.Errorf(sitekb.EINTERNAL, "gemini returned empty translation")
	}

	return result.Text(), nil
}

// BuildTranslationConfig returns the GenerateContentConfig for translation calls.
func BuildTranslationConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a professional translator. Translate the text provided by the user into the requested language, preserving formatting and structure. Return only the translation, with no commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildTranslationPrompt builds the user prompt for a translation request.
func BuildTranslationPrompt(text, targetLanguage string) string {
	return fmt.Sprintf("Translate the following text to %s:\n\n%s", targetLanguage, text)
}
