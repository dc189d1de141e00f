//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/sitekb/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Integration_TranslatesText(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tr := gemini.NewTranslator(apiKey, nil)

	out, err := tr.Translate(ctx, "Bonjour le monde", "en")

	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "world")
}
