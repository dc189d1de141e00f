package html_test

import (
	"testing"

	"github.com/fwojciec/sitekb/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_strips_markup(t *testing.T) {
	t.Parallel()

	e := html.NewExtractor()

	text, err := e.Extract(`<html><body><h1>Title</h1><p>First <b>bold</b> paragraph.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Title\nFirst\nbold\nparagraph.", text)
}

func TestExtractor_Extract_skips_invisible_elements(t *testing.T) {
	t.Parallel()

	e := html.NewExtractor()

	text, err := e.Extract(`<html><head>
<style>body { color: red; }</style>
<script>var x = "not content";</script>
</head><body>
<noscript>enable javascript</noscript>
<p>visible</p>
</body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "visible", text)
}

func TestExtractor_Extract_malformed_HTML_is_best_effort(t *testing.T) {
	t.Parallel()

	e := html.NewExtractor()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"unclosed tags", "<div><p>hello<p>world", "hello\nworld"},
		{"stray end tags", "</div>text</p>", "text"},
		{"truncated tag", "<p>cut off<a hre", "cut off"},
		{"empty input", "", ""},
		{"text only", "no markup at all", "no markup at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := e.Extract(tt.html)
			require.NoError(t, err, "malformed HTML must not raise")
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestExtractor_Extract_is_deterministic(t *testing.T) {
	t.Parallel()

	e := html.NewExtractor()

	const page = `<body><ul><li>one</li><li>two</li></ul></body>`
	first, err := e.Extract(page)
	require.NoError(t, err)
	second, err := e.Extract(page)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractor_Extract_collapses_whitespace_runs(t *testing.T) {
	t.Parallel()

	e := html.NewExtractor()

	text, err := e.Extract("<p>  spaced  </p>\n\n\t<p>out</p>")
	require.NoError(t, err)
	assert.Equal(t, "spaced\nout", text)
}
