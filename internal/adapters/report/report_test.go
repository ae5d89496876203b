package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormats(t *testing.T) {
	reg := Default()
	assert.Equal(t, []string{"html", "md", "txt"}, reg.Formats())

	for _, f := range []string{"txt", "md", "html"} {
		_, ok := reg.Get(f)
		assert.True(t, ok, "format %q must be registered", f)
	}
	_, ok := reg.Get("pdf")
	assert.False(t, ok)
}

func TestTextRender(t *testing.T) {
	out, err := Text{}.Render("Grammar Check", "Found 1 issue(s):\n1. a -> b")
	require.NoError(t, err)
	assert.Equal(t, "Grammar Check\n\nFound 1 issue(s):\n1. a -> b\n", string(out))
}

func TestMarkdownRender(t *testing.T) {
	out, err := Markdown{}.Render("Grammar Check", "body line 1\nbody line 2")
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "# Grammar Check\n\n"))
	assert.Contains(t, s, "```text\nbody line 1\nbody line 2\n```\n")
}

func TestHTMLRender(t *testing.T) {
	out, err := HTML{}.Render("Grammar Check", "a < b & c")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<title>Grammar Check</title>")
	assert.Contains(t, s, "<h1>Grammar Check</h1>")
	assert.Contains(t, s, "a &lt; b &amp; c", "body must be escaped")
	assert.True(t, strings.HasSuffix(s, "</html>\n"))
}

func TestHTMLRenderEscapesTitle(t *testing.T) {
	out, err := HTML{}.Render(`<script>alert("x")</script>`, "body")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}
