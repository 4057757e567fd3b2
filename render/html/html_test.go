package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimarkup/unimarkup-go/block"
	"github.com/unimarkup/unimarkup-go/config"
)

func parseDoc(t *testing.T, input string) block.Document {
	t.Helper()
	doc, err := block.ParseDocument(input, config.Default())
	require.NoError(t, err)
	return doc
}

func TestRenderHeadingCarriesID(t *testing.T) {
	out := Render(parseDoc(t, "# Intro\n"))
	assert.Contains(t, out, `<h1 id="intro">`)
	assert.Contains(t, out, "Intro</h1>")
}

func TestRenderParagraphAndEmphasis(t *testing.T) {
	out := Render(parseDoc(t, "hello *world*\n"))
	assert.Contains(t, out, "<p>hello <em>world</em></p>")
}

func TestRenderVerbatimBlockCarriesLanguageClass(t *testing.T) {
	out := Render(parseDoc(t, "```go\nfunc main() {}\n```\n"))
	assert.Contains(t, out, `<pre><code class="language-go">`)
	assert.Contains(t, out, "func main() {}")
}

func TestRenderVerbatimBlockDefaultsLanguage(t *testing.T) {
	out := Render(parseDoc(t, "```\nplain\n```\n"))
	assert.Contains(t, out, `class="language-plaintext"`)
}

func TestRenderBulletList(t *testing.T) {
	out := Render(parseDoc(t, "- one\n- two\n"))
	assert.Contains(t, out, "<ul>\n<li>one</li>\n<li>two</li>\n</ul>")
}

func TestRenderHyperlink(t *testing.T) {
	out := Render(parseDoc(t, "[label](https://example.com)\n"))
	assert.Contains(t, out, `<a href="https://example.com">label</a>`)
}

func TestRenderEscapesHTML(t *testing.T) {
	out := Render(parseDoc(t, "a <b> & c\n"))
	assert.Contains(t, out, "&lt;b&gt;")
	assert.Contains(t, out, "&amp;")
}
