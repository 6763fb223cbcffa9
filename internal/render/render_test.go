package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLBasics(t *testing.T) {
	r := New(Options{})
	out, err := r.RenderHTML("# Hello World\n\nSome *emphasis* and a table:\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `<h1 id="hello-world">Hello World</h1>`)
	assert.Contains(t, html, "<em>emphasis</em>")
	assert.Contains(t, html, "<table>")
}

func TestSafeModeDropsRawHTML(t *testing.T) {
	src := "Text\n\n<script>alert(1)</script>\n"

	unsafe, err := New(Options{}).RenderHTML(src)
	require.NoError(t, err)
	assert.Contains(t, string(unsafe), "<script>")

	safe, err := New(Options{SafeMode: true}).RenderHTML(src)
	require.NoError(t, err)
	assert.NotContains(t, string(safe), "<script>")
}

func TestEmbedVideos(t *testing.T) {
	src := "Intro\n\nhttps://www.youtube.com/watch?v=dQw4w9WgXcQ\n\n[the trailer](https://youtu.be/abcdefghijk)\n"

	plain, err := New(Options{}).RenderHTML(src)
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "<iframe")

	out, err := New(Options{EmbedVideos: true}).RenderHTML(src)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `src="https://www.youtube.com/embed/dQw4w9WgXcQ"`)
	assert.Contains(t, html, "the trailer</a>", "described links stay links")
	assert.Equal(t, 1, strings.Count(html, "<iframe"))
}

func TestHardWrapsAndExtensionSelection(t *testing.T) {
	src := "line one\nline two\n\n~~gone~~\n"

	soft, err := New(Options{}).RenderHTML(src)
	require.NoError(t, err)
	assert.NotContains(t, string(soft), "<br")
	assert.Contains(t, string(soft), "<del>gone</del>")

	hard, err := New(Options{HardWraps: true, Extensions: []string{"table"}}).RenderHTML(src)
	require.NoError(t, err)
	assert.Contains(t, string(hard), "<br")
	assert.NotContains(t, string(hard), "<del>", "strikethrough is off without gfm")
}

func TestExtensionNames(t *testing.T) {
	names := ExtensionNames()
	assert.Contains(t, names, "gfm")
	assert.Contains(t, names, "footnote")
	assert.Len(t, names, len(extensionRegistry))
}

func TestCollectExtensions(t *testing.T) {
	assert.Len(t, collectExtensions(nil), 3)
	assert.Len(t, collectExtensions([]string{"table", "TABLE", "bogus", "footnote"}), 2)
}

func TestPageEscapesTitle(t *testing.T) {
	out, err := Page("Tips & <Tricks>", []byte("<p>body</p>"))
	require.NoError(t, err)
	page := string(out)
	assert.Contains(t, page, "<title>Tips &amp; &lt;Tricks&gt;</title>")
	assert.Contains(t, page, "<p>body</p>")
}
