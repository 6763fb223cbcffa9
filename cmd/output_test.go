package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/KaramelBytes/hubloom-cli/internal/config"
	"github.com/KaramelBytes/hubloom-cli/internal/render"
	"github.com/KaramelBytes/hubloom-cli/internal/store"
)

func sampleArticle() *store.Article {
	return &store.Article{
		ID:             "id-1",
		Slug:           "edit-your-first-video",
		Title:          "Edit Your First Video",
		Excerpt:        "Cut the dead air.",
		Body:           "# Edit Your First Video\n\nhttps://youtu.be/dQw4w9WgXcQ",
		Classification: "guide",
		ReadMinutes:    3,
		VideoIDs:       []string{"dQw4w9WgXcQ"},
		MainVideo:      "dQw4w9WgXcQ",
		Tags:           []string{"video"},
		CreatedAt:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEncodeArticleMarkdown(t *testing.T) {
	b, err := encodeArticle(sampleArticle(), "md", render.Options{})
	require.NoError(t, err)
	out := string(b)
	require.True(t, strings.HasPrefix(out, "---\n"))

	parts := strings.SplitN(out, "---\n", 3)
	require.Len(t, parts, 3)
	var fm exportFrontMatter
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, "edit-your-first-video", fm.Slug)
	assert.Equal(t, "guide", fm.Classification)
	assert.Equal(t, []string{"dQw4w9WgXcQ"}, fm.Videos)
	assert.True(t, strings.HasSuffix(parts[2], "dQw4w9WgXcQ\n"))
}

func TestEncodeArticleHTMLEmbedsVideos(t *testing.T) {
	b, err := encodeArticle(sampleArticle(), "html", render.Options{EmbedVideos: true})
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "<title>Edit Your First Video</title>")
	assert.Contains(t, out, "https://www.youtube.com/embed/dQw4w9WgXcQ")
}

func TestEncodeArticleJSONAndUnknown(t *testing.T) {
	b, err := encodeArticle(sampleArticle(), "json", render.Options{})
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "guide", got["classification"])

	_, err = encodeArticle(sampleArticle(), "pdf", render.Options{})
	assert.Error(t, err)
}

func TestFormatAndWriteOutputToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.json")
	err := formatAndWriteOutput(sampleArticle(), outputOptions{Format: "json", OutputPath: path, Writer: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Saved edit-your-first-video")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"slug": "edit-your-first-video"`)
}

func TestFormatAndWriteOutputToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := formatAndWriteOutput(sampleArticle(), outputOptions{Format: "md", Writer: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "title: Edit Your First Video")
}

func TestFormatAndWriteOutputQuiet(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.md")
	err := formatAndWriteOutput(sampleArticle(), outputOptions{Format: "md", OutputPath: path, Quiet: true, Writer: &buf})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.FileExists(t, path)
}

func TestRenderOptionsFollowConfig(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = nil
	assert.Equal(t, render.Options{EmbedVideos: true}, renderOptions(true))

	cfg = &cfgpkg.Global{RenderExtensions: []string{"table"}, HardWraps: true, SafeMode: true}
	ro := renderOptions(false)
	assert.Equal(t, []string{"table"}, ro.Extensions)
	assert.True(t, ro.HardWraps)
	assert.True(t, ro.SafeMode)

	a := sampleArticle()
	a.Body = "first line\nsecond line\n\n<script>x()</script>\n"
	b, err := encodeArticle(a, "html", ro)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<br")
	assert.NotContains(t, string(b), "<script>x()")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"table", "gfm"}, splitList(" Table, ,gfm "))
	assert.Nil(t, splitList(""))
}
