package hub_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/hubloom-cli/internal/hub"
	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/logging"
)

const guideMD = `# How to Edit Your First Video

Step 1: Import your clips into the timeline before you start anything else.
Step 2: Trim the dead air from the start and end of each clip.
Step 3: Add music and export.

Watch along: https://www.youtube.com/watch?v=dQw4w9WgXcQ
`

const reviewMD = `---
title: Cutter Pro Review
slug: cutter-pro
summary: A short take on Cutter Pro.
tags: [tools, editing]
author: Sam
draft: true
---
# Ignored Heading

This review covers pricing, features and the free plan of Cutter Pro.
Our verdict compares it versus the main alternative.
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func newHub(t *testing.T) (*hub.Hub, string) {
	t.Helper()
	tdir := t.TempDir()
	h := hub.NewHub("test", "a test hub", filepath.Join(tdir, "hub"),
		hub.WithDefaults(hub.Settings{ExcerptMaxLength: 200, WordsPerMinute: 200}))
	require.NoError(t, h.Save())
	t.Cleanup(func() { _ = h.Close() })
	return h, tdir
}

func TestSaveAndLoad(t *testing.T) {
	h, _ := newHub(t)
	require.NoError(t, h.Set("words_per_minute", "150"))
	require.NoError(t, h.Save())

	loaded, err := hub.LoadHub(h.RootDir())
	require.NoError(t, err)
	assert.Equal(t, "test", loaded.Name)
	assert.Equal(t, 150, loaded.Settings.WordsPerMinute)
	assert.Equal(t, 0, loaded.Settings.ExcerptMaxLength)

	_, err = hub.LoadHub(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetRejectsBadValues(t *testing.T) {
	h, _ := newHub(t)
	assert.Error(t, h.Set("words_per_minute", "fast"))
	assert.Error(t, h.Set("words_per_minute", "-1"))
	assert.Error(t, h.Set("color", "blue"))
	require.NoError(t, h.Set("description", "updated"))
	assert.Equal(t, "updated", h.Description)
}

func TestEffectiveSettings(t *testing.T) {
	h, _ := newHub(t)
	h.Settings.ExcerptMaxLength = 80
	eff := h.Effective()
	assert.Equal(t, 80, eff.ExcerptMaxLength)
	assert.Equal(t, 200, eff.WordsPerMinute)
	assert.Equal(t, 80, h.Importer().MaxExcerptLength())
}

func TestImportFile(t *testing.T) {
	ctx := context.Background()
	h, tdir := newHub(t)
	p := writeFile(t, tdir, "guide.md", guideMD)

	res, err := h.ImportFile(ctx, p, hub.ImportOptions{Description: "first import"})
	require.NoError(t, err)
	a := res.Article
	assert.Equal(t, "How to Edit Your First Video", a.Title)
	assert.Equal(t, string(importer.ClassGuide), a.Classification)
	assert.Equal(t, "dQw4w9WgXcQ", a.MainVideo)
	assert.Equal(t, "first import", a.Description)
	assert.NotEmpty(t, a.Slug)
	assert.False(t, res.Updated)

	got, err := h.Article(ctx, a.Slug)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, []string{"dQw4w9WgXcQ"}, got.VideoIDs)
}

func TestImportFrontMatterOverrides(t *testing.T) {
	ctx := context.Background()
	h, tdir := newHub(t)
	p := writeFile(t, tdir, "review.md", reviewMD)

	res, err := h.ImportFile(ctx, p, hub.ImportOptions{})
	require.NoError(t, err)
	a := res.Article
	assert.Equal(t, "Cutter Pro Review", a.Title)
	assert.Equal(t, "cutter-pro", a.Slug)
	assert.Equal(t, "A short take on Cutter Pro.", a.Excerpt)
	assert.Equal(t, []string{"tools", "editing"}, a.Tags)
	assert.Equal(t, "Sam", a.Author)
	assert.True(t, a.Draft)
	assert.Equal(t, string(importer.ClassToolReview), a.Classification)
	assert.False(t, res.Validation.Valid, "short review has advisory violations")
}

func TestImportSlugCollisionAndReplace(t *testing.T) {
	ctx := context.Background()
	h, tdir := newHub(t)
	p1 := writeFile(t, tdir, "one.md", guideMD)
	p2 := writeFile(t, tdir, "two.md", guideMD)

	r1, err := h.ImportFile(ctx, p1, hub.ImportOptions{})
	require.NoError(t, err)
	r2, err := h.ImportFile(ctx, p2, hub.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, r1.Article.Slug+"-2", r2.Article.Slug)

	// re-import without replace creates a third copy
	r3, err := h.ImportFile(ctx, p1, hub.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, r1.Article.Slug+"-3", r3.Article.Slug)

	// replace updates the newest article from that path in place
	require.NoError(t, os.WriteFile(p2, []byte("# Fresh Title\n\nNew body text here."), 0o644))
	r4, err := h.ImportFile(ctx, p2, hub.ImportOptions{Replace: true})
	require.NoError(t, err)
	assert.True(t, r4.Updated)
	assert.Equal(t, r2.Article.ID, r4.Article.ID)
	assert.Equal(t, "Fresh Title", r4.Article.Title)

	_, total, err := h.Articles(ctx, hub.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestImportDryRunStoresNothing(t *testing.T) {
	ctx := context.Background()
	h, tdir := newHub(t)
	p := writeFile(t, tdir, "guide.md", guideMD)

	res, err := h.ImportFile(ctx, p, hub.ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.DryRun)

	_, err = h.Article(ctx, res.Article.ID)
	assert.ErrorIs(t, err, hub.ErrNotFound)
}

func TestImportMissingFile(t *testing.T) {
	h, tdir := newHub(t)
	_, err := h.ImportFile(context.Background(), filepath.Join(tdir, "missing.md"), hub.ImportOptions{})
	assert.Error(t, err)
}

func TestArticlesFilterRemoveAndStats(t *testing.T) {
	ctx := context.Background()
	h, tdir := newHub(t)
	_, err := h.ImportFile(ctx, writeFile(t, tdir, "g.md", guideMD), hub.ImportOptions{})
	require.NoError(t, err)
	rev, err := h.ImportFile(ctx, writeFile(t, tdir, "r.md", reviewMD), hub.ImportOptions{})
	require.NoError(t, err)

	guides, total, err := h.Articles(ctx, hub.Filter{Classification: importer.ClassGuide})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, guides, 1)

	st, err := h.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Articles)
	assert.Equal(t, 1, st.ByClassification["guide"])
	assert.Equal(t, 1, st.ByClassification["tool_review"])
	assert.Equal(t, 0, st.ByClassification["article"])
	assert.Equal(t, 1, st.WithVideo)
	assert.Equal(t, 1, st.DistinctVideos)
	assert.Equal(t, 1, st.Drafts)
	assert.Equal(t, 2, st.TotalReadMinutes)
	assert.InDelta(t, 1.0, st.AverageReadMinutes, 0.001)

	removed, err := h.Remove(ctx, "cutter-pro")
	require.NoError(t, err)
	assert.Equal(t, rev.Article.ID, removed.ID)

	_, err = h.Remove(ctx, "cutter-pro")
	assert.ErrorIs(t, err, hub.ErrNotFound)
}

func TestImportCapsFrontMatterSummary(t *testing.T) {
	ctx := context.Background()
	h, tdir := newHub(t)
	require.NoError(t, h.Set("excerpt_max_length", "50"))

	summary := strings.Repeat("A long summary sentence about editing. ", 15)
	doc := "---\ntitle: Capped\nsummary: " + summary + "\n---\n" + guideMD
	res, err := h.ImportFile(ctx, writeFile(t, tdir, "capped.md", doc), hub.ImportOptions{})
	require.NoError(t, err)

	assert.LessOrEqual(t, len([]rune(res.Article.Excerpt)), 50)
	assert.True(t, strings.HasPrefix(res.Article.Excerpt, "A long summary"), res.Article.Excerpt)
	assert.True(t, strings.HasSuffix(res.Article.Excerpt, "..."), res.Article.Excerpt)
	assert.Equal(t, res.Article.Excerpt, res.Parsed.Excerpt)
}

func TestImportLogsThroughContextLogger(t *testing.T) {
	h, tdir := newHub(t)
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)
	ctx := logging.WithLogger(context.Background(), logger)

	_, err = h.ImportFile(ctx, writeFile(t, tdir, "guide.md", guideMD), hub.ImportOptions{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"imported article"`)
	assert.Contains(t, buf.String(), `"hub":"test"`)
}

func TestImportLeadingRuleDocument(t *testing.T) {
	h, tdir := newHub(t)
	p := writeFile(t, tdir, "rule.md", "---\n# Title\n\nText.\n\n---\n\nMore.")

	res, err := h.ImportFile(context.Background(), p, hub.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Title", res.Article.Title)
	assert.Empty(t, res.Article.Tags)
}
