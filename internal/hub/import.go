package hub

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/parser"
	"github.com/KaramelBytes/hubloom-cli/internal/store"
	"github.com/KaramelBytes/hubloom-cli/internal/utils"
)

const fallbackSlug = "article"

// ImportOptions controls ImportFile.
type ImportOptions struct {
	Description string
	// DryRun parses and resolves the slug without writing anything.
	DryRun bool
	// Replace updates the article previously imported from the same path.
	Replace bool
}

// ImportResult describes one imported file.
type ImportResult struct {
	Article    *store.Article          `json:"article"`
	Parsed     importer.ParsedDocument `json:"parsed"`
	Validation importer.Validation     `json:"validation"`
	Updated    bool                    `json:"updated"`
	DryRun     bool                    `json:"dry_run,omitempty"`
}

// ImportFile reads path, parses it and stores the result as an article.
// Validation findings are advisory and never block the import.
func (h *Hub) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	src, err := parser.ParseFileWithLimit(abs, h.maxFileBytes)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	log := h.loggerFor(ctx).With("file", filepath.Base(abs), "format", src.Format)
	if src.MetaErr != nil {
		log.Debug("front matter ignored", "error", src.MetaErr)
	}

	im := h.Importer()
	val := im.Validate(src.Text)
	if !val.Valid {
		log.Warn("document failed validation", "violations", val.Violations)
	}
	doc := im.Parse(src.Text)
	applyFrontMatter(&doc, src.Meta, im.MaxExcerptLength())
	log.Debug("parsed document",
		"title", doc.Title,
		"classification", doc.Classification,
		"videos", len(doc.VideoIDs),
		"read_minutes", doc.ReadMinutes,
	)

	db, err := h.open(ctx)
	if err != nil {
		return nil, err
	}

	var existing *store.Article
	if opts.Replace {
		existing, err = db.FindBySourcePath(ctx, abs)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	now := time.Now().UTC()
	a := &store.Article{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	if !src.Meta.Date.IsZero() {
		a.CreatedAt = src.Meta.Date.UTC()
	}
	if existing != nil {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
	}
	fillArticle(a, doc, src.Meta, abs, opts.Description)
	a.UpdatedAt = now

	base := src.Meta.Slug
	if strings.TrimSpace(base) == "" {
		base = doc.Title
	}
	if a.Slug, err = uniqueSlug(ctx, db, makeSlug(base), a.ID); err != nil {
		return nil, err
	}

	res := &ImportResult{Article: a, Parsed: doc, Validation: val, Updated: existing != nil, DryRun: opts.DryRun}
	if opts.DryRun {
		log.Info("dry run", "slug", a.Slug)
		return res, nil
	}
	if existing != nil {
		err = db.UpdateArticle(ctx, a)
	} else {
		err = db.InsertArticle(ctx, a)
	}
	if err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}
	log.Info("imported article", "id", a.ID, "slug", a.Slug, "classification", a.Classification, "updated", res.Updated)
	return res, nil
}

// applyFrontMatter lets explicit metadata win over extracted values. A summary
// is held to the same cap as generated excerpts.
func applyFrontMatter(doc *importer.ParsedDocument, meta parser.FrontMatter, maxExcerpt int) {
	if t := strings.TrimSpace(meta.Title); t != "" {
		doc.Title = t
	}
	if s := strings.Join(strings.Fields(meta.Summary), " "); s != "" {
		doc.Excerpt = utils.TruncateAtWord(s, maxExcerpt, "...")
	}
}

func fillArticle(a *store.Article, doc importer.ParsedDocument, meta parser.FrontMatter, source, description string) {
	a.Title = doc.Title
	a.Description = description
	a.Excerpt = doc.Excerpt
	a.Body = doc.Body
	a.Classification = string(doc.Classification)
	a.ReadMinutes = doc.ReadMinutes
	a.VideoIDs = doc.VideoIDs
	a.MainVideo = doc.MainVideo()
	a.SourcePath = source
	a.Author = meta.Author
	a.Tags = meta.Tags
	a.Draft = meta.Draft
}

func makeSlug(s string) string {
	out, err := slug.Normalize(s)
	if err != nil || out == "" {
		return fallbackSlug
	}
	return out
}

// uniqueSlug appends -2, -3, ... until base is free for exceptID.
func uniqueSlug(ctx context.Context, db *store.DB, base, exceptID string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		taken, err := db.SlugTaken(ctx, candidate, exceptID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}
