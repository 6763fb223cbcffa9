package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const articleColumns = `id, slug, title, description, excerpt, body, classification,
	read_minutes, main_video, source_path, author, tags, draft, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// InsertArticle stores a new article and its video references.
func (db *DB) InsertArticle(ctx context.Context, a *Article) error {
	tags, err := encodeTags(a.Tags)
	if err != nil {
		return err
	}
	return db.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO articles (`+articleColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, a.ID, a.Slug, a.Title, a.Description, a.Excerpt, a.Body, a.Classification,
			a.ReadMinutes, a.MainVideo, a.SourcePath, a.Author, tags, a.Draft,
			formatTime(a.CreatedAt), formatTime(a.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert article: %w", err)
		}
		return insertVideos(ctx, tx, a.ID, a.VideoIDs)
	})
}

// UpdateArticle replaces an existing article's fields and video references.
func (db *DB) UpdateArticle(ctx context.Context, a *Article) error {
	tags, err := encodeTags(a.Tags)
	if err != nil {
		return err
	}
	return db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE articles SET slug = ?, title = ?, description = ?, excerpt = ?, body = ?,
				classification = ?, read_minutes = ?, main_video = ?, source_path = ?,
				author = ?, tags = ?, draft = ?, updated_at = ?
			WHERE id = ?
		`, a.Slug, a.Title, a.Description, a.Excerpt, a.Body, a.Classification,
			a.ReadMinutes, a.MainVideo, a.SourcePath, a.Author, tags, a.Draft,
			formatTime(a.UpdatedAt), a.ID)
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM article_videos WHERE article_id = ?`, a.ID); err != nil {
			return fmt.Errorf("clear videos: %w", err)
		}
		return insertVideos(ctx, tx, a.ID, a.VideoIDs)
	})
}

// GetArticle loads an article by ID.
func (db *DB) GetArticle(ctx context.Context, id string) (*Article, error) {
	return db.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
}

// GetArticleBySlug loads an article by slug.
func (db *DB) GetArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	return db.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug)
}

// FindBySourcePath returns the most recently updated article imported from path.
func (db *DB) FindBySourcePath(ctx context.Context, path string) (*Article, error) {
	return db.getOne(ctx, `SELECT `+articleColumns+` FROM articles
		WHERE source_path = ? ORDER BY updated_at DESC LIMIT 1`, path)
}

// SlugTaken reports whether slug belongs to an article other than exceptID.
func (db *DB) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	var id string
	err := db.sql.QueryRowContext(ctx, `SELECT id FROM articles WHERE slug = ?`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return id != exceptID, nil
}

// ListArticles returns articles newest first.
func (db *DB) ListArticles(ctx context.Context, opts ListOptions) ([]*Article, error) {
	where, args := listFilter(opts)
	query := `SELECT ` + articleColumns + ` FROM articles` + where + ` ORDER BY created_at DESC, id`
	switch {
	case opts.Limit > 0:
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opts.Limit, max(opts.Offset, 0))
	case opts.Offset > 0:
		query += ` LIMIT -1 OFFSET ?`
		args = append(args, opts.Offset)
	}

	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	var out []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("list articles: %w", err)
	}
	_ = rows.Close()

	// Videos are loaded after the cursor is closed; the pool has one connection.
	for _, a := range out {
		if a.VideoIDs, err = db.loadVideos(ctx, a.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CountArticles counts articles matching the filter, ignoring pagination.
func (db *DB) CountArticles(ctx context.Context, opts ListOptions) (int, error) {
	where, args := listFilter(opts)
	var n int
	if err := db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// DeleteArticle removes an article; its video references cascade.
func (db *DB) DeleteArticle(ctx context.Context, id string) error {
	res, err := db.sql.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func listFilter(opts ListOptions) (string, []any) {
	var clauses []string
	var args []any
	if opts.Classification != "" {
		clauses = append(clauses, "classification = ?")
		args = append(args, opts.Classification)
	}
	if q := strings.TrimSpace(opts.Query); q != "" {
		clauses = append(clauses, "LOWER(title) LIKE ?")
		args = append(args, "%"+strings.ToLower(q)+"%")
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (db *DB) getOne(ctx context.Context, query string, arg any) (*Article, error) {
	a, err := scanArticle(db.sql.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, err
	}
	if a.VideoIDs, err = db.loadVideos(ctx, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

func (db *DB) loadVideos(ctx context.Context, articleID string) ([]string, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT video_id FROM article_videos WHERE article_id = ? ORDER BY position`, articleID)
	if err != nil {
		return nil, fmt.Errorf("load videos: %w", err)
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertVideos(ctx context.Context, tx *sql.Tx, articleID string, ids []string) error {
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_videos (article_id, position, video_id) VALUES (?, ?, ?)`,
			articleID, i, id); err != nil {
			return fmt.Errorf("insert video: %w", err)
		}
	}
	return nil
}

func scanArticle(row rowScanner) (*Article, error) {
	var (
		a                Article
		tags             string
		created, updated string
	)
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Description, &a.Excerpt, &a.Body,
		&a.Classification, &a.ReadMinutes, &a.MainVideo, &a.SourcePath, &a.Author,
		&tags, &a.Draft, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan article: %w", err)
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	if a.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

// timeLayout is fixed width so timestamps sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	// RFC3339Nano also accepts rows written without a fixed-width fraction.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
