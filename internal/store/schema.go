package store

const schema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS articles (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    excerpt TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    classification TEXT NOT NULL,   -- article, guide, tool_review
    read_minutes INTEGER NOT NULL DEFAULT 1,
    main_video TEXT NOT NULL DEFAULT '',
    source_path TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',  -- JSON array
    draft INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,       -- UTC, fixed-width nanoseconds
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_articles_classification ON articles(classification);
CREATE INDEX IF NOT EXISTS idx_articles_source_path ON articles(source_path);
CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at);

-- Video references in document order; position 0 is the main video.
CREATE TABLE IF NOT EXISTS article_videos (
    article_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    video_id TEXT NOT NULL,
    PRIMARY KEY (article_id, position),
    FOREIGN KEY (article_id) REFERENCES articles(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_article_videos_video ON article_videos(video_id);
`
