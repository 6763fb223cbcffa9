package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/logging"
	"github.com/KaramelBytes/hubloom-cli/internal/parser"
	"github.com/KaramelBytes/hubloom-cli/internal/store"
	"github.com/KaramelBytes/hubloom-cli/internal/utils"
)

// DatabaseFileName is the article database inside a hub directory.
const DatabaseFileName = "articles.db"

var (
	// ErrNotFound is returned when an article reference matches nothing.
	ErrNotFound = store.ErrNotFound
	// ErrExists is returned when creating a hub over an existing one.
	ErrExists = errors.New("hub already exists")
)

// Hub is a knowledge hub persisted on disk.
type Hub struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Settings    Settings  `json:"settings"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Not serialized: on-disk location of the hub.json
	rootDir string

	defaults     Settings
	vocabulary   *importer.Vocabulary
	maxFileBytes int64
	logger       *slog.Logger
	db           *store.DB
}

// Option customises a Hub's runtime behaviour.
type Option func(*Hub)

// WithLogger sets the logger used for import diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hub) { h.logger = l }
}

// WithDefaults sets the global settings that per-hub settings override.
func WithDefaults(s Settings) Option {
	return func(h *Hub) { h.defaults = s }
}

// WithVocabulary replaces the classifier keywords used during import.
func WithVocabulary(v importer.Vocabulary) Option {
	return func(h *Hub) { h.vocabulary = &v }
}

// WithMaxFileBytes caps the size of imported files.
func WithMaxFileBytes(n int64) Option {
	return func(h *Hub) { h.maxFileBytes = n }
}

// NewHub constructs an in-memory hub. Call Save() to persist.
func NewHub(name, description, rootDir string, opts ...Option) *Hub {
	now := time.Now()
	h := &Hub{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		rootDir:     rootDir,
	}
	h.apply(opts)
	return h
}

// LoadHub loads a hub.json from the provided directory.
func LoadHub(dir string, opts ...Option) (*Hub, error) {
	path := filepath.Join(dir, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("hub not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read hub: %w", err)
	}
	var h Hub
	if err := json.Unmarshal(b, &h); err != nil {
		return nil, fmt.Errorf("parse hub: %w", err)
	}
	h.rootDir = dir
	h.apply(opts)
	return &h, nil
}

func (h *Hub) apply(opts []Option) {
	for _, opt := range opts {
		opt(h)
	}
	h.logger = logging.OrDiscard(h.logger).With("hub", h.Name)
	if h.maxFileBytes <= 0 {
		h.maxFileBytes = parser.MaxFileBytes
	}
}

// RootDir returns the on-disk hub directory path.
func (h *Hub) RootDir() string { return h.rootDir }

// DatabasePath returns the path of the hub's article database.
func (h *Hub) DatabasePath() string { return filepath.Join(h.rootDir, DatabaseFileName) }

// Save writes hub.json using atomic write.
func (h *Hub) Save() error {
	if h.rootDir == "" {
		return errors.New("hub root directory not set")
	}
	if err := h.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	h.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(h)
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(filepath.Join(h.rootDir, FileName), data, 0o644)
}

// Close releases the article database if it was opened.
func (h *Hub) Close() error {
	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}

// Effective returns the hub settings with global defaults filled in.
func (h *Hub) Effective() Settings {
	return h.Settings.Merge(h.defaults)
}

// Importer builds an importer configured from the effective settings.
func (h *Hub) Importer() *importer.Importer {
	s := h.Effective()
	opts := []importer.Option{
		importer.WithMaxExcerptLength(s.ExcerptMaxLength),
		importer.WithWordsPerMinute(s.WordsPerMinute),
	}
	if h.vocabulary != nil {
		opts = append(opts, importer.WithVocabulary(*h.vocabulary))
	}
	return importer.New(opts...)
}

// loggerFor prefers a logger carried by ctx, tagged with the hub name.
func (h *Hub) loggerFor(ctx context.Context) *slog.Logger {
	if l, ok := logging.FromContext(ctx); ok {
		return l.With("hub", h.Name)
	}
	return h.logger
}

func (h *Hub) open(ctx context.Context) (*store.DB, error) {
	if h.db != nil {
		return h.db, nil
	}
	if h.rootDir == "" {
		return nil, errors.New("hub root directory not set")
	}
	db, err := store.Open(ctx, h.DatabasePath())
	if err != nil {
		return nil, err
	}
	h.db = db
	return db, nil
}
