package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// MaxFileBytes is the default import size limit.
const MaxFileBytes int64 = 5 << 20

// ErrTooLarge indicates a file exceeds the import size limit.
var ErrTooLarge = errors.New("file exceeds maximum import size")

// FrontMatter is optional metadata carried by a source file.
type FrontMatter struct {
	Title   string    `yaml:"title" json:"title,omitempty"`
	Slug    string    `yaml:"slug" json:"slug,omitempty"`
	Summary string    `yaml:"summary" json:"summary,omitempty"`
	Tags    []string  `yaml:"tags" json:"tags,omitempty"`
	Author  string    `yaml:"author" json:"author,omitempty"`
	Date    time.Time `yaml:"date" json:"date,omitempty"`
	Draft   bool      `yaml:"draft" json:"draft,omitempty"`
}

// Source is a decoded file ready for the importer.
type Source struct {
	Format string
	Text   string
	Meta   FrontMatter
	// MetaErr is set when a leading front matter block could not be decoded.
	// Text then holds the whole document and Meta is empty.
	MetaErr error
}

// Parser defines a document parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (Source, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the decoded source.
func ParseFile(path string) (Source, error) {
	return ParseFileWithLimit(path, MaxFileBytes)
}

// ParseFileWithLimit is ParseFile with an explicit size limit in bytes.
// A non-positive limit falls back to MaxFileBytes.
func ParseFileWithLimit(path string, limit int64) (Source, error) {
	if limit <= 0 {
		limit = MaxFileBytes
	}
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return Source{}, fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > limit {
		return Source{}, fmt.Errorf("%s: %w (%d bytes)", path, ErrTooLarge, limit)
	}
	return Parse(path, data)
}

// Parse decodes content using the parser registered for filename.
func Parse(filename string, content []byte) (Source, error) {
	for _, p := range registry {
		if p.CanParse(filename) {
			return p.Parse(content)
		}
	}
	// Fallback to plain text
	return txtParser{}.Parse(content)
}

func init() {
	// Register default parsers
	Register(markdownParser{})
	Register(txtParser{})
	Register(htmlParser{})
}
