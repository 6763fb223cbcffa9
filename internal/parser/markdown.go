package parser

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

type markdownParser struct{}

func (markdownParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}

func (markdownParser) Parse(content []byte) (Source, error) {
	text := normalizeNewlines(string(content))
	// Collapse >2 consecutive newlines to exactly two
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	src := Source{Format: "markdown", Text: text}
	trimmed := strings.TrimLeft(text, "\n")
	if !strings.HasPrefix(trimmed, "---") {
		return src, nil
	}
	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(trimmed), &meta)
	if err != nil {
		// A leading "---" may be a thematic break rather than metadata.
		src.MetaErr = fmt.Errorf("parse frontmatter: %w", err)
		return src, nil
	}
	src.Text = strings.TrimLeft(string(body), "\n")
	src.Meta = meta
	return src, nil
}
