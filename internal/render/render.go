// Package render turns article bodies into HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
)

// Options configures a Renderer.
type Options struct {
	// Extensions by name (gfm, table, strikethrough, linkify, tasklist,
	// definition, footnote). Empty means gfm, linkify and tasklist.
	Extensions []string
	HardWraps  bool
	// SafeMode drops raw HTML from the markdown source.
	SafeMode bool
	// EmbedVideos replaces bare YouTube links with embedded players.
	EmbedVideos bool
}

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	opts   Options
	engine goldmark.Markdown
}

// New builds a Renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts, engine: newEngine(opts)}
}

// RenderHTML renders body to an HTML fragment.
func (r *Renderer) RenderHTML(body string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(body), &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	if !r.opts.EmbedVideos {
		return buf.Bytes(), nil
	}
	return embedVideos(buf.Bytes())
}

func newEngine(opts Options) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// ExtensionNames lists the names accepted in Options.Extensions.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// collectExtensions maps names to extenders; unknown names are ignored.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify, extension.TaskList}
	}
	var out []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ext)
	}
	return out
}

const embedTemplate = `<iframe width="560" height="315" src="https://www.youtube.com/embed/%s" title="YouTube video player" frameborder="0" allowfullscreen></iframe>`

// embedVideos swaps anchors whose text is their own YouTube URL for iframes.
// Anchors with descriptive text are left as links.
func embedVideos(fragment []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse rendered html: %w", err)
	}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.TrimSpace(a.Text()) != href {
			return
		}
		ids := importer.ExtractVideoIDs(href)
		if len(ids) != 1 {
			return
		}
		a.ReplaceWithHtml(fmt.Sprintf(embedTemplate, ids[0]))
	})
	out, err := doc.Find("body").Html()
	if err != nil {
		return nil, fmt.Errorf("serialize html: %w", err)
	}
	return []byte(out), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article>
{{.Body}}
</article>
</body>
</html>
`))

// Page wraps a rendered fragment in a standalone HTML document.
func Page(title string, fragment []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(fragment)})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
