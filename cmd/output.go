package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/render"
	"github.com/KaramelBytes/hubloom-cli/internal/store"
	"github.com/KaramelBytes/hubloom-cli/internal/utils"
	"gopkg.in/yaml.v3"
)

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	b, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

type outputOptions struct {
	Format     string // md, html or json
	OutputPath string // empty writes to Writer
	Render     render.Options
	Quiet      bool // suppress the saved notice
	Writer     io.Writer
}

// exportFrontMatter is the metadata header written by markdown exports.
type exportFrontMatter struct {
	Title          string    `yaml:"title"`
	Slug           string    `yaml:"slug"`
	Summary        string    `yaml:"summary,omitempty"`
	Classification string    `yaml:"classification"`
	ReadMinutes    int       `yaml:"read_minutes"`
	Videos         []string  `yaml:"videos,omitempty"`
	Tags           []string  `yaml:"tags,omitempty"`
	Author         string    `yaml:"author,omitempty"`
	Date           time.Time `yaml:"date"`
	Draft          bool      `yaml:"draft,omitempty"`
}

func encodeArticle(a *store.Article, format string, ro render.Options) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "md", "markdown":
		fm, err := yaml.Marshal(exportFrontMatter{
			Title:          a.Title,
			Slug:           a.Slug,
			Summary:        a.Excerpt,
			Classification: a.Classification,
			ReadMinutes:    a.ReadMinutes,
			Videos:         a.VideoIDs,
			Tags:           a.Tags,
			Author:         a.Author,
			Date:           a.CreatedAt,
			Draft:          a.Draft,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal front matter: %w", err)
		}
		var buf bytes.Buffer
		buf.WriteString("---\n")
		buf.Write(fm)
		buf.WriteString("---\n")
		buf.WriteString(a.Body)
		if !strings.HasSuffix(a.Body, "\n") {
			buf.WriteString("\n")
		}
		return buf.Bytes(), nil
	case "html":
		frag, err := render.New(ro).RenderHTML(a.Body)
		if err != nil {
			return nil, err
		}
		return render.Page(a.Title, frag)
	case "json":
		return utils.PrettyJSON(a)
	default:
		return nil, fmt.Errorf("unsupported --format: %s (use md|html|json)", format)
	}
}

func formatAndWriteOutput(a *store.Article, opts outputOptions) error {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	b, err := encodeArticle(a, opts.Format, opts.Render)
	if err != nil {
		return err
	}
	if opts.OutputPath == "" {
		_, err := w.Write(b)
		return err
	}
	if err := os.WriteFile(opts.OutputPath, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if !opts.Quiet {
		fmt.Fprintf(w, "💾 Saved %s to %s\n", a.Slug, opts.OutputPath)
	}
	return nil
}

// classLabel renders a stored classification for humans.
func classLabel(c string) string {
	return importer.Classification(c).Label()
}

func printArticleSummary(w io.Writer, a *store.Article) {
	fmt.Fprintf(w, "Title:          %s\n", a.Title)
	fmt.Fprintf(w, "Slug:           %s\n", a.Slug)
	fmt.Fprintf(w, "ID:             %s\n", a.ID)
	fmt.Fprintf(w, "Type:           %s\n", classLabel(a.Classification))
	fmt.Fprintf(w, "Read time:      %d min\n", a.ReadMinutes)
	if a.Description != "" {
		fmt.Fprintf(w, "Description:    %s\n", a.Description)
	}
	fmt.Fprintf(w, "Excerpt:        %s\n", a.Excerpt)
	if len(a.VideoIDs) > 0 {
		fmt.Fprintf(w, "Videos:         %s (main: %s)\n", strings.Join(a.VideoIDs, ", "), a.MainVideo)
	}
	if a.Author != "" {
		fmt.Fprintf(w, "Author:         %s\n", a.Author)
	}
	if len(a.Tags) > 0 {
		fmt.Fprintf(w, "Tags:           %s\n", strings.Join(a.Tags, ", "))
	}
	if a.Draft {
		fmt.Fprintln(w, "Draft:          yes")
	}
	if a.SourcePath != "" {
		fmt.Fprintf(w, "Source:         %s\n", a.SourcePath)
	}
	fmt.Fprintf(w, "Imported:       %s\n", a.CreatedAt.Local().Format(time.RFC3339))
}
