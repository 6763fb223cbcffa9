package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

type htmlParser struct{}

func (htmlParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
}

// Parse extracts the main article with readability and rewrites it as
// markdown-like text so headings, lists and video links survive import.
func (htmlParser) Parse(content []byte) (Source, error) {
	article, err := readability.FromReader(bytes.NewReader(content), nil)
	if err != nil {
		return Source{}, fmt.Errorf("readability: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return Source{}, fmt.Errorf("parse html: %w", err)
	}

	var sb strings.Builder
	if title := collapseSpace(article.Title); title != "" {
		sb.WriteString("# " + title + "\n\n")
	}
	doc.Find("h1,h2,h3,h4,h5,h6,p,li,pre,blockquote,iframe").Each(func(_ int, s *goquery.Selection) {
		if line := blockToMarkdown(s); line != "" {
			sb.WriteString(line)
			sb.WriteString("\n\n")
		}
	})
	return Source{
		Format: "html",
		Text:   strings.TrimSpace(sb.String()) + "\n",
		Meta:   FrontMatter{Author: collapseSpace(article.Byline)},
	}, nil
}

func blockToMarkdown(s *goquery.Selection) string {
	tag := goquery.NodeName(s)
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		// The document title is the only top-level heading; shift the rest down.
		level := int(tag[1]-'0') + 1
		if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " " + collapseSpace(s.Text())
	case "pre":
		return "```\n" + strings.TrimRight(s.Text(), "\n") + "\n```"
	case "iframe":
		src, ok := s.Attr("src")
		if !ok || !strings.Contains(src, "youtube") {
			return ""
		}
		return fmt.Sprintf(`<iframe src="%s"></iframe>`, src)
	case "li":
		if s.ParentsFiltered("li").Length() > 0 {
			return ""
		}
		return "- " + withVideoLinks(s)
	case "p", "blockquote":
		if s.ParentsFiltered("li,blockquote").Length() > 0 {
			return ""
		}
		text := withVideoLinks(s)
		if tag == "blockquote" && text != "" {
			return "> " + text
		}
		return text
	}
	return ""
}

// withVideoLinks returns the selection text followed by any video URLs its
// anchors point at, which would otherwise be lost with the markup.
func withVideoLinks(s *goquery.Selection) string {
	text := collapseSpace(s.Text())
	s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.Contains(href, "youtube.com/") || strings.Contains(href, "youtu.be/") {
			text += " " + href
		}
	})
	return text
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
