package importer

import (
	"regexp"
	"strings"
)

// Step is a single named rewrite applied while cleaning markup.
type Step struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// Apply runs the step over text.
func (s Step) Apply(text string) string {
	return s.Pattern.ReplaceAllString(text, s.Replace)
}

// Pipeline is an ordered list of steps.
type Pipeline []Step

// Apply runs every step in order.
func (p Pipeline) Apply(text string) string {
	for _, s := range p {
		text = s.Apply(text)
	}
	return text
}

var (
	StepFencedCode = Step{Name: "fenced-code", Pattern: regexp.MustCompile("(?s)```.*?```"), Replace: " "}
	StepInlineCode = Step{Name: "inline-code", Pattern: regexp.MustCompile("`([^`\n]*)`"), Replace: "${1}"}
	StepImages     = Step{Name: "images", Pattern: regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`), Replace: ""}
	StepLinks      = Step{Name: "links", Pattern: regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`), Replace: "${1}"}
	StepHTMLTags   = Step{Name: "html-tags", Pattern: regexp.MustCompile(`<[^>]+>`), Replace: " "}
	StepBold       = Step{Name: "bold", Pattern: regexp.MustCompile(`(\*\*|__)([^\n]+?)(\*\*|__)`), Replace: "${2}"}
	StepItalic     = Step{Name: "italic", Pattern: regexp.MustCompile(`\*([^*\n]+)\*|\b_([^_\n]+)_\b`), Replace: "${1}${2}"}
	StepStrike     = Step{Name: "strikethrough", Pattern: regexp.MustCompile(`~~([^\n]+?)~~`), Replace: "${1}"}
	StepHeadings   = Step{Name: "headings", Pattern: regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+`), Replace: ""}
	StepQuotes     = Step{Name: "blockquotes", Pattern: regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`), Replace: ""}
	StepListMarks  = Step{Name: "list-markers", Pattern: regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`), Replace: ""}
	StepWhitespace = Step{Name: "whitespace", Pattern: regexp.MustCompile(`\s+`), Replace: " "}
)

// MarkupSteps strips markdown and HTML down to plain prose. Code goes first so
// its contents are not read as emphasis, images before links so the leading
// "!" goes with them, list markers before emphasis so a "* " bullet is not
// paired with a later "*".
var MarkupSteps = Pipeline{
	StepFencedCode,
	StepInlineCode,
	StepImages,
	StepLinks,
	StepHTMLTags,
	StepHeadings,
	StepQuotes,
	StepListMarks,
	StepBold,
	StepItalic,
	StepStrike,
	StepWhitespace,
}

// StripMarkup returns text with markup removed and whitespace collapsed.
func StripMarkup(text string) string {
	return strings.TrimSpace(MarkupSteps.Apply(text))
}
