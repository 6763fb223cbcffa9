package importer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classification is the coarse content type used to pre-fill an article form.
type Classification string

const (
	ClassArticle    Classification = "article"
	ClassGuide      Classification = "guide"
	ClassToolReview Classification = "tool_review"
)

// Label returns a human readable name.
func (c Classification) Label() string {
	switch c {
	case ClassGuide:
		return "Guide"
	case ClassToolReview:
		return "Tool Review"
	default:
		return "Article"
	}
}

// ParseClassification accepts the stored form or a label ("Tool Review",
// "tool-review", "review").
func ParseClassification(s string) (Classification, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	switch key {
	case "article", "articles":
		return ClassArticle, nil
	case "guide", "guides":
		return ClassGuide, nil
	case "tool_review", "tool_reviews", "review", "reviews", "toolreview":
		return ClassToolReview, nil
	}
	return "", fmt.Errorf("unknown classification: %q (use article|guide|tool_review)", s)
}

const (
	numberedListThreshold = 3
	bulletListThreshold   = 5
	structureBonus        = 2
	minClassScore         = 2
)

var (
	numberedLinePattern = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]`)
	bulletLinePattern   = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]`)
)

// Scores are the raw classifier results before the decision rule.
type Scores struct {
	Guide      int `json:"guide"`
	ToolReview int `json:"tool_review"`
}

// Classifier labels documents with a keyword and structure heuristic.
type Classifier struct {
	vocab Vocabulary
}

// NewClassifier returns a classifier over vocab. Terms are matched
// case-insensitively.
func NewClassifier(vocab Vocabulary) Classifier {
	return Classifier{vocab: vocab.normalized()}
}

// Score computes the guide and tool-review scores. title and cleaned feed the
// keyword search; raw is used for list structure since cleaning flattens lines.
func (c Classifier) Score(title, cleaned, raw string) Scores {
	haystack := strings.ToLower(title + " " + cleaned)
	s := Scores{
		Guide:      keywordScore(haystack, c.vocab.Guide),
		ToolReview: keywordScore(haystack, c.vocab.ToolReview),
	}
	if len(numberedLinePattern.FindAllStringIndex(raw, -1)) >= numberedListThreshold {
		s.Guide += structureBonus
	}
	if len(bulletLinePattern.FindAllStringIndex(raw, -1)) >= bulletListThreshold {
		s.ToolReview += structureBonus
	}
	return s
}

// Classify applies the decision rule: the strictly higher score wins when it
// reaches minClassScore, anything else is an article.
func (c Classifier) Classify(title, cleaned, raw string) Classification {
	return decide(c.Score(title, cleaned, raw))
}

func decide(s Scores) Classification {
	switch {
	case s.Guide > s.ToolReview && s.Guide >= minClassScore:
		return ClassGuide
	case s.ToolReview > s.Guide && s.ToolReview >= minClassScore:
		return ClassToolReview
	default:
		return ClassArticle
	}
}

func keywordScore(haystack string, keywords []Keyword) int {
	score := 0
	for _, k := range keywords {
		if k.Term != "" && containsTerm(haystack, k.Term) {
			score += k.Weight
		}
	}
	return score
}

// shortTermLength is the rune length up to which a term must also end on a
// word boundary, so "vs" does not match inside "vsync".
const shortTermLength = 3

// containsTerm reports whether term occurs in haystack starting on a word
// boundary: "rating" matches "rating: 4/5" but not "generating".
func containsTerm(haystack, term string) bool {
	first, _ := utf8.DecodeRuneInString(term)
	needStart := isWordRune(first)
	needEnd := utf8.RuneCountInString(term) <= shortTermLength
	for from := 0; from < len(haystack); {
		i := strings.Index(haystack[from:], term)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(term)
		if (!needStart || boundaryBefore(haystack, start)) && (!needEnd || boundaryAfter(haystack, end)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[start:])
		from = start + size
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}
