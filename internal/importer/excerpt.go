package importer

import (
	"strings"

	"github.com/KaramelBytes/hubloom-cli/internal/utils"
)

const (
	// DefaultMaxExcerptLength caps excerpts when no explicit limit is given.
	DefaultMaxExcerptLength = 200

	minSentenceLength  = 20
	shortExcerptLength = 50
	ellipsis           = "..."
)

// GenerateExcerpt builds a summary of at most maxLength characters from the
// first substantial sentence after the title. It never panics: if cleaning
// fails the raw text is cut at maxLength.
func GenerateExcerpt(text string, maxLength int) (excerpt string) {
	if maxLength <= 0 {
		maxLength = DefaultMaxExcerptLength
	}
	defer func() {
		if r := recover(); r != nil {
			excerpt = utils.TruncateRunes(strings.TrimSpace(text), maxLength)
		}
	}()

	cleaned := StripMarkup(removeTitleLine(text))
	if cleaned == "" {
		return ""
	}
	sentence := firstSentence(cleaned)
	if sentence == "" || utils.RuneLen(sentence) < shortExcerptLength {
		return utils.TruncateAtWord(cleaned, maxLength, ellipsis)
	}
	return utils.TruncateAtWord(sentence, maxLength, ellipsis)
}

// firstSentence splits on ". " and returns the first sentence longer than
// minSentenceLength, terminated with a period.
func firstSentence(text string) string {
	for _, part := range strings.Split(text, ". ") {
		s := strings.TrimSpace(part)
		if utils.RuneLen(s) <= minSentenceLength {
			continue
		}
		if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
			s += "."
		}
		return s
	}
	return ""
}
