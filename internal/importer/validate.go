package importer

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinContentLength = 100
	MinContentLines  = 5
)

// Violation messages reported by ValidateContent.
const (
	MsgEmptyContent   = "content is empty"
	MsgTooShort       = "content is shorter than 100 characters"
	MsgMissingHeading = "content has no markdown heading (start a line with \"# \")"
	MsgTooFewLines    = "content has fewer than 5 non-blank lines"
)

var headingPattern = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+\S`)

// contentRules run in order against trimmed, non-empty content.
var contentRules = []validation.Rule{
	validation.RuneLength(MinContentLength, 0).Error(MsgTooShort),
	validation.Match(headingPattern).Error(MsgMissingHeading),
	validation.By(minNonBlankLines(MinContentLines, MsgTooFewLines)),
}

// ValidateContent reports advisory problems with a document. Empty content is
// reported alone since the other checks say nothing new about it.
func ValidateContent(text string) Validation {
	trimmed := strings.TrimSpace(text)
	if err := validation.Validate(trimmed, validation.Required.Error(MsgEmptyContent)); err != nil {
		return Validation{Valid: false, Violations: []string{err.Error()}}
	}
	violations := []string{}
	for _, rule := range contentRules {
		if err := validation.Validate(trimmed, rule); err != nil {
			violations = append(violations, err.Error())
		}
	}
	return Validation{Valid: len(violations) == 0, Violations: violations}
}

func minNonBlankLines(min int, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if countNonBlankLines(s) < min {
			return errors.New(msg)
		}
		return nil
	}
}

func countNonBlankLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
