package utils

import (
	"strings"
	"unicode"
)

// CountWords returns the number of whitespace separated tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// RuneLen reports the length of s in characters.
func RuneLen(s string) int {
	return len([]rune(s))
}

// TruncateRunes cuts s to at most limit characters without regard for words.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// TruncateAtWord shortens text to at most limit characters, cutting at the
// last whole word that fits in limit-len(suffix) and appending suffix.
// Text that already fits is returned unchanged.
func TruncateAtWord(text string, limit int, suffix string) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	budget := limit - RuneLen(suffix)
	if budget <= 0 {
		return string(runes[:limit])
	}
	cut := runes[:budget]
	// The rune right after the budget is whitespace: cut already ends on a word.
	if !unicode.IsSpace(runes[budget]) {
		end := -1
		for i := len(cut) - 1; i >= 0; i-- {
			if unicode.IsSpace(cut[i]) {
				end = i
				break
			}
		}
		if end > 0 {
			cut = cut[:end]
		}
	}
	out := strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == ':'
	})
	return out + suffix
}
