package importer

import "strings"

// UntitledTitle is used when a document has no top-level heading.
const UntitledTitle = "Untitled"

// ExtractTitle returns the text of the first "# " heading, or UntitledTitle.
func ExtractTitle(text string) string {
	if _, title, ok := findTitleLine(text); ok {
		return title
	}
	return UntitledTitle
}

// findTitleLine locates the first top-level heading with non-empty text and
// reports its line index.
func findTitleLine(text string) (int, string, bool) {
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "# ") {
			continue
		}
		if title := strings.TrimSpace(trimmed[2:]); title != "" {
			return i, title, true
		}
	}
	return -1, "", false
}

// removeTitleLine drops the line ExtractTitle would read the title from.
func removeTitleLine(text string) string {
	idx, _, ok := findTitleLine(text)
	if !ok {
		return text
	}
	lines := strings.Split(text, "\n")
	return strings.Join(append(lines[:idx:idx], lines[idx+1:]...), "\n")
}
