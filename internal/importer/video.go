package importer

import (
	"regexp"
	"sort"
)

// idEnd requires the 11-character ID to be followed by a non-ID character or
// the end of input, so longer tokens are not truncated into false IDs.
const idEnd = `(?:[^A-Za-z0-9_-]|$)`

// videoPatterns are tried in this order; results are merged by position.
var videoPatterns = []*regexp.Regexp{
	// <iframe src="https://www.youtube.com/embed/ID">
	regexp.MustCompile(`<iframe[^>]*\ssrc=["'](?:https?:)?//(?:www\.)?youtube(?:-nocookie)?\.com/embed/([A-Za-z0-9_-]{11})` + idEnd),
	// https://www.youtube.com/embed/ID
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube(?:-nocookie)?\.com/embed/([A-Za-z0-9_-]{11})` + idEnd),
	// https://www.youtube.com/watch?v=ID, v may follow other query params
	regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?youtube\.com/watch\?(?:[^\s"'<>#]*&)?v=([A-Za-z0-9_-]{11})` + idEnd),
	// https://youtu.be/ID
	regexp.MustCompile(`(?:https?://)?youtu\.be/([A-Za-z0-9_-]{11})` + idEnd),
}

type videoMatch struct {
	pos int
	id  string
}

// ExtractVideoIDs returns the distinct YouTube video IDs referenced in text in
// order of first appearance. Mixed URL forms are ordered by where they occur
// in the document, not by which pattern found them.
func ExtractVideoIDs(text string) []string {
	ids := []string{}
	if text == "" {
		return ids
	}
	var matches []videoMatch
	for _, re := range videoPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			matches = append(matches, videoMatch{pos: loc[2], id: text[loc[2]:loc[3]]})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.id]; ok {
			continue
		}
		seen[m.id] = struct{}{}
		ids = append(ids, m.id)
	}
	return ids
}
