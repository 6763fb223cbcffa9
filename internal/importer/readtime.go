package importer

import "github.com/KaramelBytes/hubloom-cli/internal/utils"

// DefaultWordsPerMinute is the assumed reading speed.
const DefaultWordsPerMinute = 200

// EstimateReadMinutes returns the read time of text in whole minutes,
// rounded up and never below 1.
func EstimateReadMinutes(text string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := utils.CountWords(MarkupSteps.Apply(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
