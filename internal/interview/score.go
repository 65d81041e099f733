package interview

import (
	"math"
	"strings"
)

// ScoreAnswer grades a transcript against a question's keywords:
// the percentage of keywords present as case-insensitive substrings,
// rounded to the nearest integer.
func ScoreAnswer(question Question, answer string) int {
	if len(question.Keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(answer)
	hits := 0
	for _, keyword := range question.Keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			hits++
		}
	}
	return int(math.Round(float64(hits) / float64(len(question.Keywords)) * 100))
}
