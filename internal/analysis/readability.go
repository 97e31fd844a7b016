package analysis

import (
	"regexp"
	"strings"
)

// Readability is a sentence-length based readability proxy. It is a
// monotone heuristic (shorter sentences score higher), not a
// standardized index such as Flesch.
type Readability struct {
	Score            float64
	WordsPerSentence float64
	Sentences        int
	// Complete reports whether the estimate ran on non-empty input.
	// When false only Score (0.0) is meaningful and the other fields
	// are omitted from serialization.
	Complete bool
}

var sentenceDelims = regexp.MustCompile(`[.!?]+`)

// CountSentences counts sentences by splitting the raw text on runs of
// '.', '!' and '?' and dropping blank fragments.
func CountSentences(text string) int {
	if text == "" {
		return 0
	}
	count := 0
	for _, frag := range sentenceDelims.Split(text, -1) {
		if strings.TrimSpace(frag) != "" {
			count++
		}
	}
	return count
}

// EstimateReadability scores the text on a 0-100 scale from its average
// sentence length. wordCount must be the token count produced by
// Tokenize for the same text. Empty text, an empty tokenization or zero
// sentences short-circuit to a zero score with Complete unset.
func EstimateReadability(text string, wordCount int) Readability {
	if text == "" || wordCount == 0 {
		return Readability{}
	}
	sentences := CountSentences(text)
	if sentences == 0 {
		return Readability{}
	}

	wps := float64(wordCount) / float64(sentences)
	score := 100 - (wps-10)*2
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Readability{
		Score:            roundTo(score, 2),
		WordsPerSentence: roundTo(wps, 2),
		Sentences:        sentences,
		Complete:         true,
	}
}

// ReadabilityLevel maps a score to the qualitative label used in the
// report: below 50 is complex, below 70 moderate, anything else simple.
func ReadabilityLevel(score float64) string {
	switch {
	case score < 50:
		return "complex"
	case score < 70:
		return "moderate"
	default:
		return "simple"
	}
}
