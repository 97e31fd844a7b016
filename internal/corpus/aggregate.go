// Package corpus combines per-document metric records into a corpus-level
// summary: totals, simple averages, extremal documents and qualitative
// interpretation labels.
package corpus

import (
	"github.com/corpus-lab/lexstat/internal/analysis"
)

// Summary is the aggregate view over an ordered batch of records. It is
// built once by Aggregate and never mutated afterwards.
type Summary struct {
	Documents     int
	TotalWords    int
	TotalUnique   int
	AvgTTR        float64
	AvgWordLength float64

	// Extremes keep the first maximal/minimal record in scan order.
	MaxWords analysis.Record
	MinWords analysis.Record
	MaxTTR   analysis.Record
	MinTTR   analysis.Record

	DiversityLabel  string
	WordLengthLabel string
}

// Aggregate folds the records into a Summary with a single left-to-right
// scan, so ties on the extremes resolve to the first record encountered.
// Averages are simple arithmetic means, not weighted by document length.
// An empty input yields the zero Summary.
func Aggregate(records []analysis.Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	s := Summary{
		Documents: len(records),
		MaxWords:  records[0],
		MinWords:  records[0],
		MaxTTR:    records[0],
		MinTTR:    records[0],
	}

	sumTTR := 0.0
	sumLen := 0.0
	for _, r := range records {
		s.TotalWords += r.WordCount
		s.TotalUnique += r.UniqueWords
		sumTTR += r.TTR
		sumLen += r.AvgWordLength

		if r.WordCount > s.MaxWords.WordCount {
			s.MaxWords = r
		}
		if r.WordCount < s.MinWords.WordCount {
			s.MinWords = r
		}
		if r.TTR > s.MaxTTR.TTR {
			s.MaxTTR = r
		}
		if r.TTR < s.MinTTR.TTR {
			s.MinTTR = r
		}
	}

	s.AvgTTR = sumTTR / float64(len(records))
	s.AvgWordLength = sumLen / float64(len(records))
	s.DiversityLabel = DiversityLabel(s.AvgTTR)
	s.WordLengthLabel = WordLengthLabel(s.AvgWordLength)
	return s
}

// DiversityLabel classifies an average TTR. Thresholds are fixed policy
// constants, not tunables.
func DiversityLabel(avgTTR float64) string {
	switch {
	case avgTTR > 0.7:
		return "high"
	case avgTTR > 0.5:
		return "medium"
	default:
		return "low"
	}
}

// WordLengthLabel classifies an average word length in runes.
func WordLengthLabel(avgLength float64) string {
	switch {
	case avgLength > 6:
		return "long"
	case avgLength > 4:
		return "medium"
	default:
		return "short"
	}
}
