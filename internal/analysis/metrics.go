package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WordFreq is one entry of a frequency ranking.
type WordFreq struct {
	Word  string
	Count int
}

// Record holds the full fixed metric set derived from one document.
// Extra carries optional enrichment fields (title, author, year, ...);
// it is merged with the core metrics only at the serialization boundary,
// see Fields.
type Record struct {
	Filename       string
	WordCount      int
	UniqueWords    int
	TTR            float64
	LineCount      int
	AvgWordLength  float64
	LongestWord    string
	LexicalDensity float64
	FileSize       int64
	TopWords       []WordFreq
	Readability    Readability
	Extra          map[string]string
}

// Analyze derives the complete metric record for a single document.
// An empty or unreadable text yields a record with zero/empty defaults,
// never an error. topN controls how many frequent words are kept.
func Analyze(filename, text string, topN int) Record {
	tokens := Tokenize(text)

	rec := Record{
		Filename:       filename,
		WordCount:      len(tokens),
		UniqueWords:    countUnique(tokens),
		LineCount:      CountLines(text),
		AvgWordLength:  averageWordLength(tokens),
		LongestWord:    longestWord(tokens),
		LexicalDensity: lexicalDensity(tokens),
		TopWords:       MostCommonWords(tokens, topN),
		Readability:    EstimateReadability(text, len(tokens)),
	}
	if rec.WordCount > 0 {
		rec.TTR = roundTo(float64(rec.UniqueWords)/float64(rec.WordCount), 4)
	}
	return rec
}

// CountLines counts non-blank lines of the raw text.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// MostCommonWords returns the n most frequent tokens as (word, count)
// pairs, sorted by descending count. Equal counts keep the order in which
// the words first occur in the token sequence.
func MostCommonWords(tokens []string, n int) []WordFreq {
	if len(tokens) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranked := make([]WordFreq, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, WordFreq{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func countUnique(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	return len(seen)
}

func averageWordLength(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0.0
	}
	total := 0
	for _, tok := range tokens {
		total += utf8.RuneCountInString(tok)
	}
	return roundTo(float64(total)/float64(len(tokens)), 2)
}

func longestWord(tokens []string) string {
	longest := ""
	max := 0
	for _, tok := range tokens {
		if l := utf8.RuneCountInString(tok); l > max {
			longest = tok
			max = l
		}
	}
	return longest
}

// lexicalDensity is the fraction of tokens longer than 3 runes, a crude
// content-word proxy rather than a real classifier.
func lexicalDensity(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0.0
	}
	lexical := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > 3 {
			lexical++
		}
	}
	return roundTo(float64(lexical)/float64(len(tokens)), 4)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// TopWordsString renders the frequency ranking as "word(count), ...".
func (r Record) TopWordsString() string {
	parts := make([]string, 0, len(r.TopWords))
	for _, wf := range r.TopWords {
		parts = append(parts, fmt.Sprintf("%s(%d)", wf.Word, wf.Count))
	}
	return strings.Join(parts, ", ")
}

// Fields flattens the record into serializable key/value pairs. Core
// metrics always appear; words_per_sentence and sentences appear only
// when the readability estimate completed; Extra keys are unioned in
// last and never shadow a core metric.
func (r Record) Fields() map[string]string {
	fields := map[string]string{
		"filename":          r.Filename,
		"word_count":        strconv.Itoa(r.WordCount),
		"unique_words":      strconv.Itoa(r.UniqueWords),
		"ttr":               formatFloat(r.TTR),
		"line_count":        strconv.Itoa(r.LineCount),
		"avg_word_length":   formatFloat(r.AvgWordLength),
		"longest_word":      r.LongestWord,
		"lexical_density":   formatFloat(r.LexicalDensity),
		"file_size":         strconv.FormatInt(r.FileSize, 10),
		"top_words":         r.TopWordsString(),
		"readability_score": formatFloat(r.Readability.Score),
	}
	if r.Readability.Complete {
		fields["words_per_sentence"] = formatFloat(r.Readability.WordsPerSentence)
		fields["sentences"] = strconv.Itoa(r.Readability.Sentences)
	}
	for key, value := range r.Extra {
		if _, taken := fields[key]; !taken {
			fields[key] = value
		}
	}
	return fields
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
