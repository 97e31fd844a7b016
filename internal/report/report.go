// Package report renders the batch results into the two output
// artifacts: a sectioned plain-text report and a CSV export.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/corpus-lab/lexstat/internal/analysis"
	"github.com/corpus-lab/lexstat/internal/corpus"
)

var sectionBar = strings.Repeat("=", 80)

// Render assembles the full multi-section text report: header, aggregate
// statistics, extremal documents, per-document detail, interpretation and
// a footer with the generation timestamp. generatedAt is explicit so the
// output is reproducible in tests.
func Render(summary corpus.Summary, records []analysis.Record, corpusName string, generatedAt time.Time) string {
	if len(records) == 0 {
		return "No data to report."
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	stamp := generatedAt.Format("2006-01-02 15:04:05")

	line(sectionBar)
	line(" CORPUS ANALYSIS REPORT: %s", corpusName)
	line(sectionBar)
	line("Analysis date: %s", stamp)
	line("Documents analyzed: %d", summary.Documents)

	line("\n" + sectionBar)
	line(" AGGREGATE STATISTICS:")
	line(sectionBar)
	line("\n Key figures:")
	line("  - Total words: %d", summary.TotalWords)
	line("  - Unique words: %d", summary.TotalUnique)
	line("  - Average TTR: %.4f", summary.AvgTTR)
	line("  - Average word length: %.2f chars", summary.AvgWordLength)

	line("\n Records:")
	line("  - Largest text: %s (%d words)", summary.MaxWords.Filename, summary.MaxWords.WordCount)
	line("  - Smallest text: %s (%d words)", summary.MinWords.Filename, summary.MinWords.WordCount)
	line("  - Highest diversity (TTR): %s (%.4f)", summary.MaxTTR.Filename, summary.MaxTTR.TTR)
	line("  - Lowest diversity (TTR): %s (%.4f)", summary.MinTTR.Filename, summary.MinTTR.TTR)

	line("\n" + sectionBar)
	line(" PER-DOCUMENT DETAIL:")
	line(sectionBar)
	for i, rec := range records {
		line("\n%3d.  %s", i+1, rec.Filename)
		line("    %s", strings.Repeat("-", 70))
		if title, ok := rec.Extra["title"]; ok {
			line("     Title: %s", title)
		}
		if author, ok := rec.Extra["author"]; ok {
			line("     Author: %s", author)
		}
		if year, ok := rec.Extra["year"]; ok {
			line("     Year: %s", year)
		}
		line("     Words: %d", rec.WordCount)
		line("     Unique words: %d", rec.UniqueWords)
		line("     TTR: %.4f", rec.TTR)
		line("     Average word length: %.2f chars", rec.AvgWordLength)
		line("     Lines: %d", rec.LineCount)
		line("     Readability: %.1f/100 (%s)", rec.Readability.Score,
			analysis.ReadabilityLevel(rec.Readability.Score))
		if top := rec.TopWordsString(); top != "" {
			line("     Frequent words: %s", top)
		}
	}

	line("\n" + sectionBar)
	line(" INTERPRETATION:")
	line(sectionBar)
	line("\n The corpus shows:")
	line("  1. %s lexical diversity (average TTR: %.3f)", summary.DiversityLabel, summary.AvgTTR)
	line("  2. %s average word length (%.1f chars)", summary.WordLengthLabel, summary.AvgWordLength)
	line("  3. Document sizes range from %d to %d words",
		summary.MinWords.WordCount, summary.MaxWords.WordCount)

	line("\n Suggested follow-ups:")
	line("  1. Add more documents to improve representativeness")
	line("  2. Compare against corpora of similar subject matter")
	line("  3. Break the analysis down by author or genre where metadata allows")

	line("\n" + sectionBar)
	line("Report generated: %s", stamp)
	b.WriteString(sectionBar)
	return b.String()
}
