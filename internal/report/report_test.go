package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corpus-lab/lexstat/internal/analysis"
	"github.com/corpus-lab/lexstat/internal/corpus"
	"github.com/corpus-lab/lexstat/internal/report"
)

func TestRender(t *testing.T) {
	records := []analysis.Record{
		analysis.Analyze("long.txt", "A long and winding text. It keeps going on and on!", 3),
		analysis.Analyze("short.txt", "Tiny note.", 3),
	}
	records[0].Extra = map[string]string{"title": "The Long One", "author": "A. Writer"}

	summary := corpus.Aggregate(records)
	generatedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	text := report.Render(summary, records, "Sample corpus", generatedAt)

	assert.Contains(t, text, "CORPUS ANALYSIS REPORT: Sample corpus")
	assert.Contains(t, text, "Analysis date: 2024-03-15 10:30:00")
	assert.Contains(t, text, "Documents analyzed: 2")
	assert.Contains(t, text, "AGGREGATE STATISTICS:")
	assert.Contains(t, text, "Largest text: long.txt")
	assert.Contains(t, text, "Smallest text: short.txt")
	assert.Contains(t, text, "PER-DOCUMENT DETAIL:")
	assert.Contains(t, text, "Title: The Long One")
	assert.Contains(t, text, "Author: A. Writer")
	assert.Contains(t, text, "INTERPRETATION:")
	assert.Contains(t, text, "Report generated: 2024-03-15 10:30:00")

	// short.txt carries no metadata, so its section has no Title line.
	// (its detail section is the last "short.txt" occurrence)
	detail := text[strings.LastIndex(text, "short.txt"):]
	assert.NotContains(t, detail, "Title:")
}

func TestRenderDeterministic(t *testing.T) {
	records := []analysis.Record{analysis.Analyze("a.txt", "Stable text. Stable output.", 3)}
	summary := corpus.Aggregate(records)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		report.Render(summary, records, "C", at),
		report.Render(summary, records, "C", at))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "No data to report.", report.Render(corpus.Summary{}, nil, "C", time.Now()))
}

func TestFileSink(t *testing.T) {
	sink, err := report.NewFileSink(t.TempDir() + "/out")
	assert.NoError(t, err)

	assert.NoError(t, sink.WriteReport("report.txt", "hello"))
	assert.NoError(t, sink.WriteCSV("statistics.csv", sampleRecords()))
	assert.FileExists(t, sink.Path("report.txt"))
	assert.FileExists(t, sink.Path("statistics.csv"))
}
