// Package engine orchestrates one analysis batch: it pulls documents
// from a source, runs the metrics pipeline over each, enriches the
// records with metadata and folds everything into a corpus summary.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/corpus-lab/lexstat/internal/analysis"
	"github.com/corpus-lab/lexstat/internal/config"
	"github.com/corpus-lab/lexstat/internal/corpus"
	"github.com/corpus-lab/lexstat/internal/source"
)

// ErrEmptyCorpus signals that there was nothing to analyze: either the
// source listed no documents or every document failed to read.
var ErrEmptyCorpus = errors.New("no documents to analyze")

// DocumentSource supplies ordered documents to the engine.
type DocumentSource interface {
	List() ([]string, error)
	Read(filename string) (*source.Document, error)
}

// Failure records one document that was excluded from the batch.
type Failure struct {
	Filename string
	Err      error
}

// Result is the outcome of one batch run. When the run was interrupted
// it holds the records completed so far, which remain valid.
type Result struct {
	Records  []analysis.Record
	Summary  corpus.Summary
	Failures []Failure
	Duration time.Duration
}

// Progress is invoked after each successfully analyzed document.
type Progress func(index, total int, rec analysis.Record)

// Engine runs analysis batches
type Engine struct {
	Config   *config.Config
	Logger   *logrus.Entry
	Source   DocumentSource
	Metadata source.Metadata
	Progress Progress
}

// NewEngine wires the batch orchestrator.
func NewEngine(cfg *config.Config, logger *logrus.Entry, src DocumentSource, meta source.Metadata) *Engine {
	return &Engine{
		Config:   cfg,
		Logger:   logger,
		Source:   src,
		Metadata: meta,
	}
}

// Run analyzes every listed document in stable name order. Documents are
// processed strictly one at a time; ctx is only consulted between
// documents, so cancellation never leaves a half-built record. Per-document
// read failures are logged, collected and skipped; only a fully empty
// corpus aborts the batch.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	files, err := e.Source.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrEmptyCorpus
	}
	e.Logger.Infof("Found %d documents to analyze", len(files))

	result := &Result{}
	for i, filename := range files {
		select {
		case <-ctx.Done():
			e.Logger.Warn("Batch interrupted, keeping partial results")
			e.finish(result, start)
			return result, ctx.Err()
		default:
		}

		doc, err := e.Source.Read(filename)
		if err != nil {
			e.Logger.WithError(err).Warnf("Skipping %s", filename)
			result.Failures = append(result.Failures, Failure{Filename: filename, Err: err})
			continue
		}

		rec := analysis.Analyze(doc.Filename, doc.Text, e.Config.Metrics.TopWords)
		rec.FileSize = doc.Size
		if extra, ok := e.Metadata[doc.Filename]; ok {
			rec.Extra = extra
		}
		result.Records = append(result.Records, rec)

		if e.Progress != nil {
			e.Progress(i+1, len(files), rec)
		}
	}

	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%w: all %d documents failed to read", ErrEmptyCorpus, len(files))
	}

	e.finish(result, start)
	e.Logger.Infof("Analyzed %d documents (%d skipped) in %s",
		len(result.Records), len(result.Failures), result.Duration.Round(time.Millisecond))
	return result, nil
}

func (e *Engine) finish(result *Result, start time.Time) {
	result.Summary = corpus.Aggregate(result.Records)
	result.Duration = time.Since(start)
}
