package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/corpus-lab/lexstat/internal/analysis"
	"github.com/corpus-lab/lexstat/internal/config"
	"github.com/corpus-lab/lexstat/internal/engine"
	"github.com/corpus-lab/lexstat/internal/report"
	"github.com/corpus-lab/lexstat/internal/source"
)

// CLI flags override the LEXSTAT_* environment configuration; empty
// values keep the configured defaults.
type CLI struct {
	Corpus   string `short:"c" help:"Folder with input documents (default: corpus)."`
	Metadata string `short:"m" help:"Optional CSV or YAML metadata file (default: data/metadata.csv)."`
	Output   string `short:"o" help:"Folder for the report and CSV export (default: results)."`
	Name     string `short:"n" help:"Corpus name used in the report header."`
	Charset  string `help:"Input charset: utf-8, cp1251, cp866, koi8-r or latin-1."`
	Top      int    `short:"t" help:"How many frequent words to keep per document."`
	HTML     bool   `help:"Also analyze .html/.htm documents (tags stripped)."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("lexstat"),
		kong.Description("Computes lexical statistics over a folder of text documents."))

	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "lexstat")

	// .env is optional
	_ = godotenv.Load()

	// 1. Config
	cfg := config.Load()
	applyFlags(cfg, &cli)

	// 2. Document source
	reader, err := source.NewFolderReader(cfg.Corpus.Dir, cfg.Corpus.Extensions, cfg.Corpus.Charset)
	if err != nil {
		entry.Fatalf("Failed to initialize document source: %v", err)
	}

	// 3. Metadata (optional)
	meta, err := source.LoadMetadata(cfg.Corpus.MetadataPath)
	if err != nil {
		entry.WithError(err).Warn("Ignoring unreadable metadata")
	}
	if len(meta) > 0 {
		entry.Infof("Loaded metadata for %d documents", len(meta))
	}

	// 4. Engine
	eng := engine.NewEngine(cfg, entry, reader, meta)
	eng.Progress = func(index, total int, rec analysis.Record) {
		entry.Infof("[%2d/%2d] %s: %d words, %d unique, TTR %.3f",
			index, total, rec.Filename, rec.WordCount, rec.UniqueWords, rec.TTR)
	}

	// Allow Ctrl-C to stop the batch between documents
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := eng.Run(ctx)
	switch {
	case errors.Is(err, engine.ErrEmptyCorpus):
		entry.Errorf("Nothing to analyze in %s: %v", cfg.Corpus.Dir, err)
		os.Exit(1)
	case errors.Is(err, context.Canceled):
		if len(result.Records) == 0 {
			entry.Error("Interrupted before any document completed")
			os.Exit(1)
		}
		entry.Warnf("Interrupted, writing partial results for %d documents", len(result.Records))
	case err != nil:
		entry.Fatalf("Analysis failed: %v", err)
	}

	// 5. Outputs: each sink fails independently
	sink, err := report.NewFileSink(cfg.Output.Dir)
	if err != nil {
		entry.Fatalf("Failed to prepare output directory: %v", err)
	}

	failed := 0
	if err := sink.WriteCSV(cfg.Output.CSVFile, result.Records); err != nil {
		entry.WithError(err).Error("Failed to save CSV export")
		failed++
	} else {
		entry.Infof("Statistics saved: %s", sink.Path(cfg.Output.CSVFile))
	}

	text := report.Render(result.Summary, result.Records, corpusName(&cli, result.Records), time.Now())
	if err := sink.WriteReport(cfg.Output.ReportFile, text); err != nil {
		entry.WithError(err).Error("Failed to save text report")
		failed++
	} else {
		entry.Infof("Report saved: %s", sink.Path(cfg.Output.ReportFile))
	}

	if failed == 2 {
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, cli *CLI) {
	if cli.Corpus != "" {
		cfg.Corpus.Dir = cli.Corpus
	}
	if cli.Metadata != "" {
		cfg.Corpus.MetadataPath = cli.Metadata
	}
	if cli.Output != "" {
		cfg.Output.Dir = cli.Output
	}
	if cli.Charset != "" {
		cfg.Corpus.Charset = cli.Charset
	}
	if cli.Top > 0 {
		cfg.Metrics.TopWords = cli.Top
	}
	if cli.HTML && !cfg.Corpus.IncludeHTML {
		cfg.Corpus.IncludeHTML = true
		cfg.Corpus.Extensions = append(cfg.Corpus.Extensions, ".html", ".htm")
	}
}

// corpusName prefers the explicit flag, then the first record that
// carries an author, then a generic fallback.
func corpusName(cli *CLI, records []analysis.Record) string {
	if cli.Name != "" {
		return cli.Name
	}
	for _, rec := range records {
		if author, ok := rec.Extra["author"]; ok && author != "" {
			return "Works of " + author
		}
	}
	return "Text corpus"
}
