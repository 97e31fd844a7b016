package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the analyzer
type Config struct {
	Corpus  CorpusConfig
	Output  OutputConfig
	Metrics MetricsConfig
}

// CorpusConfig describes where input documents come from
type CorpusConfig struct {
	Dir          string
	Extensions   []string
	Charset      string
	MetadataPath string
	IncludeHTML  bool
}

// OutputConfig describes where the artifacts go
type OutputConfig struct {
	Dir        string
	ReportFile string
	CSVFile    string
}

// MetricsConfig holds tunables of the metrics engine
type MetricsConfig struct {
	TopWords int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Corpus: CorpusConfig{
			Dir:          GetStringEnv("LEXSTAT_CORPUS_DIR", "corpus"),
			Extensions:   splitList(GetStringEnv("LEXSTAT_EXTENSIONS", ".txt")),
			Charset:      GetStringEnv("LEXSTAT_CHARSET", "utf-8"),
			MetadataPath: GetStringEnv("LEXSTAT_METADATA", "data/metadata.csv"),
			IncludeHTML:  GetBoolEnv("LEXSTAT_INCLUDE_HTML", false),
		},
		Output: OutputConfig{
			Dir:        GetStringEnv("LEXSTAT_OUTPUT_DIR", "results"),
			ReportFile: GetStringEnv("LEXSTAT_REPORT_FILE", "report.txt"),
			CSVFile:    GetStringEnv("LEXSTAT_CSV_FILE", "statistics.csv"),
		},
		Metrics: MetricsConfig{
			TopWords: GetIntEnv("LEXSTAT_TOP_WORDS", 3),
		},
	}
	if cfg.Corpus.IncludeHTML {
		cfg.Corpus.Extensions = append(cfg.Corpus.Extensions, ".html", ".htm")
	}
	return cfg
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
