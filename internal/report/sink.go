package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corpus-lab/lexstat/internal/analysis"
)

// FileSink writes the output artifacts into a base directory. Each write
// fails independently so one broken sink never suppresses the other.
type FileSink struct {
	baseDir string
}

// NewFileSink creates the output directory if needed.
func NewFileSink(baseDir string) (*FileSink, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileSink{baseDir: baseDir}, nil
}

// WriteReport stores the rendered text report under the given name.
func (s *FileSink) WriteReport(name, content string) error {
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteCSV stores the tabular export under the given name.
func (s *FileSink) WriteCSV(name string, records []analysis.Record) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return err
	}
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// Path resolves an artifact name inside the sink directory.
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}
