package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata maps a document filename to a flat key/value record used
// purely for enrichment (title, author, year, ...).
type Metadata map[string]map[string]string

// LoadMetadata reads an optional metadata file. CSV files need a header
// row with a "filename" column; .yaml/.yml files hold a mapping from
// filename to a flat record. An empty path or a missing file yields nil
// without error: absence of metadata is not a failure.
func LoadMetadata(path string) (Metadata, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read metadata %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLMetadata(data)
	default:
		return parseCSVMetadata(data)
	}
}

func parseYAMLMetadata(data []byte) (Metadata, error) {
	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata YAML: %w", err)
	}
	return meta, nil
}

func parseCSVMetadata(data []byte) (Metadata, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("metadata CSV has no header row")
	}

	header := rows[0]
	fileCol := -1
	for i, name := range header {
		if name == "filename" {
			fileCol = i
			break
		}
	}
	if fileCol < 0 {
		return nil, errors.New("metadata CSV has no filename column")
	}

	meta := make(Metadata, len(rows)-1)
	for _, row := range rows[1:] {
		if fileCol >= len(row) || row[fileCol] == "" {
			continue
		}
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i == fileCol || i >= len(row) {
				continue
			}
			record[name] = row[i]
		}
		meta[row[fileCol]] = record
	}
	return meta, nil
}
