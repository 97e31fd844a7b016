// Package source supplies raw documents and optional metadata to the
// analysis engine. All failures are per-document and typed so the caller
// can tell a missing file from a decode problem.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Typed read failures. Wrapped into per-document errors and matched
// with errors.Is by the engine.
var (
	ErrNotFound       = errors.New("file not found")
	ErrNotRegular     = errors.New("not a regular file")
	ErrPermission     = errors.New("permission denied")
	ErrDecode         = errors.New("decode failure")
	ErrUnknownCharset = errors.New("unsupported charset")
)

// Document is one raw input: filename, decoded UTF-8 text and size on
// disk. The text is only held for the duration of the analysis.
type Document struct {
	Filename string
	Path     string
	Text     string
	Size     int64
}

// FolderReader lists and reads documents from a single folder,
// non-recursively, in stable name order.
type FolderReader struct {
	dir        string
	extensions []string
	decoder    *encoding.Decoder
}

// NewFolderReader creates a reader over dir for the given filename
// extensions (".txt" when empty). charset selects the on-disk encoding;
// the empty string and "utf-8" mean validated UTF-8, everything else is
// decoded through the matching character map.
func NewFolderReader(dir string, extensions []string, charset string) (*FolderReader, error) {
	if len(extensions) == 0 {
		extensions = []string{".txt"}
	}
	dec, err := decoderFor(charset)
	if err != nil {
		return nil, err
	}
	return &FolderReader{
		dir:        dir,
		extensions: extensions,
		decoder:    dec,
	}, nil
}

func decoderFor(charset string) (*encoding.Decoder, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "cp1251", "windows-1251":
		return charmap.Windows1251.NewDecoder(), nil
	case "cp866":
		return charmap.CodePage866.NewDecoder(), nil
	case "koi8-r":
		return charmap.KOI8R.NewDecoder(), nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, charset)
	}
}

// List returns the matching filenames sorted by name. Listing failure is
// batch-level; an empty folder is not an error.
func (fr *FolderReader) List() ([]string, error) {
	entries, err := os.ReadDir(fr.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, fr.dir)
		}
		return nil, fmt.Errorf("failed to list folder %s: %w", fr.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if fr.matchExt(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (fr *FolderReader) matchExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range fr.extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// Read loads and decodes one document by filename. HTML documents are
// reduced to their visible text before being returned.
func (fr *FolderReader) Read(filename string) (*Document, error) {
	path := filepath.Join(fr.dir, filename)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := fr.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".html" || ext == ".htm" {
		text = StripHTML(text)
	}

	return &Document{
		Filename: filename,
		Path:     path,
		Text:     text,
		Size:     info.Size(),
	}, nil
}

func (fr *FolderReader) decode(raw []byte) (string, error) {
	if fr.decoder == nil {
		if !utf8.Valid(raw) {
			return "", errors.New("invalid UTF-8")
		}
		return string(raw), nil
	}
	out, err := fr.decoder.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// StripHTML extracts the visible text of an HTML document, skipping
// script and style contents and collapsing whitespace.
func StripHTML(input string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var builder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			// EOF is the only terminal condition for in-memory input;
			// the tokenizer recovers from malformed markup on its own.
			return cleanText(builder.String())

		case html.StartTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					builder.WriteString(text + " ")
				}
			}
		}
	}
}

// cleanText removes excessive whitespace
func cleanText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
