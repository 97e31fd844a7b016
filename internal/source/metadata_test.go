package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corpus-lab/lexstat/internal/source"
)

func TestLoadMetadataCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.csv")
	csv := "filename,title,author,year\n" +
		"one.txt,The Overcoat,N. Gogol,1842\n" +
		"two.txt,Poor Folk,F. Dostoevsky,1846\n"
	assert.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	meta, err := source.LoadMetadata(path)
	assert.NoError(t, err)
	assert.Len(t, meta, 2)
	assert.Equal(t, "N. Gogol", meta["one.txt"]["author"])
	assert.Equal(t, "1846", meta["two.txt"]["year"])
	assert.NotContains(t, meta["one.txt"], "filename")
}

func TestLoadMetadataYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.yaml")
	yaml := "one.txt:\n  title: The Overcoat\n  author: N. Gogol\n"
	assert.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	meta, err := source.LoadMetadata(path)
	assert.NoError(t, err)
	assert.Equal(t, "The Overcoat", meta["one.txt"]["title"])
}

func TestLoadMetadataAbsent(t *testing.T) {
	meta, err := source.LoadMetadata(filepath.Join(t.TempDir(), "nope.csv"))
	assert.NoError(t, err)
	assert.Nil(t, meta)

	meta, err = source.LoadMetadata("")
	assert.NoError(t, err)
	assert.Nil(t, meta)
}

func TestLoadMetadataCSVWithoutFilenameColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.csv")
	assert.NoError(t, os.WriteFile(path, []byte("title,author\nA,B\n"), 0644))

	_, err := source.LoadMetadata(path)
	assert.Error(t, err)
}

func TestLoadMetadataCSVSkipsBlankFilenames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.csv")
	csv := "filename,title\n,Unattributed\nreal.txt,Kept\n"
	assert.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	meta, err := source.LoadMetadata(path)
	assert.NoError(t, err)
	assert.Len(t, meta, 1)
	assert.Equal(t, "Kept", meta["real.txt"]["title"])
}
