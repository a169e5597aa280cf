package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindCSVFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_history.csv", "data")
	writeFile(t, dir, "a_history.CSV", "data")
	writeFile(t, dir, "notes.txt", "skip me")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0755))

	discovery := NewDiscovery(dir)
	found, err := discovery.FindCSVFiles(".")
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, "a_history.CSV", found[0].Name)
	assert.Equal(t, "b_history.csv", found[1].Name)
}

func TestFindCSVFilesMissingDir(t *testing.T) {
	discovery := NewDiscovery(t.TempDir())

	_, err := discovery.FindCSVFiles("does-not-exist")
	assert.Error(t, err)
}

func TestLoaderPreservesOrderAndIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.csv", "header\nrow")
	second := writeFile(t, dir, "second.csv", "header\nother")
	missing := filepath.Join(dir, "missing.csv")

	loader := NewLoader(2, nil)
	sources, failures := loader.Load(context.Background(), []string{first, missing, second})

	require.Len(t, sources, 2)
	assert.Equal(t, "first.csv", sources[0].Name)
	assert.Equal(t, "header\nrow", sources[0].Content)
	assert.Equal(t, "second.csv", sources[1].Name)

	require.Len(t, failures, 1)
	assert.Equal(t, "missing.csv", failures[0].SourceFile)
	require.Len(t, failures[0].Errors, 1)
	assert.Contains(t, failures[0].Errors[0], "failed to read file")
}
