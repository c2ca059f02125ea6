package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverDocuments(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, "articles/2024/hello.md", "---\ntitle: Hello\ndate: \"2024-03-15\"\n---\nbody\n")
	writeContent(t, root, "articles/older.md", "---\ntitle: Older\ndate: \"2023-01-01\"\n---\nbody\n")
	writeContent(t, root, "articles/notes.txt", "not content\n")

	docs, err := DiscoverDocuments(filepath.Join(root, "articles", "**", "*.md"))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Sorted by path for deterministic runs.
	assert.Equal(t, "hello", docs[0].Slug)
	assert.Equal(t, "Hello", docs[0].Doc.Title)
	assert.Equal(t, "older", docs[1].Slug)
}

func TestDiscoverDocumentsEmptyTree(t *testing.T) {
	docs, err := DiscoverDocuments(filepath.Join(t.TempDir(), "**", "*.md"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDiscoverDocumentsMissingTitleIsFatal(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, "articles/untitled.md", "---\ndate: \"2024-03-15\"\n---\nbody\n")

	_, err := DiscoverDocuments(filepath.Join(root, "articles", "**", "*.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no title")
}

func TestDiscoverDocumentsAggregatesErrors(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, "articles/bad-one.md", "---\ntitle: [broken\n---\nbody\n")
	writeContent(t, root, "articles/bad-two.md", "---\ndate: \"2024-01-01\"\n---\nbody\n")
	writeContent(t, root, "articles/good.md", "---\ntitle: Fine\n---\nbody\n")

	_, err := DiscoverDocuments(filepath.Join(root, "articles", "**", "*.md"))
	require.Error(t, err)
	// Both broken documents are reported in a single run.
	assert.Contains(t, err.Error(), "bad-one.md")
	assert.Contains(t, err.Error(), "bad-two.md")
	assert.NotContains(t, err.Error(), "good.md")
}

func TestDiscoverDocumentsInvalidPattern(t *testing.T) {
	_, err := DiscoverDocuments("articles/[.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content glob")
}

func TestSlugFor(t *testing.T) {
	assert.Equal(t, "hello", slugFor("content/articles/2024/hello.md"))
	assert.Equal(t, "about", slugFor("about.md"))
	assert.Equal(t, "notes", slugFor("/abs/path/notes.px"))
}
