package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateArticleFile(t *testing.T, format string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "article.json")
	_, err := executeCommand(t, "generate", "--make", "Toyota", "--model", "Corolla", "--year", "2024", "--format", format, "--out", path)
	require.NoError(t, err)
	return path
}

func TestPreviewCommand_Markdown(t *testing.T) {
	articlePath := generateArticleFile(t, "full")

	out, err := executeCommand(t, "preview", "--in", articlePath)
	require.NoError(t, err)
	assert.Contains(t, out, "# ")
	assert.Contains(t, out, "## Conclusão")
}

func TestPreviewCommand_HTMLFromStorageDocument(t *testing.T) {
	articlePath := generateArticleFile(t, "storage-document")
	outPath := filepath.Join(t.TempDir(), "preview.html")

	_, err := executeCommand(t, "preview", "--in", articlePath, "--format", "html", "--out", outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<article>")
	assert.Contains(t, string(content), "<table>")
}

func TestPreviewCommand_CustomTemplate(t *testing.T) {
	articlePath := generateArticleFile(t, "full")
	templatePath := filepath.Join(t.TempDir(), "custom.md.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{.Title}} ({{len .Schedule}})"), 0644))

	out, err := executeCommand(t, "preview", "--in", articlePath, "--template", templatePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Corolla")
}

func TestPreviewCommand_Errors(t *testing.T) {
	articlePath := generateArticleFile(t, "full")

	_, err := executeCommand(t, "preview", "--in", articlePath, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported preview format")

	sectionsPath := filepath.Join(t.TempDir(), "sections.json")
	require.NoError(t, os.WriteFile(sectionsPath, []byte(`{"introduction": "x"}`), 0644))
	_, err = executeCommand(t, "preview", "--in", sectionsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no slug")
}
