package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToHTML(t *testing.T) {
	html, err := MarkdownToHTML("## Revisões\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n")
	require.NoError(t, err)

	assert.Contains(t, html, `<h2 id="`)
	assert.Contains(t, html, "Revisões</h2>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestMarkdownToHTML_OmitsRawHTML(t *testing.T) {
	html, err := MarkdownToHTML("<script>alert(1)</script>\n")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestHTML(t *testing.T) {
	record := newRecord(t, corolla())

	page, err := HTML(record)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>"+record.SEO.PageTitle+"</title>")
	assert.Contains(t, page, `<meta name="robots" content="index,follow">`)
	assert.Contains(t, page, `<link rel="canonical" href="`+record.SEO.CanonicalURL+`">`)
	assert.Contains(t, page, "<h1")
	assert.Contains(t, page, "Cronograma de Revisões do Toyota Corolla 2024</h1>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "</article>")
}

func TestHTML_Nil(t *testing.T) {
	_, err := HTML(nil)
	assert.Error(t, err)
}
