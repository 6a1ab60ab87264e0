package rendering

import (
	"bytes"
	"errors"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/jonathan/review-schedule/internal/article"
)

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<meta name="description" content="{{ .Description }}">
<meta name="robots" content="{{ .Robots }}">
{{- with .Canonical }}
<link rel="canonical" href="{{ . }}">
{{- end }}
</head>
<body>
<article>
{{ .Body }}</article>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Robots      string
	Canonical   string
	Body        template.HTML
}

// MarkdownToHTML converts Markdown to an HTML fragment. Raw HTML in the input
// is not passed through.
func MarkdownToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(markdown), &buf); err != nil {
		return "", &RenderError{Message: "failed to convert markdown", Cause: err}
	}
	return buf.String(), nil
}

// HTML renders record as a standalone preview page carrying its SEO metadata.
func HTML(record *article.Record) (string, error) {
	md, err := Markdown(record)
	if err != nil {
		return "", err
	}
	body, err := MarkdownToHTML(md)
	if err != nil {
		var renderErr *RenderError
		if errors.As(err, &renderErr) {
			renderErr.Slug = record.Slug
		}
		return "", err
	}

	title := record.SEO.PageTitle
	if title == "" {
		title = record.Title
	}
	robots := record.SEO.MetaRobots
	if robots == "" {
		robots = "noindex"
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Title:       title,
		Description: record.SEO.MetaDescription,
		Robots:      robots,
		Canonical:   record.SEO.CanonicalURL,
		Body:        template.HTML(body), //nolint:gosec // goldmark omits raw HTML unless WithUnsafe is set
	})
	if err != nil {
		return "", &TemplateError{Template: "page", Message: "failed to execute page template", Cause: err}
	}
	return buf.String(), nil
}
