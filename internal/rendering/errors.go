// Package rendering renders assembled articles as Markdown and HTML.
package rendering

import "fmt"

// TemplateError reports a template that could not be loaded, parsed or
// executed. Template is the embedded name or the file path.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("template %s: %s", e.Template, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports an article that could not be rendered.
type RenderError struct {
	Slug    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	msg := "render"
	if e.Slug != "" {
		msg += " " + e.Slug
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
