package rendering

import "strings"

// EscapeMarkdown escapes characters that Markdown would read as inline markup.
// Special characters: \ ` * _ [ ] < > |
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '\\', '`', '*', '_', '[', ']', '<', '>', '|':
			result.WriteByte('\\')
			result.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeTableCell escapes text for a single table cell. Line breaks would end
// the row, so they become spaces.
func EscapeTableCell(text string) string {
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
	return EscapeMarkdown(strings.TrimSpace(text))
}
