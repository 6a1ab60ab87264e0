package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/rendering"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a generated article as Markdown or HTML",
	Long:  "Renders an article JSON file written by generate or run (full or storage document) as Markdown, or as a standalone HTML page.",
	RunE:  runPreview,
}

var (
	previewInput    string
	previewFormat   string
	previewTemplate string
	previewOutput   string
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "in", "i", "", "Path to an article JSON file (required)")
	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", formatMarkdown, "Output format: markdown or html")
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Custom Markdown template file (markdown format only)")
	previewCmd.Flags().StringVarP(&previewOutput, "out", "o", "", "Output file (default stdout)")

	markRequired(previewCmd, "in")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	doc, err := readDocument(previewInput)
	if err != nil {
		return err
	}
	rendered, err := renderPreview(article.FromDocument(doc), previewFormat, previewTemplate)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), previewOutput, []byte(rendered))
}

func renderPreview(record *article.Record, format, templatePath string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatMarkdown, "md":
		if templatePath != "" {
			return rendering.MarkdownWithTemplate(record, templatePath)
		}
		return rendering.Markdown(record)
	case formatHTML:
		if templatePath != "" {
			md, err := rendering.MarkdownWithTemplate(record, templatePath)
			if err != nil {
				return "", err
			}
			return rendering.MarkdownToHTML(md)
		}
		return rendering.HTML(record)
	default:
		return "", fmt.Errorf("unsupported preview format %q: use markdown or html", format)
	}
}
