package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/observability"
	"github.com/jonathan/review-schedule/internal/quality"
	"github.com/jonathan/review-schedule/internal/types"
)

var analyzeQualityCmd = &cobra.Command{
	Use:   "analyze-quality",
	Short: "Score the content of an article",
	Long: `Scores article content for completeness, depth and structure and reports
whether it is ready to publish. The input is either a ContentSections JSON file
or a full article document, whose "content" field is scored.`,
	RunE: runAnalyzeQuality,
}

var (
	analyzeInput   string
	analyzeOutput  string
	analyzeVerbose bool
)

func init() {
	analyzeQualityCmd.Flags().StringVarP(&analyzeInput, "in", "i", "", "Path to a sections or article JSON file (required)")
	analyzeQualityCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Output file for the report JSON (default stdout)")
	analyzeQualityCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report instead of JSON")

	markRequired(analyzeQualityCmd, "in")

	rootCmd.AddCommand(analyzeQualityCmd)
}

// qualityAnalysis is the output of analyze-quality.
type qualityAnalysis struct {
	Report      types.QualityReport  `json:"report"`
	Verdict     types.QualityVerdict `json:"verdict"`
	HighQuality bool                 `json:"high_quality"`
}

func runAnalyzeQuality(cmd *cobra.Command, _ []string) error {
	sections, err := loadSections(analyzeInput)
	if err != nil {
		return err
	}
	analysis := analyzeSections(sections)

	if analyzeVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintQualityReport(analysis.Report, analysis.Verdict)
		if analyzeOutput == "" {
			return nil
		}
	}
	return writeJSON(cmd.OutOrStdout(), analyzeOutput, analysis)
}

func analyzeSections(sections types.ContentSections) qualityAnalysis {
	report := quality.Score(sections)
	return qualityAnalysis{
		Report:      report,
		Verdict:     quality.Validate(report, sections),
		HighQuality: quality.IsHighQuality(report),
	}
}

// loadSections reads the sections to score. A document with a "content"
// object is unwrapped; anything else is read as the sections themselves.
func loadSections(path string) (types.ContentSections, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.ContentSections{}, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	var doc struct {
		Content *types.ContentSections `json:"content"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return types.ContentSections{}, fmt.Errorf("failed to unmarshal input JSON: %w", err)
	}
	if doc.Content != nil {
		return *doc.Content, nil
	}

	var sections types.ContentSections
	if err := json.Unmarshal(content, &sections); err != nil {
		return types.ContentSections{}, fmt.Errorf("failed to unmarshal sections JSON: %w", err)
	}
	return sections, nil
}
