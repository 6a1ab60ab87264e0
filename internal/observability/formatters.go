// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/db"
	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/ingestion"
	"github.com/jonathan/review-schedule/internal/types"
	"github.com/jonathan/review-schedule/internal/variation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow items under a heading.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintArticle outputs a summary of an assembled article.
func (p *Printer) PrintArticle(record *article.Record) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Vehicle:   %s\n", record.Identifier()))
	sb.WriteString(fmt.Sprintf("Slug:      %s\n", record.Slug))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", record.Template))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", record.Status))
	sb.WriteString(fmt.Sprintf("Score:     %d/100\n", record.Quality.Overall))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", record.SEO.PageTitle))
	if record.SEO.PrimaryKeyword != "" {
		sb.WriteString(fmt.Sprintf("Keyword: %s\n", record.SEO.PrimaryKeyword))
	}
	writeList(&sb, "Issues", record.Quality.Issues)

	p.printBox("ARTICLE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityReport outputs sub-scores and the publish verdict.
func (p *Printer) PrintQualityReport(report types.QualityReport, verdict types.QualityVerdict) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness:  %3d/100\n", report.Completeness))
	sb.WriteString(fmt.Sprintf("Depth:         %3d/100\n", report.Depth))
	sb.WriteString(fmt.Sprintf("Structure:     %3d/100\n", report.Structural))
	sb.WriteString(fmt.Sprintf("Overall:       %3d/100\n", report.Overall))
	sb.WriteString("\n")
	if verdict.IsValid {
		sb.WriteString("✅ Ready to publish\n")
	} else {
		sb.WriteString("⚠ Not ready to publish\n")
	}
	writeList(&sb, "Issues", verdict.Issues)
	writeList(&sb, "Warnings", verdict.Warnings)

	p.printBox("QUALITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVariationStats outputs the most rotated variation keys.
func (p *Printer) PrintVariationStats(stats variation.UsageStats) {
	if stats.TotalKeys == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keys tracked: %d\n\n", stats.TotalKeys))
	for _, kc := range stats.MostUsedKeys {
		sb.WriteString(fmt.Sprintf("%3d  %s\n", kc.Count, kc.Key))
	}

	p.printBox("VARIATION USAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVehicleStats outputs counts by type, year range and top makes.
func (p *Printer) PrintVehicleStats(stats ingestion.VehicleStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total vehicles: %d\n", stats.Total))
	if stats.MinYear > 0 {
		sb.WriteString(fmt.Sprintf("Years:          %d - %d\n", stats.MinYear, stats.MaxYear))
	}
	sb.WriteString("\n")

	if len(stats.ByType) > 0 {
		sb.WriteString("By type:\n")
		typeNames := make([]string, 0, len(stats.ByType))
		for name := range stats.ByType {
			typeNames = append(typeNames, name)
		}
		slices.Sort(typeNames)
		for _, name := range typeNames {
			sb.WriteString(fmt.Sprintf("  • %-12s %d\n", name, stats.ByType[name]))
		}
		sb.WriteString("\n")
	}

	if top := stats.TopMakes(maxItemsToShow); len(top) > 0 {
		sb.WriteString("Top makes:\n")
		for _, mc := range top {
			sb.WriteString(fmt.Sprintf("  • %-12s %d\n", mc.Make, mc.Count))
		}
		if len(stats.ByMake) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.ByMake)-maxItemsToShow))
		}
	}

	p.printBox("VEHICLE DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLoadMetadata outputs where vehicles were loaded from.
func (p *Printer) PrintLoadMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", meta.Path))
	sb.WriteString(fmt.Sprintf("Rows:     %d\n", meta.Rows))
	sb.WriteString(fmt.Sprintf("Loaded:   %d\n", meta.Loaded))
	sb.WriteString(fmt.Sprintf("Skipped:  %d\n", meta.Skipped))
	sb.WriteString(fmt.Sprintf("SHA256:   %s", meta.Hash))

	p.printBox("VEHICLE FILE", sb.String())
}

// PrintRunSummary outputs the tallies of a batch run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunSummary(generated, rejected, unchanged, failed, highQuality int, averageScore float64) {
	if generated+rejected+unchanged+failed == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO VEHICLES PROCESSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated:      %d (%d high quality)\n", generated, highQuality))
	sb.WriteString(fmt.Sprintf("Rejected:       %d\n", rejected))
	sb.WriteString(fmt.Sprintf("Unchanged:      %d\n", unchanged))
	sb.WriteString(fmt.Sprintf("Failed:         %d\n", failed))
	sb.WriteString(fmt.Sprintf("Average score:  %.1f", averageScore))

	p.printBox("RUN SUMMARY", sb.String())
}

// PrintStoreStats outputs article counts by status and recent batch runs.
func (p *Printer) PrintStoreStats(byStatus map[string]int, runs []db.Run) {
	var sb strings.Builder
	total := 0
	for _, n := range byStatus {
		total += n
	}
	sb.WriteString(fmt.Sprintf("Articles: %d\n", total))
	for _, status := range slices.Sorted(maps.Keys(byStatus)) {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", status, byStatus[status]))
	}

	if len(runs) > 0 {
		sb.WriteString("\nRuns (generated/rejected/failed):\n")
		for _, run := range runs {
			sb.WriteString(fmt.Sprintf("  %s  %s  %-9s %d/%d/%d\n",
				run.CreatedAt.Format("2006-01-02 15:04"), run.ID.String()[:8], run.Status,
				run.Generated, run.Rejected, run.Failed))
		}
	}

	p.printBox("ARTICLE STORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEventStats outputs event counts by type and, when slug is set, the
// event history of that article.
func (p *Printer) PrintEventStats(counts map[events.Type]int, slug string, history []events.StoredEvent) {
	var sb strings.Builder
	for _, t := range slices.Sorted(maps.Keys(counts)) {
		sb.WriteString(fmt.Sprintf("%-26s %d\n", t, counts[t]))
	}
	if len(counts) == 0 {
		sb.WriteString("No events recorded\n")
	}

	if slug != "" {
		sb.WriteString(fmt.Sprintf("\nHistory of %s:\n", slug))
		if len(history) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, e := range history {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", e.OccurredAt.Format("2006-01-02 15:04:05"), e.Type))
		}
	}

	p.printBox("EVENT LOG", strings.TrimSuffix(sb.String(), "\n"))
}
