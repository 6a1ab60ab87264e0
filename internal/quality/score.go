// Package quality scores assembled article sections for publishability.
package quality

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/review-schedule/internal/types"
)

// Thresholds used by the scoring rules.
const (
	MinIntroductionChars = 100
	MinConclusionChars   = 80
	MinFAQs              = 3
	MaxFAQs              = 8
	MinScheduleEntries   = 4
	MinCriticalParts     = 3

	HighQualityScore      = 85
	MinValidScore         = 60
	GoodEnoughScore       = 80
	requiredSectionPoints = 25
)

// requiredSections are checked by the completeness rule, in this order.
var requiredSections = []types.SectionName{
	types.SectionIntroduction,
	types.SectionDetailedSchedule,
	types.SectionFAQs,
	types.SectionConclusion,
}

// Score computes the completeness, depth and structural subscores of the
// sections. Issues are appended in rule order.
func Score(s types.ContentSections) types.QualityReport {
	issues := make([]string, 0)

	completeness := scoreCompleteness(s, &issues)
	depth := scoreDepth(s, &issues)
	structural := scoreStructure(s, &issues)

	return types.QualityReport{
		Completeness: completeness,
		Depth:        depth,
		Structural:   structural,
		Overall:      overall(completeness, depth, structural),
		Issues:       issues,
	}
}

// IsHighQuality reports whether the report reaches the high quality bar.
func IsHighQuality(r types.QualityReport) bool {
	return r.Overall >= HighQualityScore
}

func overall(completeness, depth, structural int) int {
	return int(math.Round(float64(completeness+depth+structural) / 3))
}

func scoreCompleteness(s types.ContentSections, issues *[]string) int {
	score := 0
	for _, name := range requiredSections {
		if s.Has(name) {
			score += requiredSectionPoints
			continue
		}
		*issues = append(*issues, fmt.Sprintf("Missing required section: %s", name))
	}
	return score
}

func scoreDepth(s types.ContentSections, issues *[]string) int {
	score := 0

	if n := textLength(s.Introduction); n >= MinIntroductionChars {
		score += 20
	} else {
		*issues = append(*issues, fmt.Sprintf("Introduction too short (%d chars, minimum %d)", n, MinIntroductionChars))
	}

	if n := textLength(s.Conclusion); n >= MinConclusionChars {
		score += 20
	} else {
		*issues = append(*issues, fmt.Sprintf("Conclusion too short (%d chars, minimum %d)", n, MinConclusionChars))
	}

	if n := len(s.FAQs); n >= MinFAQs && n <= MaxFAQs {
		score += 30
	} else {
		*issues = append(*issues, fmt.Sprintf("FAQ count outside optimal range (%d, optimal: %d-%d)", n, MinFAQs, MaxFAQs))
	}

	if n := len(s.DetailedSchedule); n >= MinScheduleEntries {
		score += 30
	} else {
		*issues = append(*issues, fmt.Sprintf("Insufficient revision details (%d, minimum %d)", n, MinScheduleEntries))
	}

	return score
}

func scoreStructure(s types.ContentSections, issues *[]string) int {
	score := 0

	if s.Has(types.SectionOverviewTable) {
		score += 25
	} else {
		*issues = append(*issues, "Missing overview table")
	}

	if s.Has(types.SectionTechnicalSpecs) {
		score += 25
	} else {
		*issues = append(*issues, "Missing technical specifications")
	}

	if n := len(s.CriticalParts); n >= MinCriticalParts {
		score += 25
	} else {
		*issues = append(*issues, fmt.Sprintf("Insufficient critical parts information (%d, minimum %d)", n, MinCriticalParts))
	}

	if s.Has(types.SectionWarrantyInfo) {
		score += 25
	} else {
		*issues = append(*issues, "Missing warranty information")
	}

	return score
}

// textLength counts characters, not bytes, after trimming surrounding space.
func textLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
