package quality

import "github.com/jonathan/review-schedule/internal/types"

// Validate turns a report into a publish verdict. It never fails; callers
// decide what to do with an invalid verdict.
func Validate(r types.QualityReport, s types.ContentSections) types.QualityVerdict {
	v := types.QualityVerdict{
		IsValid:      true,
		Issues:       make([]string, 0),
		Warnings:     make([]string, 0),
		QualityScore: r.Overall,
	}

	if r.Overall < MinValidScore {
		v.IsValid = false
		v.Issues = append(v.Issues, "Overall quality score too low")
	}
	if !s.Has(types.SectionIntroduction) {
		v.IsValid = false
		v.Issues = append(v.Issues, "Missing introduction")
	}
	if !s.Has(types.SectionConclusion) {
		v.IsValid = false
		v.Issues = append(v.Issues, "Missing conclusion")
	}

	if r.Overall < GoodEnoughScore {
		v.Warnings = append(v.Warnings, "Quality score could be improved")
	}
	if len(s.FAQs) < MinFAQs {
		v.Warnings = append(v.Warnings, "Low FAQ count")
	}

	return v
}
