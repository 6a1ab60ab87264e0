package types

// QualityReport is the numeric publishability score of an article body.
type QualityReport struct {
	Completeness int      `json:"content_completeness"`
	Depth        int      `json:"content_depth"`
	Structural   int      `json:"structural_quality"`
	Overall      int      `json:"overall_score"`
	Issues       []string `json:"issues"`
}

// QualityVerdict is the publish-or-reject decision derived from a QualityReport.
type QualityVerdict struct {
	IsValid      bool     `json:"is_valid"`
	Issues       []string `json:"issues"`
	Warnings     []string `json:"warnings"`
	QualityScore int      `json:"quality_score"`
}
