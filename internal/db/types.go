package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrArticleNotFound is returned when a slug has no stored article.
var ErrArticleNotFound = errors.New("article not found")

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run represents a batch generation run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourcePath  string     `json:"source_path"`
	SourceHash  string     `json:"source_hash"`
	Status      string     `json:"status"`
	Generated   int        `json:"generated"`
	Rejected    int        `json:"rejected"`
	Failed      int        `json:"failed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RunCounts holds the final tallies of a run.
type RunCounts struct {
	Generated int
	Rejected  int
	Failed    int
}

// ArticleSummary is a lightweight view of a stored article for listing
type ArticleSummary struct {
	Slug         string     `json:"slug"`
	VehicleKey   string     `json:"vehicle_key"`
	VehicleType  string     `json:"vehicle_type"`
	Status       string     `json:"status"`
	QualityScore int        `json:"quality_score"`
	ContentHash  string     `json:"content_hash"`
	UpdatedAt    time.Time  `json:"updated_at"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// ArticleFilters holds optional filters for listing articles
type ArticleFilters struct {
	Status      string
	VehicleType string
	MinQuality  int
	Limit       int
}
