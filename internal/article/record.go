package article

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/quality"
	"github.com/jonathan/review-schedule/internal/types"
)

// Status is the publication state of a record.
type Status string

// Record states. A record only moves from draft to published.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Fixed provenance values of generated records.
const (
	Source = "intelligent_generator"
	Domain = "review_schedule"
)

// Record is an assembled article. It is not safe for concurrent mutation.
type Record struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Vehicle     types.VehicleProfile  `json:"vehicle_info"`
	Entities    map[string]string     `json:"extracted_entities"`
	SEO         SeoMetadata           `json:"seo_data"`
	Content     types.ContentSections `json:"content"`
	Template    string                `json:"template"`
	Status      Status                `json:"status"`
	Source      string                `json:"source"`
	Domain      string                `json:"domain"`
	Metadata    Metadata              `json:"metadata"`
	Quality     types.QualityReport   `json:"quality_metrics"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	PublishedAt *time.Time            `json:"published_at,omitempty"`

	sink events.Sink
	now  func() time.Time
}

// SetSink replaces the sink that receives this record's events. A nil sink
// discards them.
func (r *Record) SetSink(s events.Sink) {
	r.sink = s
}

// EmitCreated announces the record to its sink.
func (r *Record) EmitCreated(ctx context.Context) {
	r.emit(ctx, events.Created(r.CreatedAt, events.CreatedPayload{
		Slug:         r.Slug,
		Vehicle:      r.Identifier(),
		QualityScore: r.Quality.Overall,
		Template:     r.Template,
	}))
}

func (r *Record) emit(ctx context.Context, e events.Event) {
	if r.sink == nil {
		return
	}
	r.sink.Emit(ctx, e)
}

func (r *Record) clock() time.Time {
	if r.now == nil {
		return time.Now().UTC()
	}
	return r.now()
}

// Identifier returns "Make Model Year".
func (r *Record) Identifier() string {
	return r.Vehicle.Identifier()
}

// Publish moves a draft to published and emits a publish event. Publishing an
// already published record does nothing and returns false.
func (r *Record) Publish(ctx context.Context) bool {
	if r.Status == StatusPublished {
		return false
	}
	at := r.clock()
	r.Status = StatusPublished
	r.PublishedAt = &at
	r.UpdatedAt = at

	r.emit(ctx, events.Published(at, events.PublishedPayload{
		Slug:         r.Slug,
		Vehicle:      r.Identifier(),
		QualityScore: r.Quality.Overall,
	}))
	return true
}

// UpdateContent merges the patch into the content, rescores it and emits a
// content-update event. It returns the replaced section names.
func (r *Record) UpdateContent(ctx context.Context, patch types.SectionsPatch) []types.SectionName {
	content, updated := r.Content.Apply(patch)
	r.Content = content
	r.Quality = quality.Score(content)
	r.Metadata.ContentStructure = contentStructure(content)
	r.UpdatedAt = r.clock()

	names := make([]string, 0, len(updated))
	for _, n := range updated {
		names = append(names, string(n))
	}
	r.emit(ctx, events.ContentUpdated(r.UpdatedAt, events.ContentUpdatedPayload{
		Slug:            r.Slug,
		NewQualityScore: r.Quality.Overall,
		UpdatedSections: names,
	}))
	return updated
}

// IsHighQuality reports whether the overall score reaches the high quality bar.
func (r *Record) IsHighQuality() bool {
	return quality.IsHighQuality(r.Quality)
}

// QualityIssues returns the issues found by the last scoring.
func (r *Record) QualityIssues() []string {
	return r.Quality.Issues
}

// ValidateQuality returns the publish verdict of the current content.
func (r *Record) ValidateQuality() types.QualityVerdict {
	return quality.Validate(r.Quality, r.Content)
}

// ContentHash digests the content used for change detection.
func (r *Record) ContentHash() string {
	return ContentHash(r.Content)
}

// VehicleKey returns the grouping key of the vehicle.
func (r *Record) VehicleKey() string {
	return VehicleKey(r.Vehicle)
}

// SearchTerms returns lowercase lookup terms, without blanks or duplicates.
func (r *Record) SearchTerms() []string {
	year := ""
	if r.Vehicle.Year > 0 {
		year = strconv.Itoa(r.Vehicle.Year)
	}
	candidates := []string{
		r.Vehicle.Make,
		r.Vehicle.Model,
		year,
		string(r.Vehicle.VehicleType.Normalize()),
		"revisão",
		"manutenção",
		"cronograma",
		r.Vehicle.Engine,
		r.Vehicle.FuelType,
	}

	seen := make(map[string]bool, len(candidates))
	terms := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		terms = append(terms, c)
	}
	return terms
}
