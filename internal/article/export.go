package article

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/review-schedule/internal/types"
)

// Export formats accepted by Record.Export.
const (
	FormatFull            = "full"
	FormatArray           = "array"
	FormatMinimal         = "minimal"
	FormatStorageDocument = "storage-document"
	FormatMongo           = "mongo"
	FormatJSON            = "json"
)

// Document is the full serialized form of a record.
type Document struct {
	ID                string                `json:"id"`
	Title             string                `json:"title"`
	Slug              string                `json:"slug"`
	NewSlug           string                `json:"new_slug"`
	ArticleSlug       string                `json:"article_slug"`
	VehicleInfo       types.VehicleProfile  `json:"vehicle_info"`
	ExtractedEntities map[string]string     `json:"extracted_entities"`
	SeoData           SeoMetadata           `json:"seo_data"`
	Content           types.ContentSections `json:"content"`
	Template          string                `json:"template"`
	Status            Status                `json:"status"`
	Source            string                `json:"source"`
	Domain            string                `json:"domain"`
	Metadata          Metadata              `json:"metadata"`
	QualityMetrics    types.QualityReport   `json:"quality_metrics"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
	PublishedAt       *time.Time            `json:"published_at,omitempty"`
}

// StorageDocument is the persisted form: the full document plus lookup fields.
type StorageDocument struct {
	Document
	SearchTerms []string `json:"search_terms"`
	VehicleKey  string   `json:"vehicle_key"`
	ContentHash string   `json:"content_hash"`
}

// Summary is the minimal export.
type Summary struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Vehicle      string `json:"vehicle"`
	QualityScore int    `json:"quality_score"`
	Status       Status `json:"status"`
}

// Document returns the full serialized form.
func (r *Record) Document() Document {
	return Document{
		ID:                r.ID,
		Title:             r.Title,
		Slug:              "cronograma-revisoes-" + r.Slug,
		NewSlug:           "revisao-" + r.Slug,
		ArticleSlug:       r.Slug,
		VehicleInfo:       r.Vehicle,
		ExtractedEntities: r.Entities,
		SeoData:           r.SEO,
		Content:           r.Content,
		Template:          r.Template,
		Status:            r.Status,
		Source:            r.Source,
		Domain:            r.Domain,
		Metadata:          r.Metadata,
		QualityMetrics:    r.Quality,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		PublishedAt:       r.PublishedAt,
	}
}

// StorageDocument returns the document expected by the persistence layer.
func (r *Record) StorageDocument() StorageDocument {
	return StorageDocument{
		Document:    r.Document(),
		SearchTerms: r.SearchTerms(),
		VehicleKey:  r.VehicleKey(),
		ContentHash: r.ContentHash(),
	}
}

// Summary returns the minimal export.
func (r *Record) Summary() Summary {
	return Summary{
		Title:        r.Title,
		Slug:         r.Slug,
		Vehicle:      r.Identifier(),
		QualityScore: r.Quality.Overall,
		Status:       r.Status,
	}
}

// Export returns the record in the named format. "json" yields the full
// document as an indented JSON string; unknown formats yield the full document.
func (r *Record) Export(format string) any {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatMinimal:
		return r.Summary()
	case FormatStorageDocument, FormatMongo:
		return r.StorageDocument()
	case FormatJSON:
		data, err := r.ExportJSON()
		if err != nil {
			return r.Document()
		}
		return string(data)
	default:
		return r.Document()
	}
}

// ExportJSON returns the full document as indented JSON without HTML escaping.
func (r *Record) ExportJSON() ([]byte, error) {
	return MarshalIndent(r.Document())
}

// MarshalIndent encodes v as indented JSON, leaving non-ASCII and HTML
// characters unescaped.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FromDocument rebuilds a record from its serialized form. The record has no
// event sink until SetSink is called.
func FromDocument(d Document) *Record {
	slug := d.ArticleSlug
	if slug == "" {
		slug = strings.TrimPrefix(d.NewSlug, "revisao-")
	}
	return &Record{
		ID:          d.ID,
		Title:       d.Title,
		Slug:        slug,
		Vehicle:     d.VehicleInfo,
		Entities:    d.ExtractedEntities,
		SEO:         d.SeoData,
		Content:     d.Content,
		Template:    d.Template,
		Status:      d.Status,
		Source:      d.Source,
		Domain:      d.Domain,
		Metadata:    d.Metadata,
		Quality:     d.QualityMetrics,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		PublishedAt: d.PublishedAt,
	}
}
