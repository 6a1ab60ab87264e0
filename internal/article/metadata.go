package article

import (
	"strings"
	"time"

	"github.com/jonathan/review-schedule/internal/types"
)

// Metadata describes the article for downstream indexing.
type Metadata struct {
	ContentStructure       ContentStructure       `json:"content_structure"`
	VehicleCharacteristics VehicleCharacteristics `json:"vehicle_characteristics"`
	GenerationInfo         GenerationInfo         `json:"generation_info"`
	SeoIndicators          SeoIndicators          `json:"seo_indicators"`
}

// ContentStructure counts what the body contains.
type ContentStructure struct {
	SectionsCount   int  `json:"sections_count"`
	HasIntroduction bool `json:"has_introduction"`
	HasConclusion   bool `json:"has_conclusion"`
	HasFAQs         bool `json:"has_faqs"`
	FAQCount        int  `json:"faq_count"`
	RevisionCount   int  `json:"revision_count"`
}

// VehicleCharacteristics summarizes the vehicle for filtering.
type VehicleCharacteristics struct {
	Type                string `json:"type"`
	Segment             string `json:"segment"`
	FuelType            string `json:"fuel_type"`
	DetectionConfidence string `json:"detection_confidence"`
	IsPremium           bool   `json:"is_premium"`
}

// GenerationInfo records how and when the article was produced.
type GenerationInfo struct {
	TemplateUsed        string    `json:"template_used"`
	GenerationTimestamp time.Time `json:"generation_timestamp"`
	SourceSystem        string    `json:"source_system"`
	ContentVersion      string    `json:"content_version"`
}

// SeoIndicators summarizes the SEO metadata.
type SeoIndicators struct {
	TargetKeywordsCount int  `json:"target_keywords_count"`
	H2Count             int  `json:"h2_count"`
	HasSchema           bool `json:"has_schema"`
	IsIndexable         bool `json:"is_indexable"`
}

func contentStructure(s types.ContentSections) ContentStructure {
	filled := 0
	for _, name := range s.Keys() {
		if s.Has(name) {
			filled++
		}
	}
	return ContentStructure{
		SectionsCount:   filled,
		HasIntroduction: s.Has(types.SectionIntroduction),
		HasConclusion:   s.Has(types.SectionConclusion),
		HasFAQs:         s.Has(types.SectionFAQs),
		FAQCount:        len(s.FAQs),
		RevisionCount:   len(s.DetailedSchedule),
	}
}

func buildMetadata(p types.VehicleProfile, s types.ContentSections, seo SeoMetadata, template, source, version string, at time.Time) Metadata {
	return Metadata{
		ContentStructure: contentStructure(s),
		VehicleCharacteristics: VehicleCharacteristics{
			Type:                string(p.VehicleType.Normalize()),
			Segment:             orDefault(p.Segment, "unknown"),
			FuelType:            orDefault(p.FuelType, "unknown"),
			DetectionConfidence: orDefault(p.DetectionConfidence, "medium"),
			IsPremium:           p.IsPremium(),
		},
		GenerationInfo: GenerationInfo{
			TemplateUsed:        template,
			GenerationTimestamp: at,
			SourceSystem:        source,
			ContentVersion:      version,
		},
		SeoIndicators: SeoIndicators{
			TargetKeywordsCount: len(seo.SecondaryKeywords),
			H2Count:             len(seo.H2Tags),
			HasSchema:           seo.SchemaType != "",
			IsIndexable:         !strings.Contains(seo.MetaRobots, "noindex"),
		},
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
