// Package events carries the domain events emitted by article records and the
// sinks that observe them.
package events

import "time"

// Type names an article event.
type Type string

// Article lifecycle events.
const (
	TypeArticleCreated   Type = "article.created"
	TypeContentUpdated   Type = "article.content_updated"
	TypeArticlePublished Type = "article.published"
)

// Event is one occurrence on an article. Payload holds one of the payload
// structs below.
type Event struct {
	Type       Type      `json:"type"`
	Slug       string    `json:"slug"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CreatedPayload is emitted once per accepted record.
type CreatedPayload struct {
	Slug         string `json:"slug"`
	Vehicle      string `json:"vehicle"`
	QualityScore int    `json:"quality_score"`
	Template     string `json:"template"`
}

// ContentUpdatedPayload is emitted after sections are replaced and rescored.
type ContentUpdatedPayload struct {
	Slug            string   `json:"slug"`
	NewQualityScore int      `json:"new_quality_score"`
	UpdatedSections []string `json:"updated_sections"`
}

// PublishedPayload is emitted when a draft becomes published.
type PublishedPayload struct {
	Slug         string `json:"slug"`
	Vehicle      string `json:"vehicle"`
	QualityScore int    `json:"quality_score"`
}

// Created builds an article.created event.
func Created(at time.Time, p CreatedPayload) Event {
	return Event{Type: TypeArticleCreated, Slug: p.Slug, Payload: p, OccurredAt: at}
}

// ContentUpdated builds an article.content_updated event.
func ContentUpdated(at time.Time, p ContentUpdatedPayload) Event {
	return Event{Type: TypeContentUpdated, Slug: p.Slug, Payload: p, OccurredAt: at}
}

// Published builds an article.published event.
func Published(at time.Time, p PublishedPayload) Event {
	return Event{Type: TypeArticlePublished, Slug: p.Slug, Payload: p, OccurredAt: at}
}
