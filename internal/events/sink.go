package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonathan/review-schedule/internal/logfields"
)

// Sink observes article events. Emit must not block the caller for long and
// reports its own failures; callers never act on them.
type Sink interface {
	Emit(ctx context.Context, e Event)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Emit(context.Context, Event) {}

// LogSink writes each event as one structured log line.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Emit logs the event at info level.
func (s *LogSink) Emit(ctx context.Context, e Event) {
	attrs := []slog.Attr{logfields.Event(string(e.Type)), logfields.Slug(e.Slug)}

	switch p := e.Payload.(type) {
	case CreatedPayload:
		attrs = append(attrs, logfields.Vehicle(p.Vehicle), logfields.QualityScore(p.QualityScore), logfields.Template(p.Template))
	case ContentUpdatedPayload:
		attrs = append(attrs, logfields.QualityScore(p.NewQualityScore), slog.Any("updated_sections", p.UpdatedSections))
	case PublishedPayload:
		attrs = append(attrs, logfields.Vehicle(p.Vehicle), logfields.QualityScore(p.QualityScore))
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, messageFor(e.Type), attrs...)
}

func messageFor(t Type) string {
	switch t {
	case TypeArticleCreated:
		return "Article created"
	case TypeContentUpdated:
		return "Article content updated"
	case TypeArticlePublished:
		return "Article published"
	default:
		return "Article event"
	}
}

// MultiSink fans an event out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Emit(ctx context.Context, e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ctx, e)
		}
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(_ context.Context, e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events of type t.
func (r *Recorder) OfType(t Type) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
