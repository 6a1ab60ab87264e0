package article

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/generation"
	"github.com/jonathan/review-schedule/internal/phrases"
	"github.com/jonathan/review-schedule/internal/quality"
	"github.com/jonathan/review-schedule/internal/types"
	"github.com/jonathan/review-schedule/internal/variation"
)

// DefaultContentVersion is stamped into generation metadata.
const DefaultContentVersion = "2.0"

// Option configures an Assembler.
type Option func(*Assembler)

// WithSelector shares a variation selector, typically across workers.
func WithSelector(s *variation.Selector) Option {
	return func(a *Assembler) {
		a.selector = s
	}
}

// WithCatalog replaces the embedded phrase catalog.
func WithCatalog(c *phrases.Catalog) Option {
	return func(a *Assembler) {
		a.catalog = c
	}
}

// WithSink sets the sink that receives record events.
func WithSink(s events.Sink) Option {
	return func(a *Assembler) {
		a.sink = s
	}
}

// WithGenerator sets the generator used by Create.
func WithGenerator(g *generation.Generator) Option {
	return func(a *Assembler) {
		a.generator = g
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithRand sets the index source for heading choices.
func WithRand(intn func(n int) int) Option {
	return func(a *Assembler) {
		a.intn = intn
	}
}

// WithContentVersion overrides the content version stamp.
func WithContentVersion(v string) Option {
	return func(a *Assembler) {
		if v != "" {
			a.contentVersion = v
		}
	}
}

// WithDeferredCreation stops Assemble from emitting the creation event. The
// caller announces accepted records with Record.EmitCreated.
func WithDeferredCreation() Option {
	return func(a *Assembler) {
		a.deferCreated = true
	}
}

// Assembler builds article records from a profile and its sections.
type Assembler struct {
	selector       *variation.Selector
	catalog        *phrases.Catalog
	sink           events.Sink
	deferCreated   bool
	generator      *generation.Generator
	now            func() time.Time
	intn           func(n int) int
	contentVersion string
}

// NewAssembler creates an Assembler. Without options it uses a private
// selector, the embedded catalog and a no-op sink.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		sink:           events.NopSink{},
		now:            func() time.Time { return time.Now().UTC() },
		intn:           rand.IntN,
		contentVersion: DefaultContentVersion,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.selector == nil {
		a.selector = variation.New()
	}
	if a.catalog == nil {
		a.catalog = phrases.Default()
	}
	if a.generator == nil {
		a.generator = generation.New()
	}
	if a.sink == nil {
		a.sink = events.NopSink{}
	}
	return a
}

// Create generates the sections of profile and assembles them. Only an
// incomplete profile fails.
func (a *Assembler) Create(ctx context.Context, profile types.VehicleProfile) (*Record, error) {
	sections, err := a.generator.Generate(profile)
	if err != nil {
		return nil, err
	}
	return a.Assemble(ctx, profile, sections), nil
}

// Assemble builds a draft record, scores it and emits a creation event unless
// creation is deferred. The profile must already carry make and model.
func (a *Assembler) Assemble(ctx context.Context, profile types.VehicleProfile, sections types.ContentSections) *Record {
	profile.VehicleType = profile.VehicleType.Normalize()
	at := a.now()
	slug := BuildSlug(profile)
	template := profile.VehicleType.Template()
	seo := a.buildSEO(profile, slug)

	r := &Record{
		ID:        uuid.NewString(),
		Title:     Heading(profile),
		Slug:      slug,
		Vehicle:   profile,
		Entities:  ExtractEntities(profile),
		SEO:       seo,
		Content:   sections,
		Template:  template,
		Status:    StatusDraft,
		Source:    Source,
		Domain:    Domain,
		Metadata:  buildMetadata(profile, sections, seo, template, Source, a.contentVersion, at),
		Quality:   quality.Score(sections),
		CreatedAt: at,
		UpdatedAt: at,
		sink:      a.sink,
		now:       a.now,
	}

	if !a.deferCreated {
		r.EmitCreated(ctx)
	}
	return r
}

// Selector returns the variation selector in use.
func (a *Assembler) Selector() *variation.Selector {
	return a.selector
}
