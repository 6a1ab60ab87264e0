package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/review-schedule/internal/providers"
	"github.com/jonathan/review-schedule/internal/types"
)

// SectionFailure describes a section that was replaced by fallback content.
type SectionFailure struct {
	Section  types.SectionName
	Provider string
	Vehicle  string
	Err      *SectionError
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry replaces the built-in provider registry.
func WithRegistry(r providers.Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithDiagnostics sets the callback invoked once per section that fell back.
func WithDiagnostics(fn func(SectionFailure)) Option {
	return func(g *Generator) {
		g.diagnostics = fn
	}
}

// Generator produces ContentSections from a VehicleProfile.
type Generator struct {
	registry    providers.Registry
	diagnostics func(SectionFailure)
}

// New creates a Generator using the default providers unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{registry: providers.DefaultRegistry()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds all nine sections. It fails only when make or model is
// missing; any provider failure is replaced by the section's fallback content.
func (g *Generator) Generate(profile types.VehicleProfile) (types.ContentSections, error) {
	if err := checkProfile(profile); err != nil {
		return types.ContentSections{}, err
	}

	p := g.registry.ForType(profile.VehicleType)

	var s types.ContentSections
	s.Introduction = fill(g, p, profile, types.SectionIntroduction, p.Introduction, providers.FallbackIntroduction)
	s.OverviewTable = fill(g, p, profile, types.SectionOverviewTable, p.OverviewTable, providers.FallbackOverviewTable)
	s.DetailedSchedule = fill(g, p, profile, types.SectionDetailedSchedule, p.DetailedSchedule, providers.FallbackDetailedSchedule)
	s.PreventiveMaintenance = fill(g, p, profile, types.SectionPreventiveMaintenance, p.PreventiveMaintenance, providers.FallbackPreventiveMaintenance)
	s.CriticalParts = fill(g, p, profile, types.SectionCriticalParts, p.CriticalParts, providers.FallbackCriticalParts)
	s.TechnicalSpecs = fill(g, p, profile, types.SectionTechnicalSpecs, p.TechnicalSpecs, providers.FallbackTechnicalSpecs)
	s.WarrantyInfo = fill(g, p, profile, types.SectionWarrantyInfo, p.WarrantyInfo, providers.FallbackWarrantyInfo)
	s.FAQs = fill(g, p, profile, types.SectionFAQs, p.FAQs, providers.FallbackFAQs)
	s.Conclusion = fill(g, p, profile, types.SectionConclusion, p.Conclusion, providers.FallbackConclusion)

	return s, nil
}

func checkProfile(profile types.VehicleProfile) error {
	err := profile.Validate()
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: "invalid vehicle profile", Cause: err}
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Fields: fields, Message: "make and model are required", Cause: err}
}

// fill runs one provider operation and substitutes the fallback if it returns
// an error or panics.
func fill[T any](
	g *Generator,
	p providers.ContentProvider,
	profile types.VehicleProfile,
	section types.SectionName,
	produce func(types.VehicleProfile) (T, error),
	fallback func(types.VehicleProfile) T,
) T {
	value, err := safeCall(produce, profile)
	if err == nil {
		return value
	}

	secErr := &SectionError{Section: section, Provider: p.Name(), Cause: err}
	if g.diagnostics != nil {
		g.diagnostics(SectionFailure{
			Section:  section,
			Provider: p.Name(),
			Vehicle:  profile.Identifier(),
			Err:      secErr,
		})
	}
	return fallback(profile)
}

func safeCall[T any](produce func(types.VehicleProfile) (T, error), profile types.VehicleProfile) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return produce(profile)
}
