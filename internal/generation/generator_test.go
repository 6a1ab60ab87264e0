package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/providers"
	"github.com/jonathan/review-schedule/internal/types"
)

// brokenProvider fails every section, alternating between errors and panics.
type brokenProvider struct {
	calls int
}

func (b *brokenProvider) Name() string { return "broken" }

func (b *brokenProvider) fail() error {
	b.calls++
	if b.calls%2 == 0 {
		panic("boom")
	}
	return providers.ErrUnsupported
}

func (b *brokenProvider) Introduction(types.VehicleProfile) (string, error) { return "", b.fail() }
func (b *brokenProvider) OverviewTable(types.VehicleProfile) ([]types.OverviewRow, error) {
	return nil, b.fail()
}
func (b *brokenProvider) DetailedSchedule(types.VehicleProfile) ([]types.ScheduleEntry, error) {
	return nil, b.fail()
}
func (b *brokenProvider) PreventiveMaintenance(types.VehicleProfile) (types.PreventiveMaintenance, error) {
	return types.PreventiveMaintenance{}, b.fail()
}
func (b *brokenProvider) CriticalParts(types.VehicleProfile) ([]types.CriticalPart, error) {
	return nil, b.fail()
}
func (b *brokenProvider) TechnicalSpecs(types.VehicleProfile) (types.TechnicalSpecs, error) {
	return nil, b.fail()
}
func (b *brokenProvider) WarrantyInfo(types.VehicleProfile) (types.WarrantyInfo, error) {
	return types.WarrantyInfo{}, b.fail()
}
func (b *brokenProvider) FAQs(types.VehicleProfile) ([]types.FAQ, error) { return nil, b.fail() }
func (b *brokenProvider) Conclusion(types.VehicleProfile) (string, error) {
	return "", b.fail()
}

// partialProvider delegates to the car provider but cannot write a conclusion.
type partialProvider struct {
	*providers.CarProvider
}

func (partialProvider) Name() string { return "partial" }
func (partialProvider) Conclusion(types.VehicleProfile) (string, error) {
	return "", errors.New("no conclusion template")
}

func corolla() types.VehicleProfile {
	return types.VehicleProfile{Make: "Toyota", Model: "Corolla", Year: 2024, VehicleType: types.VehicleTypeCar}
}

func TestGenerate_AllSectionsPresent(t *testing.T) {
	for _, vt := range types.AllVehicleTypes {
		t.Run(string(vt), func(t *testing.T) {
			profile := corolla()
			profile.VehicleType = vt

			sections, err := New().Generate(profile)
			require.NoError(t, err)
			for _, name := range sections.Keys() {
				assert.True(t, sections.Has(name), "section %s should be filled", name)
			}
		})
	}
}

func TestGenerate_TotalProviderFailure(t *testing.T) {
	broken := &brokenProvider{}
	var failures []SectionFailure

	g := New(
		WithRegistry(providers.Registry{Car: broken}),
		WithDiagnostics(func(f SectionFailure) { failures = append(failures, f) }),
	)

	profile := corolla()
	sections, err := g.Generate(profile)
	require.NoError(t, err)

	assert.Len(t, sections.Keys(), 9)
	for _, name := range sections.Keys() {
		assert.True(t, sections.Has(name), "section %s should hold fallback content", name)
	}
	assert.Equal(t, providers.FallbackIntroduction(profile), sections.Introduction)
	assert.Equal(t, providers.FallbackConclusion(profile), sections.Conclusion)
	assert.Equal(t, providers.FallbackFAQs(profile), sections.FAQs)

	require.Len(t, failures, 9)
	for i, f := range failures {
		assert.Equal(t, types.SectionOrder[i], f.Section)
		assert.Equal(t, "broken", f.Provider)
		assert.Equal(t, "Toyota Corolla 2024", f.Vehicle)
		require.NotNil(t, f.Err)
	}
	assert.ErrorIs(t, failures[0].Err, providers.ErrUnsupported)
	assert.Contains(t, failures[1].Err.Error(), "provider panic: boom")
}

func TestGenerate_SingleSectionFallback(t *testing.T) {
	var failures []SectionFailure
	g := New(
		WithRegistry(providers.Registry{Car: partialProvider{providers.NewCarProvider()}}),
		WithDiagnostics(func(f SectionFailure) { failures = append(failures, f) }),
	)

	profile := corolla()
	sections, err := g.Generate(profile)
	require.NoError(t, err)

	require.Len(t, failures, 1)
	assert.Equal(t, types.SectionConclusion, failures[0].Section)
	assert.Equal(t, providers.FallbackConclusion(profile), sections.Conclusion)

	intro, _ := providers.NewCarProvider().Introduction(profile)
	assert.Equal(t, intro, sections.Introduction)
}

func TestGenerate_ValidationError(t *testing.T) {
	broken := &brokenProvider{}
	g := New(WithRegistry(providers.Registry{Car: broken}))

	tests := []struct {
		name    string
		profile types.VehicleProfile
		fields  []string
	}{
		{"missing model", types.VehicleProfile{Make: "Toyota", Year: 2024}, []string{"model"}},
		{"missing make", types.VehicleProfile{Model: "Corolla"}, []string{"make"}},
		{"blank both", types.VehicleProfile{Make: "  ", Model: ""}, []string{"make", "model"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, err := g.Generate(tt.profile)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.fields, vErr.Fields)
			assert.Equal(t, types.ContentSections{}, sections)
		})
	}
	assert.Zero(t, broken.calls, "no provider call may happen before validation passes")
}

func TestGenerate_NoDiagnosticsCallback(t *testing.T) {
	g := New(WithRegistry(providers.Registry{Car: &brokenProvider{}}))
	assert.NotPanics(t, func() {
		_, err := g.Generate(corolla())
		require.NoError(t, err)
	})
}

func TestSectionError(t *testing.T) {
	err := &SectionError{Section: types.SectionFAQs, Provider: "car", Cause: providers.ErrUnsupported}
	assert.Equal(t, "section faqs failed in car provider: section not supported by provider", err.Error())
	assert.ErrorIs(t, err, providers.ErrUnsupported)
}
