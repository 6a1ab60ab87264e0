package providers

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/types"
)

func TestRegistry_ForType(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name     string
		typ      types.VehicleType
		expected string
	}{
		{"car", types.VehicleTypeCar, "car"},
		{"motorcycle", types.VehicleTypeMotorcycle, "motorcycle"},
		{"electric", types.VehicleTypeElectric, "electric"},
		{"hybrid", types.VehicleTypeHybrid, "hybrid"},
		{"unknown defaults to car", types.VehicleType("truck"), "car"},
		{"empty defaults to car", types.VehicleType(""), "car"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reg.ForType(tt.typ).Name())
		})
	}
}

func TestRegistry_ForType_UnsetEntries(t *testing.T) {
	reg := Registry{Car: NewCarProvider()}
	assert.Equal(t, "car", reg.ForType(types.VehicleTypeHybrid).Name())

	var empty Registry
	assert.Equal(t, "car", empty.ForType(types.VehicleTypeElectric).Name())
}

func TestProviders_ContentShapes(t *testing.T) {
	profile := types.VehicleProfile{Make: "Toyota", Model: "Corolla", Year: 2024, Engine: "2.0"}

	for _, p := range []ContentProvider{NewCarProvider(), NewMotorcycleProvider(), NewElectricProvider(), NewHybridProvider()} {
		t.Run(p.Name(), func(t *testing.T) {
			intro, err := p.Introduction(profile)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, utf8.RuneCountInString(intro), 100)
			assert.Contains(t, intro, "Toyota Corolla 2024")

			conclusion, err := p.Conclusion(profile)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, utf8.RuneCountInString(conclusion), 80)

			schedule, err := p.DetailedSchedule(profile)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(schedule), 4)
			for i, entry := range schedule {
				assert.Equal(t, i+1, entry.Number)
				assert.NotEmpty(t, entry.MainServices)
			}

			overview, err := p.OverviewTable(profile)
			require.NoError(t, err)
			assert.Len(t, overview, len(schedule))

			faqs, err := p.FAQs(profile)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(faqs), 3)
			assert.LessOrEqual(t, len(faqs), 8)

			parts, err := p.CriticalParts(profile)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(parts), 3)

			specs, err := p.TechnicalSpecs(profile)
			require.NoError(t, err)
			assert.Equal(t, "2.0", specs["motor"])

			warranty, err := p.WarrantyInfo(profile)
			require.NoError(t, err)
			assert.False(t, warranty.IsEmpty())

			pm, err := p.PreventiveMaintenance(profile)
			require.NoError(t, err)
			assert.False(t, pm.IsEmpty())
		})
	}
}

func TestMotorcycleProvider_Scooter(t *testing.T) {
	p := NewMotorcycleProvider()
	scooter := types.VehicleProfile{Make: "Honda", Model: "PCX", Year: 2023, Subcategory: "scooter"}

	parts, err := p.CriticalParts(scooter)
	require.NoError(t, err)
	assert.Equal(t, "Correia CVT", parts[0].Component)

	pm, err := p.PreventiveMaintenance(scooter)
	require.NoError(t, err)
	assert.NotEmpty(t, pm.Special)

	intro, err := p.Introduction(scooter)
	require.NoError(t, err)
	assert.Contains(t, intro, "scooter")
}

func TestCostRange_Segment(t *testing.T) {
	base := types.VehicleProfile{Make: "Fiat", Model: "Argo"}
	premium := base
	premium.Segment = "premium"
	popular := base
	popular.Segment = "popular"

	assert.Equal(t, "R$ 1.000 - R$ 2.000", costRange(1000, 2000, base))
	assert.Equal(t, "R$ 1.600 - R$ 3.200", costRange(1000, 2000, premium))
	assert.Equal(t, "R$ 850 - R$ 1.700", costRange(1000, 2000, popular))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{10000, "10.000"},
		{100000, "100.000"},
		{1234567, "1.234.567"},
		{-1500, "-1.500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatThousands(tt.in))
	}
}

func TestFormatInterval(t *testing.T) {
	assert.Equal(t, "10.000 km ou 12 meses", formatInterval(10000, 12))
	assert.Equal(t, "1.000 km", formatInterval(1000, 0))
}

func TestPressureLabel(t *testing.T) {
	assert.Equal(t, "30 PSI (dianteiro) / 32 PSI (traseiro)", pressureLabel("30", "32", "x"))
	assert.Equal(t, "30 PSI", pressureLabel("30", "", "x"))
	assert.Equal(t, "x", pressureLabel(" ", "", "x"))
}

func TestFallbacks_AreComplete(t *testing.T) {
	p := types.VehicleProfile{Make: "Fiat", Model: "Uno", Year: 2010}

	assert.Contains(t, FallbackIntroduction(p), "Fiat Uno 2010")
	assert.Contains(t, FallbackConclusion(p), "Fiat Uno 2010")
	assert.NotEmpty(t, FallbackOverviewTable(p))
	assert.NotEmpty(t, FallbackDetailedSchedule(p))
	assert.NotEmpty(t, FallbackCriticalParts(p))
	assert.NotEmpty(t, FallbackTechnicalSpecs(p))
	assert.NotEmpty(t, FallbackFAQs(p))
	assert.False(t, FallbackWarrantyInfo(p).IsEmpty())
	assert.False(t, FallbackPreventiveMaintenance(p).IsEmpty())
}
