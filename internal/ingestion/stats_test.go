package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/review-schedule/internal/types"
)

func sampleVehicles() []types.VehicleProfile {
	return []types.VehicleProfile{
		{Make: "Toyota", Model: "Corolla", Year: 2024, VehicleType: types.VehicleTypeCar},
		{Make: "Toyota", Model: "Prius", Year: 2022, VehicleType: types.VehicleTypeHybrid},
		{Make: "Honda", Model: "PCX", Year: 2023, VehicleType: types.VehicleTypeMotorcycle},
		{Make: "BYD", Model: "Dolphin", Year: 2024, VehicleType: types.VehicleTypeElectric},
		{Make: "Fiat", Model: "Uno", VehicleType: ""},
	}
}

func TestStats(t *testing.T) {
	s := Stats(sampleVehicles())

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, map[string]int{"car": 2, "hybrid": 1, "motorcycle": 1, "electric": 1}, s.ByType)
	assert.Equal(t, 2, s.ByMake["Toyota"])
	assert.Equal(t, map[int]int{2022: 1, 2023: 1, 2024: 2}, s.ByYear)
	assert.Equal(t, 2022, s.MinYear)
	assert.Equal(t, 2024, s.MaxYear)
}

func TestStats_Empty(t *testing.T) {
	s := Stats(nil)
	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.ByType)
	assert.Zero(t, s.MinYear)
	assert.Empty(t, s.TopMakes(3))
}

func TestVehicleStats_TopMakes(t *testing.T) {
	s := Stats(sampleVehicles())

	top := s.TopMakes(2)
	assert.Equal(t, []MakeCount{{Make: "Toyota", Count: 2}, {Make: "BYD", Count: 1}}, top)
	assert.Len(t, s.TopMakes(0), 4)
}

func TestFilter(t *testing.T) {
	vehicles := sampleVehicles()

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"zero filter", Filter{}, []string{"Corolla", "Prius", "PCX", "Dolphin", "Uno"}},
		{"make is case insensitive", Filter{Make: "toyota"}, []string{"Corolla", "Prius"}},
		{"year range", Filter{YearFrom: 2023, YearTo: 2024}, []string{"Corolla", "PCX", "Dolphin"}},
		{"type", Filter{VehicleType: types.VehicleTypeCar}, []string{"Corolla", "Uno"}},
		{"limit", Filter{Limit: 2}, []string{"Corolla", "Prius"}},
		{"limit after matching", Filter{YearFrom: 2023, Limit: 2}, []string{"Corolla", "PCX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var models []string
			for _, v := range tt.filter.Apply(vehicles) {
				models = append(models, v.Model)
			}
			assert.Equal(t, tt.expected, models)
		})
	}
}
