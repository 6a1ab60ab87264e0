package article

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/review-schedule/internal/types"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Toyota-Corolla-2024", "toyota-corolla-2024"},
		{"Citroën C4 Cactus", "citroen-c4-cactus"},
		{"  Mercedes-Benz  Classe A / 200  ", "mercedes-benz-classe-a-200"},
		{"Škoda Octávia!!", "skoda-octavia"},
		{"Straße", "strasse"},
		{"Kia Ceed SW Ø", "kia-ceed-sw-o"},
		{"Cæsar Œuvre Łódź", "caesar-oeuvre-lodz"},
		{"Smørbrød Đak", "smorbrod-dak"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.in))
		})
	}
}

func TestBuildSlug(t *testing.T) {
	p := types.VehicleProfile{Make: "Toyota", Model: "Corolla", Year: 2024, VehicleType: types.VehicleTypeCar}
	assert.Equal(t, "toyota-corolla-2024", BuildSlug(p))

	tests := []struct {
		vt       types.VehicleType
		expected string
	}{
		{types.VehicleTypeElectric, "toyota-corolla-2024-eletrico"},
		{types.VehicleTypeHybrid, "toyota-corolla-2024-hibrido"},
		{types.VehicleTypeMotorcycle, "toyota-corolla-2024-moto"},
		{types.VehicleType("unknown"), "toyota-corolla-2024"},
	}
	for _, tt := range tests {
		p.VehicleType = tt.vt
		assert.Equal(t, tt.expected, BuildSlug(p))
	}
}

func TestBuildSlug_Deterministic(t *testing.T) {
	p := types.VehicleProfile{Make: "Volkswagen", Model: "T-Cross Highline", Year: 2023, VehicleType: types.VehicleTypeCar}
	first := BuildSlug(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildSlug(p))
	}
	assert.Equal(t, "volkswagen-t-cross-highline-2023", first)
}

func TestVehicleKey(t *testing.T) {
	p := types.VehicleProfile{Make: "Honda", Model: "CG 160", Year: 2023, VehicleType: types.VehicleTypeMotorcycle}
	assert.Equal(t, "honda-cg-160-2023", VehicleKey(p))

	p.Year = 0
	assert.Equal(t, "honda-cg-160", VehicleKey(p))
}
