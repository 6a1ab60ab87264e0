package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/types"
)

func TestLoadVehiclesCSV_Fixture(t *testing.T) {
	result, err := LoadVehiclesCSV(filepath.Join("testdata", "vehicles.csv"))
	require.NoError(t, err)

	assert.Equal(t, 7, result.Metadata.Rows)
	assert.Equal(t, 5, result.Metadata.Loaded)
	assert.Equal(t, 2, result.Metadata.Skipped)
	assert.Len(t, result.Metadata.Hash, 64)
	assert.Equal(t, filepath.Join("testdata", "vehicles.csv"), result.Metadata.Path)
	require.Len(t, result.Vehicles, 5)

	corolla := result.Vehicles[0]
	assert.Equal(t, "Toyota", corolla.Make)
	assert.Equal(t, "Corolla XEi 2.0", corolla.Model)
	assert.Equal(t, 2024, corolla.Year)
	assert.Equal(t, types.VehicleTypeCar, corolla.VehicleType)
	assert.Equal(t, "car_sedan", corolla.Subcategory)
	assert.Equal(t, "2.0", corolla.Engine)
	assert.Equal(t, "flex", corolla.FuelType)
	assert.Equal(t, "XEi", corolla.Version)
	assert.Equal(t, "0W20 Sintético", corolla.RecommendedOil)
	assert.Equal(t, "32", corolla.PressureEmptyFront)

	pcx := result.Vehicles[1]
	assert.Equal(t, types.VehicleTypeMotorcycle, pcx.VehicleType)
	assert.Equal(t, "motorcycle_scooter", pcx.Subcategory)
	assert.Equal(t, "160cc", pcx.Engine)
	assert.Equal(t, "gasolina", pcx.FuelType)
	assert.Equal(t, ConfidenceHigh, pcx.DetectionConfidence)

	dolphin := result.Vehicles[2]
	assert.Equal(t, types.VehicleTypeElectric, dolphin.VehicleType)
	assert.Equal(t, "elétrico", dolphin.FuelType)
	assert.Equal(t, "electric_hatch", dolphin.Subcategory)

	cross := result.Vehicles[3]
	assert.Equal(t, types.VehicleTypeHybrid, cross.VehicleType)
	assert.Equal(t, ConfidenceMedium, cross.DetectionConfidence)
	assert.Equal(t, "XRX", cross.Version)

	polo := result.Vehicles[4]
	assert.Equal(t, "Volkswagen", polo.Make)
	assert.Equal(t, "Polo Highline 1.0 Tsi", polo.Model)
	assert.Equal(t, "1.0 Turbo", polo.Engine)
	assert.Equal(t, "Highline", polo.Version)
	assert.Equal(t, ConfidenceHigh, polo.DetectionConfidence)
}

func TestLoadVehiclesCSV_FileNotFound(t *testing.T) {
	_, err := LoadVehiclesCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "file not found", loadErr.Message)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadVehiclesCSV_HashChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("make,model\nFiat,Uno\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("make,model\nFiat,Mobi\n"), 0644))

	ra, err := LoadVehiclesCSV(a)
	require.NoError(t, err)
	rb, err := LoadVehiclesCSV(b)
	require.NoError(t, err)

	assert.NotEqual(t, ra.Metadata.Hash, rb.Metadata.Hash)
}

func TestParseVehiclesCSV_PortugueseHeadersAndSemicolons(t *testing.T) {
	input := "\ufeffMarca;Modelo;Ano;Categoria;Tipo;Combustível\n" +
		"Yamaha;MT-03;2022;Naked;moto;\n" +
		"Chevrolet;Onix LTZ 1.0 Turbo;2023;Hatch;;\n"

	result, err := ParseVehiclesCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Vehicles, 2)

	mt := result.Vehicles[0]
	assert.Equal(t, "Yamaha", mt.Make)
	assert.Equal(t, "MT-03", mt.Model)
	assert.Equal(t, types.VehicleTypeMotorcycle, mt.VehicleType)
	assert.Equal(t, "motorcycle_street", mt.Subcategory)

	onix := result.Vehicles[1]
	assert.Equal(t, "LTZ", onix.Version)
	assert.Equal(t, "1.0 Turbo", onix.Engine)
	assert.Equal(t, types.VehicleTypeCar, onix.VehicleType)
	assert.Equal(t, ConfidenceLow, onix.DetectionConfidence)
}

func TestParseVehiclesCSV_InvalidYearKeepsRow(t *testing.T) {
	result, err := ParseVehiclesCSV(strings.NewReader("make,model,year\nFiat,Uno,abc\n"))
	require.NoError(t, err)
	require.Len(t, result.Vehicles, 1)
	assert.Equal(t, 0, result.Vehicles[0].Year)
}

func TestParseVehiclesCSV_BlankLinesAreNotRows(t *testing.T) {
	result, err := ParseVehiclesCSV(strings.NewReader("make,model\n,\nFiat,Uno\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metadata.Rows)
	assert.Equal(t, 0, result.Metadata.Skipped)
}

func TestParseVehiclesCSV_HeaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty input", "", "missing header row"},
		{"no make column", "modelo,ano\nUno,2010\n", "header has no make column"},
		{"no model column", "marca,ano\nFiat,2010\n", "header has no model column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVehiclesCSV(strings.NewReader(tt.input))
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.msg, parseErr.Message)
		})
	}
}

func TestParseVehiclesCSV_MalformedRow(t *testing.T) {
	_, err := ParseVehiclesCSV(strings.NewReader("make,model\nFiat,\"Uno\n"))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "invalid row", parseErr.Message)
}

func TestErrors_Format(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "load error: failed to read file (x.csv): boom", (&LoadError{Path: "x.csv", Message: "failed to read file", Cause: cause}).Error())
	assert.Equal(t, "parse error: line 3: invalid row: boom", (&ParseError{Line: 3, Message: "invalid row", Cause: cause}).Error())
	assert.Equal(t, "parse error: missing header row", (&ParseError{Message: "missing header row"}).Error())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Mercedes-Benz", normalizeName("mercedes-benz"))
	assert.Equal(t, "BMW", normalizeName("BMW"))
	assert.Equal(t, "HB20", normalizeName("  HB20 "))
	assert.Equal(t, "Land Rover", normalizeName("land   rover"))
	assert.Equal(t, "", normalizeName("   "))
}
