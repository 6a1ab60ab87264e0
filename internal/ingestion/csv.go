package ingestion

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/review-schedule/internal/types"
)

// LoadResult holds the profiles read from a vehicle file.
type LoadResult struct {
	Vehicles []types.VehicleProfile
	Metadata *Metadata
}

// headerAliases maps accepted column names to the canonical field name.
var headerAliases = map[string]string{
	"make":                 "make",
	"marca":                "make",
	"model":                "model",
	"modelo":               "model",
	"year":                 "year",
	"ano":                  "year",
	"category":             "category",
	"categoria":            "category",
	"vehicle_type":         "vehicle_type",
	"type":                 "vehicle_type",
	"tipo":                 "vehicle_type",
	"subcategory":          "subcategory",
	"subcategoria":         "subcategory",
	"engine":               "engine",
	"motor":                "engine",
	"motorizacao":          "engine",
	"fuel_type":            "fuel_type",
	"fuel":                 "fuel_type",
	"combustivel":          "fuel_type",
	"version":              "version",
	"versao":               "version",
	"segment":              "segment",
	"segmento":             "segment",
	"usage_profile":        "usage_profile",
	"perfil_uso":           "usage_profile",
	"recommended_oil":      "recommended_oil",
	"oleo_recomendado":     "recommended_oil",
	"pressure_empty_front": "pressure_empty_front",
	"pressure_empty_rear":  "pressure_empty_rear",
}

// LoadVehiclesCSV reads and parses the vehicle file at path. The returned
// metadata carries the file path and a digest of its content.
func LoadVehiclesCSV(path string) (*LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	result, err := ParseVehiclesCSV(bytes.NewReader(content))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse vehicles", Cause: err}
	}
	meta := NewMetadata(content, path)
	meta.Rows = result.Metadata.Rows
	meta.Loaded = result.Metadata.Loaded
	meta.Skipped = result.Metadata.Skipped
	result.Metadata = meta
	return result, nil
}

// ParseVehiclesCSV parses CSV content with a header row. Comma and semicolon
// delimiters are accepted. Rows without make or model are skipped and counted.
func ParseVehiclesCSV(r io.Reader) (*LoadResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Message: "failed to read input", Cause: err}
	}
	content = bytes.TrimPrefix(content, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = detectDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Message: "missing header row"}
	}
	if err != nil {
		return nil, &ParseError{Line: 1, Message: "invalid header row", Cause: err}
	}
	columns := mapHeader(header)
	if _, ok := columns["make"]; !ok {
		return nil, &ParseError{Line: 1, Message: "header has no make column"}
	}
	if _, ok := columns["model"]; !ok {
		return nil, &ParseError{Line: 1, Message: "header has no model column"}
	}

	meta := &Metadata{}
	vehicles := make([]types.VehicleProfile, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.StartLine
			}
			return nil, &ParseError{Line: line, Message: "invalid row", Cause: err}
		}
		if isBlankRecord(record) {
			continue
		}
		meta.Rows++

		profile, ok := profileFromRecord(func(field string) string {
			idx, found := columns[field]
			if !found || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		})
		if !ok {
			meta.Skipped++
			continue
		}
		vehicles = append(vehicles, profile)
	}
	meta.Loaded = len(vehicles)

	return &LoadResult{Vehicles: vehicles, Metadata: meta}, nil
}

func detectDelimiter(content []byte) rune {
	firstLine := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

func mapHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ReplaceAll(foldKey(name), " ", "_")
		if field, ok := headerAliases[key]; ok {
			if _, seen := columns[field]; !seen {
				columns[field] = i
			}
		}
	}
	return columns
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// profileFromRecord normalizes one row. Missing type, fuel, engine, version
// and segment values are inferred from the other columns.
func profileFromRecord(get func(field string) string) (types.VehicleProfile, bool) {
	vehicleMake := normalizeName(get("make"))
	model := normalizeName(get("model"))
	if vehicleMake == "" || model == "" {
		return types.VehicleProfile{}, false
	}

	year, err := strconv.Atoi(get("year"))
	if err != nil || year < 0 {
		year = 0
	}

	category := get("category")
	var vehicleType types.VehicleType
	var confidence string
	if declared, ok := parseTypeLabel(get("vehicle_type")); ok {
		vehicleType, confidence = declared, ConfidenceHigh
	} else {
		vehicleType, confidence = DetectVehicleType(category, vehicleMake, model)
	}

	descriptor := strings.Join([]string{model, get("version"), get("engine")}, " ")
	p := types.VehicleProfile{
		Make:                vehicleMake,
		Model:               model,
		Year:                year,
		VehicleType:         vehicleType,
		Category:            category,
		Subcategory:         firstNonEmpty(get("subcategory"), DetectSubcategory(category, vehicleType)),
		Engine:              firstNonEmpty(get("engine"), ExtractEngine(descriptor)),
		FuelType:            firstNonEmpty(strings.ToLower(get("fuel_type")), ExtractFuelType(descriptor+" "+category, vehicleType)),
		Version:             firstNonEmpty(get("version"), ExtractVersion(model)),
		Segment:             firstNonEmpty(strings.ToLower(get("segment")), DetectSegment(vehicleMake)),
		UsageProfile:        get("usage_profile"),
		RecommendedOil:      get("recommended_oil"),
		PressureEmptyFront:  get("pressure_empty_front"),
		PressureEmptyRear:   get("pressure_empty_rear"),
		DetectionConfidence: confidence,
	}
	return p, true
}

// normalizeName collapses whitespace and title-cases values written entirely
// in lowercase. Other casings, such as "BMW" or "HB20", are kept.
func normalizeName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s != "" && s == strings.ToLower(s) {
		return cases.Title(language.BrazilianPortuguese).String(s)
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
