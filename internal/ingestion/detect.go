package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

// Detection confidence levels stored on profiles.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

var typeLabels = map[string]types.VehicleType{
	"car":         types.VehicleTypeCar,
	"carro":       types.VehicleTypeCar,
	"automovel":   types.VehicleTypeCar,
	"motorcycle":  types.VehicleTypeMotorcycle,
	"moto":        types.VehicleTypeMotorcycle,
	"motocicleta": types.VehicleTypeMotorcycle,
	"electric":    types.VehicleTypeElectric,
	"eletrico":    types.VehicleTypeElectric,
	"ev":          types.VehicleTypeElectric,
	"hybrid":      types.VehicleTypeHybrid,
	"hibrido":     types.VehicleTypeHybrid,
}

// parseTypeLabel reads an explicit type column in English or Portuguese.
func parseTypeLabel(raw string) (types.VehicleType, bool) {
	vt, ok := typeLabels[foldKey(raw)]
	return vt, ok
}

var (
	motorcycleCategoryHints = []string{"moto", "scooter", "trail", "naked", "custom", "big trail", "ciclomotor"}
	electricHints           = []string{"eletric", "electric", "e-tron", "bev"}
	hybridHints             = []string{"hibrid", "hybrid", "e:hev", "dm-i"}

	motorcycleMakes = map[string]bool{
		"yamaha": true, "kawasaki": true, "ducati": true, "harley-davidson": true,
		"triumph": true, "ktm": true, "dafra": true, "shineray": true,
		"royal enfield": true, "haojue": true, "mv agusta": true,
	}
	electricMakes = map[string]bool{"tesla": true, "jac e": true}

	electricModels = []string{"leaf", "bolt", "dolphin", "seal", "ioniq 5", "model 3", "model y", "ora 03", "kwid e-tech", "e-208", "ex30"}
	hybridModels   = []string{"prius", "corolla cross xrx", "song plus", "haval h6"}

	wordEV     = regexp.MustCompile(`(?i)\bev\b`)
	wordHybrid = regexp.MustCompile(`(?i)\bp?hev\b`)
)

// DetectVehicleType infers the vehicle type from the category, make and model.
// A category match is high confidence, a make or model match is medium, and
// the car default is low.
func DetectVehicleType(category, vehicleMake, model string) (types.VehicleType, string) {
	cat := foldKey(category)
	switch {
	case containsAny(cat, electricHints):
		return types.VehicleTypeElectric, ConfidenceHigh
	case containsAny(cat, hybridHints), wordHybrid.MatchString(cat):
		return types.VehicleTypeHybrid, ConfidenceHigh
	case containsAny(cat, motorcycleCategoryHints):
		return types.VehicleTypeMotorcycle, ConfidenceHigh
	}

	mk := foldKey(vehicleMake)
	mdl := foldKey(model)
	switch {
	case electricMakes[mk], containsAny(mdl, electricHints), containsAny(mdl, electricModels), wordEV.MatchString(mdl):
		return types.VehicleTypeElectric, ConfidenceMedium
	case containsAny(mdl, hybridHints), containsAny(mdl, hybridModels), wordHybrid.MatchString(mdl):
		return types.VehicleTypeHybrid, ConfidenceMedium
	case motorcycleMakes[mk]:
		return types.VehicleTypeMotorcycle, ConfidenceMedium
	}

	return types.VehicleTypeCar, ConfidenceLow
}

// DetectSubcategory derives a "<type>_<body>" subcategory from the category,
// for example motorcycle_scooter or car_suv. Unknown bodies yield
// "<type>_general".
func DetectSubcategory(category string, vt types.VehicleType) string {
	cat := foldKey(category)
	prefix := string(vt.Normalize())

	var bodies []struct{ hint, body string }
	if vt.Normalize() == types.VehicleTypeMotorcycle {
		bodies = []struct{ hint, body string }{
			{"scooter", "scooter"},
			{"esportiv", "sport"},
			{"sport", "sport"},
			{"trail", "trail"},
			{"off", "trail"},
			{"custom", "custom"},
			{"touring", "touring"},
			{"naked", "street"},
			{"street", "street"},
		}
	} else {
		bodies = []struct{ hint, body string }{
			{"suv", "suv"},
			{"picape", "pickup"},
			{"pickup", "pickup"},
			{"sedan", "sedan"},
			{"seda", "sedan"},
			{"hatch", "hatch"},
			{"minivan", "van"},
			{"van", "van"},
			{"esportiv", "sport"},
			{"coupe", "sport"},
		}
	}

	for _, b := range bodies {
		if strings.Contains(cat, b.hint) {
			return prefix + "_" + b.body
		}
	}
	return prefix + "_general"
}

var premiumMakes = map[string]bool{
	"audi": true, "bmw": true, "mercedes-benz": true, "mercedes": true,
	"volvo": true, "porsche": true, "land rover": true, "jaguar": true,
	"lexus": true, "mini": true, "ducati": true, "harley-davidson": true,
}

// DetectSegment returns "premium" for premium makes and "" otherwise, leaving
// the segment default to downstream consumers.
func DetectSegment(vehicleMake string) string {
	if premiumMakes[foldKey(vehicleMake)] {
		return "premium"
	}
	return ""
}

func containsAny(s string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(s, h) {
			return true
		}
	}
	return false
}
