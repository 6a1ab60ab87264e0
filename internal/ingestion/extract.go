package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

var (
	displacementPattern = regexp.MustCompile(`\b([0-9])[.,]([0-9])\b`)
	ccPattern           = regexp.MustCompile(`(?i)\b([0-9]{2,4})\s?cc\b`)
	turboPattern        = regexp.MustCompile(`(?i)\b(turbo|tsi|tfsi|thp|tgdi|ecoboost)\b`)
)

// ExtractEngine reads the engine from free text: displacements such as "1.6"
// or "2,0" (with " Turbo" appended when a turbo marker is present) and
// motorcycle "cc" values. It returns "" when nothing matches.
func ExtractEngine(text string) string {
	if m := displacementPattern.FindStringSubmatch(text); m != nil {
		engine := m[1] + "." + m[2]
		if turboPattern.MatchString(text) {
			engine += " Turbo"
		}
		return engine
	}
	if m := ccPattern.FindStringSubmatch(text); m != nil {
		return m[1] + "cc"
	}
	return ""
}

// ExtractFuelType infers the fuel from free text and the vehicle type.
// Electric and hybrid types win over text; motorcycles default to gasolina
// and everything else to flex.
func ExtractFuelType(text string, vt types.VehicleType) string {
	switch vt.Normalize() {
	case types.VehicleTypeElectric:
		return "elétrico"
	case types.VehicleTypeHybrid:
		return "híbrido"
	}

	folded := foldKey(text)
	switch {
	case strings.Contains(folded, "diesel"):
		return "diesel"
	case strings.Contains(folded, "gnv"):
		return "gnv"
	case strings.Contains(folded, "etanol"), strings.Contains(folded, "alcool"):
		return "etanol"
	case strings.Contains(folded, "flex"):
		return "flex"
	case strings.Contains(folded, "gasolina"):
		return "gasolina"
	}

	if vt.Normalize() == types.VehicleTypeMotorcycle {
		return "gasolina"
	}
	return "flex"
}

// knownVersions lists trim names in their canonical spelling. Longer names
// come before their prefixes so LTZ is found before LT.
var knownVersions = []string{
	"Premier", "LTZ", "LT", "LS",
	"XEi", "GLi", "Altis", "XRX", "XRE",
	"Highline", "Comfortline", "Trendline",
	"EXL", "EX", "LX", "Touring",
	"Titanium", "Limited", "Longitude", "Sport",
	"Platinum", "Launch Edition",
}

// ExtractVersion returns the first known trim name found as a whole word in
// the model text, or "".
func ExtractVersion(model string) string {
	words := strings.Fields(strings.ToLower(model))
	if len(words) == 0 {
		return ""
	}
	joined := " " + strings.Join(words, " ") + " "
	for _, v := range knownVersions {
		if strings.Contains(joined, " "+strings.ToLower(v)+" ") {
			return v
		}
	}
	return ""
}
