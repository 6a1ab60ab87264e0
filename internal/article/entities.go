package article

import (
	"strconv"
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

// Entity keys of the normalized vocabulary.
const (
	EntityMake                = "marca"
	EntityModel               = "modelo"
	EntityYear                = "ano"
	EntityVehicleType         = "tipo_veiculo"
	EntityCategory            = "categoria"
	EntityEngine              = "motorizacao"
	EntityFuel                = "combustivel"
	EntityVersion             = "versao"
	EntitySegment             = "segmento"
	EntityUsageProfile        = "perfil_uso"
	EntityFrontTirePressure   = "pressao_pneu_dianteiro"
	EntityRearTirePressure    = "pressao_pneu_traseiro"
	EntityRecommendedOil      = "oleo_recomendado"
	EntityDetectionConfidence = "confianca_deteccao"
)

// ExtractEntities maps a profile onto the entity vocabulary. Fuel, segment,
// usage profile and detection confidence have defaults; every other empty
// value is dropped.
func ExtractEntities(p types.VehicleProfile) map[string]string {
	year := ""
	if p.Year > 0 {
		year = strconv.Itoa(p.Year)
	}

	candidates := map[string]string{
		EntityMake:                p.Make,
		EntityModel:               p.Model,
		EntityYear:                year,
		EntityVehicleType:         p.VehicleType.Portuguese(),
		EntityCategory:            firstNonEmpty(p.Subcategory, p.Category),
		EntityEngine:              p.Engine,
		EntityFuel:                firstNonEmpty(p.FuelType, "flex"),
		EntityVersion:             p.Version,
		EntitySegment:             firstNonEmpty(p.Segment, "intermediario"),
		EntityUsageProfile:        firstNonEmpty(p.UsageProfile, "geral"),
		EntityFrontTirePressure:   p.PressureEmptyFront,
		EntityRearTirePressure:    p.PressureEmptyRear,
		EntityRecommendedOil:      p.RecommendedOil,
		EntityDetectionConfidence: firstNonEmpty(p.DetectionConfidence, "medium"),
	}

	entities := make(map[string]string, len(candidates))
	for k, v := range candidates {
		if v = strings.TrimSpace(v); v != "" {
			entities[k] = v
		}
	}
	return entities
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
