package providers

import (
	"fmt"

	"github.com/jonathan/review-schedule/internal/types"
)

// Fallback content used when a provider cannot produce a section. Values only
// depend on the vehicle name, never on the failure.

// FallbackIntroduction returns the generic introduction.
func FallbackIntroduction(p types.VehicleProfile) string {
	return fmt.Sprintf("Manter o seu %s em dia com as revisões é fundamental para garantir sua durabilidade, segurança e bom funcionamento.", p.DisplayName())
}

// FallbackOverviewTable returns a two-row summary table.
func FallbackOverviewTable(types.VehicleProfile) []types.OverviewRow {
	return []types.OverviewRow{
		{Revision: "1ª Revisão", Interval: "10.000 km ou 12 meses", MainServices: "Troca de óleo e filtros", EstimatedCost: "R$ 200 - R$ 300"},
		{Revision: "2ª Revisão", Interval: "20.000 km ou 24 meses", MainServices: "Óleo, filtros, velas", EstimatedCost: "R$ 250 - R$ 350"},
	}
}

// FallbackDetailedSchedule returns a single first-revision entry.
func FallbackDetailedSchedule(types.VehicleProfile) []types.ScheduleEntry {
	return []types.ScheduleEntry{
		{
			Number:           1,
			Interval:         "10.000 km ou 12 meses",
			Kilometers:       "10.000",
			MainServices:     []string{"Troca de óleo", "Filtro de óleo", "Verificação geral"},
			AdditionalChecks: []string{"Fluidos", "Pneus", "Luzes"},
			EstimatedCost:    "R$ 200 - R$ 300",
			Notes:            "Primeira revisão importante",
		},
	}
}

// FallbackPreventiveMaintenance returns the basic monthly and quarterly checks.
func FallbackPreventiveMaintenance(types.VehicleProfile) types.PreventiveMaintenance {
	return types.PreventiveMaintenance{
		Monthly:   []string{"Óleo do motor", "Água do radiador", "Pneus", "Luzes"},
		Quarterly: []string{"Fluido de freio", "Bateria", "Filtros"},
	}
}

// FallbackCriticalParts returns brakes and tires.
func FallbackCriticalParts(types.VehicleProfile) []types.CriticalPart {
	return []types.CriticalPart{
		{Component: "Freios", Lifespan: "40.000 km", WearSigns: "Ruído ao frear"},
		{Component: "Pneus", Lifespan: "50.000 km", WearSigns: "Desgaste irregular"},
	}
}

// FallbackTechnicalSpecs returns generic passenger car specs.
func FallbackTechnicalSpecs(types.VehicleProfile) types.TechnicalSpecs {
	return types.TechnicalSpecs{
		"oleo_motor":         "5W30 Sintético",
		"capacidade_oleo":    "4.5 litros",
		"pressao_pneus":      "32 PSI",
		"filtro_combustivel": "A cada 20.000 km",
	}
}

// FallbackWarrantyInfo returns the standard factory warranty summary.
func FallbackWarrantyInfo(types.VehicleProfile) types.WarrantyInfo {
	return types.WarrantyInfo{
		Term:           "3 anos ou 100.000 km",
		ImportantNotes: "Revisões devem ser feitas dentro do prazo",
		LifespanTips:   []string{"Dirigir com suavidade", "Manter limpeza"},
	}
}

// FallbackFAQs returns two generic questions.
func FallbackFAQs(types.VehicleProfile) []types.FAQ {
	return []types.FAQ{
		{Question: "Com que frequência devo revisar?", Answer: "A cada 10.000 km ou 12 meses"},
		{Question: "Posso fazer em oficina independente?", Answer: "Sim, desde que use peças originais"},
	}
}

// FallbackConclusion returns the generic closing paragraph.
func FallbackConclusion(p types.VehicleProfile) string {
	return fmt.Sprintf("Seguir o cronograma de revisões do %s é essencial para manter a garantia e preservar seu valor.", p.DisplayName())
}
