package providers

import (
	"fmt"

	"github.com/jonathan/review-schedule/internal/types"
)

var hybridPlan = []revisionStep{
	{km: 10000, months: 12, services: []string{"Troca de óleo do motor", "Filtro de óleo", "Diagnóstico do sistema híbrido", "Inspeção dos freios"}, checks: []string{"Ventilação da bateria híbrida", "Pneus", "Iluminação"}, costMin: 320, costMax: 440, notes: "Inclui leitura dos códigos do inversor e da bateria híbrida."},
	{km: 20000, months: 24, services: []string{"Troca de óleo do motor", "Filtros de óleo e de ar", "Filtro de cabine", "Limpeza do filtro da bateria híbrida"}, checks: []string{"Fluido de freio", "Bateria 12V", "Suspensão"}, costMin: 400, costMax: 560},
	{km: 30000, months: 36, services: []string{"Troca de óleo do motor", "Filtro de óleo", "Diagnóstico do sistema híbrido", "Alinhamento"}, checks: []string{"Arrefecimento do inversor", "Escapamento", "Coxins do motor"}, costMin: 380, costMax: 520},
	{km: 40000, months: 48, services: []string{"Troca de óleo do motor", "Todos os filtros", "Fluido de freio", "Fluido da transmissão e-CVT"}, checks: []string{"Discos de freio", "Cabos de alta tensão", "Terminais de direção"}, costMin: 620, costMax: 860, notes: "Troca do fluido da transmissão e-CVT."},
	{km: 50000, months: 60, services: []string{"Troca de óleo do motor", "Filtro de óleo", "Líquido de arrefecimento do inversor"}, checks: []string{"Bomba d'água elétrica", "Buchas de suspensão", "Sensores"}, costMin: 520, costMax: 720},
	{km: 60000, months: 72, services: []string{"Troca de óleo do motor", "Velas de ignição de irídio", "Todos os filtros", "Diagnóstico do sistema híbrido"}, checks: []string{"Estado de saúde da bateria híbrida", "Freio de estacionamento", "Climatização"}, costMin: 700, costMax: 980},
}

// HybridProvider produces content for hybrid vehicles.
type HybridProvider struct{}

// NewHybridProvider creates the hybrid vehicle content provider.
func NewHybridProvider() *HybridProvider { return &HybridProvider{} }

// Name returns the provider identifier.
func (h *HybridProvider) Name() string { return "hybrid" }

// Introduction returns the opening paragraph.
func (h *HybridProvider) Introduction(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"O %s combina motor a combustão e motor elétrico, e cada um tem as suas necessidades de manutenção. "+
			"Veja o cronograma completo de revisões, os cuidados com a bateria híbrida e o que esperar de custo em cada etapa.",
		p.DisplayName()), nil
}

// OverviewTable returns the revision summary table.
func (h *HybridProvider) OverviewTable(p types.VehicleProfile) ([]types.OverviewRow, error) {
	return buildOverview(hybridPlan, p), nil
}

// DetailedSchedule returns every revision with services and costs.
func (h *HybridProvider) DetailedSchedule(p types.VehicleProfile) ([]types.ScheduleEntry, error) {
	return buildSchedule(hybridPlan, p), nil
}

// PreventiveMaintenance returns the checks to do between revisions.
func (h *HybridProvider) PreventiveMaintenance(types.VehicleProfile) (types.PreventiveMaintenance, error) {
	return types.PreventiveMaintenance{
		Monthly:   []string{"Nível do óleo do motor", "Calibragem dos pneus", "Alertas do sistema híbrido no painel"},
		Quarterly: []string{"Entrada de ar da bateria híbrida desobstruída", "Nível do fluido de freio", "Bateria auxiliar de 12V"},
		Annual:    []string{"Limpeza do filtro de ventilação da bateria", "Higienização do ar-condicionado"},
	}, nil
}

// CriticalParts returns components that wear out and need attention.
func (h *HybridProvider) CriticalParts(types.VehicleProfile) ([]types.CriticalPart, error) {
	return []types.CriticalPart{
		{Component: "Bateria híbrida", Lifespan: "8 a 10 anos", WearSigns: "Motor a combustão ligando com mais frequência", RecommendedAction: "Manter a ventilação da bateria limpa"},
		{Component: "Inversor", Lifespan: "Vida útil do veículo", WearSigns: "Alerta de sistema híbrido", RecommendedAction: "Trocar o líquido de arrefecimento no prazo"},
		{Component: "Bateria de 12V", Lifespan: "3 a 4 anos", WearSigns: "Sistema não entra em modo READY", RecommendedAction: "Testar anualmente"},
		{Component: "Pastilhas de freio", Lifespan: "60.000 km ou mais", WearSigns: "Ruído ao frear", RecommendedAction: "Inspecionar, a regeneração reduz o desgaste"},
	}, nil
}

// TechnicalSpecs returns fluid and tire specifications.
func (h *HybridProvider) TechnicalSpecs(p types.VehicleProfile) (types.TechnicalSpecs, error) {
	return types.TechnicalSpecs{
		"motor":                  engineLabel(p),
		"oleo_motor":             oilLabel(p, "0W20 Sintético"),
		"capacidade_oleo":        "3.7 litros",
		"pressao_pneus":          pressureLabel(p.PressureEmptyFront, p.PressureEmptyRear, "35 PSI"),
		"fluido_transmissao":     "e-CVT WS",
		"arrefecimento_inversor": "Líquido dedicado, troca aos 50.000 km",
	}, nil
}

// WarrantyInfo returns factory and hybrid battery warranty terms.
func (h *HybridProvider) WarrantyInfo(types.VehicleProfile) (types.WarrantyInfo, error) {
	return types.WarrantyInfo{
		Term:           "Veículo: 3 anos. Bateria híbrida: 8 anos",
		ImportantNotes: "A garantia estendida da bateria depende do diagnóstico híbrido em todas as revisões.",
		LifespanTips:   []string{"Use o modo EV em baixas velocidades", "Não obstrua a entrada de ar da bateria", "Rode com o carro regularmente"},
	}, nil
}

// FAQs returns common owner questions.
func (h *HybridProvider) FAQs(p types.VehicleProfile) ([]types.FAQ, error) {
	return []types.FAQ{
		{Question: fmt.Sprintf("Qual o intervalo de revisão do %s?", p.DisplayName()), Answer: "A cada 10.000 km ou 12 meses."},
		{Question: "A bateria híbrida precisa ser trocada?", Answer: "Raramente dentro da vida útil; o diagnóstico anual indica o estado de saúde."},
		{Question: "O híbrido gasta menos com freios?", Answer: "Sim, a frenagem regenerativa poupa pastilhas e discos."},
		{Question: "Posso revisar em oficina comum?", Answer: "Serviços do motor sim; o sistema de alta tensão exige técnico treinado."},
	}, nil
}

// Conclusion returns the closing paragraph.
func (h *HybridProvider) Conclusion(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"Com as revisões do %s em dia, os dois sistemas de propulsão trabalham em harmonia e o consumo continua baixo. "+
			"Siga o cronograma e dê atenção especial à bateria híbrida.",
		p.DisplayName()), nil
}
