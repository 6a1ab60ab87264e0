package providers

import (
	"fmt"

	"github.com/jonathan/review-schedule/internal/types"
)

var electricPlan = []revisionStep{
	{km: 20000, months: 12, services: []string{"Diagnóstico da bateria de alta tensão", "Filtro de cabine", "Inspeção dos freios", "Atualização de software"}, checks: []string{"Cabos de recarga", "Fluido de arrefecimento da bateria", "Pneus"}, costMin: 300, costMax: 450, notes: "Inclui o relatório de saúde da bateria (SOH)."},
	{km: 40000, months: 24, services: []string{"Diagnóstico da bateria de alta tensão", "Filtro de cabine", "Fluido de freio", "Rodízio de pneus"}, checks: []string{"Suspensão", "Conectores de alta tensão", "Bateria 12V"}, costMin: 380, costMax: 550},
	{km: 60000, months: 36, services: []string{"Diagnóstico da bateria de alta tensão", "Filtro de cabine", "Inspeção do redutor", "Alinhamento"}, checks: []string{"Discos de freio", "Sistema de climatização", "Porta de recarga"}, costMin: 400, costMax: 600},
	{km: 80000, months: 48, services: []string{"Diagnóstico da bateria de alta tensão", "Líquido de arrefecimento da bateria", "Fluido de freio", "Óleo do redutor"}, checks: []string{"Isolamento elétrico", "Buchas de suspensão", "Bomba de calor"}, costMin: 650, costMax: 950, notes: "Troca do líquido de arrefecimento do conjunto de baterias."},
	{km: 100000, months: 60, services: []string{"Diagnóstico da bateria de alta tensão", "Filtro de cabine", "Inspeção completa de alta tensão"}, checks: []string{"Amortecedores", "Rolamentos", "Carregador de bordo"}, costMin: 420, costMax: 620},
}

// ElectricProvider produces content for battery electric vehicles.
type ElectricProvider struct{}

// NewElectricProvider creates the electric vehicle content provider.
func NewElectricProvider() *ElectricProvider { return &ElectricProvider{} }

// Name returns the provider identifier.
func (e *ElectricProvider) Name() string { return "electric" }

// Introduction returns the opening paragraph.
func (e *ElectricProvider) Introduction(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"O %s dispensa troca de óleo e velas, mas isso não significa manutenção zero. "+
			"A bateria de alta tensão, o sistema de arrefecimento e os freios regenerativos pedem revisões específicas, e este guia mostra quando e quanto custa cada uma.",
		p.DisplayName()), nil
}

// OverviewTable returns the revision summary table.
func (e *ElectricProvider) OverviewTable(p types.VehicleProfile) ([]types.OverviewRow, error) {
	return buildOverview(electricPlan, p), nil
}

// DetailedSchedule returns every revision with services and costs.
func (e *ElectricProvider) DetailedSchedule(p types.VehicleProfile) ([]types.ScheduleEntry, error) {
	return buildSchedule(electricPlan, p), nil
}

// PreventiveMaintenance returns the checks to do between revisions.
func (e *ElectricProvider) PreventiveMaintenance(types.VehicleProfile) (types.PreventiveMaintenance, error) {
	return types.PreventiveMaintenance{
		Monthly:   []string{"Calibragem dos pneus", "Estado do cabo de recarga", "Alertas no painel"},
		Quarterly: []string{"Nível do fluido de freio", "Limpeza da porta de recarga", "Bateria auxiliar de 12V"},
		Special:   []string{"Manter a carga entre 20% e 80% no uso diário", "Evitar recargas rápidas consecutivas em dias quentes"},
	}, nil
}

// CriticalParts returns components that wear out and need attention.
func (e *ElectricProvider) CriticalParts(types.VehicleProfile) ([]types.CriticalPart, error) {
	return []types.CriticalPart{
		{Component: "Bateria de alta tensão", Lifespan: "8 a 10 anos", WearSigns: "Queda acentuada de autonomia", RecommendedAction: "Acompanhar o SOH a cada revisão"},
		{Component: "Pneus", Lifespan: "30.000 a 40.000 km", WearSigns: "Desgaste rápido pelo torque instantâneo", RecommendedAction: "Rodízio a cada 10.000 km"},
		{Component: "Bateria de 12V", Lifespan: "3 anos", WearSigns: "Sistemas do painel reiniciando", RecommendedAction: "Testar anualmente"},
		{Component: "Discos de freio", Lifespan: "Variável", WearSigns: "Corrosão por pouco uso", RecommendedAction: "Usar o freio hidráulico periodicamente"},
	}, nil
}

// TechnicalSpecs returns battery and tire specifications.
func (e *ElectricProvider) TechnicalSpecs(p types.VehicleProfile) (types.TechnicalSpecs, error) {
	return types.TechnicalSpecs{
		"motor":                 engineLabel(p),
		"arrefecimento_bateria": "Líquido dedicado, troca aos 80.000 km",
		"pressao_pneus":         pressureLabel(p.PressureEmptyFront, p.PressureEmptyRear, "36 PSI"),
		"fluido_freio":          "DOT 4 baixa condutividade",
		"oleo_redutor":          "Troca aos 80.000 km",
		"conector_recarga":      "CCS2 / Tipo 2",
	}, nil
}

// WarrantyInfo returns factory and battery warranty terms.
func (e *ElectricProvider) WarrantyInfo(types.VehicleProfile) (types.WarrantyInfo, error) {
	return types.WarrantyInfo{
		Term:           "Veículo: 3 anos. Bateria: 8 anos ou 160.000 km",
		ImportantNotes: "A garantia da bateria exige o diagnóstico anual em rede autorizada.",
		LifespanTips:   []string{"Prefira recarga lenta em casa", "Evite deixar o carro parado com 100% de carga", "Mantenha o software atualizado"},
	}, nil
}

// FAQs returns common owner questions.
func (e *ElectricProvider) FAQs(p types.VehicleProfile) ([]types.FAQ, error) {
	return []types.FAQ{
		{Question: fmt.Sprintf("O %s precisa de revisão?", p.DisplayName()), Answer: "Sim, a cada 20.000 km ou 12 meses, com foco em bateria, freios e arrefecimento."},
		{Question: "A revisão de elétrico é mais barata?", Answer: "Em geral sim, pois não há óleo, velas ou correia dentada."},
		{Question: "Recarga rápida estraga a bateria?", Answer: "O uso frequente acelera a degradação; use-a em viagens e prefira a recarga lenta no dia a dia."},
		{Question: "Como sei a saúde da bateria?", Answer: "O relatório de SOH é emitido em cada revisão na concessionária."},
	}, nil
}

// Conclusion returns the closing paragraph.
func (e *ElectricProvider) Conclusion(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"A manutenção do %s é simples e econômica, mas a disciplina nas revisões é o que protege a bateria e mantém a garantia estendida. "+
			"Siga o cronograma e acompanhe a saúde da bateria ao longo dos anos.",
		p.DisplayName()), nil
}
