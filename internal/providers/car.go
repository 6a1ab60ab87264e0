package providers

import (
	"fmt"

	"github.com/jonathan/review-schedule/internal/types"
)

var carPlan = []revisionStep{
	{km: 10000, months: 12, services: []string{"Troca de óleo do motor", "Substituição do filtro de óleo", "Inspeção do sistema de freios", "Verificação de suspensão"}, checks: []string{"Nível dos fluidos", "Calibragem dos pneus", "Sistema de iluminação"}, costMin: 280, costMax: 380, notes: "Primeira revisão obrigatória para manter a garantia de fábrica."},
	{km: 20000, months: 24, services: []string{"Troca de óleo do motor", "Filtros de óleo e de ar", "Filtro de combustível", "Rodízio de pneus"}, checks: []string{"Pastilhas de freio", "Bateria", "Correias auxiliares"}, costMin: 350, costMax: 480},
	{km: 30000, months: 36, services: []string{"Troca de óleo do motor", "Filtro de ar-condicionado", "Velas de ignição", "Alinhamento e balanceamento"}, checks: []string{"Amortecedores", "Sistema de arrefecimento", "Escapamento"}, costMin: 420, costMax: 580},
	{km: 40000, months: 48, services: []string{"Troca de óleo do motor", "Todos os filtros", "Fluido de freio", "Limpeza do corpo de borboleta"}, checks: []string{"Discos de freio", "Coxins do motor", "Terminais de direção"}, costMin: 520, costMax: 720, notes: "Revisão intermediária com troca do fluido de freio."},
	{km: 50000, months: 60, services: []string{"Troca de óleo do motor", "Filtros de óleo e de ar", "Líquido de arrefecimento", "Inspeção da embreagem"}, checks: []string{"Juntas homocinéticas", "Buchas de suspensão", "Sensores do motor"}, costMin: 480, costMax: 650},
	{km: 60000, months: 72, services: []string{"Troca de óleo do motor", "Correia dentada e tensor", "Velas de ignição", "Todos os filtros"}, checks: []string{"Bomba d'água", "Sistema de injeção", "Freio de estacionamento"}, costMin: 850, costMax: 1200, notes: "Revisão mais cara do ciclo por causa da correia dentada."},
}

// CarProvider produces content for conventional combustion cars.
type CarProvider struct{}

// NewCarProvider creates the car content provider.
func NewCarProvider() *CarProvider { return &CarProvider{} }

// Name returns the provider identifier.
func (c *CarProvider) Name() string { return "car" }

// Introduction returns the opening paragraph.
func (c *CarProvider) Introduction(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"Manter o %s em dia com as revisões programadas é a forma mais segura de preservar o desempenho do motor %s, a economia de combustível e o valor de revenda. "+
			"Este guia reúne o cronograma completo de manutenção, com intervalos, serviços e custos estimados para cada etapa.",
		p.DisplayName(), engineLabel(p)), nil
}

// OverviewTable returns the revision summary table.
func (c *CarProvider) OverviewTable(p types.VehicleProfile) ([]types.OverviewRow, error) {
	return buildOverview(carPlan, p), nil
}

// DetailedSchedule returns every revision with services and costs.
func (c *CarProvider) DetailedSchedule(p types.VehicleProfile) ([]types.ScheduleEntry, error) {
	return buildSchedule(carPlan, p), nil
}

// PreventiveMaintenance returns the checks to do between revisions.
func (c *CarProvider) PreventiveMaintenance(types.VehicleProfile) (types.PreventiveMaintenance, error) {
	return types.PreventiveMaintenance{
		Monthly:   []string{"Nível do óleo do motor", "Nível do líquido de arrefecimento", "Calibragem dos pneus, inclusive o estepe", "Funcionamento das luzes"},
		Quarterly: []string{"Nível do fluido de freio", "Estado das palhetas do limpador", "Terminais da bateria", "Desgaste dos pneus"},
		Annual:    []string{"Higienização do ar-condicionado", "Alinhamento e balanceamento", "Inspeção da suspensão"},
	}, nil
}

// CriticalParts returns components that wear out and need attention.
func (c *CarProvider) CriticalParts(types.VehicleProfile) ([]types.CriticalPart, error) {
	return []types.CriticalPart{
		{Component: "Correia dentada", Lifespan: "60.000 km", WearSigns: "Rachaduras, ruído agudo no motor", RecommendedAction: "Substituir no prazo, mesmo sem sinais visíveis"},
		{Component: "Pastilhas de freio", Lifespan: "30.000 a 40.000 km", WearSigns: "Chiado ao frear, pedal mais baixo", RecommendedAction: "Inspecionar a cada revisão"},
		{Component: "Amortecedores", Lifespan: "60.000 a 80.000 km", WearSigns: "Carro balançando, desgaste irregular dos pneus", RecommendedAction: "Avaliar em par no mesmo eixo"},
		{Component: "Bateria", Lifespan: "2 a 3 anos", WearSigns: "Partida lenta, luzes fracas", RecommendedAction: "Testar carga a partir do segundo ano"},
		{Component: "Embreagem", Lifespan: "80.000 a 100.000 km", WearSigns: "Pedal alto, trepidação nas saídas", RecommendedAction: "Evitar apoiar o pé no pedal"},
	}, nil
}

// TechnicalSpecs returns fluid and tire specifications.
func (c *CarProvider) TechnicalSpecs(p types.VehicleProfile) (types.TechnicalSpecs, error) {
	return types.TechnicalSpecs{
		"motor":              engineLabel(p),
		"oleo_motor":         oilLabel(p, "5W30 Sintético"),
		"capacidade_oleo":    "4.0 litros",
		"pressao_pneus":      pressureLabel(p.PressureEmptyFront, p.PressureEmptyRear, "32 PSI"),
		"fluido_freio":       "DOT 4",
		"filtro_combustivel": "A cada 20.000 km",
	}, nil
}

// WarrantyInfo returns factory warranty terms.
func (c *CarProvider) WarrantyInfo(types.VehicleProfile) (types.WarrantyInfo, error) {
	return types.WarrantyInfo{
		Term:           "3 anos ou 100.000 km",
		ImportantNotes: "As revisões devem ser feitas dentro da tolerância de 1.000 km ou 30 dias para manter a garantia.",
		LifespanTips:   []string{"Aqueça o motor em marcha lenta por poucos segundos", "Evite acelerações bruscas com o motor frio", "Guarde as notas fiscais de todas as revisões"},
	}, nil
}

// FAQs returns common owner questions.
func (c *CarProvider) FAQs(p types.VehicleProfile) ([]types.FAQ, error) {
	return []types.FAQ{
		{Question: fmt.Sprintf("Qual o intervalo de revisão do %s?", p.DisplayName()), Answer: "A cada 10.000 km ou 12 meses, o que ocorrer primeiro."},
		{Question: "Posso fazer a revisão fora da concessionária?", Answer: "Sim, desde que a oficina siga o plano do fabricante e registre os serviços com peças de qualidade equivalente."},
		{Question: "Qual óleo devo usar?", Answer: fmt.Sprintf("O recomendado é %s, respeitando a especificação do manual.", oilLabel(p, "5W30 sintético"))},
		{Question: "Uso severo muda o cronograma?", Answer: "Sim. Trânsito intenso, estradas de terra e trajetos curtos pedem a troca de óleo na metade do intervalo."},
		{Question: "Quanto custa manter o carro em dia?", Answer: "Somando as seis primeiras revisões, o gasto médio fica entre R$ 2.900 e R$ 4.000 no segmento intermediário."},
	}, nil
}

// Conclusion returns the closing paragraph.
func (c *CarProvider) Conclusion(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"Seguir o cronograma de revisões do %s garante mais segurança, evita gastos inesperados e mantém a garantia de fábrica válida. "+
			"Anote as datas, guarde os comprovantes e não adie os serviços de maior custo.",
		p.DisplayName()), nil
}
