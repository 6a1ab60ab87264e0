package providers

import (
	"fmt"
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

var motorcyclePlan = []revisionStep{
	{km: 1000, months: 6, services: []string{"Troca de óleo do motor", "Ajuste da corrente de transmissão", "Reaperto geral"}, checks: []string{"Folga das válvulas", "Cabos de acelerador e embreagem", "Iluminação"}, costMin: 150, costMax: 220, notes: "Revisão de amaciamento, essencial para a vida útil do motor."},
	{km: 6000, months: 12, services: []string{"Troca de óleo do motor", "Filtro de óleo", "Limpeza e lubrificação da corrente", "Inspeção dos freios"}, checks: []string{"Pneus", "Bateria", "Suspensão dianteira"}, costMin: 200, costMax: 300},
	{km: 12000, months: 24, services: []string{"Troca de óleo do motor", "Filtro de ar", "Vela de ignição", "Regulagem de válvulas"}, checks: []string{"Kit de relação", "Rolamentos de direção", "Fluido de freio"}, costMin: 280, costMax: 420},
	{km: 18000, months: 36, services: []string{"Troca de óleo do motor", "Filtro de óleo", "Fluido de freio", "Lubrificação dos cabos"}, checks: []string{"Pastilhas de freio", "Escapamento", "Sistema elétrico"}, costMin: 260, costMax: 380},
	{km: 24000, months: 48, services: []string{"Troca de óleo do motor", "Kit de relação", "Filtro de ar", "Óleo da suspensão dianteira"}, checks: []string{"Embreagem", "Rolamentos das rodas", "Balança traseira"}, costMin: 480, costMax: 700, notes: "Normalmente inclui a troca do kit de relação completo."},
}

// MotorcycleProvider produces content for motorcycles and scooters.
type MotorcycleProvider struct{}

// NewMotorcycleProvider creates the motorcycle content provider.
func NewMotorcycleProvider() *MotorcycleProvider { return &MotorcycleProvider{} }

// Name returns the provider identifier.
func (m *MotorcycleProvider) Name() string { return "motorcycle" }

func isScooter(p types.VehicleProfile) bool {
	return strings.Contains(strings.ToLower(p.Subcategory), "scooter")
}

// Introduction returns the opening paragraph.
func (m *MotorcycleProvider) Introduction(p types.VehicleProfile) (string, error) {
	kind := "motocicleta"
	if isScooter(p) {
		kind = "scooter"
	}
	return fmt.Sprintf(
		"Na %s %s, a manutenção em dia é uma questão de segurança: freios, pneus e transmissão trabalham no limite em cada trajeto. "+
			"Confira o cronograma de revisões, os cuidados entre as visitas à oficina e os componentes que merecem mais atenção.",
		kind, p.DisplayName()), nil
}

// OverviewTable returns the revision summary table.
func (m *MotorcycleProvider) OverviewTable(p types.VehicleProfile) ([]types.OverviewRow, error) {
	return buildOverview(motorcyclePlan, p), nil
}

// DetailedSchedule returns every revision with services and costs.
func (m *MotorcycleProvider) DetailedSchedule(p types.VehicleProfile) ([]types.ScheduleEntry, error) {
	return buildSchedule(motorcyclePlan, p), nil
}

// PreventiveMaintenance returns the checks to do between revisions.
func (m *MotorcycleProvider) PreventiveMaintenance(p types.VehicleProfile) (types.PreventiveMaintenance, error) {
	pm := types.PreventiveMaintenance{
		Monthly:   []string{"Nível do óleo pelo visor", "Calibragem dos pneus", "Tensão da corrente", "Funcionamento de setas e luz de freio"},
		Quarterly: []string{"Lubrificação da corrente", "Desgaste das pastilhas", "Folga dos cabos", "Terminais da bateria"},
	}
	if isScooter(p) {
		pm.Special = []string{"Inspeção da correia CVT a cada 12.000 km"}
	}
	return pm, nil
}

// CriticalParts returns components that wear out and need attention.
func (m *MotorcycleProvider) CriticalParts(p types.VehicleProfile) ([]types.CriticalPart, error) {
	parts := []types.CriticalPart{
		{Component: "Kit de relação", Lifespan: "20.000 a 25.000 km", WearSigns: "Dentes pontiagudos, corrente com folga irregular", RecommendedAction: "Trocar coroa, pinhão e corrente juntos"},
		{Component: "Pneus", Lifespan: "10.000 a 15.000 km", WearSigns: "Indicador de desgaste aparente, trincas laterais", RecommendedAction: "Conferir calibragem semanalmente"},
		{Component: "Pastilhas de freio", Lifespan: "8.000 a 12.000 km", WearSigns: "Ruído metálico, frenagem mais longa", RecommendedAction: "Inspecionar a cada revisão"},
		{Component: "Bateria", Lifespan: "2 anos", WearSigns: "Partida elétrica fraca", RecommendedAction: "Usar mantenedor de carga se a moto ficar parada"},
	}
	if isScooter(p) {
		parts[0] = types.CriticalPart{Component: "Correia CVT", Lifespan: "12.000 a 20.000 km", WearSigns: "Perda de aceleração, ruído na transmissão", RecommendedAction: "Substituir roletes junto com a correia"}
	}
	return parts, nil
}

// TechnicalSpecs returns fluid and tire specifications.
func (m *MotorcycleProvider) TechnicalSpecs(p types.VehicleProfile) (types.TechnicalSpecs, error) {
	return types.TechnicalSpecs{
		"motor":           engineLabel(p),
		"oleo_motor":      oilLabel(p, "10W30 Semissintético JASO MA2"),
		"capacidade_oleo": "1.0 litro",
		"pressao_pneus":   pressureLabel(p.PressureEmptyFront, p.PressureEmptyRear, "25 PSI (dianteiro) / 29 PSI (traseiro)"),
		"fluido_freio":    "DOT 4",
		"folga_corrente":  "25 a 35 mm",
	}, nil
}

// WarrantyInfo returns factory warranty terms.
func (m *MotorcycleProvider) WarrantyInfo(types.VehicleProfile) (types.WarrantyInfo, error) {
	return types.WarrantyInfo{
		Term:           "3 anos sem limite de quilometragem",
		ImportantNotes: "A revisão de amaciamento aos 1.000 km é obrigatória para validar a garantia.",
		LifespanTips:   []string{"Evite giros altos durante o amaciamento", "Lave a corrente só com produtos próprios", "Guarde a moto coberta"},
	}, nil
}

// FAQs returns common rider questions.
func (m *MotorcycleProvider) FAQs(p types.VehicleProfile) ([]types.FAQ, error) {
	return []types.FAQ{
		{Question: fmt.Sprintf("Quando fazer a primeira revisão da %s?", p.DisplayName()), Answer: "Aos 1.000 km ou 6 meses, é a revisão de amaciamento."},
		{Question: "Com que frequência lubrificar a corrente?", Answer: "A cada 500 km ou após rodar na chuva."},
		{Question: "Posso usar óleo de carro na moto?", Answer: "Não. Motos com embreagem banhada exigem óleo com especificação JASO MA ou MA2."},
		{Question: "Qual o sinal de que o kit de relação acabou?", Answer: "Folga irregular na corrente e dentes da coroa em formato de gancho."},
	}, nil
}

// Conclusion returns the closing paragraph.
func (m *MotorcycleProvider) Conclusion(p types.VehicleProfile) (string, error) {
	return fmt.Sprintf(
		"Com as revisões da %s em dia, você pilota com mais segurança e evita que um componente barato se transforme em um reparo caro. "+
			"Respeite os intervalos e faça as verificações simples toda semana.",
		p.DisplayName()), nil
}
