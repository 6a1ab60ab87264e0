package rendering

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/types"
)

//go:embed templates/article.md.tmpl
var templateFiles embed.FS

const defaultTemplate = "templates/article.md.tmpl"

// Headings holds the H2 text of each rendered section.
type Headings struct {
	Overview      string
	Schedule      string
	Preventive    string
	CriticalParts string
	Warranty      string
	Specs         string
	FAQ           string
}

// defaultHeadings are used when the SEO metadata carries fewer H2 tags.
var defaultHeadings = Headings{
	Overview:      "Visão Geral das Revisões",
	Schedule:      "Detalhamento das Revisões",
	Preventive:    "Manutenção Preventiva",
	CriticalParts: "Peças que Exigem Atenção",
	Warranty:      "Garantia e Recomendações",
	Specs:         "Especificações Técnicas",
	FAQ:           "Perguntas Frequentes",
}

// specLabels maps technical spec keys to display labels.
var specLabels = map[string]string{
	"motor":                  "Motor",
	"oleo_motor":             "Óleo do motor",
	"capacidade_oleo":        "Capacidade de óleo",
	"pressao_pneus":          "Pressão dos pneus",
	"fluido_freio":           "Fluido de freio",
	"fluido_transmissao":     "Fluido da transmissão",
	"filtro_combustivel":     "Filtro de combustível",
	"folga_corrente":         "Folga da corrente",
	"arrefecimento_bateria":  "Arrefecimento da bateria",
	"arrefecimento_inversor": "Arrefecimento do inversor",
	"oleo_redutor":           "Óleo do redutor",
	"conector_recarga":       "Conector de recarga",
}

// SpecRow is one technical specification line
type SpecRow struct {
	Label string
	Value string
}

// TemplateData represents the data structure passed to the article template
type TemplateData struct {
	Title         string
	Introduction  string
	Headings      Headings
	Overview      []types.OverviewRow
	Schedule      []types.ScheduleEntry
	Preventive    types.PreventiveMaintenance
	HasPreventive bool
	CriticalParts []types.CriticalPart
	Specs         []SpecRow
	Warranty      types.WarrantyInfo
	HasWarranty   bool
	FAQs          []types.FAQ
	Conclusion    string
}

// Markdown renders record with the built-in article template.
func Markdown(record *article.Record) (string, error) {
	content, err := templateFiles.ReadFile(defaultTemplate)
	if err != nil {
		return "", &TemplateError{Template: defaultTemplate, Message: "failed to read embedded template", Cause: err}
	}
	return render(record, defaultTemplate, string(content))
}

// MarkdownWithTemplate renders record with the text/template file at templatePath.
func MarkdownWithTemplate(record *article.Record, templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Template: templatePath,
				Message:  fmt.Sprintf("template file not found: %s", templatePath),
				Cause:    err,
			}
		}
		return "", &TemplateError{
			Template: templatePath,
			Message:  fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:    err,
		}
	}
	return render(record, templatePath, string(content))
}

func render(record *article.Record, name, content string) (string, error) {
	if record == nil {
		return "", &RenderError{Message: "no article to render"}
	}

	tmpl, err := parseTemplate(name, content)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(record)); err != nil {
		return "", &TemplateError{
			Template: name,
			Message:  "failed to execute template",
			Cause:    err,
		}
	}
	return result.String(), nil
}

// parseTemplate parses an article template with the Markdown escaping functions
func parseTemplate(name, content string) (*template.Template, error) {
	tmpl, err := template.New("article").Funcs(template.FuncMap{
		"escape": EscapeMarkdown,
		"cell":   EscapeTableCell,
		"list":   escapedList,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Template: name,
			Message:  "failed to parse template",
			Cause:    err,
		}
	}
	return tmpl, nil
}

func escapedList(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeMarkdown(item)
	}
	return strings.Join(escaped, ", ")
}

// buildTemplateData constructs the template data structure from a record
func buildTemplateData(record *article.Record) *TemplateData {
	c := record.Content
	title := record.SEO.H1
	if title == "" {
		title = record.Title
	}
	return &TemplateData{
		Title:         title,
		Introduction:  strings.TrimSpace(c.Introduction),
		Headings:      headingsFor(record.SEO.H2Tags),
		Overview:      c.OverviewTable,
		Schedule:      c.DetailedSchedule,
		Preventive:    c.PreventiveMaintenance,
		HasPreventive: !c.PreventiveMaintenance.IsEmpty(),
		CriticalParts: c.CriticalParts,
		Specs:         specRows(c.TechnicalSpecs),
		Warranty:      c.WarrantyInfo,
		HasWarranty:   !c.WarrantyInfo.IsEmpty(),
		FAQs:          c.FAQs,
		Conclusion:    strings.TrimSpace(c.Conclusion),
	}
}

// headingsFor fills the five SEO heading slots in order: overview, schedule,
// preventive maintenance, critical parts, warranty.
func headingsFor(h2 []string) Headings {
	h := defaultHeadings
	slots := []*string{&h.Overview, &h.Schedule, &h.Preventive, &h.CriticalParts, &h.Warranty}
	for i, slot := range slots {
		if i < len(h2) && strings.TrimSpace(h2[i]) != "" {
			*slot = h2[i]
		}
	}
	return h
}

// specRows lists labelled keys first, then the rest; each group sorted by key.
func specRows(specs types.TechnicalSpecs) []SpecRow {
	if len(specs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		_, ki := specLabels[keys[i]]
		_, kj := specLabels[keys[j]]
		if ki != kj {
			return ki
		}
		return keys[i] < keys[j]
	})

	rows := make([]SpecRow, 0, len(keys))
	for _, k := range keys {
		if strings.TrimSpace(specs[k]) == "" {
			continue
		}
		label, ok := specLabels[k]
		if !ok {
			label = strings.ReplaceAll(k, "_", " ")
		}
		rows = append(rows, SpecRow{Label: label, Value: specs[k]})
	}
	return rows
}
