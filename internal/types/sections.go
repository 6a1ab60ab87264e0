package types

import "strings"

// SectionName identifies one of the fixed article body slots.
type SectionName string

// The nine article body slots, in render order.
const (
	SectionIntroduction          SectionName = "introduction"
	SectionOverviewTable         SectionName = "overview_table"
	SectionDetailedSchedule      SectionName = "detailed_schedule"
	SectionPreventiveMaintenance SectionName = "preventive_maintenance"
	SectionCriticalParts         SectionName = "critical_parts"
	SectionTechnicalSpecs        SectionName = "technical_specs"
	SectionWarrantyInfo          SectionName = "warranty_info"
	SectionFAQs                  SectionName = "faqs"
	SectionConclusion            SectionName = "conclusion"
)

// SectionOrder lists every slot in render order.
var SectionOrder = []SectionName{
	SectionIntroduction,
	SectionOverviewTable,
	SectionDetailedSchedule,
	SectionPreventiveMaintenance,
	SectionCriticalParts,
	SectionTechnicalSpecs,
	SectionWarrantyInfo,
	SectionFAQs,
	SectionConclusion,
}

// OverviewRow is one line of the revision summary table.
type OverviewRow struct {
	Revision      string `json:"revision"`
	Interval      string `json:"interval"`
	MainServices  string `json:"main_services"`
	EstimatedCost string `json:"estimated_cost"`
}

// ScheduleEntry describes one scheduled revision in detail.
type ScheduleEntry struct {
	Number           int      `json:"number"`
	Interval         string   `json:"interval"`
	Kilometers       string   `json:"km"`
	MainServices     []string `json:"main_services"`
	AdditionalChecks []string `json:"additional_checks"`
	EstimatedCost    string   `json:"estimated_cost"`
	Notes            string   `json:"notes,omitempty"`
}

// PreventiveMaintenance groups recurring checks done between revisions.
type PreventiveMaintenance struct {
	Monthly   []string `json:"monthly_checks"`
	Quarterly []string `json:"quarterly_checks"`
	Annual    []string `json:"annual_checks,omitempty"`
	Special   []string `json:"special_care,omitempty"`
}

// IsEmpty reports whether no check is listed.
func (m PreventiveMaintenance) IsEmpty() bool {
	return len(m.Monthly) == 0 && len(m.Quarterly) == 0 && len(m.Annual) == 0 && len(m.Special) == 0
}

// CriticalPart is a component that needs special attention.
type CriticalPart struct {
	Component         string `json:"component"`
	Lifespan          string `json:"lifespan"`
	WearSigns         string `json:"wear_signs"`
	RecommendedAction string `json:"recommended_action,omitempty"`
}

// TechnicalSpecs maps a spec label to its value.
type TechnicalSpecs map[string]string

// WarrantyInfo summarizes warranty terms and tips.
type WarrantyInfo struct {
	Term           string   `json:"term"`
	ImportantNotes string   `json:"important_notes"`
	LifespanTips   []string `json:"lifespan_tips,omitempty"`
}

// IsEmpty reports whether no warranty information is present.
func (w WarrantyInfo) IsEmpty() bool {
	return strings.TrimSpace(w.Term) == "" && strings.TrimSpace(w.ImportantNotes) == "" && len(w.LifespanTips) == 0
}

// FAQ is a question with its answer.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContentSections is the article body. Every slot is always serialized.
type ContentSections struct {
	Introduction          string                `json:"introduction"`
	OverviewTable         []OverviewRow         `json:"overview_table"`
	DetailedSchedule      []ScheduleEntry       `json:"detailed_schedule"`
	PreventiveMaintenance PreventiveMaintenance `json:"preventive_maintenance"`
	CriticalParts         []CriticalPart        `json:"critical_parts"`
	TechnicalSpecs        TechnicalSpecs        `json:"technical_specs"`
	WarrantyInfo          WarrantyInfo          `json:"warranty_info"`
	FAQs                  []FAQ                 `json:"faqs"`
	Conclusion            string                `json:"conclusion"`
}

// Keys returns the slot names in render order.
func (c ContentSections) Keys() []SectionName {
	keys := make([]SectionName, len(SectionOrder))
	copy(keys, SectionOrder)
	return keys
}

// Has reports whether the named slot holds non-empty content.
func (c ContentSections) Has(name SectionName) bool {
	switch name {
	case SectionIntroduction:
		return strings.TrimSpace(c.Introduction) != ""
	case SectionOverviewTable:
		return len(c.OverviewTable) > 0
	case SectionDetailedSchedule:
		return len(c.DetailedSchedule) > 0
	case SectionPreventiveMaintenance:
		return !c.PreventiveMaintenance.IsEmpty()
	case SectionCriticalParts:
		return len(c.CriticalParts) > 0
	case SectionTechnicalSpecs:
		return len(c.TechnicalSpecs) > 0
	case SectionWarrantyInfo:
		return !c.WarrantyInfo.IsEmpty()
	case SectionFAQs:
		return len(c.FAQs) > 0
	case SectionConclusion:
		return strings.TrimSpace(c.Conclusion) != ""
	default:
		return false
	}
}

// SectionsPatch carries a partial content update. Nil fields are left untouched.
type SectionsPatch struct {
	Introduction          *string                `json:"introduction,omitempty"`
	OverviewTable         []OverviewRow          `json:"overview_table,omitempty"`
	DetailedSchedule      []ScheduleEntry        `json:"detailed_schedule,omitempty"`
	PreventiveMaintenance *PreventiveMaintenance `json:"preventive_maintenance,omitempty"`
	CriticalParts         []CriticalPart         `json:"critical_parts,omitempty"`
	TechnicalSpecs        TechnicalSpecs         `json:"technical_specs,omitempty"`
	WarrantyInfo          *WarrantyInfo          `json:"warranty_info,omitempty"`
	FAQs                  []FAQ                  `json:"faqs,omitempty"`
	Conclusion            *string                `json:"conclusion,omitempty"`
}

// Apply returns a copy of c with the patch merged in, plus the names of the
// slots that were replaced, in render order.
func (c ContentSections) Apply(p SectionsPatch) (ContentSections, []SectionName) {
	out := c
	var updated []SectionName

	if p.Introduction != nil {
		out.Introduction = *p.Introduction
		updated = append(updated, SectionIntroduction)
	}
	if p.OverviewTable != nil {
		out.OverviewTable = p.OverviewTable
		updated = append(updated, SectionOverviewTable)
	}
	if p.DetailedSchedule != nil {
		out.DetailedSchedule = p.DetailedSchedule
		updated = append(updated, SectionDetailedSchedule)
	}
	if p.PreventiveMaintenance != nil {
		out.PreventiveMaintenance = *p.PreventiveMaintenance
		updated = append(updated, SectionPreventiveMaintenance)
	}
	if p.CriticalParts != nil {
		out.CriticalParts = p.CriticalParts
		updated = append(updated, SectionCriticalParts)
	}
	if p.TechnicalSpecs != nil {
		out.TechnicalSpecs = p.TechnicalSpecs
		updated = append(updated, SectionTechnicalSpecs)
	}
	if p.WarrantyInfo != nil {
		out.WarrantyInfo = *p.WarrantyInfo
		updated = append(updated, SectionWarrantyInfo)
	}
	if p.FAQs != nil {
		out.FAQs = p.FAQs
		updated = append(updated, SectionFAQs)
	}
	if p.Conclusion != nil {
		out.Conclusion = *p.Conclusion
		updated = append(updated, SectionConclusion)
	}

	return out, updated
}
