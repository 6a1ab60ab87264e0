package providers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

// revisionStep is one row of a provider's maintenance plan.
type revisionStep struct {
	km       int
	months   int
	services []string
	checks   []string
	costMin  int
	costMax  int
	notes    string
}

// buildSchedule turns a plan into detailed schedule entries priced for the vehicle segment.
func buildSchedule(plan []revisionStep, p types.VehicleProfile) []types.ScheduleEntry {
	entries := make([]types.ScheduleEntry, 0, len(plan))
	for i, step := range plan {
		entries = append(entries, types.ScheduleEntry{
			Number:           i + 1,
			Interval:         formatInterval(step.km, step.months),
			Kilometers:       formatThousands(step.km),
			MainServices:     append([]string(nil), step.services...),
			AdditionalChecks: append([]string(nil), step.checks...),
			EstimatedCost:    costRange(step.costMin, step.costMax, p),
			Notes:            step.notes,
		})
	}
	return entries
}

// buildOverview summarizes a plan as table rows.
func buildOverview(plan []revisionStep, p types.VehicleProfile) []types.OverviewRow {
	rows := make([]types.OverviewRow, 0, len(plan))
	for i, step := range plan {
		services := step.services
		if len(services) > 3 {
			services = services[:3]
		}
		rows = append(rows, types.OverviewRow{
			Revision:      fmt.Sprintf("%dª Revisão", i+1),
			Interval:      formatInterval(step.km, step.months),
			MainServices:  strings.Join(services, ", "),
			EstimatedCost: costRange(step.costMin, step.costMax, p),
		})
	}
	return rows
}

// segmentMultiplier scales workshop prices by market segment.
func segmentMultiplier(segment string) float64 {
	switch strings.ToLower(strings.TrimSpace(segment)) {
	case "premium":
		return 1.6
	case "popular":
		return 0.85
	default:
		return 1.0
	}
}

func costRange(minCost, maxCost int, p types.VehicleProfile) string {
	m := segmentMultiplier(p.Segment)
	lo := roundTo(float64(minCost)*m, 10)
	hi := roundTo(float64(maxCost)*m, 10)
	return fmt.Sprintf("R$ %s - R$ %s", formatThousands(lo), formatThousands(hi))
}

func roundTo(v float64, step int) int {
	return int(math.Round(v/float64(step))) * step
}

func formatInterval(km, months int) string {
	if months <= 0 {
		return formatThousands(km) + " km"
	}
	return fmt.Sprintf("%s km ou %d meses", formatThousands(km), months)
}

// formatThousands renders 10000 as "10.000".
func formatThousands(n int) string {
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

func engineLabel(p types.VehicleProfile) string {
	if e := strings.TrimSpace(p.Engine); e != "" {
		return e
	}
	return "original"
}

func oilLabel(p types.VehicleProfile, fallback string) string {
	if o := strings.TrimSpace(p.RecommendedOil); o != "" {
		return o
	}
	return fallback
}

func pressureLabel(front, rear, fallback string) string {
	front, rear = strings.TrimSpace(front), strings.TrimSpace(rear)
	switch {
	case front != "" && rear != "":
		return fmt.Sprintf("%s PSI (dianteiro) / %s PSI (traseiro)", front, rear)
	case front != "":
		return front + " PSI"
	default:
		return fallback
	}
}
