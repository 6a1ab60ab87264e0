package ingestion

import (
	"cmp"
	"slices"

	"github.com/jonathan/review-schedule/internal/types"
)

// VehicleStats summarizes a vehicle list.
type VehicleStats struct {
	Total   int            `json:"total"`
	ByType  map[string]int `json:"by_type"`
	ByMake  map[string]int `json:"by_make"`
	ByYear  map[int]int    `json:"by_year"`
	MinYear int            `json:"min_year"`
	MaxYear int            `json:"max_year"`
}

// MakeCount pairs a make with its vehicle count.
type MakeCount struct {
	Make  string `json:"make"`
	Count int    `json:"count"`
}

// Stats counts vehicles by type, make and year. Year 0 is not counted as a
// year and does not affect the year range.
func Stats(vehicles []types.VehicleProfile) VehicleStats {
	s := VehicleStats{
		Total:  len(vehicles),
		ByType: make(map[string]int),
		ByMake: make(map[string]int),
		ByYear: make(map[int]int),
	}
	for _, v := range vehicles {
		s.ByType[string(v.VehicleType.Normalize())]++
		s.ByMake[v.Make]++
		if v.Year <= 0 {
			continue
		}
		s.ByYear[v.Year]++
		if s.MinYear == 0 || v.Year < s.MinYear {
			s.MinYear = v.Year
		}
		if v.Year > s.MaxYear {
			s.MaxYear = v.Year
		}
	}
	return s
}

// TopMakes returns up to n makes ordered by count descending, then name.
func (s VehicleStats) TopMakes(n int) []MakeCount {
	out := make([]MakeCount, 0, len(s.ByMake))
	for mk, c := range s.ByMake {
		out = append(out, MakeCount{Make: mk, Count: c})
	}
	slices.SortFunc(out, func(a, b MakeCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Make, b.Make)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
