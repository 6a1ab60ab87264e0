package ingestion

import (
	"strings"

	"github.com/jonathan/review-schedule/internal/types"
)

// Filter narrows a vehicle list. Zero fields match everything.
type Filter struct {
	Make        string
	YearFrom    int
	YearTo      int
	VehicleType types.VehicleType
	Limit       int
}

// Matches reports whether p passes every set criterion.
func (f Filter) Matches(p types.VehicleProfile) bool {
	if f.Make != "" && foldKey(f.Make) != foldKey(p.Make) {
		return false
	}
	if f.YearFrom > 0 && p.Year < f.YearFrom {
		return false
	}
	if f.YearTo > 0 && p.Year > f.YearTo {
		return false
	}
	if strings.TrimSpace(string(f.VehicleType)) != "" && f.VehicleType.Normalize() != p.VehicleType.Normalize() {
		return false
	}
	return true
}

// Apply returns the matching vehicles in input order, at most Limit when set.
func (f Filter) Apply(vehicles []types.VehicleProfile) []types.VehicleProfile {
	out := make([]types.VehicleProfile, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
