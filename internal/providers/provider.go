// Package providers supplies raw maintenance content for each article section,
// with one provider per vehicle type.
package providers

import (
	"errors"

	"github.com/jonathan/review-schedule/internal/types"
)

// ErrUnsupported is returned by a provider that has nothing meaningful for a section.
var ErrUnsupported = errors.New("section not supported by provider")

// ContentProvider produces the raw content of the nine article sections.
type ContentProvider interface {
	Name() string
	Introduction(p types.VehicleProfile) (string, error)
	OverviewTable(p types.VehicleProfile) ([]types.OverviewRow, error)
	DetailedSchedule(p types.VehicleProfile) ([]types.ScheduleEntry, error)
	PreventiveMaintenance(p types.VehicleProfile) (types.PreventiveMaintenance, error)
	CriticalParts(p types.VehicleProfile) ([]types.CriticalPart, error)
	TechnicalSpecs(p types.VehicleProfile) (types.TechnicalSpecs, error)
	WarrantyInfo(p types.VehicleProfile) (types.WarrantyInfo, error)
	FAQs(p types.VehicleProfile) ([]types.FAQ, error)
	Conclusion(p types.VehicleProfile) (string, error)
}

// Registry holds one provider per vehicle type.
type Registry struct {
	Car        ContentProvider
	Motorcycle ContentProvider
	Electric   ContentProvider
	Hybrid     ContentProvider
}

// DefaultRegistry returns the built-in providers.
func DefaultRegistry() Registry {
	return Registry{
		Car:        NewCarProvider(),
		Motorcycle: NewMotorcycleProvider(),
		Electric:   NewElectricProvider(),
		Hybrid:     NewHybridProvider(),
	}
}

// ForType selects the provider for a vehicle type. Unknown types and unset
// entries resolve to the car provider.
func (r Registry) ForType(t types.VehicleType) ContentProvider {
	var selected ContentProvider
	switch t.Normalize() {
	case types.VehicleTypeMotorcycle:
		selected = r.Motorcycle
	case types.VehicleTypeElectric:
		selected = r.Electric
	case types.VehicleTypeHybrid:
		selected = r.Hybrid
	default:
		selected = r.Car
	}

	if selected != nil {
		return selected
	}
	if r.Car != nil {
		return r.Car
	}
	return NewCarProvider()
}
