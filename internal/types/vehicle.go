// Package types provides type definitions for structured data used throughout the review-schedule system.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// VehicleType classifies a vehicle for content provider selection.
type VehicleType string

// Supported vehicle types. Anything else is treated as a car.
const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeElectric   VehicleType = "electric"
	VehicleTypeHybrid     VehicleType = "hybrid"
)

// AllVehicleTypes lists the supported vehicle types in a stable order.
var AllVehicleTypes = []VehicleType{
	VehicleTypeCar,
	VehicleTypeMotorcycle,
	VehicleTypeElectric,
	VehicleTypeHybrid,
}

// ParseVehicleType maps a raw string to a VehicleType. Unknown values map to car.
func ParseVehicleType(raw string) VehicleType {
	switch VehicleType(strings.ToLower(strings.TrimSpace(raw))) {
	case VehicleTypeMotorcycle:
		return VehicleTypeMotorcycle
	case VehicleTypeElectric:
		return VehicleTypeElectric
	case VehicleTypeHybrid:
		return VehicleTypeHybrid
	default:
		return VehicleTypeCar
	}
}

// Normalize returns the type itself when supported, car otherwise.
func (t VehicleType) Normalize() VehicleType {
	return ParseVehicleType(string(t))
}

// Portuguese returns the reader-facing label used in entities and copy.
func (t VehicleType) Portuguese() string {
	switch t.Normalize() {
	case VehicleTypeMotorcycle:
		return "motocicleta"
	case VehicleTypeElectric:
		return "veículo elétrico"
	case VehicleTypeHybrid:
		return "veículo híbrido"
	default:
		return "carro"
	}
}

// SlugSuffix returns the suffix appended to slugs for non-car vehicles.
func (t VehicleType) SlugSuffix() string {
	switch t.Normalize() {
	case VehicleTypeMotorcycle:
		return "moto"
	case VehicleTypeElectric:
		return "eletrico"
	case VehicleTypeHybrid:
		return "hibrido"
	default:
		return ""
	}
}

// Template returns the article template identifier for this vehicle type.
func (t VehicleType) Template() string {
	return "review_schedule_" + string(t.Normalize())
}

// VehicleProfile holds the normalized vehicle attributes used as generation input.
type VehicleProfile struct {
	Make         string      `json:"make" validate:"required"`
	Model        string      `json:"model" validate:"required"`
	Year         int         `json:"year"`
	VehicleType  VehicleType `json:"vehicle_type"`
	Subcategory  string      `json:"subcategory,omitempty"`
	Engine       string      `json:"engine,omitempty"`
	FuelType     string      `json:"fuel_type,omitempty"`
	Version      string      `json:"version,omitempty"`
	Segment      string      `json:"segment,omitempty"`
	UsageProfile string      `json:"usage_profile,omitempty"`

	// Optional enrichment carried over from the master-data file.
	Category            string `json:"category,omitempty"`
	RecommendedOil      string `json:"recommended_oil,omitempty"`
	PressureEmptyFront  string `json:"pressure_empty_front,omitempty"`
	PressureEmptyRear   string `json:"pressure_empty_rear,omitempty"`
	DetectionConfidence string `json:"detection_confidence,omitempty"`
}

// Validate checks that make and model are present. Blank values count as missing.
func (p *VehicleProfile) Validate() error {
	trimmed := *p
	trimmed.Make = strings.TrimSpace(p.Make)
	trimmed.Model = strings.TrimSpace(p.Model)

	validate := validator.New()
	return validate.Struct(&trimmed)
}

// Identifier returns "Make Model Year" with empty parts omitted.
func (p VehicleProfile) Identifier() string {
	parts := []string{strings.TrimSpace(p.Make), strings.TrimSpace(p.Model)}
	if p.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", p.Year))
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// DisplayName returns the identifier, or a generic noun when nothing is known.
func (p VehicleProfile) DisplayName() string {
	if id := p.Identifier(); id != "" {
		return id
	}
	return "veículo"
}

// IsPremium reports whether the vehicle belongs to the premium segment.
func (p VehicleProfile) IsPremium() bool {
	return strings.EqualFold(p.Segment, "premium")
}
