// Package steps provides stage definitions and dependency validation for the
// batch generation pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Stage categories
const (
	CategoryIngestion  = "ingestion"
	CategoryGeneration = "generation"
	CategoryValidation = "validation"
	CategoryStorage    = "storage"
)

// Stage names
const (
	LoadVehicles   = "load_vehicles"
	FilterVehicles = "filter_vehicles"
	Generate       = "generate_articles"
	Validate       = "validate_articles"
	Persist        = "persist_articles"
	Complete       = "complete_run"
)

// StepDefinition defines metadata for a pipeline stage
type StepDefinition struct {
	Name         string
	Category     string
	Description  string
	Dependencies []string
}

// StepRegistry holds all stage definitions
var StepRegistry = map[string]StepDefinition{
	LoadVehicles: {
		Name:         LoadVehicles,
		Category:     CategoryIngestion,
		Description:  "Loading vehicles",
		Dependencies: []string{},
	},
	FilterVehicles: {
		Name:         FilterVehicles,
		Category:     CategoryIngestion,
		Description:  "Filtering vehicles",
		Dependencies: []string{LoadVehicles},
	},
	Generate: {
		Name:         Generate,
		Category:     CategoryGeneration,
		Description:  "Generating articles",
		Dependencies: []string{FilterVehicles},
	},
	Validate: {
		Name:         Validate,
		Category:     CategoryValidation,
		Description:  "Validating article quality",
		Dependencies: []string{Generate},
	},
	Persist: {
		Name:         Persist,
		Category:     CategoryStorage,
		Description:  "Saving articles",
		Dependencies: []string{Validate},
	},
	Complete: {
		Name:         Complete,
		Category:     CategoryStorage,
		Description:  "Completing run",
		Dependencies: []string{Persist},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies: %v", e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in completed.
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}

// Ordered returns the stage names in an order where every stage follows its
// dependencies. Ties are broken by name.
func Ordered() []string {
	completed := make(map[string]bool, len(StepRegistry))
	ordered := make([]string, 0, len(StepRegistry))

	for len(ordered) < len(StepRegistry) {
		var ready []string
		for name := range StepRegistry {
			if completed[name] {
				continue
			}
			if ValidateDependencies(completed, name) == nil {
				ready = append(ready, name)
			}
		}
		if len(ready) == 0 {
			// cycle; never the case for the built-in registry
			break
		}
		sort.Strings(ready)
		for _, name := range ready {
			completed[name] = true
			ordered = append(ordered, name)
		}
	}

	return ordered
}

// Position returns the 1-based position of stepName in Ordered, or 0.
func Position(stepName string) int {
	for i, name := range Ordered() {
		if name == stepName {
			return i + 1
		}
	}
	return 0
}
