package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	expectedSteps := []string{
		LoadVehicles, FilterVehicles, Generate, Validate, Persist, Complete,
	}

	for _, stepName := range expectedSteps {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
		assert.NotEmpty(t, def.Description)
	}
}

func TestStepRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		CategoryIngestion:  {LoadVehicles, FilterVehicles},
		CategoryGeneration: {Generate},
		CategoryValidation: {Validate},
		CategoryStorage:    {Persist, Complete},
	}

	for category, stepNames := range categories {
		for _, stepName := range stepNames {
			def, ok := StepRegistry[stepName]
			require.True(t, ok)
			assert.Equal(t, category, def.Category, "Step %s should be in category %s", stepName, category)
		}
	}
}

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Step:                "test_step",
		MissingDependencies: []string{"dep1", "dep2"},
	}

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependencies")
	assert.Equal(t, "test_step", err.Step)
	assert.Equal(t, []string{"dep1", "dep2"}, err.MissingDependencies)
}

func TestValidateDependencies(t *testing.T) {
	err := ValidateDependencies(nil, "unknown_step")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")

	assert.NoError(t, ValidateDependencies(nil, LoadVehicles))

	err = ValidateDependencies(map[string]bool{LoadVehicles: true}, Generate)
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, []string{FilterVehicles}, depErr.MissingDependencies)

	assert.NoError(t, ValidateDependencies(map[string]bool{FilterVehicles: true}, Generate))
}

func TestOrdered(t *testing.T) {
	assert.Equal(t,
		[]string{LoadVehicles, FilterVehicles, Generate, Validate, Persist, Complete},
		Ordered())
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 1, Position(LoadVehicles))
	assert.Equal(t, 6, Position(Complete))
	assert.Equal(t, 0, Position("missing"))
}
