package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVStatsCommand(t *testing.T) {
	out, err := executeCommand(t, "csv-stats", "--csv", vehiclesFixture)
	require.NoError(t, err)

	assert.Contains(t, out, "VEHICLE FILE")
	assert.Contains(t, out, "Skipped:  2")
	assert.Contains(t, out, "VEHICLE DATA")
	assert.Contains(t, out, "Total vehicles: 5")
	assert.Contains(t, out, "Toyota")
}

func TestCSVStatsCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "csv-stats", "--csv", vehiclesFixture, "--json")
	require.NoError(t, err)

	var report csvStatsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Stats.Total)
	assert.Equal(t, 2, report.Stats.ByMake["Toyota"])
	assert.Equal(t, 5, report.Source.Loaded)
	assert.NotEmpty(t, report.Source.Hash)
}

func TestCSVStatsCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "csv-stats", "--csv", "does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load vehicles")
}
