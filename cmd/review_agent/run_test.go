package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/pipeline"
)

var vehiclesFixture = filepath.Join("..", "..", "internal", "ingestion", "testdata", "vehicles.csv")

func TestRunCommand_GeneratesArticles(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "articles")
	summaryPath := filepath.Join(dir, "summary.json")

	out, err := executeCommand(t, "run",
		"--csv", vehiclesFixture,
		"--out-dir", outDir,
		"--min-quality", "1",
		"--summary", summaryPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1/6: Loading vehicles...")
	assert.Contains(t, out, "Generated 5, rejected 0, unchanged 0, failed 0 of 5 vehicles")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	content, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	var summary pipeline.Summary
	require.NoError(t, json.Unmarshal(content, &summary))
	assert.Equal(t, 5, summary.Loaded)
	assert.Equal(t, 5, summary.Generated)
	assert.Len(t, summary.Articles, 5)
}

func TestRunCommand_Filter(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "articles")

	out, err := executeCommand(t, "run",
		"--csv", vehiclesFixture,
		"--out-dir", outDir,
		"--min-quality", "1",
		"--make", "toyota")
	require.NoError(t, err)
	assert.Contains(t, out, "of 2 vehicles")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "from-config")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"vehicles_csv: "+vehiclesFixture+"\noutput_dir: "+outDir+"\nmin_quality: 1\nconcurrency: 2\n"), 0644))

	_, err := executeCommand(t, "run", "--config", configPath, "--limit", "1")
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunCommand_MissingCSV(t *testing.T) {
	_, err := executeCommand(t, "run", "--out-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--csv or vehicles_csv")
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"min_quality": 140}`), 0644))

	_, err := executeCommand(t, "run", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_quality")
}
