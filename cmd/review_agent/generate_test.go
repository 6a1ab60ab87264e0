package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/types"
)

func TestGenerateCommand_Flags(t *testing.T) {
	out, err := executeCommand(t, "generate", "--make", "Toyota", "--model", "Corolla", "--year", "2024", "--format", "minimal")
	require.NoError(t, err)

	var summary article.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "toyota-corolla-2024", summary.Slug)
	assert.Equal(t, "Toyota Corolla 2024", summary.Vehicle)
	assert.Equal(t, article.StatusDraft, summary.Status)
	assert.Positive(t, summary.QualityScore)
}

func TestGenerateCommand_WritesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "articles", "dolphin.json")

	_, err := executeCommand(t, "generate", "--make", "BYD", "--model", "Dolphin", "--year", "2024", "--type", "electric", "--out", outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc article.Document
	require.NoError(t, json.Unmarshal(content, &doc))
	assert.Equal(t, "byd-dolphin-2024-eletrico", doc.ArticleSlug)
	assert.Equal(t, "review_schedule_electric", doc.Template)
	assert.NotEmpty(t, doc.Content.DetailedSchedule)
}

func TestGenerateCommand_VehicleFile(t *testing.T) {
	dir := t.TempDir()
	vehiclePath := filepath.Join(dir, "vehicle.json")
	require.NoError(t, os.WriteFile(vehiclePath, []byte(`{"make":"Honda","model":"CG 160","year":2023,"vehicle_type":"motorcycle"}`), 0644))

	out, err := executeCommand(t, "generate", "--vehicle", vehiclePath, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# ")
	assert.Contains(t, out, "CG 160")
}

func TestGenerateCommand_InvalidVehicleFile(t *testing.T) {
	vehiclePath := filepath.Join(t.TempDir(), "vehicle.json")
	require.NoError(t, os.WriteFile(vehiclePath, []byte(`{"make":"Honda","vehicle_type":"truck"}`), 0644))

	_, err := executeCommand(t, "generate", "--vehicle", vehiclePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid vehicle file")
}

func TestGenerateCommand_MissingVehicle(t *testing.T) {
	_, err := executeCommand(t, "generate", "--make", "Toyota")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--make and --model")
}

func TestRenderRecord(t *testing.T) {
	record, err := article.NewAssembler().Create(context.Background(), types.VehicleProfile{
		Make: "Fiat", Model: "Argo", Year: 2023, VehicleType: types.VehicleTypeCar,
	})
	require.NoError(t, err)

	data, err := renderRecord(record, article.FormatJSON)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	data, err = renderRecord(record, article.FormatStorageDocument)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content_hash"`)

	data, err = renderRecord(record, formatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<article>")
}
