package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"vehicles_csv": "data/vehicles.csv",
		"output_dir": "out",
		"concurrency": 8,
		"min_quality": 70,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/vehicles.csv", cfg.VehiclesCSV)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 70, cfg.MinQuality)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
vehicles_csv: data/vehicles.csv
events_db: events.db
publish_min_quality: 90
schedule_interval: 6h
metrics_addr: ":2112"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/vehicles.csv", cfg.VehiclesCSV)
	assert.Equal(t, "events.db", cfg.EventsDB)
	assert.Equal(t, 90, cfg.PublishMinQuality)
	assert.Equal(t, 6*time.Hour, cfg.Interval())
	assert.Equal(t, ":2112", cfg.MetricsAddr)
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("REVIEW_TEST_DB", "postgres://localhost/reviews")
	path := writeConfig(t, "config.yml", "database_url: ${REVIEW_TEST_DB}\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/reviews", cfg.DatabaseURL)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "concurrency: [1, 2\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	csvPath := writeConfig(t, "vehicles.csv", "make,model\n")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty is valid", Config{}, ""},
		{"defaults are valid", Defaults(), ""},
		{"existing csv", Config{VehiclesCSV: csvPath}, ""},
		{"negative concurrency", Config{Concurrency: -1}, "'concurrency' must be non-negative"},
		{"min quality above 100", Config{MinQuality: 101}, "'min_quality' must be between 0 and 100"},
		{"publish quality negative", Config{PublishMinQuality: -5}, "'publish_min_quality' must be between 0 and 100"},
		{"bad interval", Config{ScheduleInterval: "daily"}, "invalid 'schedule_interval'"},
		{"zero interval", Config{ScheduleInterval: "0s"}, "'schedule_interval' must be positive"},
		{"missing csv", Config{VehiclesCSV: "/nonexistent/vehicles.csv"}, "vehicles file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error:")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{OutputDir: "custom", MinQuality: 75}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom", merged.OutputDir)
	assert.Equal(t, 75, merged.MinQuality)
	assert.Equal(t, DefaultConcurrency, merged.Concurrency)
	assert.Equal(t, DefaultPublishMinQuality, merged.PublishMinQuality)
	assert.Equal(t, DefaultScheduleInterval, merged.ScheduleInterval)
	assert.Equal(t, DefaultMetricsAddr, merged.MetricsAddr)
	assert.Equal(t, DefaultContentVersion, merged.ContentVersion)
	assert.Equal(t, "custom", cfg.OutputDir, "receiver is not modified")
	assert.Zero(t, cfg.Concurrency)
}

func TestInterval_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, 24*time.Hour, (&Config{}).Interval())
	assert.Equal(t, 24*time.Hour, (&Config{ScheduleInterval: "nope"}).Interval())
	assert.Equal(t, 90*time.Minute, (&Config{ScheduleInterval: "1h30m"}).Interval())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)

	explicit := Config{DatabaseURL: "postgres://file/db"}
	explicit.ApplyEnv()
	assert.Equal(t, "postgres://file/db", explicit.DatabaseURL)
}
