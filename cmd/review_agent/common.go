package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/config"
	"github.com/jonathan/review-schedule/internal/db"
	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/generation"
	"github.com/jonathan/review-schedule/internal/logfields"
)

// loadConfigFile reads and validates the config at path. An empty path yields
// an empty config so flags and defaults apply.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return *loaded, nil
}

// finalizeConfig fills unset values from defaults and the environment.
func finalizeConfig(cfg config.Config) config.Config {
	merged := cfg.MergeWithDefaults(config.Defaults())
	merged.ApplyEnv()
	return merged
}

// newLogger returns a text logger writing to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openSink returns the event sink for a command: the log sink, plus a SQLite
// event store when eventsDB is set. The returned func closes the store.
func openSink(eventsDB string, logger *slog.Logger) (events.Sink, func(), error) {
	logSink := events.NewLogSink(logger)
	if eventsDB == "" {
		return logSink, func() {}, nil
	}

	store, err := events.NewSQLiteSink(eventsDB, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open events database: %w", err)
	}
	closer := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close events database", logfields.Error(err))
		}
	}
	return events.MultiSink{logSink, store}, closer, nil
}

// connectStore opens the article database and applies the schema.
func connectStore(ctx context.Context, databaseURL string) (*db.DB, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// newGenerator returns a generator that logs every section fallback.
func newGenerator(logger *slog.Logger) *generation.Generator {
	return generation.New(generation.WithDiagnostics(func(f generation.SectionFailure) {
		logger.Warn("Section fell back to default content",
			logfields.Section(string(f.Section)),
			logfields.Provider(f.Provider),
			logfields.Vehicle(f.Vehicle),
			logfields.Error(f.Err))
	}))
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON through writeOutput.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := article.MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(w, path, data)
}

// readDocument loads an article document from a JSON file. Storage documents
// are accepted as well since they embed the full document.
func readDocument(path string) (article.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return article.Document{}, fmt.Errorf("failed to read article file %s: %w", path, err)
	}
	var doc article.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return article.Document{}, fmt.Errorf("failed to unmarshal article JSON: %w", err)
	}
	if doc.ArticleSlug == "" && doc.NewSlug == "" {
		return article.Document{}, fmt.Errorf("article file %s has no slug", path)
	}
	return doc, nil
}

// markRequired marks flags as required on cmd.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
