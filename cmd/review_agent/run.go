package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/config"
	"github.com/jonathan/review-schedule/internal/ingestion"
	"github.com/jonathan/review-schedule/internal/logfields"
	"github.com/jonathan/review-schedule/internal/pipeline"
	"github.com/jonathan/review-schedule/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Generate articles for every vehicle in a CSV file",
	Long: `Runs the batch pipeline: load the vehicle CSV, filter it, generate and score
one article per vehicle, then write the accepted articles as JSON files and,
when a database is configured, upsert them.

Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
	RunE: runBatchCmd,
}

var (
	runConfigPath     string
	runCSV            string
	runOutputDir      string
	runDatabaseURL    string
	runEventsDB       string
	runConcurrency    int
	runMinQuality     int
	runMake           string
	runYearFrom       int
	runYearTo         int
	runType           string
	runLimit          int
	runSkipUnchanged  bool
	runValidateSchema bool
	runVerbose        bool
	runSummaryPath    string
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runCSV, "csv", "c", "", "Path to the vehicle CSV file")
	runCommand.Flags().StringVarP(&runOutputDir, "out-dir", "o", "", "Directory for generated article JSON (default output/review_schedule)")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (or set DATABASE_URL)")
	runCommand.Flags().StringVar(&runEventsDB, "events-db", "", "SQLite file receiving article events")
	runCommand.Flags().IntVar(&runConcurrency, "concurrency", 0, "Parallel generation workers (default 4)")
	runCommand.Flags().IntVar(&runMinQuality, "min-quality", 0, "Reject articles scoring below this (default 60)")
	runCommand.Flags().StringVar(&runMake, "make", "", "Only generate vehicles of this make")
	runCommand.Flags().IntVar(&runYearFrom, "year-from", 0, "Only generate vehicles from this year on")
	runCommand.Flags().IntVar(&runYearTo, "year-to", 0, "Only generate vehicles up to this year")
	runCommand.Flags().StringVar(&runType, "type", "", "Only generate vehicles of this type")
	runCommand.Flags().IntVar(&runLimit, "limit", 0, "Generate at most this many vehicles")
	runCommand.Flags().BoolVar(&runSkipUnchanged, "skip-unchanged", false, "Skip articles whose stored content hash is unchanged")
	runCommand.Flags().BoolVar(&runValidateSchema, "validate-schema", false, "Validate every article against the document schema")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().StringVar(&runSummaryPath, "summary", "", "Write the run summary JSON to this file")

	rootCmd.AddCommand(runCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(runConfigPath)
	if err != nil {
		return err
	}

	// Override config with CLI flags (only if explicitly set)
	if cmd.Flags().Changed("csv") {
		cfg.VehiclesCSV = runCSV
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("events-db") {
		cfg.EventsDB = runEventsDB
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = runConcurrency
	}
	if cmd.Flags().Changed("min-quality") {
		cfg.MinQuality = runMinQuality
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	cfg = finalizeConfig(cfg)

	if cfg.VehiclesCSV == "" {
		return fmt.Errorf("--csv or vehicles_csv in the config file must be provided")
	}

	opts, cleanup, err := batchOptions(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts.Filter = ingestion.Filter{
		Make:     runMake,
		YearFrom: runYearFrom,
		YearTo:   runYearTo,
		Limit:    runLimit,
	}
	if runType != "" {
		opts.Filter.VehicleType = types.ParseVehicleType(runType)
	}
	opts.SkipUnchanged = runSkipUnchanged
	opts.ValidateSchema = runValidateSchema

	summary, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if runSummaryPath != "" {
		if err := writeJSON(cmd.OutOrStdout(), runSummaryPath, summary); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(),
		"Generated %d, rejected %d, unchanged %d, failed %d of %d vehicles (average score %.1f)\n",
		summary.Generated, summary.Rejected, summary.Unchanged, summary.Failed, summary.Selected, summary.AverageScore)
	return nil
}

// batchOptions builds the pipeline options shared by run and schedule. The
// database is optional: a connection failure is logged and the batch only
// writes files. The returned func releases the sink and the database.
func batchOptions(cmd *cobra.Command, cfg config.Config) (pipeline.RunOptions, func(), error) {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	sink, closeSink, err := openSink(cfg.EventsDB, logger)
	if err != nil {
		return pipeline.RunOptions{}, nil, err
	}

	opts := pipeline.RunOptions{
		VehiclesCSV:    cfg.VehiclesCSV,
		Concurrency:    cfg.Concurrency,
		MinQuality:     cfg.MinQuality,
		ContentVersion: cfg.ContentVersion,
		OutputDir:      cfg.OutputDir,
		Sink:           sink,
		Logger:         logger,
		Out:            cmd.OutOrStdout(),
		Verbose:        cfg.Verbose,
	}

	cleanup := closeSink
	if cfg.DatabaseURL != "" {
		database, err := connectStore(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			logger.Warn("Database unavailable, articles are only written to files", logfields.Error(err))
		} else {
			opts.Store = database
			cleanup = func() {
				database.Close()
				closeSink()
			}
		}
	}
	return opts, cleanup, nil
}
