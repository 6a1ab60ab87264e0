package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/logfields"
	"github.com/jonathan/review-schedule/internal/metrics"
	"github.com/jonathan/review-schedule/internal/pipeline"
	"github.com/jonathan/review-schedule/internal/scheduler"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the batch pipeline periodically",
	Long: `Runs the batch pipeline now and then every --interval until interrupted,
serving Prometheus metrics on --metrics-addr. All runs share one variation
selector so titles keep rotating across runs.

Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
	RunE: runSchedule,
}

var (
	scheduleConfigPath    string
	scheduleCSV           string
	scheduleOutputDir     string
	scheduleDatabaseURL   string
	scheduleEventsDB      string
	scheduleInterval      string
	scheduleMetricsAddr   string
	scheduleConcurrency   int
	scheduleMinQuality    int
	scheduleSkipUnchanged bool
	scheduleVerbose       bool
)

// metricsShutdownTimeout bounds the graceful stop of the metrics server.
const metricsShutdownTimeout = 5 * time.Second

func init() {
	scheduleCmd.Flags().StringVar(&scheduleConfigPath, "config", "", "Path to config file (values can be overridden by other flags)")
	scheduleCmd.Flags().StringVarP(&scheduleCSV, "csv", "c", "", "Path to the vehicle CSV file")
	scheduleCmd.Flags().StringVarP(&scheduleOutputDir, "out-dir", "o", "", "Directory for generated article JSON (default output/review_schedule)")
	scheduleCmd.Flags().StringVar(&scheduleDatabaseURL, "db-url", "", "PostgreSQL connection URL (or set DATABASE_URL)")
	scheduleCmd.Flags().StringVar(&scheduleEventsDB, "events-db", "", "SQLite file receiving article events")
	scheduleCmd.Flags().StringVar(&scheduleInterval, "interval", "", "Time between runs as a Go duration (default 24h)")
	scheduleCmd.Flags().StringVar(&scheduleMetricsAddr, "metrics-addr", "", "Listen address of the /metrics endpoint (default :9090)")
	scheduleCmd.Flags().IntVar(&scheduleConcurrency, "concurrency", 0, "Parallel generation workers (default 4)")
	scheduleCmd.Flags().IntVar(&scheduleMinQuality, "min-quality", 0, "Reject articles scoring below this (default 60)")
	scheduleCmd.Flags().BoolVar(&scheduleSkipUnchanged, "skip-unchanged", true, "Skip articles whose stored content hash is unchanged")
	scheduleCmd.Flags().BoolVarP(&scheduleVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(scheduleConfigPath)
	if err != nil {
		return err
	}

	// Override config with CLI flags (only if explicitly set)
	if cmd.Flags().Changed("csv") {
		cfg.VehiclesCSV = scheduleCSV
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = scheduleOutputDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scheduleDatabaseURL
	}
	if cmd.Flags().Changed("events-db") {
		cfg.EventsDB = scheduleEventsDB
	}
	if cmd.Flags().Changed("interval") {
		cfg.ScheduleInterval = scheduleInterval
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = scheduleMetricsAddr
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = scheduleConcurrency
	}
	if cmd.Flags().Changed("min-quality") {
		cfg.MinQuality = scheduleMinQuality
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scheduleVerbose
	}
	cfg = finalizeConfig(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.VehiclesCSV == "" {
		return fmt.Errorf("--csv or vehicles_csv in the config file must be provided")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	opts, cleanup, err := batchOptions(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := opts.Logger

	reg := prom.NewRegistry()
	opts.Metrics = metrics.NewPrometheusRecorder(reg)
	opts.Selector = pipeline.NewSelector(opts.Metrics, logger)
	opts.SkipUnchanged = scheduleSkipUnchanged

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	server := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Serving metrics", logfields.Path(cfg.MetricsAddr+"/metrics"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", logfields.Error(err))
		}
	}()

	sched, err := scheduler.NewScheduler(logger)
	if err != nil {
		return err
	}
	_, err = sched.SchedulePeriodic("review-schedule-batch", cfg.Interval(), true, func(runCtx context.Context) error {
		_, err := pipeline.Run(runCtx, opts)
		usage := opts.Selector.UsageStats()
		logger.Debug("Variation usage", logfields.Count(usage.TotalKeys))
		return err
	})
	if err != nil {
		_ = sched.Stop()
		return err
	}

	sched.Start()
	logger.Info("Scheduler started", slog.Duration("interval", cfg.Interval()))

	<-ctx.Done()

	var stopErr error
	if err := sched.Stop(); err != nil {
		stopErr = fmt.Errorf("failed to stop scheduler: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && stopErr == nil {
		stopErr = fmt.Errorf("failed to stop metrics server: %w", err)
	}
	return stopErr
}
