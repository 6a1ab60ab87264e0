package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/db"
	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/logfields"
	"github.com/jonathan/review-schedule/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report article, run and event statistics",
	Long: `Reports article counts by status and the most recent batch runs from the
article database, and event counts by type from the events database. With
--slug the event history of one article is listed; with --run only that run
is shown. At least one of the two databases must be configured.`,
	RunE: runStats,
}

var (
	statsConfigPath  string
	statsDatabaseURL string
	statsEventsDB    string
	statsRuns        int
	statsRunID       string
	statsSlug        string
	statsJSON        bool
)

func init() {
	statsCmd.Flags().StringVar(&statsConfigPath, "config", "", "Path to config file (values can be overridden by other flags)")
	statsCmd.Flags().StringVar(&statsDatabaseURL, "db-url", "", "PostgreSQL connection URL (or set DATABASE_URL)")
	statsCmd.Flags().StringVar(&statsEventsDB, "events-db", "", "SQLite events database")
	statsCmd.Flags().IntVar(&statsRuns, "runs", 10, "Number of recent runs to list")
	statsCmd.Flags().StringVar(&statsRunID, "run", "", "Show a single run by ID")
	statsCmd.Flags().StringVar(&statsSlug, "slug", "", "List the events of one article")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}

// statsStore is the part of the article database stats reads.
type statsStore interface {
	CountArticlesByStatus(ctx context.Context) (map[string]int, error)
	ListRuns(ctx context.Context, limit int) ([]db.Run, error)
	GetRun(ctx context.Context, runID uuid.UUID) (*db.Run, error)
}

// eventLog is the part of the events database stats reads.
type eventLog interface {
	CountByType(ctx context.Context) (map[events.Type]int, error)
	BySlug(ctx context.Context, slug string) ([]events.StoredEvent, error)
}

type statsOptions struct {
	Runs  int
	RunID uuid.UUID
	Slug  string
}

// statsReport is the JSON output of stats. Sections whose database is not
// configured are omitted.
type statsReport struct {
	ArticlesByStatus map[string]int       `json:"articles_by_status,omitempty"`
	Runs             []db.Run             `json:"runs,omitempty"`
	EventsByType     map[events.Type]int  `json:"events_by_type,omitempty"`
	Events           []events.StoredEvent `json:"events,omitempty"`
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(statsConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = statsDatabaseURL
	}
	if cmd.Flags().Changed("events-db") {
		cfg.EventsDB = statsEventsDB
	}
	cfg = finalizeConfig(cfg)

	if cfg.DatabaseURL == "" && cfg.EventsDB == "" {
		return fmt.Errorf("--db-url, DATABASE_URL or --events-db is required")
	}

	opts := statsOptions{Runs: statsRuns, Slug: statsSlug}
	if statsRunID != "" {
		opts.RunID, err = uuid.Parse(statsRunID)
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", statsRunID, err)
		}
	}

	ctx := cmd.Context()
	logger := newLogger(cmd.ErrOrStderr(), false)

	var store statsStore
	if cfg.DatabaseURL != "" {
		database, err := connectStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		store = database
	}

	var eventStore eventLog
	if cfg.EventsDB != "" {
		sqlite, err := events.NewSQLiteSink(cfg.EventsDB, logger)
		if err != nil {
			return fmt.Errorf("failed to open events database: %w", err)
		}
		defer func() {
			if err := sqlite.Close(); err != nil {
				logger.Warn("Failed to close events database", logfields.Error(err))
			}
		}()
		eventStore = sqlite
	}

	report, err := collectStats(ctx, store, eventStore, opts)
	if err != nil {
		return err
	}

	if statsJSON {
		return writeJSON(cmd.OutOrStdout(), "", report)
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if store != nil {
		printer.PrintStoreStats(report.ArticlesByStatus, report.Runs)
	}
	if eventStore != nil {
		printer.PrintEventStats(report.EventsByType, opts.Slug, report.Events)
	}
	return nil
}

// collectStats gathers the report from whichever of store and eventStore is
// set.
func collectStats(ctx context.Context, store statsStore, eventStore eventLog, opts statsOptions) (*statsReport, error) {
	report := &statsReport{}

	if store != nil {
		counts, err := store.CountArticlesByStatus(ctx)
		if err != nil {
			return nil, err
		}
		report.ArticlesByStatus = counts

		if opts.RunID != uuid.Nil {
			run, err := store.GetRun(ctx, opts.RunID)
			if err != nil {
				return nil, err
			}
			if run == nil {
				return nil, fmt.Errorf("run not found: %s", opts.RunID)
			}
			report.Runs = []db.Run{*run}
		} else {
			runs, err := store.ListRuns(ctx, opts.Runs)
			if err != nil {
				return nil, err
			}
			report.Runs = runs
		}
	}

	if eventStore != nil {
		counts, err := eventStore.CountByType(ctx)
		if err != nil {
			return nil, err
		}
		report.EventsByType = counts

		if opts.Slug != "" {
			history, err := eventStore.BySlug(ctx, opts.Slug)
			if err != nil {
				return nil, err
			}
			report.Events = history
		}
	}
	return report, nil
}
