package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/db"
	"github.com/jonathan/review-schedule/internal/events"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish stored draft articles",
	Long: `Publishes a stored article by slug, or every draft whose quality score reaches
--min-quality. Requires a database (--db-url or DATABASE_URL).`,
	RunE: runPublish,
}

var (
	publishConfigPath  string
	publishDatabaseURL string
	publishEventsDB    string
	publishSlug        string
	publishMinQuality  int
	publishLimit       int
	publishDryRun      bool
	publishVerbose     bool
)

func init() {
	publishCmd.Flags().StringVar(&publishConfigPath, "config", "", "Path to config file (values can be overridden by other flags)")
	publishCmd.Flags().StringVar(&publishDatabaseURL, "db-url", "", "PostgreSQL connection URL (or set DATABASE_URL)")
	publishCmd.Flags().StringVar(&publishEventsDB, "events-db", "", "SQLite file receiving article events")
	publishCmd.Flags().StringVarP(&publishSlug, "slug", "s", "", "Publish only this article")
	publishCmd.Flags().IntVar(&publishMinQuality, "min-quality", 0, "Minimum quality score of drafts to publish (default 80)")
	publishCmd.Flags().IntVar(&publishLimit, "limit", 100, "Maximum number of drafts to publish")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "List the articles that would be published without changing them")
	publishCmd.Flags().BoolVarP(&publishVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(publishCmd)
}

// articleStore is the part of the database publish needs.
type articleStore interface {
	GetArticleBySlug(ctx context.Context, slug string) (*article.StorageDocument, error)
	ListArticles(ctx context.Context, filters db.ArticleFilters) ([]db.ArticleSummary, error)
	UpdateArticleStatus(ctx context.Context, slug string, status article.Status) error
}

type publishOptions struct {
	Slug       string
	MinQuality int
	Limit      int
	DryRun     bool
}

// publishResult reports what happened to one article.
type publishResult struct {
	Slug         string `json:"slug"`
	QualityScore int    `json:"quality_score"`
	Published    bool   `json:"published"`
	Reason       string `json:"reason,omitempty"`
}

func runPublish(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(publishConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = publishDatabaseURL
	}
	if cmd.Flags().Changed("events-db") {
		cfg.EventsDB = publishEventsDB
	}
	if cmd.Flags().Changed("min-quality") {
		cfg.PublishMinQuality = publishMinQuality
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = publishVerbose
	}
	cfg = finalizeConfig(cfg)

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url flag or DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	sink, closeSink, err := openSink(cfg.EventsDB, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	database, err := connectStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	results, err := publishArticles(ctx, database, sink, publishOptions{
		Slug:       publishSlug,
		MinQuality: cfg.PublishMinQuality,
		Limit:      publishLimit,
		DryRun:     publishDryRun,
	})
	if err != nil {
		return err
	}

	published := 0
	for _, r := range results {
		if r.Published {
			published++
		}
	}
	logger.Info("Publish finished", "published", published, "considered", len(results))
	return writeJSON(cmd.OutOrStdout(), "", results)
}

// publishArticles publishes opts.Slug, or every draft at or above
// opts.MinQuality. Each publication emits an event to sink.
func publishArticles(ctx context.Context, store articleStore, sink events.Sink, opts publishOptions) ([]publishResult, error) {
	slugs := []string{opts.Slug}
	if opts.Slug == "" {
		drafts, err := store.ListArticles(ctx, db.ArticleFilters{
			Status:     string(article.StatusDraft),
			MinQuality: opts.MinQuality,
			Limit:      opts.Limit,
		})
		if err != nil {
			return nil, err
		}
		slugs = slugs[:0]
		for _, d := range drafts {
			slugs = append(slugs, d.Slug)
		}
	}

	results := make([]publishResult, 0, len(slugs))
	for _, slug := range slugs {
		doc, err := store.GetArticleBySlug(ctx, slug)
		if err != nil {
			return results, fmt.Errorf("failed to load article %s: %w", slug, err)
		}
		if doc == nil {
			return results, fmt.Errorf("%w: %s", db.ErrArticleNotFound, slug)
		}

		record := article.FromDocument(doc.Document)
		result := publishResult{Slug: record.Slug, QualityScore: record.Quality.Overall}

		switch {
		case record.Status == article.StatusPublished:
			result.Reason = "already published"
		case opts.DryRun:
			result.Reason = "dry run"
		default:
			record.SetSink(sink)
			if record.Publish(ctx) {
				if err := store.UpdateArticleStatus(ctx, record.Slug, record.Status); err != nil {
					return results, fmt.Errorf("failed to publish article %s: %w", slug, err)
				}
				result.Published = true
			}
		}
		results = append(results, result)
	}
	return results, nil
}
