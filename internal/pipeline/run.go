// Package pipeline provides the batch orchestration that turns a vehicle file
// into stored review schedule articles.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/db"
	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/generation"
	"github.com/jonathan/review-schedule/internal/ingestion"
	"github.com/jonathan/review-schedule/internal/logfields"
	"github.com/jonathan/review-schedule/internal/metrics"
	"github.com/jonathan/review-schedule/internal/observability"
	"github.com/jonathan/review-schedule/internal/pipeline/steps"
	"github.com/jonathan/review-schedule/internal/schemas"
	"github.com/jonathan/review-schedule/internal/types"
	"github.com/jonathan/review-schedule/internal/variation"
)

// DefaultConcurrency is the worker count used when RunOptions leaves it unset.
const DefaultConcurrency = 4

// Per-article outcomes
const (
	OutcomeGenerated = "generated"
	OutcomeRejected  = "rejected"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Calls are
// serialized even though articles are generated concurrently.
type ProgressCallback func(event ProgressEvent)

// ArticleStore persists generated articles. *db.DB implements it.
type ArticleStore interface {
	UpsertArticle(ctx context.Context, doc article.StorageDocument, runID uuid.UUID) error
	ArticleExistsWithHash(ctx context.Context, slug, contentHash string) (bool, error)
}

// RunTracker records batch runs. A store that also implements RunTracker gets
// one run row per Run call.
type RunTracker interface {
	CreateRun(ctx context.Context, sourcePath, sourceHash string) (uuid.UUID, error)
	CompleteRun(ctx context.Context, runID uuid.UUID, status string, counts db.RunCounts) error
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	VehiclesCSV    string
	Vehicles       []types.VehicleProfile // Used instead of VehiclesCSV when set
	Filter         ingestion.Filter
	Concurrency    int
	MinQuality     int
	ContentVersion string
	OutputDir      string
	Store          ArticleStore
	SkipUnchanged  bool
	ValidateSchema bool
	Selector       *variation.Selector
	Sink           events.Sink
	Metrics        metrics.Recorder
	Logger         *slog.Logger
	Out            io.Writer
	Verbose        bool
	OnProgress     ProgressCallback
}

// ArticleResult is the outcome for one vehicle.
type ArticleResult struct {
	Vehicle      string `json:"vehicle"`
	Slug         string `json:"slug,omitempty"`
	Outcome      string `json:"outcome"`
	QualityScore int    `json:"quality_score"`
	HighQuality  bool   `json:"high_quality"`
	Path         string `json:"path,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Summary holds the tallies of a run.
type Summary struct {
	RunID        string          `json:"run_id,omitempty"`
	Source       string          `json:"source,omitempty"`
	Loaded       int             `json:"loaded"`
	Selected     int             `json:"selected"`
	Generated    int             `json:"generated"`
	Rejected     int             `json:"rejected"`
	Unchanged    int             `json:"unchanged"`
	Failed       int             `json:"failed"`
	HighQuality  int             `json:"high_quality"`
	AverageScore float64         `json:"average_score"`
	Duration     time.Duration   `json:"duration"`
	Articles     []ArticleResult `json:"articles"`
}

// NewSelector creates a variation selector that reports history resets to rec.
func NewSelector(rec metrics.Recorder, logger *slog.Logger) *variation.Selector {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return variation.New(variation.WithResetHook(func(k variation.Key) {
		rec.IncVariationReset(string(k.Field))
		logger.Debug("Variation history reset", slog.String("key", k.String()))
	}))
}

// runner carries the per-run collaborators shared by the workers.
type runner struct {
	opts       RunOptions
	runID      uuid.UUID
	assembler  *article.Assembler
	logger     *slog.Logger
	rec        metrics.Recorder
	out        io.Writer
	printer    *observability.Printer
	progressMu sync.Mutex
}

func (r *runner) emitProgress(step, message string, content any) {
	if r.opts.OnProgress == nil {
		return
	}
	ev := ProgressEvent{
		Step:     step,
		Category: steps.StepRegistry[step].Category,
		Message:  message,
		Content:  content,
	}
	if r.runID != uuid.Nil {
		ev.RunID = r.runID.String()
	}
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.opts.OnProgress(ev)
}

//nolint:errcheck // progress output is best effort
func (r *runner) printStep(step string) {
	fmt.Fprintf(r.out, "Step %d/%d: %s...\n", steps.Position(step), len(steps.StepRegistry), steps.StepRegistry[step].Description)
}

// Run loads the vehicles, generates one article per selected vehicle with
// Concurrency workers sharing one variation selector, rejects articles below
// MinQuality and stores the rest as JSON files and/or in Store.
func Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	started := time.Now()
	r := newRunner(opts)

	r.printStep(steps.LoadVehicles)
	vehicles, meta, err := r.loadVehicles()
	if err != nil {
		return nil, err
	}
	summary := &Summary{Loaded: len(vehicles)}
	if meta != nil {
		summary.Source = meta.Path
		if r.opts.Verbose {
			r.printer.PrintLoadMetadata(meta)
		}
	}
	r.emitProgress(steps.LoadVehicles, fmt.Sprintf("Loaded %d vehicles", len(vehicles)), meta)

	r.printStep(steps.FilterVehicles)
	selected := r.opts.Filter.Apply(vehicles)
	summary.Selected = len(selected)
	r.emitProgress(steps.FilterVehicles, fmt.Sprintf("Selected %d of %d vehicles", len(selected), len(vehicles)), nil)

	tracker, _ := r.opts.Store.(RunTracker)
	if tracker != nil {
		sourcePath, sourceHash := "inline", ""
		if meta != nil {
			sourcePath, sourceHash = meta.Path, meta.Hash
		}
		runID, err := tracker.CreateRun(ctx, sourcePath, sourceHash)
		if err != nil {
			r.logger.Warn("Failed to create run", logfields.Error(err))
		} else {
			r.runID = runID
			summary.RunID = runID.String()
			r.logger = r.logger.With(logfields.RunID(summary.RunID))
		}
	}

	r.printStep(steps.Generate)
	results, runErr := r.generateAll(ctx, selected)
	summary.Articles = results
	summarize(summary, results)
	summary.Duration = time.Since(started)

	r.printStep(steps.Complete)
	if tracker != nil && r.runID != uuid.Nil {
		status := db.RunStatusCompleted
		if runErr != nil {
			status = db.RunStatusFailed
		}
		// The run row is closed even when ctx was cancelled.
		completeCtx := context.WithoutCancel(ctx)
		counts := db.RunCounts{Generated: summary.Generated, Rejected: summary.Rejected, Failed: summary.Failed}
		if err := tracker.CompleteRun(completeCtx, r.runID, status, counts); err != nil {
			r.logger.Warn("Failed to complete run", logfields.Error(err))
		}
	}
	if r.opts.Verbose {
		r.printer.PrintRunSummary(summary.Generated, summary.Rejected, summary.Unchanged, summary.Failed, summary.HighQuality, summary.AverageScore)
		r.printer.PrintVariationStats(r.opts.Selector.UsageStats())
	}
	r.emitProgress(steps.Complete,
		fmt.Sprintf("Generated %d, rejected %d, unchanged %d, failed %d", summary.Generated, summary.Rejected, summary.Unchanged, summary.Failed),
		summary)

	r.logger.Info("Batch run finished",
		slog.Int("generated", summary.Generated),
		slog.Int("rejected", summary.Rejected),
		slog.Int("unchanged", summary.Unchanged),
		slog.Int("failed", summary.Failed),
		logfields.DurationMS(float64(summary.Duration.Milliseconds())))

	if runErr != nil {
		return summary, runErr
	}
	return summary, nil
}

func newRunner(opts RunOptions) *runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NoopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Sink == nil {
		opts.Sink = events.NopSink{}
	}
	if opts.ContentVersion == "" {
		opts.ContentVersion = article.DefaultContentVersion
	}
	if opts.Selector == nil {
		opts.Selector = NewSelector(opts.Metrics, opts.Logger)
	}

	r := &runner{
		opts:    opts,
		logger:  opts.Logger,
		rec:     opts.Metrics,
		out:     opts.Out,
		printer: observability.NewPrinter(opts.Out),
	}

	generator := generation.New(generation.WithDiagnostics(func(f generation.SectionFailure) {
		r.rec.IncSectionFallback(string(f.Section))
		r.logger.Warn("Section fell back to default content",
			logfields.Section(string(f.Section)),
			logfields.Provider(f.Provider),
			logfields.Vehicle(f.Vehicle),
			logfields.Error(f.Err))
	}))
	r.assembler = article.NewAssembler(
		article.WithSelector(opts.Selector),
		article.WithGenerator(generator),
		article.WithSink(opts.Sink),
		article.WithContentVersion(opts.ContentVersion),
		article.WithDeferredCreation(),
	)
	return r
}

func (r *runner) loadVehicles() ([]types.VehicleProfile, *ingestion.Metadata, error) {
	if r.opts.Vehicles != nil {
		return r.opts.Vehicles, nil, nil
	}
	if r.opts.VehiclesCSV == "" {
		return nil, nil, errors.New("no vehicle source configured")
	}
	result, err := ingestion.LoadVehiclesCSV(r.opts.VehiclesCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("loading vehicles failed: %w", err)
	}
	if result.Metadata.Skipped > 0 {
		r.logger.Warn("Skipped vehicle rows without make or model",
			logfields.Path(r.opts.VehiclesCSV),
			logfields.Count(result.Metadata.Skipped))
	}
	return result.Vehicles, result.Metadata, nil
}

// generateAll processes every vehicle. Per-article failures are recorded in
// the results; only context cancellation stops the batch.
func (r *runner) generateAll(ctx context.Context, vehicles []types.VehicleProfile) ([]ArticleResult, error) {
	results := make([]ArticleResult, len(vehicles))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, v := range vehicles {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.process(gCtx, v)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	// Vehicles never reached because of cancellation are reported as failed.
	for i := range results {
		if results[i].Outcome == "" {
			results[i] = ArticleResult{
				Vehicle: vehicles[i].Identifier(),
				Outcome: OutcomeFailed,
				Error:   "cancelled",
			}
		}
	}
	return results, err
}

// process generates, validates and stores one article.
func (r *runner) process(ctx context.Context, v types.VehicleProfile) ArticleResult {
	res := ArticleResult{Vehicle: v.Identifier()}
	logger := r.logger.With(logfields.Vehicle(res.Vehicle))

	record, err := r.assembler.Create(ctx, v)
	if err != nil {
		r.rec.IncArticleRejected(metrics.ReasonInvalid)
		logger.Warn("Invalid vehicle profile", logfields.Error(err))
		res.Outcome, res.Error = OutcomeFailed, err.Error()
		return res
	}

	res.Slug = record.Slug
	res.QualityScore = record.Quality.Overall
	res.HighQuality = record.IsHighQuality()
	logger = logger.With(logfields.Slug(record.Slug), logfields.QualityScore(res.QualityScore))
	r.rec.ObserveQualityScore(res.QualityScore)

	if res.QualityScore < r.opts.MinQuality {
		r.rec.IncArticleRejected(metrics.ReasonLowQuality)
		logger.Info("Article below minimum quality", slog.Int("min_quality", r.opts.MinQuality))
		res.Outcome = OutcomeRejected
		r.emitProgress(steps.Validate, fmt.Sprintf("Rejected %s (score %d)", record.Slug, res.QualityScore), res)
		return res
	}

	doc := record.StorageDocument()
	if r.opts.ValidateSchema {
		if err := schemas.ValidateValue(schemas.ArticleDocument, doc); err != nil {
			r.rec.IncArticleRejected(metrics.ReasonInvalid)
			logger.Warn("Article document failed schema validation", logfields.Error(err))
			res.Outcome, res.Error = OutcomeFailed, err.Error()
			return res
		}
	}

	if r.opts.Store != nil && r.opts.SkipUnchanged {
		exists, err := r.opts.Store.ArticleExistsWithHash(ctx, doc.ArticleSlug, doc.ContentHash)
		if err != nil {
			logger.Warn("Failed to check stored article", logfields.Error(err))
		} else if exists {
			r.rec.IncArticleRejected(metrics.ReasonUnchanged)
			logger.Debug("Article unchanged since last run")
			res.Outcome = OutcomeUnchanged
			return res
		}
	}

	if r.opts.OutputDir != "" {
		path, err := writeRecord(r.opts.OutputDir, record)
		if err != nil {
			r.rec.IncArticleRejected(metrics.ReasonPersistence)
			logger.Error("Failed to write article file", logfields.Error(err))
			res.Outcome, res.Error = OutcomeFailed, err.Error()
			return res
		}
		res.Path = path
	}

	if r.opts.Store != nil {
		if err := r.opts.Store.UpsertArticle(ctx, doc, r.runID); err != nil {
			r.rec.IncArticleRejected(metrics.ReasonPersistence)
			logger.Error("Failed to store article", logfields.Error(err))
			res.Outcome, res.Error = OutcomeFailed, err.Error()
			return res
		}
	}

	r.rec.IncArticleGenerated(string(record.Vehicle.VehicleType))
	logger.Info("Article generated", logfields.Template(record.Template))
	res.Outcome = OutcomeGenerated
	record.EmitCreated(ctx)
	if r.opts.Verbose {
		r.printer.PrintArticle(record)
	}
	r.emitProgress(steps.Persist, fmt.Sprintf("Generated %s (score %d)", record.Slug, res.QualityScore), res)
	return res
}

// writeRecord stores the full record as <dir>/<slug>.json.
func writeRecord(dir string, record *article.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := record.ExportJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal article: %w", err)
	}
	path := filepath.Join(dir, record.Slug+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write article: %w", err)
	}
	return path, nil
}

// summarize fills the tallies from results. The average covers every scored
// article, accepted or not.
func summarize(s *Summary, results []ArticleResult) {
	total, scored := 0, 0
	for _, res := range results {
		switch res.Outcome {
		case OutcomeGenerated:
			s.Generated++
			if res.HighQuality {
				s.HighQuality++
			}
		case OutcomeRejected:
			s.Rejected++
		case OutcomeUnchanged:
			s.Unchanged++
		case OutcomeFailed:
			s.Failed++
		}
		if res.Slug != "" {
			total += res.QualityScore
			scored++
		}
	}
	if scored > 0 {
		s.AverageScore = float64(total) / float64(scored)
	}
}
