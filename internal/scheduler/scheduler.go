// Package scheduler runs batch generation periodically.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/jonathan/review-schedule/internal/logfields"
)

// Task is one scheduled unit of work.
type Task func(ctx context.Context) error

// Scheduler wraps gocron scheduler for managing periodic tasks.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewScheduler creates a new scheduler instance. A nil logger uses slog.Default().
func NewScheduler(logger *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		scheduler: s,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler")
	s.scheduler.Start()
}

// Stop cancels running tasks and waits for them to return.
func (s *Scheduler) Stop() error {
	s.logger.Info("Stopping scheduler")
	s.cancel()
	return s.scheduler.Shutdown()
}

// SchedulePeriodic runs task every interval. When immediate is set the first
// run starts as soon as the scheduler does. A run that is still going when
// the next one is due delays it instead of overlapping.
// Returns the job ID for later management.
func (s *Scheduler) SchedulePeriodic(name string, interval time.Duration, immediate bool, task Task) (string, error) {
	if interval <= 0 {
		return "", fmt.Errorf("interval must be positive, got %s", interval)
	}

	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if immediate {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.execute, name, task),
		opts...,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create periodic job: %w", err)
	}

	return job.ID().String(), nil
}

// execute is called by gocron to run a scheduled task.
func (s *Scheduler) execute(name string, task Task) {
	started := time.Now()
	s.logger.Info("Executing scheduled task", slog.String("task", name))

	if err := task(s.ctx); err != nil {
		s.logger.Error("Scheduled task failed",
			slog.String("task", name),
			logfields.Error(err))
		return
	}

	s.logger.Info("Scheduled task finished",
		slog.String("task", name),
		logfields.DurationMS(float64(time.Since(started).Milliseconds())))
}
