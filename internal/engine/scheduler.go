package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhartmann/carwatch/internal/metrics"
	"github.com/jhartmann/carwatch/internal/store"
)

const (
	jobScoring    = "scoring"
	jobDeactivate = "deactivate"

	// Job runs still marked running after this long belong to a crashed
	// process and are recovered at startup.
	staleJobAge = 2 * time.Hour
)

// Scheduler runs periodic scoring and deactivation jobs. Each job takes a
// database advisory lock first, so multiple instances can run the scheduler
// without doubling up work.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
	holder string

	deactivateAfter time.Duration

	scoringEntryID    cron.EntryID
	deactivateEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that scores every scoringInterval and
// deactivates stale listings every deactivateInterval.
func NewScheduler(
	eng *Engine,
	s store.Store,
	scoringInterval time.Duration,
	deactivateInterval time.Duration,
	deactivateAfter time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	sched := &Scheduler{
		cron:            cron.New(),
		engine:          eng,
		store:           s,
		log:             log,
		holder:          fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		deactivateAfter: deactivateAfter,
	}

	sched.scoringEntryID, err = sched.cron.AddFunc(
		"@every "+scoringInterval.String(),
		sched.runScoring,
	)
	if err != nil {
		return nil, err
	}

	sched.deactivateEntryID, err = sched.cron.AddFunc(
		"@every "+deactivateInterval.String(),
		sched.runDeactivate,
	)
	if err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next planned run of each job.
func (s *Scheduler) SyncNextRunTimestamps() {
	if e := s.cron.Entry(s.scoringEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextScoringTimestamp.Set(float64(e.Next.Unix()))
	}
	if e := s.cron.Entry(s.deactivateEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextDeactivateTimestamp.Set(float64(e.Next.Unix()))
	}
}

// RecoverStaleJobRuns marks job runs abandoned by a crashed process as
// crashed. Called once at startup before Start.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobAge)
	if err != nil {
		s.log.Error("recovering stale job runs failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("recovered stale job runs", "count", n)
	}
}

func (s *Scheduler) runScoring() {
	ctx := context.Background()
	defer s.SyncNextRunTimestamps()

	err := s.runJob(ctx, jobScoring, staleJobAge, func(ctx context.Context) (int, error) {
		summary, err := s.engine.RunScoring(ctx, Scope{})
		if summary == nil {
			return 0, err
		}
		return summary.Scored, err
	})
	if err != nil {
		s.log.Error("scheduled scoring failed", "error", err)
	}
}

func (s *Scheduler) runDeactivate() {
	ctx := context.Background()
	defer s.SyncNextRunTimestamps()

	err := s.runJob(ctx, jobDeactivate, staleJobAge, func(ctx context.Context) (int, error) {
		return s.engine.RunDeactivation(ctx, "", s.deactivateAfter)
	})
	if err != nil {
		s.log.Error("scheduled deactivation failed", "error", err)
	}
}

// runJob wraps fn with lock acquisition and job run bookkeeping. A held lock
// means another instance is already running the job; that is not an error.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	lockTTL time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, lockTTL)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !acquired {
		s.log.Info("job lock held elsewhere, skipping", "job", name)
		return nil
	}
	defer func() {
		if relErr := s.store.ReleaseSchedulerLock(ctx, name, s.holder); relErr != nil {
			s.log.Error("releasing job lock failed", "job", name, "error", relErr)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return fmt.Errorf("inserting job run for %s: %w", name, err)
	}

	rows, jobErr := fn(ctx)

	status, errText := "succeeded", ""
	if jobErr != nil {
		status, errText = "failed", jobErr.Error()
	}
	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Error("completing job run failed", "job", name, "error", err)
	}

	return jobErr
}
