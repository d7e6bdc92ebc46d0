package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/dealradar/dealradar/internal/store"
)

// staleJobAge is how long a job_runs row may stay 'running' before a
// starting scheduler marks it crashed.
const staleJobAge = time.Hour

// Scheduler runs the periodic source sweep and expired-deal cleanup.
// Jobs are guarded by a store-backed lock so that only one instance
// runs a given job at a time.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	store   store.Store
	log     *slog.Logger
	holder  string
	lockTTL time.Duration
}

// NewScheduler creates a Scheduler driving the engine's sweep and
// cleanup jobs at the given intervals.
func NewScheduler(
	eng *Engine,
	s store.Store,
	sweepInterval time.Duration,
	cleanupInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	sch := &Scheduler{
		cron:    cron.New(),
		engine:  eng,
		store:   s,
		log:     log,
		holder:  fmt.Sprintf("%s-%s", host, uuid.NewString()[:8]),
		lockTTL: 2 * sweepInterval,
	}

	if _, err := sch.cron.AddFunc(
		"@every "+sweepInterval.String(),
		sch.runSweep,
	); err != nil {
		return nil, err
	}

	if _, err := sch.cron.AddFunc(
		"@every "+cleanupInterval.String(),
		sch.runCleanup,
	); err != nil {
		return nil, err
	}

	return sch, nil
}

// Start recovers stale job rows left by a crashed instance, then
// begins running scheduled tasks.
func (s *Scheduler) Start() {
	recovered, err := s.store.RecoverStaleJobRuns(context.Background(), staleJobAge)
	if err != nil {
		s.log.Warn("stale job recovery failed", "error", err)
	} else if recovered > 0 {
		s.log.Info("recovered stale job runs", "count", recovered)
	}

	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
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

func (s *Scheduler) runSweep() {
	s.withLock(context.Background(), JobSourceSweep, s.engine.RunSweep)
}

func (s *Scheduler) runCleanup() {
	s.withLock(context.Background(), JobExpiredCleanup, s.engine.RunCleanup)
}

// withLock runs fn only if this instance holds the job's lock. A held
// lock elsewhere is not an error; the other instance is doing the work.
func (s *Scheduler) withLock(ctx context.Context, jobName string, fn func(context.Context) error) {
	ok, err := s.store.AcquireSchedulerLock(ctx, jobName, s.holder, s.lockTTL)
	if err != nil {
		s.log.Error("acquiring scheduler lock failed", "job", jobName, "error", err)
		return
	}
	if !ok {
		s.log.Debug("scheduler lock held elsewhere, skipping", "job", jobName)
		return
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(ctx, jobName, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock failed", "job", jobName, "error", err)
		}
	}()

	s.log.Info("scheduled job starting", "job", jobName)
	if err := fn(ctx); err != nil {
		s.log.Error("scheduled job failed", "job", jobName, "error", err)
	}
}
