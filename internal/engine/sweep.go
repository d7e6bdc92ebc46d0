package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dealradar/dealradar/internal/metrics"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// Job names recorded in job_runs.
const (
	JobSourceSweep    = "source_sweep"
	JobExpiredCleanup = "expired_cleanup"
)

// Source supplies candidate deals pulled from somewhere other than the
// inbound message stream, such as a merchant deals page.
type Source interface {
	Name() string
	Deals(ctx context.Context) ([]domain.CandidateDeal, error)
}

// RunSweep pulls candidates from every registered source, deduplicates
// the combined batch, and runs the survivors through the pipeline. A
// failing source is logged and skipped; the sweep continues with the
// rest. Each run is recorded in job_runs.
func (eng *Engine) RunSweep(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	runID := eng.beginJobRun(ctx, JobSourceSweep)

	var (
		all  []domain.CandidateDeal
		errs []error
	)
	for _, src := range eng.sources {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		deals, err := src.Deals(ctx)
		if err != nil {
			eng.log.Error("source sweep failed", "source", src.Name(), "error", err)
			errs = append(errs, fmt.Errorf("source %s: %w", src.Name(), err))
			continue
		}
		eng.log.Info("source swept", "source", src.Name(), "candidates", len(deals))
		all = append(all, deals...)
	}

	persisted, err := eng.ProcessBatch(ctx, all)
	if err != nil {
		errs = append(errs, err)
	}

	joined := errors.Join(errs...)
	eng.completeJobRun(ctx, runID, joined, persisted)

	eng.log.Info("sweep complete",
		"sources", len(eng.sources),
		"candidates", len(all),
		"persisted", persisted,
	)
	return joined
}

// RunCleanup deletes catalog rows whose offer window has passed.
func (eng *Engine) RunCleanup(ctx context.Context) error {
	runID := eng.beginJobRun(ctx, JobExpiredCleanup)

	n, err := eng.store.DeleteExpiredDeals(ctx)
	if err != nil {
		err = fmt.Errorf("deleting expired deals: %w", err)
		eng.completeJobRun(ctx, runID, err, 0)
		return err
	}

	metrics.ExpiredDealsDeletedTotal.Add(float64(n))
	eng.completeJobRun(ctx, runID, nil, n)
	eng.log.Info("expired deals deleted", "count", n)
	return nil
}

// beginJobRun opens a job_runs row. Bookkeeping failures never block
// the job itself; a failed insert yields an empty id that
// completeJobRun ignores.
func (eng *Engine) beginJobRun(ctx context.Context, jobName string) string {
	id, err := eng.store.InsertJobRun(ctx, jobName)
	if err != nil {
		eng.log.Warn("recording job run failed", "job", jobName, "error", err)
		return ""
	}
	return id
}

func (eng *Engine) completeJobRun(ctx context.Context, id string, jobErr error, rows int) {
	if id == "" {
		return
	}

	status, errText := domain.JobStatusCompleted, ""
	if jobErr != nil {
		status, errText = domain.JobStatusFailed, jobErr.Error()
	}
	if err := eng.store.CompleteJobRun(ctx, id, status, errText, rows); err != nil {
		eng.log.Warn("completing job run failed", "job_run_id", id, "error", err)
	}
}
