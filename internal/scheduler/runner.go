// Package scheduler runs periodic jobs such as the auction sweep on a cron schedule,
// optionally guarded by a distributed lock so only one instance runs each job.
package scheduler

import (
	"context"
	"time"

	"agri-auction/internal/metrics"
	"agri-auction/utils"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled unit of work
type Job func(ctx context.Context) error

type Runner struct {
	cron    *cron.Cron
	baseCtx context.Context
	locker  Locker
	timeout time.Duration
}

type Option func(*Runner)

// WithLocker makes every job take a lock named after it first
func WithLocker(l Locker) Option {
	return func(r *Runner) { r.locker = l }
}

// WithJobTimeout bounds a single run
func WithJobTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// New creates a runner whose specs include a seconds field
func New(baseCtx context.Context, opts ...Option) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	r := &Runner{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		baseCtx: baseCtx,
		timeout: time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add schedules job under name. Overlapping runs of the same job are skipped.
func (r *Runner) Add(name, spec string, job Job) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() { r.run(name, job) })
}

// run executes one tick; it returns false when the tick was skipped
func (r *Runner) run(name string, job Job) bool {
	ctx, cancel := context.WithTimeout(r.baseCtx, r.timeout)
	defer cancel()

	if r.locker != nil {
		unlock, ok, err := r.locker.TryLock(ctx, name)
		if err != nil {
			metrics.SweepRuns.WithLabelValues("error").Inc()
			utils.Error("scheduler lock failed", map[string]any{"job": name, "error": err.Error()})
			return false
		}
		if !ok {
			metrics.SweepRuns.WithLabelValues("skipped").Inc()
			utils.Debug("scheduler job held elsewhere", map[string]any{"job": name})
			return false
		}
		defer unlock()
	}

	start := time.Now()
	if err := job(ctx); err != nil {
		metrics.SweepRuns.WithLabelValues("error").Inc()
		utils.Error("scheduled job failed", map[string]any{"job": name, "error": err.Error()})
		return true
	}
	metrics.SweepRuns.WithLabelValues("ok").Inc()
	utils.Debug("scheduled job finished", map[string]any{"job": name, "latency": time.Since(start).String()})
	return true
}

func (r *Runner) Start() {
	utils.Info("scheduler started", map[string]any{"jobs": len(r.cron.Entries())})
	r.cron.Start()
}

// Stop waits for running jobs to finish
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	utils.Info("scheduler stopped", nil)
}
