package scheduler

import (
	"context"

	lifecycle "agri-auction/internal/lifecycleService"
	"agri-auction/utils"
)

// SweepJobName is the lock key shared by all instances
const SweepJobName = "auction-sweep"

// Sweeper is the part of the lifecycle service the sweep job needs
type Sweeper interface {
	SweepDue(ctx context.Context) (lifecycle.SweepReport, error)
}

// SweepJob activates and closes due auctions on every tick
func SweepJob(s Sweeper) Job {
	return func(ctx context.Context) error {
		report, err := s.SweepDue(ctx)
		if err != nil {
			return err
		}
		if report != (lifecycle.SweepReport{}) {
			utils.Info("auction sweep", map[string]any{
				"activated": report.Activated,
				"closed":    report.Closed,
				"failed":    report.Failed,
			})
		}
		return nil
	}
}
