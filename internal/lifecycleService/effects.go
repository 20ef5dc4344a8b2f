package lifecycle

import (
	"context"
	"fmt"

	"agri-auction/internal/external"
	"agri-auction/internal/metrics"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

type release struct {
	userID string
	amount decimal.Decimal
}

// effects are wallet and notification calls deferred until the transition commits
type effects struct {
	releases []release
	events   []external.Event
}

func (fx *effects) release(userID string, amount decimal.Decimal) {
	fx.releases = append(fx.releases, release{userID: userID, amount: amount})
}

func (fx *effects) notify(e external.Event) {
	fx.events = append(fx.events, e)
}

func (s *LifecycleService) apply(ctx context.Context, fx effects) []string {
	var warnings []string
	if s.wallet != nil {
		for _, r := range fx.releases {
			if err := s.wallet.ReleaseHold(ctx, r.userID, r.amount); err != nil {
				metrics.SideEffectFailures.WithLabelValues("wallet").Inc()
				utils.Warn("release hold failed", map[string]any{"user_id": r.userID, "error": err.Error()})
				warnings = append(warnings, fmt.Sprintf("release hold for %s: %v", r.userID, err))
			}
		}
	}
	if s.notifier != nil {
		for _, e := range fx.events {
			if err := s.notifier.Notify(ctx, e); err != nil {
				metrics.SideEffectFailures.WithLabelValues("notifier").Inc()
				utils.Warn("notification failed", map[string]any{
					"event":      e.Type,
					"auction_id": e.AuctionID,
					"user_id":    e.UserID,
					"error":      err.Error(),
				})
				warnings = append(warnings, fmt.Sprintf("notify %s for %s: %v", e.Type, e.UserID, err))
			}
		}
	}
	return warnings
}
