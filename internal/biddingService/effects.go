package bidding

import (
	"context"
	"fmt"
	"time"

	"agri-auction/internal/external"
	"agri-auction/internal/metrics"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

type fundsMove struct {
	userID string
	amount decimal.Decimal
}

// sideEffects collects wallet and notification calls made inside a transaction.
// They run only after commit, and their failures never undo the bid.
type sideEffects struct {
	holds    []fundsMove
	releases []fundsMove
	events   []external.Event
}

func (fx *sideEffects) accepted(bid models.Bid, quantity decimal.Decimal) {
	fx.holds = append(fx.holds, fundsMove{userID: bid.UserID, amount: bid.Amount.Mul(quantity)})
}

func (fx *sideEffects) outbid(prev models.Bid, quantity decimal.Decimal, byUser string, at time.Time) {
	fx.releases = append(fx.releases, fundsMove{userID: prev.UserID, amount: prev.Amount.Mul(quantity)})
	if prev.UserID == byUser {
		return
	}
	amount := prev.Amount
	fx.events = append(fx.events, external.Event{
		Type:       external.EventBidOutbid,
		AuctionID:  prev.AuctionID,
		LotID:      prev.LotID,
		UserID:     prev.UserID,
		Amount:     &amount,
		Message:    fmt.Sprintf("your bid of %s was outbid", prev.Amount.StringFixed(2)),
		OccurredAt: at,
	})
}

// netMoves folds holds and releases into one signed move per user, in first-seen order.
// A bid placed and outbid within the same request nets to zero, and a leader who
// re-takes the lead only needs the difference held.
func (fx *sideEffects) netMoves() []fundsMove {
	var order []string
	net := make(map[string]decimal.Decimal)
	add := func(userID string, amount decimal.Decimal) {
		if _, seen := net[userID]; !seen {
			order = append(order, userID)
		}
		net[userID] = net[userID].Add(amount)
	}
	for _, h := range fx.holds {
		add(h.userID, h.amount)
	}
	for _, r := range fx.releases {
		add(r.userID, r.amount.Neg())
	}

	moves := make([]fundsMove, 0, len(order))
	for _, userID := range order {
		moves = append(moves, fundsMove{userID: userID, amount: net[userID]})
	}
	return moves
}

// applyEffects settles the net wallet move per user, then sends notifications, and
// returns a description of each failure.
func (s *BiddingService) applyEffects(ctx context.Context, fx sideEffects) []string {
	var warnings []string
	warn := func(collaborator, action string, userID string, err error) {
		metrics.SideEffectFailures.WithLabelValues(collaborator).Inc()
		utils.Warn(action+" failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		warnings = append(warnings, fmt.Sprintf("%s for %s: %v", action, userID, err))
	}

	if s.wallet != nil {
		for _, m := range fx.netMoves() {
			switch {
			case m.amount.IsPositive():
				if err := s.wallet.HoldFunds(ctx, m.userID, m.amount); err != nil {
					warn("wallet", "hold funds", m.userID, err)
				}
			case m.amount.IsNegative():
				if err := s.wallet.ReleaseHold(ctx, m.userID, m.amount.Neg()); err != nil {
					warn("wallet", "release hold", m.userID, err)
				}
			}
		}
	}

	if s.notifier != nil {
		for _, e := range fx.events {
			if err := s.notifier.Notify(ctx, e); err != nil {
				warn("notifier", "notify "+string(e.Type), e.UserID, err)
			}
		}
	}
	return warnings
}
