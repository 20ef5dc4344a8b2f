// Package lifecycle moves auctions through UPCOMING, ACTIVE and the terminal
// CLOSED or CANCELLED states. Every transition is keyed on the status read under
// the auction lock, so a transition that already happened is never repeated.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/clock"
	"agri-auction/internal/external"
	"agri-auction/internal/metrics"
	"agri-auction/internal/models"
	"agri-auction/internal/repository"
	settlement "agri-auction/internal/settlementService"
	"agri-auction/utils"
)

const defaultBatchSize = 100

type LifecycleService struct {
	repo        repository.AuctionDB
	settlements *settlement.SettlementService
	wallet      external.Wallet
	notifier    external.Notifier
	clock       clock.Clock
	batchSize   int
}

type Option func(*LifecycleService)

func WithClock(c clock.Clock) Option {
	return func(s *LifecycleService) { s.clock = c }
}

func WithWallet(w external.Wallet) Option {
	return func(s *LifecycleService) { s.wallet = w }
}

func WithNotifier(n external.Notifier) Option {
	return func(s *LifecycleService) { s.notifier = n }
}

// WithBatchSize caps how many due auctions one sweep handles
func WithBatchSize(n int) Option {
	return func(s *LifecycleService) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

func NewLifecycleService(repo repository.AuctionDB, settlements *settlement.SettlementService, opts ...Option) *LifecycleService {
	s := &LifecycleService{
		repo:        repo,
		settlements: settlements,
		notifier:    external.LogNotifier{},
		clock:       clock.NewSystem(),
		batchSize:   defaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Actor is who asks for a transition
type Actor struct {
	UserID  string
	IsAdmin bool
}

// Activate opens an UPCOMING auction whose start time has passed. Activating an
// ACTIVE auction is a no-op.
func (s *LifecycleService) Activate(ctx context.Context, auctionID string) (models.Auction, error) {
	var auction models.Auction
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("lifecycle: failed to load auction %s: %w", auctionID, err)
		}
		auction = a
		if a.Status == models.AuctionStatusActive {
			return nil
		}
		auction, err = s.activate(ctx, a, s.clock.Now())
		return err
	})
	if err != nil {
		return models.Auction{}, err
	}
	return auction, nil
}

func (s *LifecycleService) activate(ctx context.Context, a models.Auction, now time.Time) (models.Auction, error) {
	if !a.Status.CanTransitionTo(models.AuctionStatusActive) {
		return a, fmt.Errorf("lifecycle: %w - %s to %s", biddingerrors.ErrInvalidTransition, a.Status, models.AuctionStatusActive)
	}
	if now.Before(a.StartTime) {
		return a, fmt.Errorf("lifecycle: %w - starts at %s", biddingerrors.ErrAuctionNotActive, a.StartTime.Format(time.RFC3339))
	}
	a.Status = models.AuctionStatusActive
	a.UpdatedAt = now
	if err := s.repo.UpdateAuction(ctx, a); err != nil {
		return a, fmt.Errorf("lifecycle: failed to activate auction %s: %w", a.AuctionID, err)
	}
	metrics.AuctionTransitions.WithLabelValues(string(models.AuctionStatusActive)).Inc()
	return a, nil
}

// CloseResult is the closed auction and the settlements the close created
type CloseResult struct {
	Auction       models.Auction             `json:"auction"`
	Settlements   []models.AuctionSettlement `json:"settlements"`
	AlreadyClosed bool                       `json:"already_closed"`
	Warnings      []string                   `json:"warnings,omitempty"`
}

// Close ends an auction whose end time has passed. The standing bid of each scope
// that meets its reserve becomes WINNING_BID and gets a settlement; scopes without
// a qualifying bid end UNSOLD. Closing a CLOSED auction changes nothing.
func (s *LifecycleService) Close(ctx context.Context, auctionID string) (CloseResult, error) {
	var (
		res CloseResult
		fx  effects
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("lifecycle: failed to load auction %s: %w", auctionID, err)
		}
		if a.Status == models.AuctionStatusClosed {
			res.Auction = a
			res.AlreadyClosed = true
			return nil
		}

		now := s.clock.Now()
		if now.Before(a.EndTime) {
			return fmt.Errorf("lifecycle: %w - auction ends at %s", biddingerrors.ErrInvalidTransition, a.EndTime.Format(time.RFC3339))
		}
		if a.Status == models.AuctionStatusUpcoming {
			// never saw a sweep or a bid while open
			if a, err = s.activate(ctx, a, now); err != nil {
				return err
			}
		}
		if !a.Status.CanTransitionTo(models.AuctionStatusClosed) {
			return fmt.Errorf("lifecycle: %w - %s to %s", biddingerrors.ErrInvalidTransition, a.Status, models.AuctionStatusClosed)
		}

		created, err := s.settleScopes(ctx, a, now, &fx)
		if err != nil {
			return err
		}

		a.Status = models.AuctionStatusClosed
		a.Outcome = models.AuctionOutcomeUnsold
		if len(created) > 0 {
			a.Outcome = models.AuctionOutcomeSold
		}
		a.UpdatedAt = now
		if err := s.repo.UpdateAuction(ctx, a); err != nil {
			return fmt.Errorf("lifecycle: failed to close auction %s: %w", auctionID, err)
		}

		res.Auction = a
		res.Settlements = created
		return nil
	})
	if err != nil {
		return CloseResult{}, err
	}
	if res.AlreadyClosed {
		return res, nil
	}

	metrics.AuctionTransitions.WithLabelValues(string(models.AuctionStatusClosed)).Inc()
	res.Warnings = s.apply(ctx, fx)
	utils.Info("auction closed", map[string]any{
		"auction_id":  auctionID,
		"outcome":     res.Auction.Outcome,
		"settlements": len(res.Settlements),
	})
	return res, nil
}

// settleScopes decides the auction-level scope and every open lot
func (s *LifecycleService) settleScopes(ctx context.Context, a models.Auction, now time.Time, fx *effects) ([]models.AuctionSettlement, error) {
	var created []models.AuctionSettlement

	st, err := s.settleScope(ctx, a, nil, now, fx)
	if err != nil {
		return nil, err
	}
	if st != nil {
		created = append(created, *st)
	}

	lots, err := s.repo.ListLots(ctx, a.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: failed to list lots for auction %s: %w", a.AuctionID, err)
	}
	for i := range lots {
		lot := lots[i]
		if lot.Status != models.LotStatusOpen {
			continue
		}
		st, err := s.settleScope(ctx, a, &lot, now, fx)
		if err != nil {
			return nil, err
		}
		lot.Status = models.LotStatusUnsold
		if st != nil {
			lot.Status = models.LotStatusSold
			created = append(created, *st)
		}
		if err := s.repo.UpdateLot(ctx, lot); err != nil {
			return nil, fmt.Errorf("lifecycle: failed to update lot %s: %w", lot.LotID, err)
		}
	}
	return created, nil
}

// settleScope returns nil when the scope has no bid meeting its reserve
func (s *LifecycleService) settleScope(ctx context.Context, a models.Auction, lot *models.AuctionLot, now time.Time, fx *effects) (*models.AuctionSettlement, error) {
	var lotID *string
	quantity := a.Quantity
	if lot != nil {
		lotID = &lot.LotID
		quantity = lot.Quantity
	}

	top, err := s.repo.GetHighestBid(ctx, a.AuctionID, lotID)
	if errors.Is(err, biddingerrors.ErrNoBids) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lifecycle: failed to load highest bid: %w", err)
	}

	met := a.ReserveMet(top.Amount)
	if lot != nil {
		met = lot.ReserveMet(top.Amount)
	}
	if !met {
		fx.release(top.UserID, top.Amount.Mul(quantity))
		return nil, nil
	}

	if err := s.repo.UpdateBidStatus(ctx, top.AuctionID, top.BidID, models.BidStatusWinning); err != nil {
		return nil, fmt.Errorf("lifecycle: failed to mark bid %s winning: %w", top.BidID, err)
	}
	top.Status = models.BidStatusWinning

	st, err := s.settlements.Create(ctx, a, lot, top)
	if err != nil {
		return nil, err
	}
	amount := top.Amount
	fx.notify(external.Event{
		Type:       external.EventAuctionWon,
		AuctionID:  a.AuctionID,
		LotID:      lotID,
		UserID:     top.UserID,
		Amount:     &amount,
		Message:    fmt.Sprintf("you won %s at %s %s per unit", a.Title, amount.StringFixed(2), a.Currency),
		OccurredAt: now,
	})
	return &st, nil
}

// Cancel stops an UPCOMING or ACTIVE auction. Only the seller or an admin may cancel,
// and a CLOSED auction can no longer be cancelled. Cancelling twice is a no-op.
func (s *LifecycleService) Cancel(ctx context.Context, auctionID string, actor Actor, reason string) (models.Auction, error) {
	var (
		auction   models.Auction
		fx        effects
		cancelled bool
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("lifecycle: failed to load auction %s: %w", auctionID, err)
		}
		if !actor.IsAdmin && actor.UserID != a.SellerID {
			return fmt.Errorf("lifecycle: %w - only the seller or an admin can cancel", biddingerrors.ErrNotAuthorized)
		}
		auction = a
		switch a.Status {
		case models.AuctionStatusCancelled:
			return nil
		case models.AuctionStatusClosed:
			return fmt.Errorf("lifecycle: %w - closed auctions cannot be cancelled", biddingerrors.ErrAuctionClosed)
		}

		now := s.clock.Now()
		if err := s.collectCancelEffects(ctx, a, now, &fx); err != nil {
			return err
		}

		a.Status = models.AuctionStatusCancelled
		a.CancellationReason = reason
		a.UpdatedAt = now
		if err := s.repo.UpdateAuction(ctx, a); err != nil {
			return fmt.Errorf("lifecycle: failed to cancel auction %s: %w", auctionID, err)
		}
		auction = a
		cancelled = true
		return nil
	})
	if err != nil {
		return models.Auction{}, err
	}
	if !cancelled {
		return auction, nil
	}

	metrics.AuctionTransitions.WithLabelValues(string(models.AuctionStatusCancelled)).Inc()
	s.apply(ctx, fx)
	utils.Info("auction cancelled", map[string]any{
		"auction_id": auctionID,
		"user_id":    actor.UserID,
		"admin":      actor.IsAdmin,
	})
	return auction, nil
}

// collectCancelEffects closes open lots, queues hold releases for standing bids and
// a notification for every participant and bidder.
func (s *LifecycleService) collectCancelEffects(ctx context.Context, a models.Auction, now time.Time, fx *effects) error {
	bids, err := s.repo.GetBidsByAuction(ctx, a.AuctionID)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		return fmt.Errorf("lifecycle: failed to load bids for auction %s: %w", a.AuctionID, err)
	}
	lots, err := s.repo.ListLots(ctx, a.AuctionID)
	if err != nil {
		return fmt.Errorf("lifecycle: failed to list lots for auction %s: %w", a.AuctionID, err)
	}
	participants, err := s.repo.ListParticipants(ctx, a.AuctionID)
	if err != nil {
		return fmt.Errorf("lifecycle: failed to list participants for auction %s: %w", a.AuctionID, err)
	}

	quantities := map[string]models.AuctionLot{}
	for _, lot := range lots {
		quantities[lot.LotID] = lot
		if lot.Status != models.LotStatusOpen {
			continue
		}
		lot.Status = models.LotStatusCancelled
		if err := s.repo.UpdateLot(ctx, lot); err != nil {
			return fmt.Errorf("lifecycle: failed to cancel lot %s: %w", lot.LotID, err)
		}
	}

	var recipients []string
	seen := map[string]bool{}
	addRecipient := func(userID string) {
		if !seen[userID] {
			seen[userID] = true
			recipients = append(recipients, userID)
		}
	}

	for _, b := range bids {
		addRecipient(b.UserID)
		if b.Status != models.BidStatusActiveHighest {
			continue
		}
		quantity := a.Quantity
		if b.LotID != nil {
			quantity = quantities[*b.LotID].Quantity
		}
		fx.release(b.UserID, b.Amount.Mul(quantity))
	}
	for _, p := range participants {
		addRecipient(p.UserID)
	}

	for _, userID := range recipients {
		fx.notify(external.Event{
			Type:       external.EventAuctionCancelled,
			AuctionID:  a.AuctionID,
			UserID:     userID,
			Message:    fmt.Sprintf("auction %s was cancelled", a.Title),
			OccurredAt: now,
		})
	}
	return nil
}

// SweepReport counts what one sweep did
type SweepReport struct {
	Activated int `json:"activated"`
	Closed    int `json:"closed"`
	Failed    int `json:"failed"`
}

// SweepDue activates and closes auctions whose start or end time has passed.
// A failure on one auction is logged and does not stop the others.
func (s *LifecycleService) SweepDue(ctx context.Context) (SweepReport, error) {
	now := s.clock.Now()
	due, err := s.repo.ListDueAuctions(ctx, now, s.batchSize)
	if err != nil {
		return SweepReport{}, fmt.Errorf("lifecycle: failed to list due auctions: %w", err)
	}

	var report SweepReport
	for _, a := range due {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if a.Status == models.AuctionStatusUpcoming && now.Before(a.EndTime) {
			_, err = s.Activate(ctx, a.AuctionID)
			if err == nil {
				report.Activated++
			}
		} else {
			var res CloseResult
			res, err = s.Close(ctx, a.AuctionID)
			if err == nil && !res.AlreadyClosed {
				report.Closed++
			}
		}

		if err != nil && !errors.Is(err, biddingerrors.ErrInvalidTransition) {
			report.Failed++
			utils.Error("sweep failed for auction", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
		}
	}
	return report, nil
}
