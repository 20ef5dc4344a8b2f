// Package settlement manages the payable obligation created when an auction or lot sells.
// A settlement only moves forward: PENDING_PAYMENT, then PAID, then SETTLED.
package settlement

import (
	"context"
	"errors"
	"fmt"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/clock"
	"agri-auction/internal/external"
	"agri-auction/internal/metrics"
	"agri-auction/internal/models"
	"agri-auction/internal/repository"
	"agri-auction/utils"
)

type SettlementService struct {
	repo   repository.AuctionDB
	wallet external.Wallet
	orders external.OrderService
	clock  clock.Clock
}

type Option func(*SettlementService)

func WithClock(c clock.Clock) Option {
	return func(s *SettlementService) { s.clock = c }
}

func WithWallet(w external.Wallet) Option {
	return func(s *SettlementService) { s.wallet = w }
}

func WithOrders(o external.OrderService) Option {
	return func(s *SettlementService) { s.orders = o }
}

func NewSettlementService(repo repository.AuctionDB, opts ...Option) *SettlementService {
	s := &SettlementService{repo: repo, clock: clock.NewSystem()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create records the settlement for a winning bid. lot is nil for the auction-level scope.
// It must run inside the closing transaction; a second call for the same scope fails
// with ErrSettlementExists.
func (s *SettlementService) Create(ctx context.Context, auction models.Auction, lot *models.AuctionLot, winning models.Bid) (models.AuctionSettlement, error) {
	quantity := auction.Quantity
	var lotID *string
	if lot != nil {
		quantity = lot.Quantity
		id := lot.LotID
		lotID = &id
	}

	settlement := models.AuctionSettlement{
		SettlementID:  utils.GenerateID(),
		AuctionID:     auction.AuctionID,
		LotID:         lotID,
		WinningBidID:  winning.BidID,
		SellerID:      auction.SellerID,
		WinnerID:      winning.UserID,
		AmountPerUnit: winning.Amount,
		Quantity:      quantity,
		Currency:      auction.Currency,
		Status:        models.SettlementStatusPendingPayment,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.repo.CreateSettlement(ctx, settlement); err != nil {
		return models.AuctionSettlement{}, fmt.Errorf("settlement: failed to create for auction %s: %w", auction.AuctionID, err)
	}
	metrics.Settlements.WithLabelValues(string(settlement.Status)).Inc()
	return settlement, nil
}

// Get returns one settlement
func (s *SettlementService) Get(ctx context.Context, settlementID string) (models.AuctionSettlement, error) {
	if settlementID == "" {
		return models.AuctionSettlement{}, fmt.Errorf("settlement: %w - empty settlement ID", biddingerrors.ErrInvalidID)
	}
	st, err := s.repo.GetSettlement(ctx, settlementID)
	if err != nil {
		return models.AuctionSettlement{}, fmt.Errorf("settlement: failed to get %s: %w", settlementID, err)
	}
	return st, nil
}

// ListForAuction returns an auction's settlements, auction scope first
func (s *SettlementService) ListForAuction(ctx context.Context, auctionID string) ([]models.AuctionSettlement, error) {
	list, err := s.repo.ListSettlementsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("settlement: failed to list for auction %s: %w", auctionID, err)
	}
	return list, nil
}

// CollectPayment moves the settlement to PAID, charges the winner, then asks the
// order service for an order. The guarded PAID write lands before the charge, so a
// failed write never leaves money taken; a failed charge writes the settlement back
// to PENDING_PAYMENT with the reason recorded. A failed order is logged and can be retried.
func (s *SettlementService) CollectPayment(ctx context.Context, settlementID string) (models.AuctionSettlement, error) {
	if s.wallet == nil {
		return models.AuctionSettlement{}, fmt.Errorf("settlement: %w - no wallet configured", biddingerrors.ErrPaymentFailed)
	}

	var (
		updated   models.AuctionSettlement
		chargeErr error
	)
	err := s.withSettlementLock(ctx, settlementID, func(ctx context.Context, st models.AuctionSettlement) error {
		if !st.Status.CanAdvanceTo(models.SettlementStatusPaid) {
			return fmt.Errorf("settlement: %w - %s cannot be paid", biddingerrors.ErrInvalidTransition, st.Status)
		}

		pending := st
		now := s.clock.Now()
		st.Status = models.SettlementStatusPaid
		st.PaidAt = &now
		st.LastPaymentNote = ""
		if err := s.repo.UpdateSettlement(ctx, st, models.SettlementStatusPendingPayment); err != nil {
			return fmt.Errorf("settlement: failed to update %s: %w", settlementID, err)
		}

		if chargeErr = s.wallet.Charge(ctx, st.WinnerID, st.TotalAmount()); chargeErr != nil {
			pending.LastPaymentNote = chargeErr.Error()
			if err := s.repo.UpdateSettlement(ctx, pending, models.SettlementStatusPaid); err != nil {
				return fmt.Errorf("settlement: failed to revert %s: %w", settlementID, err)
			}
			st = pending
		}
		updated = st
		return nil
	})
	if err != nil {
		return models.AuctionSettlement{}, err
	}
	if chargeErr != nil {
		utils.Warn("settlement charge failed", map[string]any{
			"settlement_id": settlementID,
			"user_id":       updated.WinnerID,
			"error":         chargeErr.Error(),
		})
		return updated, fmt.Errorf("settlement: %w - %v", biddingerrors.ErrPaymentFailed, chargeErr)
	}
	metrics.Settlements.WithLabelValues(string(models.SettlementStatusPaid)).Inc()

	return s.attachOrder(ctx, updated), nil
}

func (s *SettlementService) attachOrder(ctx context.Context, st models.AuctionSettlement) models.AuctionSettlement {
	if s.orders == nil || st.OrderID != "" {
		return st
	}
	orderID, err := s.orders.CreateOrder(ctx, st)
	if err == nil {
		withOrder := st
		withOrder.OrderID = orderID
		err = s.repo.UpdateSettlement(ctx, withOrder, st.Status)
		if err == nil {
			return withOrder
		}
	}
	metrics.SideEffectFailures.WithLabelValues("orders").Inc()
	utils.Warn("order creation failed", map[string]any{
		"settlement_id": st.SettlementID,
		"error":         err.Error(),
	})
	return st
}

// ConfirmPayout marks a PAID settlement SETTLED once the seller has been paid out
func (s *SettlementService) ConfirmPayout(ctx context.Context, settlementID string) (models.AuctionSettlement, error) {
	var updated models.AuctionSettlement
	err := s.withSettlementLock(ctx, settlementID, func(ctx context.Context, st models.AuctionSettlement) error {
		if !st.Status.CanAdvanceTo(models.SettlementStatusSettled) {
			return fmt.Errorf("settlement: %w - %s cannot be settled", biddingerrors.ErrInvalidTransition, st.Status)
		}
		now := s.clock.Now()
		prev := st.Status
		st.Status = models.SettlementStatusSettled
		st.SettledAt = &now
		if err := s.repo.UpdateSettlement(ctx, st, prev); err != nil {
			return fmt.Errorf("settlement: failed to update %s: %w", settlementID, err)
		}
		updated = st
		return nil
	})
	if err != nil {
		return models.AuctionSettlement{}, err
	}
	metrics.Settlements.WithLabelValues(string(models.SettlementStatusSettled)).Inc()
	return updated, nil
}

// withSettlementLock runs fn on a fresh copy of the settlement while its auction is locked
func (s *SettlementService) withSettlementLock(ctx context.Context, settlementID string, fn func(context.Context, models.AuctionSettlement) error) error {
	st, err := s.Get(ctx, settlementID)
	if err != nil {
		return err
	}
	return s.repo.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetAuctionForUpdate(ctx, st.AuctionID); err != nil {
			return fmt.Errorf("settlement: failed to lock auction %s: %w", st.AuctionID, err)
		}
		fresh, err := s.repo.GetSettlement(ctx, settlementID)
		if errors.Is(err, biddingerrors.ErrSettlementNotFound) {
			return fmt.Errorf("settlement: %w - %s disappeared", biddingerrors.ErrConflict, settlementID)
		}
		if err != nil {
			return fmt.Errorf("settlement: failed to reload %s: %w", settlementID, err)
		}
		return fn(ctx, fresh)
	})
}
