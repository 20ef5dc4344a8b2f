package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

// scope is the thing a bid competes in: the auction itself or one lot.
// Both rows are loaded under the auction lock and written back after each accepted bid.
type scope struct {
	auction models.Auction
	lot     *models.AuctionLot
}

func (s *BiddingService) loadScope(ctx context.Context, auction models.Auction, lotID *string) (*scope, error) {
	sc := &scope{auction: auction}
	if lotID == nil {
		return sc, nil
	}
	lot, err := s.repo.GetLot(ctx, auction.AuctionID, *lotID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load lot %s: %w", *lotID, err)
	}
	if lot.Status != models.LotStatusOpen {
		return nil, fmt.Errorf("service: %w - lot %s is %s", biddingerrors.ErrLotNotOpen, lot.LotID, lot.Status)
	}
	sc.lot = &lot
	return sc, nil
}

func (sc *scope) lotID() *string {
	if sc.lot == nil {
		return nil
	}
	return &sc.lot.LotID
}

func (sc *scope) highest() *decimal.Decimal {
	if sc.lot != nil {
		return sc.lot.CurrentHighestBid
	}
	return sc.auction.CurrentHighestBid
}

func (sc *scope) highestBidder() string {
	if sc.lot != nil {
		return sc.lot.CurrentHighestBidder
	}
	return sc.auction.CurrentHighestBidder
}

func (sc *scope) minimumNext() decimal.Decimal {
	if sc.lot != nil {
		return sc.lot.MinimumNextBid(sc.auction.MinIncrement)
	}
	return sc.auction.MinimumNextBid()
}

// quantity is what a hold covers: amount per unit times this
func (sc *scope) quantity() decimal.Decimal {
	if sc.lot != nil {
		return sc.lot.Quantity
	}
	return sc.auction.Quantity
}

// accept records bid as the new ACTIVE_HIGHEST for the scope, demoting the previous one
func (s *BiddingService) accept(ctx context.Context, sc *scope, userID string, amount decimal.Decimal, auto bool, now time.Time, fx *sideEffects) (models.Bid, error) {
	if sc.highest() != nil {
		prev, err := s.repo.GetHighestBid(ctx, sc.auction.AuctionID, sc.lotID())
		switch {
		case err == nil:
			if err := s.repo.UpdateBidStatus(ctx, prev.AuctionID, prev.BidID, models.BidStatusOutbid); err != nil {
				return models.Bid{}, fmt.Errorf("service: failed to mark bid %s outbid: %w", prev.BidID, err)
			}
			prev.Status = models.BidStatusOutbid
			fx.outbid(prev, sc.quantity(), userID, now)
		case !errors.Is(err, biddingerrors.ErrNoBids):
			return models.Bid{}, fmt.Errorf("service: failed to check winning bid: %w", err)
		}
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: sc.auction.AuctionID,
		LotID:     sc.lotID(),
		UserID:    userID,
		Amount:    amount,
		Status:    models.BidStatusActiveHighest,
		IsAutoBid: auto,
		CreatedAt: now,
	}
	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", bid.AuctionID, userID, err)
	}

	highest := amount
	if sc.lot != nil {
		sc.lot.CurrentHighestBid = &highest
		sc.lot.CurrentHighestBidder = userID
		sc.lot.TotalBids++
		if err := s.repo.UpdateLot(ctx, *sc.lot); err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to update lot %s: %w", sc.lot.LotID, err)
		}
	} else {
		sc.auction.CurrentHighestBid = &highest
		sc.auction.CurrentHighestBidder = userID
	}
	sc.auction.TotalBids++
	sc.auction.UpdatedAt = now
	if err := s.repo.UpdateAuction(ctx, sc.auction); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update auction %s: %w", sc.auction.AuctionID, err)
	}

	fx.accepted(bid, sc.quantity())
	return bid, nil
}
