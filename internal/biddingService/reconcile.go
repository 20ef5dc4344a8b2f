package bidding

import (
	"context"
	"errors"
	"fmt"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

// ReconcileResult reports what ReconcileHighestBid had to repair
type ReconcileResult struct {
	Auction      models.Auction      `json:"auction"`
	Lots         []models.AuctionLot `json:"lots"`
	CacheChanged bool                `json:"cache_changed"`
	RepairedBids int                 `json:"repaired_bids"`
}

type ledgerTop struct {
	bid   *models.Bid
	count int
}

// topOfLedger finds the highest bid per scope; equal amounts go to the earlier bid.
// The key is "" for the auction level and the lot ID otherwise.
func topOfLedger(bids []models.Bid) map[string]*ledgerTop {
	tops := make(map[string]*ledgerTop)
	for i := range bids {
		key := ""
		if bids[i].LotID != nil {
			key = *bids[i].LotID
		}
		t, ok := tops[key]
		if !ok {
			t = &ledgerTop{}
			tops[key] = t
		}
		t.count++
		if t.bid == nil || bids[i].Amount.GreaterThan(t.bid.Amount) {
			t.bid = &bids[i]
		}
	}
	return tops
}

// ReconcileHighestBid recomputes the denormalized highest-bid fields of an auction and
// its lots from the bid ledger. On a non-terminal auction it also repairs bid statuses
// so exactly the top bid of each scope is ACTIVE_HIGHEST.
func (s *BiddingService) ReconcileHighestBid(ctx context.Context, auctionID string) (ReconcileResult, error) {
	var res ReconcileResult
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		auction, err := s.repo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}
		bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
		if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
			return fmt.Errorf("service: failed to load bids for auction %s: %w", auctionID, err)
		}
		lots, err := s.repo.ListLots(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("service: failed to list lots for auction %s: %w", auctionID, err)
		}

		tops := topOfLedger(bids)

		if !auction.Status.IsTerminal() {
			repaired, err := s.repairStatuses(ctx, bids, tops)
			if err != nil {
				return err
			}
			res.RepairedBids = repaired
		}

		top := tops[""]
		highest, bidder := cacheFrom(top)
		if !sameAmount(auction.CurrentHighestBid, highest) || auction.CurrentHighestBidder != bidder || auction.TotalBids != len(bids) {
			auction.CurrentHighestBid = highest
			auction.CurrentHighestBidder = bidder
			auction.TotalBids = len(bids)
			auction.UpdatedAt = s.clock.Now()
			if err := s.repo.UpdateAuction(ctx, auction); err != nil {
				return fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
			}
			res.CacheChanged = true
		}

		for i := range lots {
			lt := tops[lots[i].LotID]
			highest, bidder := cacheFrom(lt)
			count := 0
			if lt != nil {
				count = lt.count
			}
			if sameAmount(lots[i].CurrentHighestBid, highest) && lots[i].CurrentHighestBidder == bidder && lots[i].TotalBids == count {
				continue
			}
			lots[i].CurrentHighestBid = highest
			lots[i].CurrentHighestBidder = bidder
			lots[i].TotalBids = count
			if err := s.repo.UpdateLot(ctx, lots[i]); err != nil {
				return fmt.Errorf("service: failed to update lot %s: %w", lots[i].LotID, err)
			}
			res.CacheChanged = true
		}

		res.Auction = auction
		res.Lots = lots
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	if res.CacheChanged || res.RepairedBids > 0 {
		utils.Warn("highest bid cache repaired", map[string]any{
			"auction_id":    auctionID,
			"repaired_bids": res.RepairedBids,
		})
	}
	return res, nil
}

// repairStatuses demotes stray ACTIVE_HIGHEST bids before promoting the true top,
// so at no point do two bids of a scope hold the status.
func (s *BiddingService) repairStatuses(ctx context.Context, bids []models.Bid, tops map[string]*ledgerTop) (int, error) {
	isTop := func(b models.Bid) bool {
		key := ""
		if b.LotID != nil {
			key = *b.LotID
		}
		return tops[key].bid.BidID == b.BidID
	}

	repaired := 0
	for _, b := range bids {
		if !isTop(b) && b.Status != models.BidStatusOutbid {
			if err := s.repo.UpdateBidStatus(ctx, b.AuctionID, b.BidID, models.BidStatusOutbid); err != nil {
				return 0, fmt.Errorf("service: failed to demote bid %s: %w", b.BidID, err)
			}
			repaired++
		}
	}
	for _, b := range bids {
		if isTop(b) && b.Status != models.BidStatusActiveHighest {
			if err := s.repo.UpdateBidStatus(ctx, b.AuctionID, b.BidID, models.BidStatusActiveHighest); err != nil {
				return 0, fmt.Errorf("service: failed to promote bid %s: %w", b.BidID, err)
			}
			repaired++
		}
	}
	return repaired, nil
}

func cacheFrom(t *ledgerTop) (*decimal.Decimal, string) {
	if t == nil || t.bid == nil {
		return nil, ""
	}
	amount := t.bid.Amount
	return &amount, t.bid.UserID
}

func sameAmount(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
