package bidding

import (
	"context"
	"fmt"
	"sort"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

// reactAutoBids issues counter-bids until no setting can act.
//
// Each setting fires at most once per triggering bid. Candidates are tried in
// ascending ceiling order, and for equal ceilings the later registration goes first,
// so the strongest and earliest setting is the one left standing. A counter that
// reaches a shared ceiling is placed for the earliest setting at that ceiling.
func (s *BiddingService) reactAutoBids(ctx context.Context, sc *scope, now time.Time, fx *sideEffects) ([]models.Bid, error) {
	settings, err := s.repo.ListAutoBidSettings(ctx, sc.auction.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auto-bid settings: %w", err)
	}
	sort.SliceStable(settings, func(i, j int) bool {
		if settings[i].MaxAmount.Equal(settings[j].MaxAmount) {
			return settings[i].Seq > settings[j].Seq
		}
		return settings[i].MaxAmount.LessThan(settings[j].MaxAmount)
	})

	done := make(map[string]bool, len(settings))
	var issued []models.Bid
	for {
		setting, amount, ok := s.nextCounterBid(ctx, sc, settings, done)
		if !ok {
			return issued, nil
		}
		done[setting.SettingID] = true

		bid, err := s.accept(ctx, sc, setting.UserID, amount, true, now, fx)
		if err != nil {
			return nil, err
		}
		issued = append(issued, bid)
	}
}

// nextCounterBid picks the first setting able to outbid the current highest.
// Settings whose owner can no longer bid are marked done and skipped.
func (s *BiddingService) nextCounterBid(ctx context.Context, sc *scope, settings []models.AutoBidSetting, done map[string]bool) (models.AutoBidSetting, decimal.Decimal, bool) {
	highest := sc.highest()
	if highest == nil {
		return models.AutoBidSetting{}, decimal.Zero, false
	}
	floor := highest.Add(sc.auction.MinIncrement)

	for _, setting := range settings {
		if done[setting.SettingID] || !setting.IsActive || setting.UserID == sc.highestBidder() {
			continue
		}
		if setting.MaxAmount.LessThan(floor) {
			continue
		}
		if err := s.checkAutoBidder(ctx, sc.auction, setting.UserID); err != nil {
			utils.Warn("auto-bid skipped", map[string]any{
				"auction_id": sc.auction.AuctionID,
				"user_id":    setting.UserID,
				"error":      err.Error(),
			})
			done[setting.SettingID] = true
			continue
		}

		step := decimal.Max(setting.Increment, sc.auction.MinIncrement)
		amount := decimal.Min(highest.Add(step), setting.MaxAmount)
		if amount.Equal(setting.MaxAmount) {
			// at a shared ceiling the earliest registration takes the amount
			if first, ok := s.firstAtCeiling(ctx, sc, settings, setting, done); ok {
				done[setting.SettingID] = true
				return first, amount, true
			}
		}
		return setting, amount, true
	}
	return models.AutoBidSetting{}, decimal.Zero, false
}

// firstAtCeiling returns the earliest registered setting that shares candidate's ceiling
// and can still bid. It may belong to the current leader.
func (s *BiddingService) firstAtCeiling(ctx context.Context, sc *scope, settings []models.AutoBidSetting, candidate models.AutoBidSetting, done map[string]bool) (models.AutoBidSetting, bool) {
	var (
		first models.AutoBidSetting
		found bool
	)
	for _, setting := range settings {
		if done[setting.SettingID] || !setting.IsActive || setting.Seq >= candidate.Seq {
			continue
		}
		if !setting.MaxAmount.Equal(candidate.MaxAmount) {
			continue
		}
		if found && setting.Seq > first.Seq {
			continue
		}
		if err := s.checkAutoBidder(ctx, sc.auction, setting.UserID); err != nil {
			continue
		}
		first, found = setting, true
	}
	return first, found
}

func (s *BiddingService) checkAutoBidder(ctx context.Context, auction models.Auction, userID string) error {
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	return s.checkParticipant(ctx, auction, userID)
}

// SetAutoBidInput configures a user's standing counter-bid instruction
type SetAutoBidInput struct {
	AuctionID string
	UserID    string
	MaxAmount decimal.Decimal
	Increment decimal.Decimal
}

// SetAutoBid creates or replaces the user's auto-bid setting and activates it.
// A zero increment means the auction's minimum increment.
func (s *BiddingService) SetAutoBid(ctx context.Context, in SetAutoBidInput) (models.AutoBidSetting, error) {
	if in.AuctionID == "" || in.UserID == "" {
		return models.AutoBidSetting{}, fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidAutoBid)
	}
	if !in.MaxAmount.IsPositive() || in.Increment.IsNegative() {
		return models.AutoBidSetting{}, fmt.Errorf("service: %w - ceiling must be positive and increment non-negative", biddingerrors.ErrInvalidAutoBid)
	}
	if err := s.checkUser(ctx, in.UserID); err != nil {
		return models.AutoBidSetting{}, err
	}

	var saved models.AutoBidSetting
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		auction, err := s.repo.GetAuctionForUpdate(ctx, in.AuctionID)
		if err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", in.AuctionID, err)
		}
		if auction.Status.IsTerminal() {
			return fmt.Errorf("service: %w - auction is %s", biddingerrors.ErrAuctionClosed, auction.Status)
		}
		if err := s.checkParticipant(ctx, auction, in.UserID); err != nil {
			return err
		}
		if in.MaxAmount.LessThan(auction.StartingPrice) {
			return fmt.Errorf("service: %w - ceiling below starting price %s", biddingerrors.ErrInvalidAutoBid, auction.StartingPrice.StringFixed(2))
		}

		increment := in.Increment
		if increment.IsZero() {
			increment = auction.MinIncrement
		}
		now := s.clock.Now()
		saved, err = s.repo.SaveAutoBidSetting(ctx, models.AutoBidSetting{
			SettingID: utils.GenerateID(),
			AuctionID: in.AuctionID,
			UserID:    in.UserID,
			MaxAmount: in.MaxAmount,
			Increment: increment,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("service: failed to save auto-bid for user %s: %w", in.UserID, err)
		}
		return nil
	})
	if err != nil {
		return models.AutoBidSetting{}, err
	}
	return saved, nil
}

// DisableAutoBid deactivates a user's setting; it stays on record
func (s *BiddingService) DisableAutoBid(ctx context.Context, auctionID, userID string) (models.AutoBidSetting, error) {
	if auctionID == "" || userID == "" {
		return models.AutoBidSetting{}, fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidAutoBid)
	}

	var saved models.AutoBidSetting
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetAuctionForUpdate(ctx, auctionID); err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}
		settings, err := s.repo.ListAutoBidSettings(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("service: failed to list auto-bid settings: %w", err)
		}
		for _, setting := range settings {
			if setting.UserID != userID {
				continue
			}
			setting.IsActive = false
			setting.UpdatedAt = s.clock.Now()
			saved, err = s.repo.SaveAutoBidSetting(ctx, setting)
			if err != nil {
				return fmt.Errorf("service: failed to disable auto-bid for user %s: %w", userID, err)
			}
			return nil
		}
		return fmt.Errorf("service: %w - user %s on auction %s", biddingerrors.ErrAutoBidNotFound, userID, auctionID)
	})
	if err != nil {
		return models.AutoBidSetting{}, err
	}
	return saved, nil
}
