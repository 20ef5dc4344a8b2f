package bidding

import (
	"context"
	"errors"
	"fmt"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
)

// RegisterParticipant signs a user up to bid. Public auctions approve immediately;
// private auctions wait for an admin. Registering twice returns the existing row.
func (s *BiddingService) RegisterParticipant(ctx context.Context, auctionID, userID string) (models.AuctionParticipant, error) {
	if auctionID == "" || userID == "" {
		return models.AuctionParticipant{}, fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidID)
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return models.AuctionParticipant{}, err
	}

	var participant models.AuctionParticipant
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		auction, err := s.repo.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}
		if auction.Status.IsTerminal() {
			return fmt.Errorf("service: %w - auction is %s", biddingerrors.ErrAuctionClosed, auction.Status)
		}
		if auction.SellerID == userID {
			return fmt.Errorf("service: %w", biddingerrors.ErrSellerCannotBid)
		}

		existing, err := s.repo.GetParticipant(ctx, auctionID, userID)
		if err == nil {
			participant = existing
			return nil
		}
		if !errors.Is(err, biddingerrors.ErrParticipantMissing) {
			return fmt.Errorf("service: failed to check participant %s: %w", userID, err)
		}

		now := s.clock.Now()
		participant = models.AuctionParticipant{
			AuctionID:    auctionID,
			UserID:       userID,
			Status:       models.ParticipantStatusApproved,
			RegisteredAt: now,
			UpdatedAt:    now,
		}
		if auction.IsPrivate {
			participant.Status = models.ParticipantStatusRegistered
		}
		if err := s.repo.SaveParticipant(ctx, participant); err != nil {
			return fmt.Errorf("service: failed to register participant %s: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return models.AuctionParticipant{}, err
	}
	return participant, nil
}

// SetParticipantStatus approves or blocks a registered participant
func (s *BiddingService) SetParticipantStatus(ctx context.Context, auctionID, userID string, status models.ParticipantStatus) (models.AuctionParticipant, error) {
	if !status.Valid() {
		return models.AuctionParticipant{}, fmt.Errorf("service: %w - unknown participant status %q", biddingerrors.ErrInvalidTransition, status)
	}

	var participant models.AuctionParticipant
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetAuctionForUpdate(ctx, auctionID); err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}
		p, err := s.repo.GetParticipant(ctx, auctionID, userID)
		if err != nil {
			return fmt.Errorf("service: failed to load participant %s: %w", userID, err)
		}
		p.Status = status
		p.UpdatedAt = s.clock.Now()
		if err := s.repo.SaveParticipant(ctx, p); err != nil {
			return fmt.Errorf("service: failed to update participant %s: %w", userID, err)
		}
		participant = p
		return nil
	})
	if err != nil {
		return models.AuctionParticipant{}, err
	}
	return participant, nil
}

// ListParticipants returns an auction's registrations
func (s *BiddingService) ListParticipants(ctx context.Context, auctionID string) ([]models.AuctionParticipant, error) {
	participants, err := s.repo.ListParticipants(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list participants for auction %s: %w", auctionID, err)
	}
	return participants, nil
}

// AddToWatchlist follows an auction. Watching has no effect on bidding.
func (s *BiddingService) AddToWatchlist(ctx context.Context, userID, auctionID string) (models.AuctionWatchlist, error) {
	if auctionID == "" || userID == "" {
		return models.AuctionWatchlist{}, fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidID)
	}
	entry := models.AuctionWatchlist{UserID: userID, AuctionID: auctionID, AddedAt: s.clock.Now()}
	if err := s.repo.AddToWatchlist(ctx, entry); err != nil {
		return models.AuctionWatchlist{}, fmt.Errorf("service: failed to watch auction %s: %w", auctionID, err)
	}
	return entry, nil
}

// RemoveFromWatchlist unfollows an auction
func (s *BiddingService) RemoveFromWatchlist(ctx context.Context, userID, auctionID string) error {
	if err := s.repo.RemoveFromWatchlist(ctx, userID, auctionID); err != nil {
		return fmt.Errorf("service: failed to unwatch auction %s: %w", auctionID, err)
	}
	return nil
}

// GetWatchlist lists the auctions a user follows, oldest first
func (s *BiddingService) GetWatchlist(ctx context.Context, userID string) ([]models.AuctionWatchlist, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidID)
	}
	entries, err := s.repo.GetWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get watchlist for user %s: %w", userID, err)
	}
	return entries, nil
}
