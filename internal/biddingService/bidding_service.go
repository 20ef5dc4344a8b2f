package bidding

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
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo     repository.AuctionDB
	users    external.UserDirectory
	wallet   external.Wallet
	notifier external.Notifier
	clock    clock.Clock
	currency string
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock overrides the time source
func WithClock(c clock.Clock) Option {
	return func(s *BiddingService) { s.clock = c }
}

// WithUserDirectory enables the ACTIVE user check
func WithUserDirectory(users external.UserDirectory) Option {
	return func(s *BiddingService) { s.users = users }
}

// WithWallet enables fund holds for accepted bids
func WithWallet(w external.Wallet) Option {
	return func(s *BiddingService) { s.wallet = w }
}

// WithNotifier sets where outbid notifications go
func WithNotifier(n external.Notifier) Option {
	return func(s *BiddingService) { s.notifier = n }
}

// WithDefaultCurrency sets the currency for auctions created without one
func WithDefaultCurrency(currency string) Option {
	return func(s *BiddingService) { s.currency = currency }
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:     repo,
		notifier: external.LogNotifier{},
		clock:    clock.NewSystem(),
		currency: "USD",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBidInput is a bid on the auction itself or, when LotID is set, on one lot
type PlaceBidInput struct {
	AuctionID string
	LotID     *string
	UserID    string
	Amount    decimal.Decimal
}

// PlaceBidResult is the accepted bid plus any counter-bids it triggered.
// Warnings carry wallet or notification failures that happened after commit.
type PlaceBidResult struct {
	Bid      models.Bid     `json:"bid"`
	AutoBids []models.Bid   `json:"auto_bids"`
	Auction  models.Auction `json:"auction"`
	Warnings []string       `json:"warnings,omitempty"`
}

// PlaceBid validates and records a user's bid, then lets auto-bid settings react.
// Everything up to the final counter-bid commits atomically under the auction lock.
func (s *BiddingService) PlaceBid(ctx context.Context, in PlaceBidInput) (result PlaceBidResult, err error) {
	start := time.Now()
	defer func() { metrics.ObserveBid(start, len(result.AutoBids), err) }()

	if err := validateBidInput(in); err != nil {
		return PlaceBidResult{}, err
	}
	if err := s.checkUser(ctx, in.UserID); err != nil {
		return PlaceBidResult{}, err
	}

	var effects sideEffects
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		auction, err := s.repo.GetAuctionForUpdate(ctx, in.AuctionID)
		if err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", in.AuctionID, err)
		}
		now := s.clock.Now()

		if auction, err = s.activateIfDue(ctx, auction, now); err != nil {
			return err
		}
		if err := checkOpen(auction, now); err != nil {
			return err
		}
		if err := s.checkParticipant(ctx, auction, in.UserID); err != nil {
			return err
		}

		sc, err := s.loadScope(ctx, auction, in.LotID)
		if err != nil {
			return err
		}

		if minimum := sc.minimumNext(); in.Amount.LessThan(minimum) {
			return fmt.Errorf("service: %w - minimum next bid is %s", biddingerrors.ErrBidTooLow, minimum.StringFixed(2))
		}

		bid, err := s.accept(ctx, sc, in.UserID, in.Amount, false, now, &effects)
		if err != nil {
			return err
		}
		result.Bid = bid

		if sc.lot == nil {
			autoBids, err := s.reactAutoBids(ctx, sc, now, &effects)
			if err != nil {
				return err
			}
			result.AutoBids = autoBids
		}
		result.Auction = sc.auction
		return nil
	})
	if err != nil {
		return PlaceBidResult{}, err
	}

	result.Warnings = s.applyEffects(ctx, effects)
	utils.Info("bid accepted", map[string]any{
		"auction_id": in.AuctionID,
		"bid_id":     result.Bid.BidID,
		"user_id":    in.UserID,
		"amount":     in.Amount.String(),
		"auto_bids":  len(result.AutoBids),
	})
	return result, nil
}

func validateBidInput(in PlaceBidInput) error {
	if in.AuctionID == "" || in.UserID == "" {
		return fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidBid)
	}
	if in.LotID != nil && *in.LotID == "" {
		return fmt.Errorf("service: %w - empty lot ID", biddingerrors.ErrInvalidBid)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	return nil
}

// checkOpen rejects bids outside an ACTIVE auction's window
func checkOpen(auction models.Auction, now time.Time) error {
	if auction.Status.IsTerminal() {
		return fmt.Errorf("service: %w - auction is %s", biddingerrors.ErrAuctionClosed, auction.Status)
	}
	if auction.Status != models.AuctionStatusActive || !auction.InWindow(now) {
		return fmt.Errorf("service: %w - status %s, window %s to %s", biddingerrors.ErrAuctionNotActive,
			auction.Status, auction.StartTime.Format(time.RFC3339), auction.EndTime.Format(time.RFC3339))
	}
	return nil
}

// activateIfDue moves an UPCOMING auction to ACTIVE once its window has opened
func (s *BiddingService) activateIfDue(ctx context.Context, auction models.Auction, now time.Time) (models.Auction, error) {
	if auction.Status != models.AuctionStatusUpcoming || !auction.InWindow(now) {
		return auction, nil
	}
	auction.Status = models.AuctionStatusActive
	auction.UpdatedAt = now
	if err := s.repo.UpdateAuction(ctx, auction); err != nil {
		return auction, fmt.Errorf("service: failed to activate auction %s: %w", auction.AuctionID, err)
	}
	metrics.AuctionTransitions.WithLabelValues(string(models.AuctionStatusActive)).Inc()
	return auction, nil
}

// checkUser rejects unknown and non-ACTIVE users when a directory is configured
func (s *BiddingService) checkUser(ctx context.Context, userID string) error {
	if s.users == nil {
		return nil
	}
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: failed to look up user %s: %w", userID, err)
	}
	if user.Status != models.UserStatusActive {
		return fmt.Errorf("service: %w - user %s is %s", biddingerrors.ErrUserIneligible, userID, user.Status)
	}
	return nil
}

// checkParticipant enforces seller exclusion, blocking and private auction approval
func (s *BiddingService) checkParticipant(ctx context.Context, auction models.Auction, userID string) error {
	if userID == auction.SellerID {
		return fmt.Errorf("service: %w", biddingerrors.ErrSellerCannotBid)
	}

	p, err := s.repo.GetParticipant(ctx, auction.AuctionID, userID)
	switch {
	case errors.Is(err, biddingerrors.ErrParticipantMissing):
		if auction.IsPrivate {
			return fmt.Errorf("service: %w - user %s is not registered", biddingerrors.ErrNotApproved, userID)
		}
		return nil
	case err != nil:
		return fmt.Errorf("service: failed to check participant %s: %w", userID, err)
	}

	if p.Status == models.ParticipantStatusBlocked {
		return fmt.Errorf("service: %w - user %s is blocked", biddingerrors.ErrNotApproved, userID)
	}
	if auction.IsPrivate && p.Status != models.ParticipantStatusApproved {
		return fmt.Errorf("service: %w - user %s is %s", biddingerrors.ErrNotApproved, userID, p.Status)
	}
	return nil
}

// GetBidsForAuction returns all bids for a specific auction
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return bids, nil
}

// GetWinningBid returns the standing highest bid for the auction or one of its lots
func (s *BiddingService) GetWinningBid(ctx context.Context, auctionID string, lotID *string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetHighestBid(ctx, auctionID, lotID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	return winningBid, nil
}

// GetAuctionsByUser returns all auctions a user has placed bids on
func (s *BiddingService) GetAuctionsByUser(ctx context.Context, userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}

	auctions, err := s.repo.GetAuctionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for user %s: %w", userID, err)
	}

	return auctions, nil
}
