package bidding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

// CreateAuctionInput describes a new auction listing
type CreateAuctionInput struct {
	SellerID      string
	ProductID     string
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	StartingPrice decimal.Decimal
	MinIncrement  decimal.Decimal
	ReservePrice  *decimal.Decimal
	Quantity      decimal.Decimal
	Unit          string
	Currency      string
	IsPrivate     bool
}

func (in CreateAuctionInput) validate(now time.Time) error {
	switch {
	case in.SellerID == "" || in.ProductID == "":
		return fmt.Errorf("service: %w - missing seller or product", biddingerrors.ErrInvalidAuction)
	case !in.EndTime.After(in.StartTime):
		return fmt.Errorf("service: %w - end must be after start", biddingerrors.ErrInvalidAuction)
	case !in.EndTime.After(now):
		return fmt.Errorf("service: %w - end is in the past", biddingerrors.ErrInvalidAuction)
	case !in.StartingPrice.IsPositive():
		return fmt.Errorf("service: %w - starting price must be positive", biddingerrors.ErrInvalidAuction)
	case !in.MinIncrement.IsPositive():
		return fmt.Errorf("service: %w - minimum increment must be positive", biddingerrors.ErrInvalidAuction)
	case !in.Quantity.IsPositive():
		return fmt.Errorf("service: %w - quantity must be positive", biddingerrors.ErrInvalidAuction)
	case in.ReservePrice != nil && !in.ReservePrice.IsPositive():
		return fmt.Errorf("service: %w - reserve price must be positive", biddingerrors.ErrInvalidAuction)
	case in.Currency != "" && len(in.Currency) != 3:
		return fmt.Errorf("service: %w - currency must be an ISO 4217 code", biddingerrors.ErrInvalidAuction)
	}
	return nil
}

// CreateAuction lists a new auction. It starts UPCOMING, or ACTIVE when the window is already open.
func (s *BiddingService) CreateAuction(ctx context.Context, in CreateAuctionInput) (models.Auction, error) {
	now := s.clock.Now()
	if err := in.validate(now); err != nil {
		return models.Auction{}, err
	}

	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = s.currency
	}
	status := models.AuctionStatusUpcoming
	if !now.Before(in.StartTime) {
		status = models.AuctionStatusActive
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		SellerID:      in.SellerID,
		ProductID:     in.ProductID,
		Title:         in.Title,
		Status:        status,
		StartTime:     in.StartTime.UTC(),
		EndTime:       in.EndTime.UTC(),
		StartingPrice: in.StartingPrice,
		MinIncrement:  in.MinIncrement,
		ReservePrice:  in.ReservePrice,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Currency:      currency,
		IsPrivate:     in.IsPrivate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  auction.SellerID,
		"status":     auction.Status,
	})
	return auction, nil
}

// AddLotInput describes a lot added by the auction's seller
type AddLotInput struct {
	AuctionID     string
	SellerID      string
	Title         string
	Quantity      decimal.Decimal
	StartingPrice decimal.Decimal
	ReservePrice  *decimal.Decimal
}

// AddLot attaches an independently priced lot to a non-terminal auction
func (s *BiddingService) AddLot(ctx context.Context, in AddLotInput) (models.AuctionLot, error) {
	if in.AuctionID == "" || in.SellerID == "" {
		return models.AuctionLot{}, fmt.Errorf("service: %w - missing auction or seller", biddingerrors.ErrInvalidAuction)
	}
	if !in.Quantity.IsPositive() || !in.StartingPrice.IsPositive() {
		return models.AuctionLot{}, fmt.Errorf("service: %w - lot quantity and starting price must be positive", biddingerrors.ErrInvalidAuction)
	}
	if in.ReservePrice != nil && !in.ReservePrice.IsPositive() {
		return models.AuctionLot{}, fmt.Errorf("service: %w - reserve price must be positive", biddingerrors.ErrInvalidAuction)
	}

	var lot models.AuctionLot
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		auction, err := s.repo.GetAuctionForUpdate(ctx, in.AuctionID)
		if err != nil {
			return fmt.Errorf("service: failed to load auction %s: %w", in.AuctionID, err)
		}
		if auction.SellerID != in.SellerID {
			return fmt.Errorf("service: %w - only the seller can add lots", biddingerrors.ErrNotAuthorized)
		}
		if auction.Status.IsTerminal() {
			return fmt.Errorf("service: %w - auction is %s", biddingerrors.ErrAuctionClosed, auction.Status)
		}

		lot = models.AuctionLot{
			LotID:         utils.GenerateID(),
			AuctionID:     in.AuctionID,
			Title:         in.Title,
			Quantity:      in.Quantity,
			StartingPrice: in.StartingPrice,
			ReservePrice:  in.ReservePrice,
			Status:        models.LotStatusOpen,
			CreatedAt:     s.clock.Now(),
		}
		if err := s.repo.CreateLot(ctx, lot); err != nil {
			return fmt.Errorf("service: failed to create lot: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.AuctionLot{}, err
	}
	return lot, nil
}

// AuctionDetails is an auction together with its lots
type AuctionDetails struct {
	models.Auction
	Lots []models.AuctionLot `json:"lots"`
}

// GetAuction returns an auction and its lots
func (s *BiddingService) GetAuction(ctx context.Context, auctionID string) (AuctionDetails, error) {
	if auctionID == "" {
		return AuctionDetails{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return AuctionDetails{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	lots, err := s.repo.ListLots(ctx, auctionID)
	if err != nil {
		return AuctionDetails{}, fmt.Errorf("service: failed to list lots for auction %s: %w", auctionID, err)
	}
	return AuctionDetails{Auction: auction, Lots: lots}, nil
}
