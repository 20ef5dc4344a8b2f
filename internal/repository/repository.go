package repository

import (
	"context"
	"time"

	"agri-auction/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository agri-auction/internal/repository AuctionDB

// AuctionDB defines the storage interface for the auction system.
//
// Writes issued inside WithTx commit or roll back together. GetAuctionForUpdate
// holds the auction's lock until the surrounding transaction ends, which is what
// serializes concurrent bids and lifecycle transitions on the same auction.
type AuctionDB interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateAuction(ctx context.Context, auction models.Auction) error
	GetAuction(ctx context.Context, auctionID string) (models.Auction, error)
	GetAuctionForUpdate(ctx context.Context, auctionID string) (models.Auction, error)
	UpdateAuction(ctx context.Context, auction models.Auction) error
	ListDueAuctions(ctx context.Context, now time.Time, limit int) ([]models.Auction, error)
	GetAuctionsByUser(ctx context.Context, userID string) ([]models.Auction, error)

	CreateLot(ctx context.Context, lot models.AuctionLot) error
	GetLot(ctx context.Context, auctionID, lotID string) (models.AuctionLot, error)
	ListLots(ctx context.Context, auctionID string) ([]models.AuctionLot, error)
	UpdateLot(ctx context.Context, lot models.AuctionLot) error

	RecordBid(ctx context.Context, bid models.Bid) error
	UpdateBidStatus(ctx context.Context, auctionID, bidID string, status models.BidStatus) error
	GetHighestBid(ctx context.Context, auctionID string, lotID *string) (models.Bid, error)
	GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error)

	SaveParticipant(ctx context.Context, participant models.AuctionParticipant) error
	GetParticipant(ctx context.Context, auctionID, userID string) (models.AuctionParticipant, error)
	ListParticipants(ctx context.Context, auctionID string) ([]models.AuctionParticipant, error)

	SaveAutoBidSetting(ctx context.Context, setting models.AutoBidSetting) (models.AutoBidSetting, error)
	ListAutoBidSettings(ctx context.Context, auctionID string) ([]models.AutoBidSetting, error)

	AddToWatchlist(ctx context.Context, entry models.AuctionWatchlist) error
	RemoveFromWatchlist(ctx context.Context, userID, auctionID string) error
	GetWatchlist(ctx context.Context, userID string) ([]models.AuctionWatchlist, error)

	CreateSettlement(ctx context.Context, settlement models.AuctionSettlement) error
	GetSettlement(ctx context.Context, settlementID string) (models.AuctionSettlement, error)
	ListSettlementsByAuction(ctx context.Context, auctionID string) ([]models.AuctionSettlement, error)
	UpdateSettlement(ctx context.Context, settlement models.AuctionSettlement, expected models.SettlementStatus) error
}
