package main

import (
	"context"
	"fmt"
	"time"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/external"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/shopspring/decimal"
)

// seedDemoData registers a few users with funds and lists two running auctions
func seedDemoData(ctx context.Context, svc *bidding.BiddingService, users *external.MemoryDirectory, wallet *external.MemoryWallet) error {
	for _, u := range []models.User{
		{UserID: "farmer-1", Username: "green-valley-farm", Status: models.UserStatusActive},
		{UserID: "buyer-1", Username: "mill-co", Status: models.UserStatusActive},
		{UserID: "buyer-2", Username: "grain-traders", Status: models.UserStatusActive},
		{UserID: "buyer-3", Username: "bakery-coop", Status: models.UserStatusActive},
	} {
		users.AddUser(u)
		wallet.Deposit(u.UserID, decimal.NewFromInt(1_000_000))
	}

	now := time.Now().UTC()
	wheat, err := svc.CreateAuction(ctx, bidding.CreateAuctionInput{
		SellerID:      "farmer-1",
		ProductID:     "wheat-hard-red",
		Title:         "Hard red winter wheat",
		StartTime:     now.Add(-time.Minute),
		EndTime:       now.Add(24 * time.Hour),
		StartingPrice: decimal.RequireFromString("210.00"),
		MinIncrement:  decimal.RequireFromString("2.50"),
		Quantity:      decimal.NewFromInt(40),
		Unit:          "TON",
	})
	if err != nil {
		return fmt.Errorf("seed wheat auction: %w", err)
	}

	reserve := decimal.RequireFromString("95.00")
	potatoes, err := svc.CreateAuction(ctx, bidding.CreateAuctionInput{
		SellerID:      "farmer-1",
		ProductID:     "potato-russet",
		Title:         "Russet potatoes, graded lots",
		StartTime:     now.Add(-time.Minute),
		EndTime:       now.Add(6 * time.Hour),
		StartingPrice: decimal.RequireFromString("80.00"),
		MinIncrement:  decimal.RequireFromString("1.00"),
		ReservePrice:  &reserve,
		Quantity:      decimal.NewFromInt(12),
		Unit:          "TON",
	})
	if err != nil {
		return fmt.Errorf("seed potato auction: %w", err)
	}
	for _, lot := range []bidding.AddLotInput{
		{Title: "Grade A", Quantity: decimal.NewFromInt(8), StartingPrice: decimal.RequireFromString("90.00")},
		{Title: "Grade B", Quantity: decimal.NewFromInt(4), StartingPrice: decimal.RequireFromString("60.00")},
	} {
		lot.AuctionID = potatoes.AuctionID
		lot.SellerID = potatoes.SellerID
		if _, err := svc.AddLot(ctx, lot); err != nil {
			return fmt.Errorf("seed lot %s: %w", lot.Title, err)
		}
	}

	utils.Info("Seeded demo data", map[string]any{
		"wheat_auction_id":  wheat.AuctionID,
		"potato_auction_id": potatoes.AuctionID,
	})
	return nil
}
