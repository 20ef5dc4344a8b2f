package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs. Amounts travel as JSON numbers or strings and decode into decimals.
type PlaceBidRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	LotID  *string         `json:"lot_id"`
	Amount decimal.Decimal `json:"amount"`
}

type CreateAuctionRequest struct {
	SellerID      string           `json:"seller_id" binding:"required"`
	ProductID     string           `json:"product_id" binding:"required"`
	Title         string           `json:"title"`
	StartTime     time.Time        `json:"start_timestamp" binding:"required"`
	EndTime       time.Time        `json:"end_timestamp" binding:"required"`
	StartingPrice decimal.Decimal  `json:"starting_price_per_unit"`
	MinIncrement  decimal.Decimal  `json:"minimum_bid_increment"`
	ReservePrice  *decimal.Decimal `json:"reserve_price_per_unit"`
	Quantity      decimal.Decimal  `json:"quantity_offered"`
	Unit          string           `json:"unit_of_measure"`
	Currency      string           `json:"currency" binding:"omitempty,len=3"`
	IsPrivate     bool             `json:"is_private_auction"`
}

type AddLotRequest struct {
	SellerID      string           `json:"seller_id" binding:"required"`
	Title         string           `json:"title"`
	Quantity      decimal.Decimal  `json:"quantity"`
	StartingPrice decimal.Decimal  `json:"starting_price_per_unit"`
	ReservePrice  *decimal.Decimal `json:"reserve_price_per_unit"`
}

type UserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type AutoBidRequest struct {
	UserID    string          `json:"user_id" binding:"required"`
	MaxAmount decimal.Decimal `json:"max_bid_amount_per_unit"`
	Increment decimal.Decimal `json:"increment_amount"`
}

type CancelRequest struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason" binding:"max=500"`
}

type ParticipantStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=REGISTERED APPROVED_TO_BID BLOCKED"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	LotID     string `json:"lot_id,omitempty"`
	UserID    string `json:"bidder_id"`
	Amount    string `json:"bid_amount_per_unit"`
	Status    string `json:"status"`
	IsAutoBid bool   `json:"is_auto_bid"`
	CreatedAt string `json:"bid_timestamp"`
}

type PlaceBidResponse struct {
	Bid               BidResponse   `json:"bid"`
	AutoBids          []BidResponse `json:"auto_bids"`
	CurrentHighestBid string        `json:"current_highest_bid"`
	HighestBidder     string        `json:"current_highest_bidder"`
	MinimumNextBid    string        `json:"minimum_next_bid"`
	Warnings          []string      `json:"warnings,omitempty"`
}
