package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionSettlement is the payable obligation created when an auction (or lot) sells
type AuctionSettlement struct {
	SettlementID    string           `json:"settlement_id"`
	AuctionID       string           `json:"auction_id"`
	LotID           *string          `json:"lot_id,omitempty"`
	WinningBidID    string           `json:"winning_bid_id"`
	SellerID        string           `json:"seller_id"`
	WinnerID        string           `json:"winner_id"`
	AmountPerUnit   decimal.Decimal  `json:"winning_bid_amount_per_unit"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Currency        string           `json:"currency"`
	Status          SettlementStatus `json:"settlement_status"`
	OrderID         string           `json:"order_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	PaidAt          *time.Time       `json:"paid_at,omitempty"`
	SettledAt       *time.Time       `json:"settled_at,omitempty"`
	LastPaymentNote string           `json:"last_payment_note,omitempty"`
}

// TotalAmount is the per-unit price times the quantity sold
func (s AuctionSettlement) TotalAmount() decimal.Decimal {
	return s.AmountPerUnit.Mul(s.Quantity)
}
