package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the slice of the profile service the auction core cares about
type User struct {
	UserID   string     `json:"user_id"`
	Username string     `json:"username"`
	Status   UserStatus `json:"status"`
	IsAdmin  bool       `json:"is_admin"`
}

// Auction is a seller's offer of a product quantity for competitive bidding.
// CurrentHighestBid, CurrentHighestBidder and TotalBids are a cache over the bid ledger.
type Auction struct {
	AuctionID            string           `json:"auction_id"`
	SellerID             string           `json:"seller_id"`
	ProductID            string           `json:"product_id"`
	Title                string           `json:"title"`
	Status               AuctionStatus    `json:"status"`
	Outcome              AuctionOutcome   `json:"outcome,omitempty"`
	StartTime            time.Time        `json:"start_timestamp"`
	EndTime              time.Time        `json:"end_timestamp"`
	StartingPrice        decimal.Decimal  `json:"starting_price_per_unit"`
	MinIncrement         decimal.Decimal  `json:"minimum_bid_increment"`
	ReservePrice         *decimal.Decimal `json:"reserve_price_per_unit,omitempty"`
	Quantity             decimal.Decimal  `json:"quantity_offered"`
	Unit                 string           `json:"unit_of_measure"`
	Currency             string           `json:"currency"`
	IsPrivate            bool             `json:"is_private_auction"`
	CurrentHighestBid    *decimal.Decimal `json:"current_highest_bid,omitempty"`
	CurrentHighestBidder string           `json:"current_highest_bidder,omitempty"`
	TotalBids            int              `json:"total_bids_count"`
	CancellationReason   string           `json:"cancellation_reason,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// MinimumNextBid returns the lowest acceptable per-unit amount for the auction-level scope
func (a Auction) MinimumNextBid() decimal.Decimal {
	return MinimumNextBid(a.StartingPrice, a.CurrentHighestBid, a.MinIncrement)
}

// InWindow reports whether now lies within [start, end]
func (a Auction) InWindow(now time.Time) bool {
	return !now.Before(a.StartTime) && !now.After(a.EndTime)
}

// ReserveMet reports whether amount satisfies the reserve, if any
func (a Auction) ReserveMet(amount decimal.Decimal) bool {
	return a.ReservePrice == nil || amount.GreaterThanOrEqual(*a.ReservePrice)
}

// AuctionLot is an independently priced sub-grouping of an auction
type AuctionLot struct {
	LotID                string           `json:"lot_id"`
	AuctionID            string           `json:"auction_id"`
	Title                string           `json:"title"`
	Quantity             decimal.Decimal  `json:"quantity"`
	StartingPrice        decimal.Decimal  `json:"starting_price_per_unit"`
	ReservePrice         *decimal.Decimal `json:"reserve_price_per_unit,omitempty"`
	Status               LotStatus        `json:"status"`
	CurrentHighestBid    *decimal.Decimal `json:"current_highest_bid,omitempty"`
	CurrentHighestBidder string           `json:"current_highest_bidder,omitempty"`
	TotalBids            int              `json:"total_bids_count"`
	CreatedAt            time.Time        `json:"created_at"`
}

// MinimumNextBid uses the owning auction's increment
func (l AuctionLot) MinimumNextBid(increment decimal.Decimal) decimal.Decimal {
	return MinimumNextBid(l.StartingPrice, l.CurrentHighestBid, increment)
}

// ReserveMet reports whether amount satisfies the lot reserve, if any
func (l AuctionLot) ReserveMet(amount decimal.Decimal) bool {
	return l.ReservePrice == nil || amount.GreaterThanOrEqual(*l.ReservePrice)
}

// MinimumNextBid is the starting price until a highest bid exists, then highest + increment
func MinimumNextBid(starting decimal.Decimal, highest *decimal.Decimal, increment decimal.Decimal) decimal.Decimal {
	if highest == nil {
		return starting
	}
	return highest.Add(increment)
}

// Bid represents a user's per-unit offer on an auction or one of its lots
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	LotID     *string         `json:"lot_id,omitempty"`
	UserID    string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"bid_amount_per_unit"`
	Status    BidStatus       `json:"status"`
	IsAutoBid bool            `json:"is_auto_bid"`
	CreatedAt time.Time       `json:"bid_timestamp"`
}

// SameScope reports whether the bid targets the given lot (nil = auction level)
func (b Bid) SameScope(lotID *string) bool {
	if b.LotID == nil || lotID == nil {
		return b.LotID == nil && lotID == nil
	}
	return *b.LotID == *lotID
}

// AuctionParticipant records a user's registration to bid
type AuctionParticipant struct {
	AuctionID    string            `json:"auction_id"`
	UserID       string            `json:"user_id"`
	Status       ParticipantStatus `json:"status"`
	RegisteredAt time.Time         `json:"registered_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// AutoBidSetting is a standing instruction to counter-bid up to a ceiling.
// Seq orders settings by registration and breaks ties between equal ceilings.
type AutoBidSetting struct {
	SettingID string          `json:"setting_id"`
	Seq       int64           `json:"seq"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	MaxAmount decimal.Decimal `json:"max_bid_amount_per_unit"`
	Increment decimal.Decimal `json:"increment_amount"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AuctionWatchlist marks an auction a user follows
type AuctionWatchlist struct {
	UserID    string    `json:"user_id"`
	AuctionID string    `json:"auction_id"`
	AddedAt   time.Time `json:"added_at"`
}
