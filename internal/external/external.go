// Package external holds the collaborators the auction core calls into but does not own:
// wallet, notifications, user profiles and orders.
package external

import (
	"context"
	"errors"
	"time"

	"agri-auction/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_external.go -package=external agri-auction/internal/external Wallet,Notifier,UserDirectory,OrderService

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrQueueFull         = errors.New("notification queue full")
)

// Wallet holds, charges and releases buyer funds
type Wallet interface {
	HoldFunds(ctx context.Context, userID string, amount decimal.Decimal) error
	Charge(ctx context.Context, userID string, amount decimal.Decimal) error
	ReleaseHold(ctx context.Context, userID string, amount decimal.Decimal) error
}

// EventType names a notification the core emits
type EventType string

const (
	EventBidOutbid        EventType = "BID_OUTBID"
	EventAuctionWon       EventType = "AUCTION_WON"
	EventAuctionCancelled EventType = "AUCTION_CANCELLED"
)

// Event is a fire-and-forget notification
type Event struct {
	Type       EventType        `json:"event"`
	AuctionID  string           `json:"auction_id"`
	LotID      *string          `json:"lot_id,omitempty"`
	UserID     string           `json:"user_id"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Message    string           `json:"message"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Notifier delivers events. Delivery failure never affects auction state.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// UserDirectory resolves identities from the user/profile service
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// OrderService creates the downstream order once a settlement is paid
type OrderService interface {
	CreateOrder(ctx context.Context, settlement models.AuctionSettlement) (string, error)
}
