package models

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	AuctionStatusUpcoming  AuctionStatus = "UPCOMING"
	AuctionStatusActive    AuctionStatus = "ACTIVE"
	AuctionStatusClosed    AuctionStatus = "CLOSED"
	AuctionStatusCancelled AuctionStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible
func (s AuctionStatus) IsTerminal() bool {
	return s == AuctionStatusClosed || s == AuctionStatusCancelled
}

// CanTransitionTo reports whether s -> next is a legal lifecycle move
func (s AuctionStatus) CanTransitionTo(next AuctionStatus) bool {
	switch s {
	case AuctionStatusUpcoming:
		return next == AuctionStatusActive || next == AuctionStatusCancelled
	case AuctionStatusActive:
		return next == AuctionStatusClosed || next == AuctionStatusCancelled
	default:
		return false
	}
}

// AuctionOutcome is recorded when an auction closes
type AuctionOutcome string

const (
	AuctionOutcomeNone   AuctionOutcome = ""
	AuctionOutcomeSold   AuctionOutcome = "SOLD"
	AuctionOutcomeUnsold AuctionOutcome = "UNSOLD"
)

// LotStatus is the state of a single lot inside an auction
type LotStatus string

const (
	LotStatusOpen      LotStatus = "OPEN"
	LotStatusSold      LotStatus = "SOLD"
	LotStatusUnsold    LotStatus = "UNSOLD"
	LotStatusCancelled LotStatus = "CANCELLED"
)

// BidStatus tracks a bid's standing. Only status moves, the amount never changes.
type BidStatus string

const (
	BidStatusActiveHighest BidStatus = "ACTIVE_HIGHEST"
	BidStatusOutbid        BidStatus = "OUTBID"
	BidStatusWinning       BidStatus = "WINNING_BID"
)

// ParticipantStatus is a user's registration state for an auction
type ParticipantStatus string

const (
	ParticipantStatusRegistered ParticipantStatus = "REGISTERED"
	ParticipantStatusApproved   ParticipantStatus = "APPROVED_TO_BID"
	ParticipantStatusBlocked    ParticipantStatus = "BLOCKED"
)

// Valid reports whether s is a known participant status
func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantStatusRegistered, ParticipantStatusApproved, ParticipantStatusBlocked:
		return true
	}
	return false
}

// SettlementStatus progresses strictly forward
type SettlementStatus string

const (
	SettlementStatusPendingPayment SettlementStatus = "PENDING_PAYMENT"
	SettlementStatusPaid           SettlementStatus = "PAID"
	SettlementStatusSettled        SettlementStatus = "SETTLED"
)

func (s SettlementStatus) rank() int {
	switch s {
	case SettlementStatusPendingPayment:
		return 1
	case SettlementStatusPaid:
		return 2
	case SettlementStatusSettled:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo allows exactly one step forward
func (s SettlementStatus) CanAdvanceTo(next SettlementStatus) bool {
	return s.rank() > 0 && next.rank() == s.rank()+1
}

// UserStatus comes from the user/profile service
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)
