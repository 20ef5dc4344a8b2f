package biddingerrors

import "errors"

// Kind groups sentinel errors by how callers should react
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindForbidden
)

// Repository-level errors
var (
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrLotNotFound        = errors.New("lot not found")
	ErrBidNotFound        = errors.New("bid not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrParticipantMissing = errors.New("participant not registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoBids             = errors.New("no bids found for auction")
	ErrUserNoBids         = errors.New("user has not placed any bids")
	ErrAlreadyWatching    = errors.New("auction already on watchlist")
	ErrNotWatching        = errors.New("auction not on watchlist")
	ErrAutoBidNotFound    = errors.New("auto-bid setting not found")
	ErrInvalidID          = errors.New("invalid id")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrAuctionNotActive  = errors.New("auction not active")
	ErrLotNotOpen        = errors.New("lot not open for bidding")
	ErrSellerCannotBid   = errors.New("seller cannot bid on own auction")
	ErrNotApproved       = errors.New("bidder not approved for private auction")
	ErrUserIneligible    = errors.New("user not eligible to bid")
	ErrInvalidAuction    = errors.New("invalid auction details")
	ErrInvalidAutoBid    = errors.New("invalid auto-bid setting")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAuthorized     = errors.New("not authorized for auction")
	ErrRateLimited       = errors.New("too many bids")
	ErrPaymentFailed     = errors.New("payment failed")
)

// concurrency errors, caller retries with fresh state
var (
	ErrConflict         = errors.New("concurrent modification")
	ErrAuctionClosed    = errors.New("auction already closed")
	ErrSettlementExists = errors.New("settlement already exists")
	ErrSettlementStatus = errors.New("settlement status changed")
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindNotFound, []error{ErrAuctionNotFound, ErrLotNotFound, ErrBidNotFound, ErrSettlementNotFound, ErrParticipantMissing, ErrNoBids, ErrUserNoBids, ErrNotWatching, ErrAutoBidNotFound}},
	{KindConflict, []error{ErrConflict, ErrAuctionClosed, ErrSettlementExists, ErrSettlementStatus, ErrAlreadyWatching}},
	{KindForbidden, []error{ErrNotAuthorized}},
	{KindValidation, []error{
		ErrInvalidBid, ErrBidTooLow, ErrAuctionNotActive, ErrLotNotOpen, ErrSellerCannotBid, ErrNotApproved,
		ErrUserIneligible, ErrUserNotFound, ErrInvalidAuction, ErrInvalidAutoBid, ErrInvalidTransition,
		ErrInvalidID, ErrRateLimited, ErrPaymentFailed,
	}},
}

// KindOf classifies err by the first sentinel it wraps
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, group := range kinds {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.kind
			}
		}
	}
	return KindInternal
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}
