package postgres

import (
	"context"
	"fmt"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"

	"github.com/shopspring/decimal"
)

const auctionColumns = `auction_id, seller_id, product_id, title, status, outcome, start_time, end_time,
	starting_price, min_increment, reserve_price, quantity, unit, currency, is_private,
	current_highest_bid, current_highest_bidder, total_bids, cancellation_reason, created_at, updated_at`

func scanAuction(row rowScanner) (models.Auction, error) {
	var (
		a       models.Auction
		reserve decimal.NullDecimal
		highest decimal.NullDecimal
	)
	err := row.Scan(
		&a.AuctionID, &a.SellerID, &a.ProductID, &a.Title, &a.Status, &a.Outcome, &a.StartTime, &a.EndTime,
		&a.StartingPrice, &a.MinIncrement, &reserve, &a.Quantity, &a.Unit, &a.Currency, &a.IsPrivate,
		&highest, &a.CurrentHighestBidder, &a.TotalBids, &a.CancellationReason, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return models.Auction{}, err
	}
	a.ReservePrice = decimalPtr(reserve)
	a.CurrentHighestBid = decimalPtr(highest)
	return a, nil
}

func (r *Repository) CreateAuction(ctx context.Context, a models.Auction) error {
	const query = `
INSERT INTO auctions (` + auctionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.exec(ctx, query,
		a.AuctionID, a.SellerID, a.ProductID, a.Title, a.Status, a.Outcome, a.StartTime, a.EndTime,
		a.StartingPrice, a.MinIncrement, nullDecimal(a.ReservePrice), a.Quantity, a.Unit, a.Currency, a.IsPrivate,
		nullDecimal(a.CurrentHighestBid), a.CurrentHighestBidder, a.TotalBids, a.CancellationReason, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create auction %s: %w", a.AuctionID, biddingerrors.ErrConflict)
		}
		return translate("create auction", err, nil)
	}
	return nil
}

func (r *Repository) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if !validID(auctionID) {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE auction_id = $1`
	a, err := scanAuction(r.queryRow(ctx, query, auctionID))
	if err != nil {
		return models.Auction{}, translate("get auction "+auctionID, err, biddingerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetAuctionForUpdate row-locks the auction until the surrounding transaction ends
func (r *Repository) GetAuctionForUpdate(ctx context.Context, auctionID string) (models.Auction, error) {
	if !validID(auctionID) {
		return models.Auction{}, fmt.Errorf("lock auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE auction_id = $1 FOR UPDATE`
	a, err := scanAuction(r.queryRow(ctx, query, auctionID))
	if err != nil {
		return models.Auction{}, translate("lock auction "+auctionID, err, biddingerrors.ErrAuctionNotFound)
	}
	return a, nil
}

func (r *Repository) UpdateAuction(ctx context.Context, a models.Auction) error {
	const query = `
UPDATE auctions SET
	title = $2, status = $3, outcome = $4, start_time = $5, end_time = $6, reserve_price = $7,
	current_highest_bid = $8, current_highest_bidder = $9, total_bids = $10,
	cancellation_reason = $11, updated_at = $12
WHERE auction_id = $1`

	tag, err := r.exec(ctx, query,
		a.AuctionID, a.Title, a.Status, a.Outcome, a.StartTime, a.EndTime, nullDecimal(a.ReservePrice),
		nullDecimal(a.CurrentHighestBid), a.CurrentHighestBidder, a.TotalBids,
		a.CancellationReason, a.UpdatedAt,
	)
	if err != nil {
		return translate("update auction "+a.AuctionID, err, nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update auction %s: %w", a.AuctionID, biddingerrors.ErrAuctionNotFound)
	}
	return nil
}

// ListDueAuctions returns auctions whose start or end has passed without the matching
// transition, earliest end first
func (r *Repository) ListDueAuctions(ctx context.Context, now time.Time, limit int) ([]models.Auction, error) {
	query := `
SELECT ` + auctionColumns + `
FROM auctions
WHERE (status = 'UPCOMING' AND start_time <= $1) OR (status = 'ACTIVE' AND end_time <= $1)
ORDER BY end_time, auction_id
LIMIT NULLIF($2::int, 0)`

	rows, err := r.query(ctx, query, now, limit)
	if err != nil {
		return nil, translate("list due auctions", err, nil)
	}
	due, err := collect(rows, scanAuction)
	if err != nil {
		return nil, translate("list due auctions", err, nil)
	}
	return due, nil
}

// GetAuctionsByUser returns the auctions a user has bid on, in order of their first bid
func (r *Repository) GetAuctionsByUser(ctx context.Context, userID string) ([]models.Auction, error) {
	query := `
SELECT ` + auctionColumns + `
FROM auctions
JOIN (
	SELECT auction_id, MIN(seq) AS first_seq FROM bids WHERE user_id = $1 GROUP BY auction_id
) AS mine USING (auction_id)
ORDER BY mine.first_seq`

	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, translate("get auctions for user "+userID, err, nil)
	}
	out, err := collect(rows, scanAuction)
	if err != nil {
		return nil, translate("get auctions for user "+userID, err, nil)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, biddingerrors.ErrUserNoBids)
	}
	return out, nil
}

const lotColumns = `lot_id, auction_id, title, quantity, starting_price, reserve_price, status,
	current_highest_bid, current_highest_bidder, total_bids, created_at`

func scanLot(row rowScanner) (models.AuctionLot, error) {
	var (
		l       models.AuctionLot
		reserve decimal.NullDecimal
		highest decimal.NullDecimal
	)
	err := row.Scan(&l.LotID, &l.AuctionID, &l.Title, &l.Quantity, &l.StartingPrice, &reserve, &l.Status,
		&highest, &l.CurrentHighestBidder, &l.TotalBids, &l.CreatedAt)
	if err != nil {
		return models.AuctionLot{}, err
	}
	l.ReservePrice = decimalPtr(reserve)
	l.CurrentHighestBid = decimalPtr(highest)
	return l, nil
}

func (r *Repository) CreateLot(ctx context.Context, l models.AuctionLot) error {
	const query = `
INSERT INTO auction_lots (` + lotColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.exec(ctx, query, l.LotID, l.AuctionID, l.Title, l.Quantity, l.StartingPrice,
		nullDecimal(l.ReservePrice), l.Status, nullDecimal(l.CurrentHighestBid), l.CurrentHighestBidder,
		l.TotalBids, l.CreatedAt)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("create lot: %w", biddingerrors.ErrAuctionNotFound)
		case isUniqueViolation(err):
			return fmt.Errorf("create lot %s: %w", l.LotID, biddingerrors.ErrConflict)
		}
		return translate("create lot", err, nil)
	}
	return nil
}

func (r *Repository) GetLot(ctx context.Context, auctionID, lotID string) (models.AuctionLot, error) {
	if !validID(auctionID, lotID) {
		return models.AuctionLot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	query := `SELECT ` + lotColumns + ` FROM auction_lots WHERE lot_id = $1 AND auction_id = $2`
	l, err := scanLot(r.queryRow(ctx, query, lotID, auctionID))
	if err != nil {
		return models.AuctionLot{}, translate("get lot "+lotID, err, biddingerrors.ErrLotNotFound)
	}
	return l, nil
}

func (r *Repository) ListLots(ctx context.Context, auctionID string) ([]models.AuctionLot, error) {
	if !validID(auctionID) {
		return []models.AuctionLot{}, nil
	}
	query := `SELECT ` + lotColumns + ` FROM auction_lots WHERE auction_id = $1 ORDER BY seq`
	rows, err := r.query(ctx, query, auctionID)
	if err != nil {
		return nil, translate("list lots", err, nil)
	}
	lots, err := collect(rows, scanLot)
	if err != nil {
		return nil, translate("list lots", err, nil)
	}
	if lots == nil {
		lots = []models.AuctionLot{}
	}
	return lots, nil
}

func (r *Repository) UpdateLot(ctx context.Context, l models.AuctionLot) error {
	const query = `
UPDATE auction_lots SET
	title = $2, reserve_price = $3, status = $4, current_highest_bid = $5,
	current_highest_bidder = $6, total_bids = $7
WHERE lot_id = $1`

	tag, err := r.exec(ctx, query, l.LotID, l.Title, nullDecimal(l.ReservePrice), l.Status,
		nullDecimal(l.CurrentHighestBid), l.CurrentHighestBidder, l.TotalBids)
	if err != nil {
		return translate("update lot "+l.LotID, err, nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update lot %s: %w", l.LotID, biddingerrors.ErrLotNotFound)
	}
	return nil
}
