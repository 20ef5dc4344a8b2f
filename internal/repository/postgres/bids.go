package postgres

import (
	"context"
	"fmt"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
)

const bidColumns = `bid_id, auction_id, lot_id, user_id, amount, status, is_auto_bid, created_at`

func scanBid(row rowScanner) (models.Bid, error) {
	var b models.Bid
	err := row.Scan(&b.BidID, &b.AuctionID, &b.LotID, &b.UserID, &b.Amount, &b.Status, &b.IsAutoBid, &b.CreatedAt)
	return b, err
}

// RecordBid appends to the ledger. The partial unique index rejects a second
// standing bid in the same scope.
func (r *Repository) RecordBid(ctx context.Context, b models.Bid) error {
	const query = `INSERT INTO bids (` + bidColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.exec(ctx, query, b.BidID, b.AuctionID, b.LotID, b.UserID, b.Amount, b.Status, b.IsAutoBid, b.CreatedAt)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("record bid for auction %s: %w", b.AuctionID, biddingerrors.ErrAuctionNotFound)
		case isUniqueViolation(err):
			return fmt.Errorf("record bid for auction %s: %w", b.AuctionID, biddingerrors.ErrConflict)
		}
		return translate("record bid", err, nil)
	}
	return nil
}

func (r *Repository) UpdateBidStatus(ctx context.Context, auctionID, bidID string, status models.BidStatus) error {
	if !validID(auctionID, bidID) {
		return fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	const query = `UPDATE bids SET status = $3 WHERE auction_id = $1 AND bid_id = $2`

	tag, err := r.exec(ctx, query, auctionID, bidID, status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrConflict)
		}
		return translate("update bid "+bidID, err, nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return nil
}

// GetHighestBid returns the standing (ACTIVE_HIGHEST or WINNING_BID) bid for a scope
func (r *Repository) GetHighestBid(ctx context.Context, auctionID string, lotID *string) (models.Bid, error) {
	const query = `
SELECT ` + bidColumns + `
FROM bids
WHERE auction_id = $1 AND lot_id IS NOT DISTINCT FROM $2::uuid
	AND status IN ('ACTIVE_HIGHEST', 'WINNING_BID')
LIMIT 1`

	if !validID(auctionID) || (lotID != nil && !validID(*lotID)) {
		return models.Bid{}, fmt.Errorf("get highest bid for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	b, err := scanBid(r.queryRow(ctx, query, auctionID, lotID))
	if err != nil {
		return models.Bid{}, translate("get highest bid for auction "+auctionID, err, biddingerrors.ErrNoBids)
	}
	return b, nil
}

// GetBidsByAuction returns the auction's ledger in arrival order
func (r *Repository) GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	const query = `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 ORDER BY seq`

	if !validID(auctionID) {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	rows, err := r.query(ctx, query, auctionID)
	if err != nil {
		return nil, translate("get bids for auction "+auctionID, err, nil)
	}
	bids, err := collect(rows, scanBid)
	if err != nil {
		return nil, translate("get bids for auction "+auctionID, err, nil)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return bids, nil
}
