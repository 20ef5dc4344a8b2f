package postgres

import (
	"context"
	"fmt"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
)

const settlementColumns = `settlement_id, auction_id, lot_id, winning_bid_id, seller_id, winner_id,
	amount_per_unit, quantity, currency, status, order_id, created_at, paid_at, settled_at, last_payment_note`

func scanSettlement(row rowScanner) (models.AuctionSettlement, error) {
	var s models.AuctionSettlement
	err := row.Scan(&s.SettlementID, &s.AuctionID, &s.LotID, &s.WinningBidID, &s.SellerID, &s.WinnerID,
		&s.AmountPerUnit, &s.Quantity, &s.Currency, &s.Status, &s.OrderID, &s.CreatedAt, &s.PaidAt,
		&s.SettledAt, &s.LastPaymentNote)
	return s, err
}

// CreateSettlement stores a settlement; the scope index allows one per auction or lot
func (r *Repository) CreateSettlement(ctx context.Context, s models.AuctionSettlement) error {
	const query = `
INSERT INTO auction_settlements (` + settlementColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.exec(ctx, query, s.SettlementID, s.AuctionID, s.LotID, s.WinningBidID, s.SellerID, s.WinnerID,
		s.AmountPerUnit, s.Quantity, s.Currency, s.Status, s.OrderID, s.CreatedAt, s.PaidAt, s.SettledAt,
		s.LastPaymentNote)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("create settlement for auction %s: %w", s.AuctionID, biddingerrors.ErrSettlementExists)
		case isForeignKeyViolation(err):
			return fmt.Errorf("create settlement: %w", biddingerrors.ErrAuctionNotFound)
		}
		return translate("create settlement", err, nil)
	}
	return nil
}

func (r *Repository) GetSettlement(ctx context.Context, settlementID string) (models.AuctionSettlement, error) {
	const query = `SELECT ` + settlementColumns + ` FROM auction_settlements WHERE settlement_id = $1`

	if !validID(settlementID) {
		return models.AuctionSettlement{}, fmt.Errorf("get settlement %s: %w", settlementID, biddingerrors.ErrSettlementNotFound)
	}
	s, err := scanSettlement(r.queryRow(ctx, query, settlementID))
	if err != nil {
		return models.AuctionSettlement{}, translate("get settlement "+settlementID, err, biddingerrors.ErrSettlementNotFound)
	}
	return s, nil
}

func (r *Repository) ListSettlementsByAuction(ctx context.Context, auctionID string) ([]models.AuctionSettlement, error) {
	const query = `
SELECT ` + settlementColumns + ` FROM auction_settlements
WHERE auction_id = $1 ORDER BY created_at, settlement_id`

	if !validID(auctionID) {
		return nil, nil
	}
	rows, err := r.query(ctx, query, auctionID)
	if err != nil {
		return nil, translate("list settlements", err, nil)
	}
	out, err := collect(rows, scanSettlement)
	if err != nil {
		return nil, translate("list settlements", err, nil)
	}
	return out, nil
}

// UpdateSettlement writes s only if the stored status still equals expected
func (r *Repository) UpdateSettlement(ctx context.Context, s models.AuctionSettlement, expected models.SettlementStatus) error {
	const query = `
UPDATE auction_settlements SET
	status = $3, order_id = $4, paid_at = $5, settled_at = $6, last_payment_note = $7
WHERE settlement_id = $1 AND status = $2`

	tag, err := r.exec(ctx, query, s.SettlementID, expected, s.Status, s.OrderID, s.PaidAt, s.SettledAt, s.LastPaymentNote)
	if err != nil {
		return translate("update settlement "+s.SettlementID, err, nil)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM auction_settlements WHERE settlement_id = $1)`, s.SettlementID).
		Scan(&exists); err != nil {
		return translate("update settlement "+s.SettlementID, err, nil)
	}
	if !exists {
		return fmt.Errorf("update settlement %s: %w", s.SettlementID, biddingerrors.ErrSettlementNotFound)
	}
	return fmt.Errorf("update settlement %s: %w", s.SettlementID, biddingerrors.ErrSettlementStatus)
}
