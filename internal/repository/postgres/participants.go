package postgres

import (
	"context"
	"fmt"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
)

func scanParticipant(row rowScanner) (models.AuctionParticipant, error) {
	var p models.AuctionParticipant
	err := row.Scan(&p.AuctionID, &p.UserID, &p.Status, &p.RegisteredAt, &p.UpdatedAt)
	return p, err
}

// SaveParticipant inserts or replaces the (auction, user) registration
func (r *Repository) SaveParticipant(ctx context.Context, p models.AuctionParticipant) error {
	const query = `
INSERT INTO auction_participants (auction_id, user_id, status, registered_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (auction_id, user_id) DO UPDATE
SET status = EXCLUDED.status, registered_at = EXCLUDED.registered_at, updated_at = EXCLUDED.updated_at`

	_, err := r.exec(ctx, query, p.AuctionID, p.UserID, p.Status, p.RegisteredAt, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("save participant: %w", biddingerrors.ErrAuctionNotFound)
		}
		return translate("save participant", err, nil)
	}
	return nil
}

func (r *Repository) GetParticipant(ctx context.Context, auctionID, userID string) (models.AuctionParticipant, error) {
	const query = `
SELECT auction_id, user_id, status, registered_at, updated_at
FROM auction_participants WHERE auction_id = $1 AND user_id = $2`

	if !validID(auctionID) {
		return models.AuctionParticipant{}, fmt.Errorf("get participant %s: %w", userID, biddingerrors.ErrParticipantMissing)
	}
	p, err := scanParticipant(r.queryRow(ctx, query, auctionID, userID))
	if err != nil {
		return models.AuctionParticipant{}, translate("get participant "+userID, err, biddingerrors.ErrParticipantMissing)
	}
	return p, nil
}

func (r *Repository) ListParticipants(ctx context.Context, auctionID string) ([]models.AuctionParticipant, error) {
	const query = `
SELECT auction_id, user_id, status, registered_at, updated_at
FROM auction_participants WHERE auction_id = $1
ORDER BY registered_at, user_id`

	if !validID(auctionID) {
		return []models.AuctionParticipant{}, nil
	}
	rows, err := r.query(ctx, query, auctionID)
	if err != nil {
		return nil, translate("list participants", err, nil)
	}
	out, err := collect(rows, scanParticipant)
	if err != nil {
		return nil, translate("list participants", err, nil)
	}
	if out == nil {
		out = []models.AuctionParticipant{}
	}
	return out, nil
}

const autoBidColumns = `setting_id, seq, auction_id, user_id, max_amount, increment, is_active, created_at, updated_at`

func scanAutoBid(row rowScanner) (models.AutoBidSetting, error) {
	var s models.AutoBidSetting
	err := row.Scan(&s.SettingID, &s.Seq, &s.AuctionID, &s.UserID, &s.MaxAmount, &s.Increment,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// SaveAutoBidSetting upserts the (auction, user) setting. An existing row keeps its id,
// sequence and creation time.
func (r *Repository) SaveAutoBidSetting(ctx context.Context, s models.AutoBidSetting) (models.AutoBidSetting, error) {
	const query = `
INSERT INTO auto_bid_settings (setting_id, auction_id, user_id, max_amount, increment, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (auction_id, user_id) DO UPDATE
SET max_amount = EXCLUDED.max_amount, increment = EXCLUDED.increment,
	is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at
RETURNING ` + autoBidColumns

	saved, err := scanAutoBid(r.queryRow(ctx, query, s.SettingID, s.AuctionID, s.UserID, s.MaxAmount,
		s.Increment, s.IsActive, s.CreatedAt, s.UpdatedAt))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.AutoBidSetting{}, fmt.Errorf("save auto-bid: %w", biddingerrors.ErrAuctionNotFound)
		}
		return models.AutoBidSetting{}, translate("save auto-bid", err, nil)
	}
	return saved, nil
}

func (r *Repository) ListAutoBidSettings(ctx context.Context, auctionID string) ([]models.AutoBidSetting, error) {
	const query = `SELECT ` + autoBidColumns + ` FROM auto_bid_settings WHERE auction_id = $1 ORDER BY seq`

	if !validID(auctionID) {
		return nil, nil
	}
	rows, err := r.query(ctx, query, auctionID)
	if err != nil {
		return nil, translate("list auto-bids", err, nil)
	}
	out, err := collect(rows, scanAutoBid)
	if err != nil {
		return nil, translate("list auto-bids", err, nil)
	}
	return out, nil
}

func (r *Repository) AddToWatchlist(ctx context.Context, entry models.AuctionWatchlist) error {
	const query = `INSERT INTO auction_watchlist (user_id, auction_id, added_at) VALUES ($1, $2, $3)`

	if !validID(entry.AuctionID) {
		return fmt.Errorf("add to watchlist: %w", biddingerrors.ErrAuctionNotFound)
	}
	_, err := r.exec(ctx, query, entry.UserID, entry.AuctionID, entry.AddedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("add to watchlist %s: %w", entry.AuctionID, biddingerrors.ErrAlreadyWatching)
		case isForeignKeyViolation(err):
			return fmt.Errorf("add to watchlist: %w", biddingerrors.ErrAuctionNotFound)
		}
		return translate("add to watchlist", err, nil)
	}
	return nil
}

func (r *Repository) RemoveFromWatchlist(ctx context.Context, userID, auctionID string) error {
	const query = `DELETE FROM auction_watchlist WHERE user_id = $1 AND auction_id = $2`

	if !validID(auctionID) {
		return fmt.Errorf("remove from watchlist %s: %w", auctionID, biddingerrors.ErrNotWatching)
	}
	tag, err := r.exec(ctx, query, userID, auctionID)
	if err != nil {
		return translate("remove from watchlist", err, nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("remove from watchlist %s: %w", auctionID, biddingerrors.ErrNotWatching)
	}
	return nil
}

func (r *Repository) GetWatchlist(ctx context.Context, userID string) ([]models.AuctionWatchlist, error) {
	const query = `
SELECT user_id, auction_id, added_at FROM auction_watchlist
WHERE user_id = $1 ORDER BY added_at, auction_id`

	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, translate("get watchlist", err, nil)
	}
	out, err := collect(rows, func(row rowScanner) (models.AuctionWatchlist, error) {
		var w models.AuctionWatchlist
		err := row.Scan(&w.UserID, &w.AuctionID, &w.AddedAt)
		return w, err
	})
	if err != nil {
		return nil, translate("get watchlist", err, nil)
	}
	if out == nil {
		out = []models.AuctionWatchlist{}
	}
	return out, nil
}
