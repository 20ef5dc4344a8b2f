package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Auction rows are locked per transaction; failed transactions replay an undo journal.
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]models.Auction
	lots         map[string]models.AuctionLot
	lotOrder     map[string][]string                             // auctionID -> lotIDs
	bids         map[string][]models.Bid                         // auctionID -> bids in arrival order
	userAuctions map[string][]string                             // userID -> auctionIDs bid on
	participants map[string]map[string]models.AuctionParticipant // auctionID -> userID -> participant
	autoBids     map[string][]models.AutoBidSetting              // auctionID -> settings by seq
	watchlist    map[string]map[string]models.AuctionWatchlist   // userID -> auctionID -> entry
	settlements  map[string]models.AuctionSettlement             // settlementID -> settlement
	scopes       map[string]string                               // auction/lot scope -> settlementID
	autoBidSeq   int64

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]models.Auction),
		lots:         make(map[string]models.AuctionLot),
		lotOrder:     make(map[string][]string),
		bids:         make(map[string][]models.Bid),
		userAuctions: make(map[string][]string),
		participants: make(map[string]map[string]models.AuctionParticipant),
		autoBids:     make(map[string][]models.AutoBidSetting),
		watchlist:    make(map[string]map[string]models.AuctionWatchlist),
		settlements:  make(map[string]models.AuctionSettlement),
		scopes:       make(map[string]string),
		locks:        make(map[string]*sync.Mutex),
	}
}

type txKey struct{}

type memTx struct {
	held map[string]*sync.Mutex
	undo []func()
}

func txFromContext(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey{}).(*memTx)
	return tx
}

// WithTx runs fn in a transaction. Nested calls join the outer transaction.
func (r *MemoryRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx := &memTx{held: make(map[string]*sync.Mutex)}
	committed := false
	// runs on error and on panic alike
	defer func() {
		if !committed {
			r.mu.Lock()
			for i := len(tx.undo) - 1; i >= 0; i-- {
				tx.undo[i]()
			}
			r.mu.Unlock()
		}
		for _, l := range tx.held {
			l.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	committed = true
	return nil
}

// journal must be called with r.mu held
func (r *MemoryRepo) journal(ctx context.Context, undo func()) {
	if tx := txFromContext(ctx); tx != nil {
		tx.undo = append(tx.undo, undo)
	}
}

func (r *MemoryRepo) auctionLock(auctionID string) *sync.Mutex {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	l, ok := r.locks[auctionID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[auctionID] = l
	}
	return l
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(ctx context.Context, auction models.Auction) error {
	if auction.AuctionID == "" {
		return fmt.Errorf("create auction: %w", biddingerrors.ErrInvalidID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, biddingerrors.ErrConflict)
	}
	r.auctions[auction.AuctionID] = auction
	r.journal(ctx, func() { delete(r.auctions, auction.AuctionID) })
	return nil
}

// AddAuction stores an auction outside any transaction. Used for seeding and tests.
func (r *MemoryRepo) AddAuction(auction models.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = auction
}

// GetAuction returns a snapshot of an auction
func (r *MemoryRepo) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetAuctionForUpdate locks the auction for the rest of the transaction
func (r *MemoryRepo) GetAuctionForUpdate(ctx context.Context, auctionID string) (models.Auction, error) {
	if tx := txFromContext(ctx); tx != nil {
		if _, held := tx.held[auctionID]; !held {
			l := r.auctionLock(auctionID)
			l.Lock()
			tx.held[auctionID] = l
		}
	}
	return r.GetAuction(ctx, auctionID)
}

// UpdateAuction replaces the stored auction row
func (r *MemoryRepo) UpdateAuction(ctx context.Context, auction models.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.auctions[auction.AuctionID]
	if !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, biddingerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	r.journal(ctx, func() { r.auctions[auction.AuctionID] = prev })
	return nil
}

// ListDueAuctions returns auctions whose start or end time has passed without the matching transition
func (r *MemoryRepo) ListDueAuctions(ctx context.Context, now time.Time, limit int) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []models.Auction
	for _, a := range r.auctions {
		switch {
		case a.Status == models.AuctionStatusUpcoming && !now.Before(a.StartTime):
			due = append(due, a)
		case a.Status == models.AuctionStatusActive && !now.Before(a.EndTime):
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].EndTime.Equal(due[j].EndTime) {
			return due[i].AuctionID < due[j].AuctionID
		}
		return due[i].EndTime.Before(due[j].EndTime)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// GetAuctionsByUser returns all auctions a user has bid on
func (r *MemoryRepo) GetAuctionsByUser(ctx context.Context, userID string) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.userAuctions[userID]
	if !ok || len(ids) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, biddingerrors.ErrUserNoBids)
	}
	out := make([]models.Auction, 0, len(ids))
	for _, id := range ids {
		if a, exists := r.auctions[id]; exists {
			out = append(out, a)
		}
	}
	return out, nil
}

// CreateLot stores a lot under its auction
func (r *MemoryRepo) CreateLot(ctx context.Context, lot models.AuctionLot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[lot.AuctionID]; !ok {
		return fmt.Errorf("create lot: %w", biddingerrors.ErrAuctionNotFound)
	}
	if _, ok := r.lots[lot.LotID]; ok {
		return fmt.Errorf("create lot %s: %w", lot.LotID, biddingerrors.ErrConflict)
	}
	prevOrder := r.lotOrder[lot.AuctionID]
	r.lots[lot.LotID] = lot
	r.lotOrder[lot.AuctionID] = append(append([]string(nil), prevOrder...), lot.LotID)
	r.journal(ctx, func() {
		delete(r.lots, lot.LotID)
		r.lotOrder[lot.AuctionID] = prevOrder
	})
	return nil
}

// GetLot returns a lot that belongs to the given auction
func (r *MemoryRepo) GetLot(ctx context.Context, auctionID, lotID string) (models.AuctionLot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok || lot.AuctionID != auctionID {
		return models.AuctionLot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	return lot, nil
}

// ListLots returns an auction's lots in creation order
func (r *MemoryRepo) ListLots(ctx context.Context, auctionID string) ([]models.AuctionLot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.lotOrder[auctionID]
	out := make([]models.AuctionLot, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.lots[id])
	}
	return out, nil
}

// UpdateLot replaces a stored lot
func (r *MemoryRepo) UpdateLot(ctx context.Context, lot models.AuctionLot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.lots[lot.LotID]
	if !ok {
		return fmt.Errorf("update lot %s: %w", lot.LotID, biddingerrors.ErrLotNotFound)
	}
	r.lots[lot.LotID] = lot
	r.journal(ctx, func() { r.lots[lot.LotID] = prev })
	return nil
}

// RecordBid appends a bid to the auction's ledger
func (r *MemoryRepo) RecordBid(ctx context.Context, bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, biddingerrors.ErrAuctionNotFound)
	}

	prevBids := r.bids[bid.AuctionID]
	r.bids[bid.AuctionID] = append(prevBids, bid)

	prevUser, hadUser := r.userAuctions[bid.UserID]
	seen := false
	for _, id := range prevUser {
		if id == bid.AuctionID {
			seen = true
			break
		}
	}
	if !seen {
		r.userAuctions[bid.UserID] = append(append([]string(nil), prevUser...), bid.AuctionID)
	}

	r.journal(ctx, func() {
		r.bids[bid.AuctionID] = prevBids[:len(prevBids):len(prevBids)]
		if hadUser {
			r.userAuctions[bid.UserID] = prevUser
		} else {
			delete(r.userAuctions, bid.UserID)
		}
	})
	return nil
}

// UpdateBidStatus changes the status of one bid
func (r *MemoryRepo) UpdateBidStatus(ctx context.Context, auctionID, bidID string, status models.BidStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[auctionID]
	for i := range bids {
		if bids[i].BidID == bidID {
			prev := bids[i].Status
			bids[i].Status = status
			r.journal(ctx, func() { bids[i].Status = prev })
			return nil
		}
	}
	return fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
}

// GetHighestBid returns the standing (ACTIVE_HIGHEST or WINNING_BID) bid for a scope
func (r *MemoryRepo) GetHighestBid(ctx context.Context, auctionID string, lotID *string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids[auctionID] {
		if !b.SameScope(lotID) {
			continue
		}
		if b.Status == models.BidStatusActiveHighest || b.Status == models.BidStatusWinning {
			return b, nil
		}
	}
	return models.Bid{}, fmt.Errorf("get highest bid for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
}

// GetBidsByAuction returns all bids for an auction in arrival order
func (r *MemoryRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return append([]models.Bid(nil), bids...), nil
}

// SaveParticipant inserts or replaces a participant row
func (r *MemoryRepo) SaveParticipant(ctx context.Context, participant models.AuctionParticipant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[participant.AuctionID]; !ok {
		return fmt.Errorf("save participant: %w", biddingerrors.ErrAuctionNotFound)
	}
	byUser, ok := r.participants[participant.AuctionID]
	if !ok {
		byUser = make(map[string]models.AuctionParticipant)
		r.participants[participant.AuctionID] = byUser
	}
	prev, existed := byUser[participant.UserID]
	byUser[participant.UserID] = participant
	r.journal(ctx, func() {
		if existed {
			byUser[participant.UserID] = prev
		} else {
			delete(byUser, participant.UserID)
		}
	})
	return nil
}

// GetParticipant returns a user's registration for an auction
func (r *MemoryRepo) GetParticipant(ctx context.Context, auctionID, userID string) (models.AuctionParticipant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.participants[auctionID][userID]
	if !ok {
		return models.AuctionParticipant{}, fmt.Errorf("get participant %s: %w", userID, biddingerrors.ErrParticipantMissing)
	}
	return p, nil
}

// ListParticipants returns all participants of an auction ordered by registration
func (r *MemoryRepo) ListParticipants(ctx context.Context, auctionID string) ([]models.AuctionParticipant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AuctionParticipant, 0, len(r.participants[auctionID]))
	for _, p := range r.participants[auctionID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].RegisteredAt.Before(out[j].RegisteredAt)
	})
	return out, nil
}

// SaveAutoBidSetting upserts the (auction, user) setting. An existing setting keeps its
// id, sequence and creation time so registration order is stable.
func (r *MemoryRepo) SaveAutoBidSetting(ctx context.Context, setting models.AutoBidSetting) (models.AutoBidSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[setting.AuctionID]; !ok {
		return models.AutoBidSetting{}, fmt.Errorf("save auto-bid: %w", biddingerrors.ErrAuctionNotFound)
	}

	settings := r.autoBids[setting.AuctionID]
	for i := range settings {
		if settings[i].UserID == setting.UserID {
			prev := settings[i]
			setting.SettingID = prev.SettingID
			setting.Seq = prev.Seq
			setting.CreatedAt = prev.CreatedAt
			settings[i] = setting
			r.journal(ctx, func() { settings[i] = prev })
			return setting, nil
		}
	}

	r.autoBidSeq++
	setting.Seq = r.autoBidSeq
	prevSettings := settings
	r.autoBids[setting.AuctionID] = append(append([]models.AutoBidSetting(nil), settings...), setting)
	r.journal(ctx, func() { r.autoBids[setting.AuctionID] = prevSettings })
	return setting, nil
}

// ListAutoBidSettings returns an auction's settings in registration order
func (r *MemoryRepo) ListAutoBidSettings(ctx context.Context, auctionID string) ([]models.AutoBidSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.AutoBidSetting(nil), r.autoBids[auctionID]...), nil
}

// AddToWatchlist adds an auction to a user's watchlist
func (r *MemoryRepo) AddToWatchlist(ctx context.Context, entry models.AuctionWatchlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[entry.AuctionID]; !ok {
		return fmt.Errorf("add to watchlist: %w", biddingerrors.ErrAuctionNotFound)
	}
	byAuction, ok := r.watchlist[entry.UserID]
	if !ok {
		byAuction = make(map[string]models.AuctionWatchlist)
		r.watchlist[entry.UserID] = byAuction
	}
	if _, exists := byAuction[entry.AuctionID]; exists {
		return fmt.Errorf("add to watchlist %s: %w", entry.AuctionID, biddingerrors.ErrAlreadyWatching)
	}
	byAuction[entry.AuctionID] = entry
	r.journal(ctx, func() { delete(byAuction, entry.AuctionID) })
	return nil
}

// RemoveFromWatchlist removes an auction from a user's watchlist
func (r *MemoryRepo) RemoveFromWatchlist(ctx context.Context, userID, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.watchlist[userID][auctionID]
	if !ok {
		return fmt.Errorf("remove from watchlist %s: %w", auctionID, biddingerrors.ErrNotWatching)
	}
	delete(r.watchlist[userID], auctionID)
	r.journal(ctx, func() { r.watchlist[userID][auctionID] = prev })
	return nil
}

// GetWatchlist returns a user's watchlist ordered by when entries were added
func (r *MemoryRepo) GetWatchlist(ctx context.Context, userID string) ([]models.AuctionWatchlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AuctionWatchlist, 0, len(r.watchlist[userID]))
	for _, w := range r.watchlist[userID] {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AuctionID < out[j].AuctionID
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out, nil
}

func settlementScope(auctionID string, lotID *string) string {
	if lotID == nil {
		return auctionID
	}
	return auctionID + "/" + *lotID
}

// CreateSettlement stores a settlement; one per auction or lot scope
func (r *MemoryRepo) CreateSettlement(ctx context.Context, settlement models.AuctionSettlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := settlementScope(settlement.AuctionID, settlement.LotID)
	if _, ok := r.scopes[scope]; ok {
		return fmt.Errorf("create settlement for %s: %w", scope, biddingerrors.ErrSettlementExists)
	}
	r.settlements[settlement.SettlementID] = settlement
	r.scopes[scope] = settlement.SettlementID
	r.journal(ctx, func() {
		delete(r.settlements, settlement.SettlementID)
		delete(r.scopes, scope)
	})
	return nil
}

// GetSettlement returns one settlement
func (r *MemoryRepo) GetSettlement(ctx context.Context, settlementID string) (models.AuctionSettlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settlements[settlementID]
	if !ok {
		return models.AuctionSettlement{}, fmt.Errorf("get settlement %s: %w", settlementID, biddingerrors.ErrSettlementNotFound)
	}
	return s, nil
}

// ListSettlementsByAuction returns an auction's settlements ordered by creation
func (r *MemoryRepo) ListSettlementsByAuction(ctx context.Context, auctionID string) ([]models.AuctionSettlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.AuctionSettlement
	for _, s := range r.settlements {
		if s.AuctionID == auctionID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].SettlementID < out[j].SettlementID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateSettlement writes settlement only if its stored status still equals expected
func (r *MemoryRepo) UpdateSettlement(ctx context.Context, settlement models.AuctionSettlement, expected models.SettlementStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.settlements[settlement.SettlementID]
	if !ok {
		return fmt.Errorf("update settlement %s: %w", settlement.SettlementID, biddingerrors.ErrSettlementNotFound)
	}
	if prev.Status != expected {
		return fmt.Errorf("update settlement %s: %w", settlement.SettlementID, biddingerrors.ErrSettlementStatus)
	}
	r.settlements[settlement.SettlementID] = settlement
	r.journal(ctx, func() { r.settlements[settlement.SettlementID] = prev })
	return nil
}
