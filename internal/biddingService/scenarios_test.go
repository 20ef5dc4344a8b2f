package bidding

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/clock"
	"agri-auction/internal/external"
	"agri-auction/internal/models"
	"agri-auction/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *BiddingService
	repo     *repository.MemoryRepo
	clock    *clock.Manual
	wallet   *external.MemoryWallet
	users    *external.MemoryDirectory
	notifier *external.RecordingNotifier
}

func testClock() *clock.Manual {
	return clock.NewManual(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     repository.NewMemoryRepo(),
		clock:    testClock(),
		wallet:   external.NewMemoryWallet(),
		users:    external.NewMemoryDirectory(),
		notifier: &external.RecordingNotifier{},
	}
	for _, id := range []string{"seller-1", "alice", "bob", "carol", "dave"} {
		f.users.AddUser(models.User{UserID: id, Username: id, Status: models.UserStatusActive})
		f.wallet.Deposit(id, dec("100000"))
	}
	f.svc = NewBiddingService(f.repo,
		WithClock(f.clock),
		WithUserDirectory(f.users),
		WithWallet(f.wallet),
		WithNotifier(f.notifier),
	)
	return f
}

// seed stores an auction with the given tweaks applied
func (f *fixture) seed(mutate func(*models.Auction)) models.Auction {
	a := activeAuction(f.clock.Now())
	if mutate != nil {
		mutate(&a)
	}
	f.repo.AddAuction(a)
	return a
}

func (f *fixture) bid(t *testing.T, auctionID, userID, amount string) (PlaceBidResult, error) {
	t.Helper()
	return f.svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: auctionID, UserID: userID, Amount: dec(amount)})
}

func (f *fixture) autoBid(t *testing.T, auctionID, userID, max, increment string) {
	t.Helper()
	_, err := f.svc.SetAutoBid(context.Background(), SetAutoBidInput{
		AuctionID: auctionID, UserID: userID, MaxAmount: dec(max), Increment: dec(increment),
	})
	require.NoError(t, err)
}

func TestPlaceBid_IncrementRule(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil) // starting 100, increment 10

	first, err := f.bid(t, a.AuctionID, "alice", "110")
	require.NoError(t, err)

	_, err = f.bid(t, a.AuctionID, "bob", "115")
	require.ErrorIs(t, err, biddingerrors.ErrBidTooLow)

	second, err := f.bid(t, a.AuctionID, "bob", "160")
	require.NoError(t, err)

	bids, err := f.repo.GetBidsByAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, first.Bid.BidID, bids[0].BidID)
	require.Equal(t, models.BidStatusOutbid, bids[0].Status)
	require.Equal(t, second.Bid.BidID, bids[1].BidID)
	require.Equal(t, models.BidStatusActiveHighest, bids[1].Status)

	stored, err := f.repo.GetAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.True(t, stored.CurrentHighestBid.Equal(dec("160")))
	require.Equal(t, "bob", stored.CurrentHighestBidder)
	require.Equal(t, 2, stored.TotalBids)
}

func TestPlaceBid_AutoBidReaction(t *testing.T) {
	f := newFixture(t)
	a := f.seed(func(a *models.Auction) { a.MinIncrement = dec("5") })
	f.autoBid(t, a.AuctionID, "bob", "200", "10")

	res, err := f.bid(t, a.AuctionID, "alice", "150")
	require.NoError(t, err)
	require.Len(t, res.AutoBids, 1)
	require.Equal(t, "bob", res.AutoBids[0].UserID)
	require.True(t, res.AutoBids[0].IsAutoBid)
	require.True(t, res.AutoBids[0].Amount.Equal(dec("160")))

	res, err = f.bid(t, a.AuctionID, "alice", "165")
	require.NoError(t, err)
	require.Len(t, res.AutoBids, 1)
	require.True(t, res.AutoBids[0].Amount.Equal(dec("175")))

	res, err = f.bid(t, a.AuctionID, "alice", "205")
	require.NoError(t, err)
	require.Empty(t, res.AutoBids)

	winning, err := f.svc.GetWinningBid(context.Background(), a.AuctionID, nil)
	require.NoError(t, err)
	require.Equal(t, "alice", winning.UserID)
	require.True(t, winning.Amount.Equal(dec("205")))
}

func TestPlaceBid_AutoBidEqualCeilingsFavourFirstRegistered(t *testing.T) {
	f := newFixture(t)
	a := f.seed(func(a *models.Auction) { a.MinIncrement = dec("5") })
	f.autoBid(t, a.AuctionID, "bob", "200", "10")
	f.autoBid(t, a.AuctionID, "carol", "200", "10")

	res, err := f.bid(t, a.AuctionID, "alice", "100")
	require.NoError(t, err)
	require.Len(t, res.AutoBids, 2)
	require.Equal(t, "carol", res.AutoBids[0].UserID)
	require.Equal(t, "bob", res.AutoBids[1].UserID)

	winning, err := f.svc.GetWinningBid(context.Background(), a.AuctionID, nil)
	require.NoError(t, err)
	require.Equal(t, "bob", winning.UserID)
	require.True(t, winning.Amount.Equal(dec("120")))
}

func TestPlaceBid_AutoBidEqualCeilingsAtTheCeiling(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)
	f.autoBid(t, a.AuctionID, "bob", "200", "10")
	f.autoBid(t, a.AuctionID, "carol", "200", "10")

	res, err := f.bid(t, a.AuctionID, "alice", "190")
	require.NoError(t, err)
	require.Len(t, res.AutoBids, 1)
	require.Equal(t, "bob", res.AutoBids[0].UserID)
	require.True(t, res.AutoBids[0].Amount.Equal(dec("200")))

	winning, err := f.svc.GetWinningBid(context.Background(), a.AuctionID, nil)
	require.NoError(t, err)
	require.Equal(t, "bob", winning.UserID)
	require.True(t, winning.Amount.Equal(dec("200")))

	bids, err := f.repo.GetBidsByAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	for _, b := range bids {
		require.NotEqual(t, "carol", b.UserID)
	}
}

func TestPlaceBid_AutoBidKeepsHoldOnTightBalance(t *testing.T) {
	f := newFixture(t)
	wallet := external.NewMemoryWallet()
	wallet.Deposit("alice", dec("100000"))
	wallet.Deposit("bob", dec("400"))
	f.svc = NewBiddingService(f.repo,
		WithClock(f.clock),
		WithUserDirectory(f.users),
		WithWallet(wallet),
	)
	a := f.seed(func(a *models.Auction) { a.MinIncrement = dec("5") })
	f.autoBid(t, a.AuctionID, "bob", "200", "10")

	res, err := f.bid(t, a.AuctionID, "alice", "150")
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	_, held := wallet.Balance("bob")
	require.True(t, held.Equal(dec("320")), held.String())

	res, err = f.bid(t, a.AuctionID, "alice", "165")
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	require.Equal(t, "bob", res.Auction.CurrentHighestBidder)

	_, held = wallet.Balance("bob")
	require.True(t, held.Equal(dec("350")), held.String())
	_, held = wallet.Balance("alice")
	require.True(t, held.IsZero(), held.String())
}

func TestPlaceBid_AutoBidNeverExceedsCeiling(t *testing.T) {
	f := newFixture(t)
	a := f.seed(func(a *models.Auction) { a.MinIncrement = dec("5") })
	f.autoBid(t, a.AuctionID, "bob", "157", "10")

	res, err := f.bid(t, a.AuctionID, "alice", "150")
	require.NoError(t, err)
	require.Len(t, res.AutoBids, 1)
	require.True(t, res.AutoBids[0].Amount.Equal(dec("157")))

	res, err = f.bid(t, a.AuctionID, "alice", "162")
	require.NoError(t, err)
	require.Empty(t, res.AutoBids)

	bids, err := f.repo.GetBidsByAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	for _, b := range bids {
		if b.IsAutoBid {
			require.True(t, b.Amount.LessThanOrEqual(dec("157")))
		}
	}
}

func TestPlaceBid_DisabledAutoBidStaysQuiet(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)
	f.autoBid(t, a.AuctionID, "bob", "500", "10")

	_, err := f.svc.DisableAutoBid(context.Background(), a.AuctionID, "bob")
	require.NoError(t, err)

	res, err := f.bid(t, a.AuctionID, "alice", "120")
	require.NoError(t, err)
	require.Empty(t, res.AutoBids)

	_, err = f.svc.DisableAutoBid(context.Background(), a.AuctionID, "carol")
	require.ErrorIs(t, err, biddingerrors.ErrAutoBidNotFound)
}

func TestPlaceBid_Eligibility(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.Auction)
		setup    func(f *fixture, auctionID string)
		userID   string
		expected error
	}{
		{
			name:     "private_auction_unregistered",
			mutate:   func(a *models.Auction) { a.IsPrivate = true },
			userID:   "alice",
			expected: biddingerrors.ErrNotApproved,
		},
		{
			name:   "private_auction_registered_not_approved",
			mutate: func(a *models.Auction) { a.IsPrivate = true },
			setup: func(f *fixture, auctionID string) {
				p, err := f.svc.RegisterParticipant(context.Background(), auctionID, "alice")
				require.NoError(t, err)
				require.Equal(t, models.ParticipantStatusRegistered, p.Status)
			},
			userID:   "alice",
			expected: biddingerrors.ErrNotApproved,
		},
		{
			name:   "private_auction_approved",
			mutate: func(a *models.Auction) { a.IsPrivate = true },
			setup: func(f *fixture, auctionID string) {
				_, err := f.svc.RegisterParticipant(context.Background(), auctionID, "alice")
				require.NoError(t, err)
				_, err = f.svc.SetParticipantStatus(context.Background(), auctionID, "alice", models.ParticipantStatusApproved)
				require.NoError(t, err)
			},
			userID: "alice",
		},
		{
			name: "blocked_on_public_auction",
			setup: func(f *fixture, auctionID string) {
				_, err := f.svc.RegisterParticipant(context.Background(), auctionID, "alice")
				require.NoError(t, err)
				_, err = f.svc.SetParticipantStatus(context.Background(), auctionID, "alice", models.ParticipantStatusBlocked)
				require.NoError(t, err)
			},
			userID:   "alice",
			expected: biddingerrors.ErrNotApproved,
		},
		{
			name: "suspended_user",
			setup: func(f *fixture, _ string) {
				f.users.AddUser(models.User{UserID: "alice", Status: models.UserStatusSuspended})
			},
			userID:   "alice",
			expected: biddingerrors.ErrUserIneligible,
		},
		{
			name:     "unknown_user",
			userID:   "mallory",
			expected: biddingerrors.ErrUserNotFound,
		},
		{
			name: "before_start",
			mutate: func(a *models.Auction) {
				a.Status = models.AuctionStatusUpcoming
				a.StartTime = a.EndTime.Add(-time.Minute)
			},
			userID:   "alice",
			expected: biddingerrors.ErrAuctionNotActive,
		},
		{
			name:     "after_end",
			mutate:   func(a *models.Auction) { a.EndTime = a.StartTime.Add(30 * time.Minute) },
			userID:   "alice",
			expected: biddingerrors.ErrAuctionNotActive,
		},
		{
			name:     "cancelled",
			mutate:   func(a *models.Auction) { a.Status = models.AuctionStatusCancelled },
			userID:   "alice",
			expected: biddingerrors.ErrAuctionClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a := f.seed(tt.mutate)
			if tt.setup != nil {
				tt.setup(f, a.AuctionID)
			}

			_, err := f.bid(t, a.AuctionID, tt.userID, "120")
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)

			stored, getErr := f.repo.GetAuction(context.Background(), a.AuctionID)
			require.NoError(t, getErr)
			require.Nil(t, stored.CurrentHighestBid)
			require.Zero(t, stored.TotalBids)
		})
	}
}

func TestPlaceBid_ActivatesUpcomingAuctionOnFirstBid(t *testing.T) {
	f := newFixture(t)
	a := f.seed(func(a *models.Auction) { a.Status = models.AuctionStatusUpcoming })

	res, err := f.bid(t, a.AuctionID, "alice", "100")
	require.NoError(t, err)
	require.Equal(t, models.AuctionStatusActive, res.Auction.Status)

	stored, err := f.repo.GetAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.Equal(t, models.AuctionStatusActive, stored.Status)
}

func TestPlaceBid_LotScopes(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)

	lot, err := f.svc.AddLot(context.Background(), AddLotInput{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		Title:         "Lot A",
		Quantity:      dec("1"),
		StartingPrice: dec("50"),
	})
	require.NoError(t, err)

	_, err = f.svc.AddLot(context.Background(), AddLotInput{
		AuctionID: a.AuctionID, SellerID: "alice", Quantity: dec("1"), StartingPrice: dec("50"),
	})
	require.ErrorIs(t, err, biddingerrors.ErrNotAuthorized)

	_, err = f.bid(t, a.AuctionID, "alice", "100")
	require.NoError(t, err)

	lotBid, err := f.svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: a.AuctionID, LotID: &lot.LotID, UserID: "bob", Amount: dec("50")})
	require.NoError(t, err)
	require.Equal(t, lot.LotID, *lotBid.Bid.LotID)

	_, err = f.svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: a.AuctionID, LotID: &lot.LotID, UserID: "carol", Amount: dec("55")})
	require.ErrorIs(t, err, biddingerrors.ErrBidTooLow)

	auctionTop, err := f.svc.GetWinningBid(context.Background(), a.AuctionID, nil)
	require.NoError(t, err)
	require.Equal(t, "alice", auctionTop.UserID)

	lotTop, err := f.svc.GetWinningBid(context.Background(), a.AuctionID, &lot.LotID)
	require.NoError(t, err)
	require.Equal(t, "bob", lotTop.UserID)

	details, err := f.svc.GetAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.Len(t, details.Lots, 1)
	require.True(t, details.Lots[0].CurrentHighestBid.Equal(dec("50")))
	require.True(t, details.CurrentHighestBid.Equal(dec("100")))
	require.Equal(t, 2, details.TotalBids)

	missing := "no-such-lot"
	_, err = f.svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: a.AuctionID, LotID: &missing, UserID: "bob", Amount: dec("500")})
	require.ErrorIs(t, err, biddingerrors.ErrLotNotFound)
}

func TestPlaceBid_HoldsAndReleasesFunds(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil) // quantity 2

	_, err := f.bid(t, a.AuctionID, "alice", "110")
	require.NoError(t, err)
	_, held := f.wallet.Balance("alice")
	require.True(t, held.Equal(dec("220")))

	_, err = f.bid(t, a.AuctionID, "bob", "130")
	require.NoError(t, err)
	_, held = f.wallet.Balance("alice")
	require.True(t, held.IsZero())
	_, held = f.wallet.Balance("bob")
	require.True(t, held.Equal(dec("260")))

	events := f.notifier.Events()
	require.Len(t, events, 1)
	require.Equal(t, external.EventBidOutbid, events[0].Type)
	require.Equal(t, "alice", events[0].UserID)
}

func TestPlaceBid_WalletFailureDoesNotRejectBid(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)
	f.users.AddUser(models.User{UserID: "erin", Status: models.UserStatusActive}) // no deposit

	res, err := f.bid(t, a.AuctionID, "erin", "110")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	require.Contains(t, res.Warnings[0], external.ErrInsufficientFunds.Error())

	winning, err := f.svc.GetWinningBid(context.Background(), a.AuctionID, nil)
	require.NoError(t, err)
	require.Equal(t, "erin", winning.UserID)
}

func TestPlaceBid_ConcurrentBidsKeepOneHighest(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)

	users := []string{"alice", "bob", "carol", "dave"}
	amounts := make([]int, 40)
	for i := range amounts {
		amounts[i] = 100 + i*10
	}
	rand.Shuffle(len(amounts), func(i, j int) { amounts[i], amounts[j] = amounts[j], amounts[i] })

	var wg sync.WaitGroup
	for i, amount := range amounts {
		wg.Add(1)
		go func(user string, amount int) {
			defer wg.Done()
			_, err := f.svc.PlaceBid(context.Background(), PlaceBidInput{
				AuctionID: a.AuctionID, UserID: user, Amount: decimal.NewFromInt(int64(amount)),
			})
			if err != nil {
				require.ErrorIs(t, err, biddingerrors.ErrBidTooLow, fmt.Sprintf("amount %d", amount))
			}
		}(users[i%len(users)], amount)
	}
	wg.Wait()

	bids, err := f.repo.GetBidsByAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)

	highest := 0
	for i, b := range bids {
		if b.Status == models.BidStatusActiveHighest {
			highest++
			require.Equal(t, len(bids)-1, i, "only the last accepted bid may be highest")
		}
		if i > 0 {
			require.True(t, b.Amount.GreaterThanOrEqual(bids[i-1].Amount.Add(a.MinIncrement)))
		}
	}
	require.Equal(t, 1, highest)

	stored, err := f.repo.GetAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.True(t, stored.CurrentHighestBid.Equal(bids[len(bids)-1].Amount))
	require.Equal(t, len(bids), stored.TotalBids)
}

func TestSetAutoBid_Validation(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)

	_, err := f.svc.SetAutoBid(context.Background(), SetAutoBidInput{AuctionID: a.AuctionID, UserID: "alice", MaxAmount: dec("50")})
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAutoBid)

	_, err = f.svc.SetAutoBid(context.Background(), SetAutoBidInput{AuctionID: a.AuctionID, UserID: a.SellerID, MaxAmount: dec("500")})
	require.ErrorIs(t, err, biddingerrors.ErrSellerCannotBid)

	first, err := f.svc.SetAutoBid(context.Background(), SetAutoBidInput{AuctionID: a.AuctionID, UserID: "alice", MaxAmount: dec("500")})
	require.NoError(t, err)
	require.True(t, first.Increment.Equal(a.MinIncrement))

	updated, err := f.svc.SetAutoBid(context.Background(), SetAutoBidInput{AuctionID: a.AuctionID, UserID: "alice", MaxAmount: dec("700"), Increment: dec("20")})
	require.NoError(t, err)
	require.Equal(t, first.SettingID, updated.SettingID)
	require.Equal(t, first.Seq, updated.Seq)
	require.True(t, updated.MaxAmount.Equal(dec("700")))
}

func TestCreateAuction(t *testing.T) {
	f := newFixture(t)
	now := f.clock.Now()

	a, err := f.svc.CreateAuction(context.Background(), CreateAuctionInput{
		SellerID:      "seller-1",
		ProductID:     "olive-oil",
		Title:         "Extra virgin olive oil",
		StartTime:     now.Add(time.Hour),
		EndTime:       now.Add(48 * time.Hour),
		StartingPrice: dec("8.50"),
		MinIncrement:  dec("0.25"),
		Quantity:      dec("1000"),
		Unit:          "litre",
	})
	require.NoError(t, err)
	require.Equal(t, models.AuctionStatusUpcoming, a.Status)
	require.Equal(t, "USD", a.Currency)

	open, err := f.svc.CreateAuction(context.Background(), CreateAuctionInput{
		SellerID: "seller-1", ProductID: "dates", StartTime: now.Add(-time.Minute), EndTime: now.Add(time.Hour),
		StartingPrice: dec("3"), MinIncrement: dec("1"), Quantity: dec("10"), Currency: "eur",
	})
	require.NoError(t, err)
	require.Equal(t, models.AuctionStatusActive, open.Status)
	require.Equal(t, "EUR", open.Currency)

	_, err = f.svc.CreateAuction(context.Background(), CreateAuctionInput{
		SellerID: "seller-1", ProductID: "dates", StartTime: now.Add(time.Hour), EndTime: now,
		StartingPrice: dec("3"), MinIncrement: dec("1"), Quantity: dec("10"),
	})
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)
}

func TestWatchlist(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)

	_, err := f.svc.AddToWatchlist(context.Background(), "alice", a.AuctionID)
	require.NoError(t, err)
	_, err = f.svc.AddToWatchlist(context.Background(), "alice", a.AuctionID)
	require.ErrorIs(t, err, biddingerrors.ErrAlreadyWatching)

	entries, err := f.svc.GetWatchlist(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, f.svc.RemoveFromWatchlist(context.Background(), "alice", a.AuctionID))
	require.ErrorIs(t, f.svc.RemoveFromWatchlist(context.Background(), "alice", a.AuctionID), biddingerrors.ErrNotWatching)
}

func TestReconcileHighestBid(t *testing.T) {
	f := newFixture(t)
	a := f.seed(nil)

	_, err := f.bid(t, a.AuctionID, "alice", "110")
	require.NoError(t, err)
	_, err = f.bid(t, a.AuctionID, "bob", "150")
	require.NoError(t, err)

	corrupt, err := f.repo.GetAuction(context.Background(), a.AuctionID)
	require.NoError(t, err)
	corrupt.CurrentHighestBid = decPtr("999")
	corrupt.CurrentHighestBidder = "mallory"
	corrupt.TotalBids = 7
	require.NoError(t, f.repo.UpdateAuction(context.Background(), corrupt))

	res, err := f.svc.ReconcileHighestBid(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.True(t, res.CacheChanged)
	require.Zero(t, res.RepairedBids)
	require.True(t, res.Auction.CurrentHighestBid.Equal(dec("150")))
	require.Equal(t, "bob", res.Auction.CurrentHighestBidder)
	require.Equal(t, 2, res.Auction.TotalBids)

	again, err := f.svc.ReconcileHighestBid(context.Background(), a.AuctionID)
	require.NoError(t, err)
	require.False(t, again.CacheChanged)
}
