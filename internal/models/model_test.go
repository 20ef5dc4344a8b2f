package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAuctionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AuctionStatus
		to   AuctionStatus
		want bool
	}{
		{AuctionStatusUpcoming, AuctionStatusActive, true},
		{AuctionStatusUpcoming, AuctionStatusCancelled, true},
		{AuctionStatusUpcoming, AuctionStatusClosed, false},
		{AuctionStatusActive, AuctionStatusClosed, true},
		{AuctionStatusActive, AuctionStatusCancelled, true},
		{AuctionStatusActive, AuctionStatusUpcoming, false},
		{AuctionStatusClosed, AuctionStatusCancelled, false},
		{AuctionStatusClosed, AuctionStatusActive, false},
		{AuctionStatusCancelled, AuctionStatusActive, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			require.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
	require.True(t, AuctionStatusClosed.IsTerminal())
	require.True(t, AuctionStatusCancelled.IsTerminal())
	require.False(t, AuctionStatusActive.IsTerminal())
}

func TestSettlementStatus_CanAdvanceTo(t *testing.T) {
	require.True(t, SettlementStatusPendingPayment.CanAdvanceTo(SettlementStatusPaid))
	require.True(t, SettlementStatusPaid.CanAdvanceTo(SettlementStatusSettled))
	require.False(t, SettlementStatusPendingPayment.CanAdvanceTo(SettlementStatusSettled))
	require.False(t, SettlementStatusPaid.CanAdvanceTo(SettlementStatusPendingPayment))
	require.False(t, SettlementStatusSettled.CanAdvanceTo(SettlementStatusPaid))
	require.False(t, SettlementStatus("BOGUS").CanAdvanceTo(SettlementStatusPaid))
}

func TestAuction_MinimumNextBid(t *testing.T) {
	a := Auction{StartingPrice: dec("100"), MinIncrement: dec("10")}
	require.True(t, a.MinimumNextBid().Equal(dec("100")))

	highest := dec("110")
	a.CurrentHighestBid = &highest
	require.True(t, a.MinimumNextBid().Equal(dec("120")))
}

func TestAuction_WindowAndReserve(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	a := Auction{StartTime: start, EndTime: start.Add(time.Hour)}
	require.True(t, a.InWindow(start))
	require.True(t, a.InWindow(start.Add(time.Hour)))
	require.False(t, a.InWindow(start.Add(-time.Second)))
	require.False(t, a.InWindow(start.Add(time.Hour+time.Second)))

	require.True(t, a.ReserveMet(dec("1")))
	reserve := dec("150")
	a.ReservePrice = &reserve
	require.True(t, a.ReserveMet(dec("150")))
	require.False(t, a.ReserveMet(dec("140")))
}

func TestBid_SameScope(t *testing.T) {
	lot := "lot-1"
	other := "lot-2"
	require.True(t, Bid{}.SameScope(nil))
	require.False(t, Bid{}.SameScope(&lot))
	require.True(t, Bid{LotID: &lot}.SameScope(&lot))
	require.False(t, Bid{LotID: &lot}.SameScope(&other))
	require.False(t, Bid{LotID: &lot}.SameScope(nil))
}

func TestAuctionSettlement_TotalAmount(t *testing.T) {
	s := AuctionSettlement{AmountPerUnit: dec("160"), Quantity: dec("2.5")}
	require.True(t, s.TotalAmount().Equal(dec("400")))
}
