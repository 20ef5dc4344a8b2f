package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newAuctionRouter(h *BiddingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", h.CreateAuctionHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.POST("/auctions/:auction_id/lots", h.AddLotHandler)
	router.POST("/auctions/:auction_id/participants", h.RegisterParticipantHandler)
	router.PUT("/auctions/:auction_id/auto-bids", h.SetAutoBidHandler)
	router.DELETE("/auctions/:auction_id/auto-bids/:user_id", h.DisableAutoBidHandler)
	router.POST("/auctions/:auction_id/watchlist", h.AddToWatchlistHandler)
	router.DELETE("/auctions/:auction_id/watchlist/:user_id", h.RemoveFromWatchlistHandler)
	router.GET("/users/:user_id/watchlist", h.GetWatchlistHandler)
	router.POST("/admin/auctions/:auction_id/participants/:user_id/status", h.SetParticipantStatusHandler)
	router.POST("/admin/auctions/:auction_id/reconcile", h.ReconcileHandler)
	return router
}

func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBiddingServiceInterface(ctrl)
	router := newAuctionRouter(NewBiddingHandler(svc))

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	body := map[string]any{
		"seller_id":               "seller-1",
		"product_id":              "barley",
		"start_timestamp":         start.Format(time.RFC3339),
		"end_timestamp":           start.Add(24 * time.Hour).Format(time.RFC3339),
		"starting_price_per_unit": "100",
		"minimum_bid_increment":   10,
		"reserve_price_per_unit":  "150",
		"quantity_offered":        "2.5",
		"currency":                "kes",
	}

	svc.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in bidding.CreateAuctionInput) (models.Auction, error) {
			require.Equal(t, "seller-1", in.SellerID)
			require.True(t, in.StartTime.Equal(start))
			require.True(t, in.StartingPrice.Equal(dec("100")))
			require.True(t, in.ReservePrice.Equal(dec("150")))
			require.True(t, in.Quantity.Equal(dec("2.5")))
			return models.Auction{AuctionID: "a1", SellerID: in.SellerID, Status: models.AuctionStatusUpcoming, Currency: "KES"}, nil
		})
	svc.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
		Return(models.Auction{}, biddingerrors.ErrInvalidAuction)

	status, resp := doJSON(t, router, http.MethodPost, "/auctions", body)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "a1", resp["data"].(map[string]any)["auction_id"])

	status, _ = doJSON(t, router, http.MethodPost, "/auctions", body)
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, router, http.MethodPost, "/auctions", map[string]any{"seller_id": "seller-1"})
	require.Equal(t, http.StatusBadRequest, status)

	body["currency"] = "shilling"
	status, _ = doJSON(t, router, http.MethodPost, "/auctions", body)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestAuctionDetailAndLots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBiddingServiceInterface(ctrl)
	router := newAuctionRouter(NewBiddingHandler(svc))

	svc.EXPECT().GetAuction(gomock.Any(), "a1").Return(bidding.AuctionDetails{
		Auction: models.Auction{AuctionID: "a1"},
		Lots:    []models.AuctionLot{{LotID: "l1", AuctionID: "a1"}},
	}, nil)
	svc.EXPECT().GetAuction(gomock.Any(), "nope").Return(bidding.AuctionDetails{}, biddingerrors.ErrAuctionNotFound)
	svc.EXPECT().AddLot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in bidding.AddLotInput) (models.AuctionLot, error) {
			require.Equal(t, "a1", in.AuctionID)
			require.Equal(t, "bob", in.SellerID)
			return models.AuctionLot{}, biddingerrors.ErrNotAuthorized
		})

	status, resp := doJSON(t, router, http.MethodGet, "/auctions/a1", nil)
	require.Equal(t, http.StatusOK, status)
	data := resp["data"].(map[string]any)
	require.Equal(t, "a1", data["auction_id"])
	require.Len(t, data["lots"].([]any), 1)

	status, _ = doJSON(t, router, http.MethodGet, "/auctions/nope", nil)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, router, http.MethodPost, "/auctions/a1/lots", map[string]any{"seller_id": "bob", "quantity": 1, "starting_price_per_unit": 50})
	require.Equal(t, http.StatusForbidden, status)
}

func TestParticipantAndAutoBidHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBiddingServiceInterface(ctrl)
	router := newAuctionRouter(NewBiddingHandler(svc))

	svc.EXPECT().RegisterParticipant(gomock.Any(), "a1", "bob").
		Return(models.AuctionParticipant{AuctionID: "a1", UserID: "bob", Status: models.ParticipantStatusRegistered}, nil)
	svc.EXPECT().SetParticipantStatus(gomock.Any(), "a1", "bob", models.ParticipantStatusApproved).
		Return(models.AuctionParticipant{AuctionID: "a1", UserID: "bob", Status: models.ParticipantStatusApproved}, nil)
	svc.EXPECT().SetAutoBid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in bidding.SetAutoBidInput) (models.AutoBidSetting, error) {
			require.True(t, in.MaxAmount.Equal(dec("200")))
			require.True(t, in.Increment.IsZero())
			return models.AutoBidSetting{AuctionID: in.AuctionID, UserID: in.UserID, MaxAmount: in.MaxAmount, Increment: dec("10"), IsActive: true}, nil
		})
	svc.EXPECT().DisableAutoBid(gomock.Any(), "a1", "carol").Return(models.AutoBidSetting{}, biddingerrors.ErrAutoBidNotFound)
	svc.EXPECT().ReconcileHighestBid(gomock.Any(), "a1").Return(bidding.ReconcileResult{CacheChanged: true, RepairedBids: 2}, nil)

	status, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/participants", map[string]any{"user_id": "bob"})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "REGISTERED", resp["data"].(map[string]any)["status"])

	status, _ = doJSON(t, router, http.MethodPost, "/admin/auctions/a1/participants/bob/status", map[string]any{"status": "APPROVED_TO_BID"})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, router, http.MethodPost, "/admin/auctions/a1/participants/bob/status", map[string]any{"status": "VIP"})
	require.Equal(t, http.StatusBadRequest, status)

	status, resp = doJSON(t, router, http.MethodPut, "/auctions/a1/auto-bids", map[string]any{"user_id": "bob", "max_bid_amount_per_unit": 200})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, resp["data"].(map[string]any)["is_active"])

	status, _ = doJSON(t, router, http.MethodDelete, "/auctions/a1/auto-bids/carol", nil)
	require.Equal(t, http.StatusNotFound, status)

	status, resp = doJSON(t, router, http.MethodPost, "/admin/auctions/a1/reconcile", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(2), resp["data"].(map[string]any)["repaired_bids"])
}

func TestWatchlistHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBiddingServiceInterface(ctrl)
	router := newAuctionRouter(NewBiddingHandler(svc))

	svc.EXPECT().AddToWatchlist(gomock.Any(), "bob", "a1").Return(models.AuctionWatchlist{UserID: "bob", AuctionID: "a1"}, nil)
	svc.EXPECT().AddToWatchlist(gomock.Any(), "bob", "a1").Return(models.AuctionWatchlist{}, biddingerrors.ErrAlreadyWatching)
	svc.EXPECT().GetWatchlist(gomock.Any(), "bob").Return(nil, nil)
	svc.EXPECT().RemoveFromWatchlist(gomock.Any(), "bob", "a1").Return(biddingerrors.ErrNotWatching)

	status, _ := doJSON(t, router, http.MethodPost, "/auctions/a1/watchlist", map[string]any{"user_id": "bob"})
	require.Equal(t, http.StatusCreated, status)

	status, resp := doJSON(t, router, http.MethodPost, "/auctions/a1/watchlist", map[string]any{"user_id": "bob"})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "conflict", resp["kind"])

	status, resp = doJSON(t, router, http.MethodGet, "/users/bob/watchlist", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp["data"].([]any), 0)

	status, _ = doJSON(t, router, http.MethodDelete, "/auctions/a1/watchlist/bob", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestDisableAutoBidHandler_CallerMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBiddingServiceInterface(ctrl)
	h := NewBiddingHandler(svc)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/auctions/:auction_id/auto-bids/:user_id", func(c *gin.Context) {
		c.Set(helpers.CallerKey, "bob")
		c.Next()
	}, h.DisableAutoBidHandler)

	svc.EXPECT().DisableAutoBid(gomock.Any(), "a1", "bob").
		Return(models.AutoBidSetting{AuctionID: "a1", UserID: "bob"}, nil)

	status, resp := doJSON(t, router, http.MethodDelete, "/auctions/a1/auto-bids/carol", nil)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "forbidden", resp["kind"])

	status, _ = doJSON(t, router, http.MethodDelete, "/auctions/a1/auto-bids/bob", nil)
	require.Equal(t, http.StatusOK, status)
}
