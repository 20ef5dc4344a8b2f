package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// doJSON sends body (a string is sent raw) and decodes the response envelope
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()
	accepted := func(in bidding.PlaceBidInput) bidding.PlaceBidResult {
		bid := models.Bid{
			BidID:     uuid.NewString(),
			AuctionID: in.AuctionID,
			LotID:     in.LotID,
			UserID:    in.UserID,
			Amount:    in.Amount,
			Status:    models.BidStatusActiveHighest,
			CreatedAt: now,
		}
		return bidding.PlaceBidResult{
			Bid: bid,
			Auction: models.Auction{
				AuctionID:            in.AuctionID,
				StartingPrice:        dec("100"),
				MinIncrement:         dec("10"),
				CurrentHighestBid:    &bid.Amount,
				CurrentHighestBidder: bid.UserID,
			},
		}
	}

	tests := []struct {
		name           string
		auctionID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			auctionID:   "a1",
			requestBody: map[string]any{"user_id": "bob", "amount": "110"},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in bidding.PlaceBidInput) (bidding.PlaceBidResult, error) {
						require.Equal(t, "a1", in.AuctionID)
						require.Equal(t, "bob", in.UserID)
						require.Nil(t, in.LotID)
						require.True(t, in.Amount.Equal(dec("110")))
						return accepted(in), nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bid := data["bid"].(map[string]any)
				_, err := uuid.Parse(bid["bid_id"].(string))
				require.NoError(t, err, "bid_id should be a valid UUID")
				require.Equal(t, "110.00", bid["bid_amount_per_unit"])
				require.Equal(t, "ACTIVE_HIGHEST", bid["status"])
				require.Equal(t, "110.00", data["current_highest_bid"])
				require.Equal(t, "120.00", data["minimum_next_bid"])
				require.Empty(t, data["auto_bids"])
			},
		},
		{
			name:        "triggers_auto_bid",
			auctionID:   "a1",
			requestBody: map[string]any{"user_id": "carol", "amount": 150},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in bidding.PlaceBidInput) (bidding.PlaceBidResult, error) {
						res := accepted(in)
						counter := models.Bid{BidID: "auto-1", AuctionID: "a1", UserID: "bob", Amount: dec("160"),
							Status: models.BidStatusActiveHighest, IsAutoBid: true, CreatedAt: now}
						res.Bid.Status = models.BidStatusOutbid
						res.AutoBids = []models.Bid{counter}
						res.Auction.CurrentHighestBid = &counter.Amount
						res.Auction.CurrentHighestBidder = "bob"
						return res, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				autoBids := data["auto_bids"].([]any)
				require.Len(t, autoBids, 1)
				require.Equal(t, true, autoBids[0].(map[string]any)["is_auto_bid"])
				require.Equal(t, "160.00", data["current_highest_bid"])
				require.Equal(t, "bob", data["current_highest_bidder"])
				require.Equal(t, "170.00", data["minimum_next_bid"])
			},
		},
		{
			name:        "lot_bid",
			auctionID:   "a1",
			requestBody: map[string]any{"user_id": "bob", "amount": "55.5", "lot_id": "lot-1"},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in bidding.PlaceBidInput) (bidding.PlaceBidResult, error) {
						require.NotNil(t, in.LotID)
						require.Equal(t, "lot-1", *in.LotID)
						res := accepted(in)
						res.Auction.CurrentHighestBid = nil
						return res, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "lot-1", data["bid"].(map[string]any)["lot_id"])
				require.Equal(t, "55.50", data["current_highest_bid"])
			},
		},
		{
			name:           "invalid_json",
			auctionID:      "a1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_user_id",
			auctionID:      "a1",
			requestBody:    map[string]any{"amount": 50},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "invalid_amount_zero",
			auctionID:      "a1",
			requestBody:    map[string]any{"user_id": "bob", "amount": 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_amount",
			auctionID:      "a1",
			requestBody:    map[string]any{"user_id": "bob", "amount": -10},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_bid_too_low",
			auctionID:   "a2",
			requestBody: map[string]any{"user_id": "bob", "amount": 115},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					Return(bidding.PlaceBidResult{}, biddingerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "auction_not_found",
			auctionID:   "missing",
			requestBody: map[string]any{"user_id": "bob", "amount": 115},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					Return(bidding.PlaceBidResult{}, biddingerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
		{
			name:        "seller_cannot_bid",
			auctionID:   "a3",
			requestBody: map[string]any{"user_id": "seller-1", "amount": 115},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					Return(bidding.PlaceBidResult{}, biddingerrors.ErrSellerCannotBid)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "request rejected",
		},
		{
			name:        "service_generic_error",
			auctionID:   "a4",
			requestBody: map[string]any{"user_id": "bob", "amount": 100},
			mockSetup: func() {
				mockService.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					Return(bidding.PlaceBidResult{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			status, resp := doJSON(t, router, http.MethodPost, "/auctions/"+tc.auctionID+"/bids", tc.requestBody)

			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetBidsByAuctionHandler
func TestGetBidsByAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/bids", handler.GetBidsByAuctionHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		expectedCount  int
	}{
		{
			name:      "success_multiple_bids",
			auctionID: "a1",
			mockSetup: func() {
				mockService.EXPECT().GetBidsForAuction(gomock.Any(), "a1").Return([]models.Bid{
					{BidID: uuid.NewString(), AuctionID: "a1", UserID: "bob", Amount: dec("110"), Status: models.BidStatusOutbid, CreatedAt: now},
					{BidID: uuid.NewString(), AuctionID: "a1", UserID: "carol", Amount: dec("160"), Status: models.BidStatusActiveHighest, CreatedAt: now},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			expectedCount:  2,
		},
		{
			name:      "service_no_bids_error",
			auctionID: "a2",
			mockSetup: func() {
				mockService.EXPECT().GetBidsForAuction(gomock.Any(), "a2").Return(nil, biddingerrors.ErrNoBids)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			expectedCount:  0,
		},
		{
			name:      "service_generic_error",
			auctionID: "a3",
			mockSetup: func() {
				mockService.EXPECT().GetBidsForAuction(gomock.Any(), "a3").Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
			expectedCount:  -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			status, resp := doJSON(t, router, http.MethodGet, "/auctions/"+tc.auctionID+"/bids", nil)

			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.expectedCount >= 0 {
				require.Len(t, resp["data"].([]any), tc.expectedCount)
			}
		})
	}
}

// Test GetWinningBidHandler
func TestGetWinningBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/winning", handler.GetWinningBidHandler)

	lot := "lot-1"
	mockService.EXPECT().GetWinningBid(gomock.Any(), "a1", nil).
		Return(models.Bid{BidID: "b1", AuctionID: "a1", UserID: "bob", Amount: dec("160"), Status: models.BidStatusWinning}, nil)
	mockService.EXPECT().GetWinningBid(gomock.Any(), "a1", &lot).
		Return(models.Bid{BidID: "b2", AuctionID: "a1", LotID: &lot, UserID: "carol", Amount: dec("60"), Status: models.BidStatusWinning}, nil)
	mockService.EXPECT().GetWinningBid(gomock.Any(), "a2", nil).Return(models.Bid{}, biddingerrors.ErrNoBids)
	mockService.EXPECT().GetWinningBid(gomock.Any(), "a3", nil).Return(models.Bid{}, biddingerrors.ErrAuctionNotFound)

	status, resp := doJSON(t, router, http.MethodGet, "/auctions/a1/winning", nil)
	require.Equal(t, http.StatusOK, status)
	data := resp["data"].(map[string]any)
	require.Equal(t, "b1", data["bid_id"])
	require.Equal(t, "WINNING_BID", data["status"])

	status, resp = doJSON(t, router, http.MethodGet, "/auctions/a1/winning?lot_id=lot-1", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "b2", resp["data"].(map[string]any)["bid_id"])

	status, resp = doJSON(t, router, http.MethodGet, "/auctions/a2/winning", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "no winning bid found", resp["message"])
	require.Equal(t, "not_found", resp["kind"])

	status, _ = doJSON(t, router, http.MethodGet, "/auctions/a3/winning", nil)
	require.Equal(t, http.StatusNotFound, status)
}

// Test GetAuctionsByUserHandler
func TestGetAuctionsByUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:user_id/auctions", handler.GetAuctionsByUserHandler)

	mockService.EXPECT().GetAuctionsByUser(gomock.Any(), "bob").
		Return([]models.Auction{{AuctionID: "a1"}, {AuctionID: "a2"}}, nil)
	mockService.EXPECT().GetAuctionsByUser(gomock.Any(), "dave").Return(nil, biddingerrors.ErrUserNoBids)
	mockService.EXPECT().GetAuctionsByUser(gomock.Any(), "eve").Return(nil, errors.New("database failure"))

	status, resp := doJSON(t, router, http.MethodGet, "/users/bob/auctions", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp["data"].([]any), 2)

	status, resp = doJSON(t, router, http.MethodGet, "/users/dave/auctions", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp["data"].([]any), 0)

	status, _ = doJSON(t, router, http.MethodGet, "/users/eve/auctions", nil)
	require.Equal(t, http.StatusInternalServerError, status)
}
