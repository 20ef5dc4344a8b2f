package handler

import (
	"context"
	"errors"
	"net/http"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/services/bidding/helpers"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_handler.go -package=handler agri-auction/services/bidding/handler BiddingServiceInterface,LifecycleServiceInterface,SettlementServiceInterface

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, in bidding.PlaceBidInput) (bidding.PlaceBidResult, error)
	GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, auctionID string, lotID *string) (models.Bid, error)
	GetAuctionsByUser(ctx context.Context, userID string) ([]models.Auction, error)

	CreateAuction(ctx context.Context, in bidding.CreateAuctionInput) (models.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (bidding.AuctionDetails, error)
	AddLot(ctx context.Context, in bidding.AddLotInput) (models.AuctionLot, error)

	RegisterParticipant(ctx context.Context, auctionID, userID string) (models.AuctionParticipant, error)
	SetParticipantStatus(ctx context.Context, auctionID, userID string, status models.ParticipantStatus) (models.AuctionParticipant, error)
	SetAutoBid(ctx context.Context, in bidding.SetAutoBidInput) (models.AutoBidSetting, error)
	DisableAutoBid(ctx context.Context, auctionID, userID string) (models.AutoBidSetting, error)

	AddToWatchlist(ctx context.Context, userID, auctionID string) (models.AuctionWatchlist, error)
	RemoveFromWatchlist(ctx context.Context, userID, auctionID string) error
	GetWatchlist(ctx context.Context, userID string) ([]models.AuctionWatchlist, error)

	ReconcileHighestBid(ctx context.Context, auctionID string) (bidding.ReconcileResult, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	if !req.Amount.IsPositive() {
		helpers.HandleBindError(c, "PlaceBidHandler", errors.New("amount must be positive"))
		return
	}

	res, err := h.service.PlaceBid(c.Request.Context(), bidding.PlaceBidInput{
		AuctionID: auctionID,
		LotID:     req.LotID,
		UserID:    req.UserID,
		Amount:    req.Amount,
	})
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", "failed to place bid", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:            helpers.ToBidResponse(res.Bid),
		AutoBids:       helpers.ToBidResponses(res.AutoBids),
		HighestBidder:  res.Auction.CurrentHighestBidder,
		MinimumNextBid: res.Auction.MinimumNextBid().StringFixed(2),
		Warnings:       res.Warnings,
	}
	if res.Auction.CurrentHighestBid != nil {
		resp.CurrentHighestBid = res.Auction.CurrentHighestBid.StringFixed(2)
	}
	if req.LotID != nil {
		// lot scopes do not move the auction-level figures
		resp.CurrentHighestBid = res.Bid.Amount.StringFixed(2)
		resp.HighestBidder = res.Bid.UserID
		resp.MinimumNextBid = ""
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     res.Bid.BidID,
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"amount":     req.Amount.String(),
		"auto_bids":  len(res.AutoBids),
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		helpers.RespondError(c, "GetBidsByAuctionHandler", "error retrieving bids", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.ToBidResponses(bids)
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning[?lot_id=]
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var lotID *string
	if lot := c.Query("lot_id"); lot != "" {
		lotID = &lot
	}

	bid, err := h.service.GetWinningBid(c.Request.Context(), auctionID, lotID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", "winning bid error", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetAuctionsByUserHandler handles GET /users/:user_id/auctions
func (h *BiddingHandler) GetAuctionsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.service.GetAuctionsByUser(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, biddingerrors.ErrUserNoBids) {
		helpers.RespondError(c, "GetAuctionsByUserHandler", "error retrieving auctions", err, map[string]any{"user_id": userID})
		return
	}

	if auctions == nil {
		auctions = []models.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsByUserHandler", "auctions retrieved successfully", map[string]any{
		"user_id":        userID,
		"auctions_count": len(auctions),
	})
}

// ReconcileHandler handles POST /admin/auctions/:auction_id/reconcile
func (h *BiddingHandler) ReconcileHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	res, err := h.service.ReconcileHighestBid(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "ReconcileHandler", "reconcile failed", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, res, "auction reconciled")
	helpers.LogSuccess("ReconcileHandler", "auction reconciled", map[string]any{
		"auction_id":    auctionID,
		"cache_changed": res.CacheChanged,
		"repaired_bids": res.RepairedBids,
		"admin_id":      c.GetString(helpers.ActorKey),
	})
}
