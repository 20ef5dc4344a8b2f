package handler

import (
	"net/http"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/models"
	"agri-auction/services/bidding/helpers"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

// CreateAuctionHandler handles POST /auctions
func (h *BiddingHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), bidding.CreateAuctionInput{
		SellerID:      req.SellerID,
		ProductID:     req.ProductID,
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StartingPrice: req.StartingPrice,
		MinIncrement:  req.MinIncrement,
		ReservePrice:  req.ReservePrice,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Currency:      req.Currency,
		IsPrivate:     req.IsPrivate,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", "failed to create auction", err, map[string]any{"seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  auction.SellerID,
		"status":     auction.Status,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	details, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", "error retrieving auction", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, details, "auction retrieved successfully")
}

// AddLotHandler handles POST /auctions/:auction_id/lots
func (h *BiddingHandler) AddLotHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.AddLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddLotHandler", err)
		return
	}

	lot, err := h.service.AddLot(c.Request.Context(), bidding.AddLotInput{
		AuctionID:     auctionID,
		SellerID:      req.SellerID,
		Title:         req.Title,
		Quantity:      req.Quantity,
		StartingPrice: req.StartingPrice,
		ReservePrice:  req.ReservePrice,
	})
	if err != nil {
		helpers.RespondError(c, "AddLotHandler", "failed to add lot", err, map[string]any{
			"auction_id": auctionID,
			"seller_id":  req.SellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "lot added successfully")
	helpers.LogSuccess("AddLotHandler", "lot added successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     lot.LotID,
	})
}

// RegisterParticipantHandler handles POST /auctions/:auction_id/participants
func (h *BiddingHandler) RegisterParticipantHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterParticipantHandler", err)
		return
	}

	p, err := h.service.RegisterParticipant(c.Request.Context(), auctionID, req.UserID)
	if err != nil {
		helpers.RespondError(c, "RegisterParticipantHandler", "registration failed", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, p, "participant registered")
	helpers.LogSuccess("RegisterParticipantHandler", "participant registered", map[string]any{
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"status":     p.Status,
	})
}

// SetParticipantStatusHandler handles POST /admin/auctions/:auction_id/participants/:user_id/status
func (h *BiddingHandler) SetParticipantStatusHandler(c *gin.Context) {
	auctionID, userID := c.Param("auction_id"), c.Param("user_id")
	var req helpers.ParticipantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetParticipantStatusHandler", err)
		return
	}

	p, err := h.service.SetParticipantStatus(c.Request.Context(), auctionID, userID, models.ParticipantStatus(req.Status))
	if err != nil {
		helpers.RespondError(c, "SetParticipantStatusHandler", "status change failed", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "participant status updated")
	helpers.LogSuccess("SetParticipantStatusHandler", "participant status updated", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
		"status":     p.Status,
		"admin_id":   c.GetString(helpers.ActorKey),
	})
}

// SetAutoBidHandler handles PUT /auctions/:auction_id/auto-bids
func (h *BiddingHandler) SetAutoBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.AutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAutoBidHandler", err)
		return
	}

	setting, err := h.service.SetAutoBid(c.Request.Context(), bidding.SetAutoBidInput{
		AuctionID: auctionID,
		UserID:    req.UserID,
		MaxAmount: req.MaxAmount,
		Increment: req.Increment,
	})
	if err != nil {
		helpers.RespondError(c, "SetAutoBidHandler", "failed to save auto-bid", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, setting, "auto-bid saved")
	helpers.LogSuccess("SetAutoBidHandler", "auto-bid saved", map[string]any{
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"max_amount": setting.MaxAmount.String(),
	})
}

// DisableAutoBidHandler handles DELETE /auctions/:auction_id/auto-bids/:user_id
func (h *BiddingHandler) DisableAutoBidHandler(c *gin.Context) {
	auctionID, userID := c.Param("auction_id"), c.Param("user_id")
	if _, err := helpers.ResolveCaller(c, userID); err != nil {
		helpers.RespondError(c, "DisableAutoBidHandler", "caller mismatch", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
		})
		return
	}
	setting, err := h.service.DisableAutoBid(c.Request.Context(), auctionID, userID)
	if err != nil {
		helpers.RespondError(c, "DisableAutoBidHandler", "failed to disable auto-bid", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, setting, "auto-bid disabled")
	helpers.LogSuccess("DisableAutoBidHandler", "auto-bid disabled", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
	})
}

// AddToWatchlistHandler handles POST /auctions/:auction_id/watchlist
func (h *BiddingHandler) AddToWatchlistHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToWatchlistHandler", err)
		return
	}

	entry, err := h.service.AddToWatchlist(c.Request.Context(), req.UserID, auctionID)
	if err != nil {
		helpers.RespondError(c, "AddToWatchlistHandler", "failed to watch auction", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, entry, "auction added to watchlist")
}

// RemoveFromWatchlistHandler handles DELETE /auctions/:auction_id/watchlist/:user_id
func (h *BiddingHandler) RemoveFromWatchlistHandler(c *gin.Context) {
	auctionID, userID := c.Param("auction_id"), c.Param("user_id")
	if err := h.service.RemoveFromWatchlist(c.Request.Context(), userID, auctionID); err != nil {
		helpers.RespondError(c, "RemoveFromWatchlistHandler", "failed to unwatch auction", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "auction removed from watchlist")
}

// GetWatchlistHandler handles GET /users/:user_id/watchlist
func (h *BiddingHandler) GetWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")
	list, err := h.service.GetWatchlist(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetWatchlistHandler", "error retrieving watchlist", err, map[string]any{"user_id": userID})
		return
	}
	if list == nil {
		list = []models.AuctionWatchlist{}
	}
	utils.JSONResponse(c, http.StatusOK, list, "watchlist retrieved successfully")
}
