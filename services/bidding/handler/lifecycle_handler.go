package handler

import (
	"context"
	"fmt"
	"net/http"

	"agri-auction/internal/biddingerrors"
	lifecycle "agri-auction/internal/lifecycleService"
	"agri-auction/internal/models"
	"agri-auction/services/bidding/helpers"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

type LifecycleServiceInterface interface {
	Close(ctx context.Context, auctionID string) (lifecycle.CloseResult, error)
	Cancel(ctx context.Context, auctionID string, actor lifecycle.Actor, reason string) (models.Auction, error)
}

type SettlementServiceInterface interface {
	Get(ctx context.Context, settlementID string) (models.AuctionSettlement, error)
	ListForAuction(ctx context.Context, auctionID string) ([]models.AuctionSettlement, error)
	CollectPayment(ctx context.Context, settlementID string) (models.AuctionSettlement, error)
	ConfirmPayout(ctx context.Context, settlementID string) (models.AuctionSettlement, error)
}

var errMissingUser = fmt.Errorf("%w - user_id is required", biddingerrors.ErrInvalidBid)

// LifecycleHandler serves auction transitions and the settlements they produce
type LifecycleHandler struct {
	lifecycle   LifecycleServiceInterface
	settlements SettlementServiceInterface
}

func NewLifecycleHandler(lifecycle LifecycleServiceInterface, settlements SettlementServiceInterface) *LifecycleHandler {
	return &LifecycleHandler{lifecycle: lifecycle, settlements: settlements}
}

// CancelHandler handles POST /auctions/:auction_id/cancel (seller) and
// POST /admin/auctions/:auction_id/cancel (admin token)
func (h *LifecycleHandler) CancelHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelHandler", err)
		return
	}

	var actor lifecycle.Actor
	if adminID := c.GetString(helpers.ActorKey); adminID != "" {
		actor = lifecycle.Actor{UserID: adminID, IsAdmin: true}
	} else {
		userID, err := helpers.ResolveCaller(c, req.UserID)
		if err != nil {
			helpers.RespondError(c, "CancelHandler", "caller mismatch", err, map[string]any{
				"auction_id": auctionID,
				"user_id":    req.UserID,
			})
			return
		}
		actor = lifecycle.Actor{UserID: userID}
	}
	if actor.UserID == "" {
		helpers.HandleBindError(c, "CancelHandler", errMissingUser)
		return
	}

	auction, err := h.lifecycle.Cancel(c.Request.Context(), auctionID, actor, req.Reason)
	if err != nil {
		helpers.RespondError(c, "CancelHandler", "cancel failed", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    actor.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction cancelled")
	helpers.LogSuccess("CancelHandler", "auction cancelled", map[string]any{
		"auction_id": auctionID,
		"user_id":    actor.UserID,
		"admin":      actor.IsAdmin,
	})
}

// CloseHandler handles POST /admin/auctions/:auction_id/close
func (h *LifecycleHandler) CloseHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	res, err := h.lifecycle.Close(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "CloseHandler", "close failed", err, map[string]any{"auction_id": auctionID})
		return
	}

	message := "auction closed"
	if res.AlreadyClosed {
		message = "auction already closed"
	}
	utils.JSONResponse(c, http.StatusOK, res, message)
	helpers.LogSuccess("CloseHandler", message, map[string]any{
		"auction_id":  auctionID,
		"outcome":     res.Auction.Outcome,
		"settlements": len(res.Settlements),
		"admin_id":    c.GetString(helpers.ActorKey),
	})
}

// ListSettlementsHandler handles GET /auctions/:auction_id/settlements
func (h *LifecycleHandler) ListSettlementsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	list, err := h.settlements.ListForAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "ListSettlementsHandler", "error retrieving settlements", err, map[string]any{"auction_id": auctionID})
		return
	}
	if list == nil {
		list = []models.AuctionSettlement{}
	}
	utils.JSONResponse(c, http.StatusOK, list, "settlements retrieved successfully")
}

// GetSettlementHandler handles GET /settlements/:settlement_id
func (h *LifecycleHandler) GetSettlementHandler(c *gin.Context) {
	settlementID := c.Param("settlement_id")
	st, err := h.settlements.Get(c.Request.Context(), settlementID)
	if err != nil {
		helpers.RespondError(c, "GetSettlementHandler", "error retrieving settlement", err, map[string]any{"settlement_id": settlementID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, st, "settlement retrieved successfully")
}

// CollectPaymentHandler handles POST /admin/settlements/:settlement_id/collect
func (h *LifecycleHandler) CollectPaymentHandler(c *gin.Context) {
	settlementID := c.Param("settlement_id")
	st, err := h.settlements.CollectPayment(c.Request.Context(), settlementID)
	if err != nil {
		helpers.RespondError(c, "CollectPaymentHandler", "payment collection failed", err, map[string]any{"settlement_id": settlementID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, st, "payment collected")
	helpers.LogSuccess("CollectPaymentHandler", "payment collected", map[string]any{
		"settlement_id": settlementID,
		"order_id":      st.OrderID,
		"admin_id":      c.GetString(helpers.ActorKey),
	})
}

// ConfirmPayoutHandler handles POST /admin/settlements/:settlement_id/payout
func (h *LifecycleHandler) ConfirmPayoutHandler(c *gin.Context) {
	settlementID := c.Param("settlement_id")
	st, err := h.settlements.ConfirmPayout(c.Request.Context(), settlementID)
	if err != nil {
		helpers.RespondError(c, "ConfirmPayoutHandler", "payout failed", err, map[string]any{"settlement_id": settlementID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, st, "settlement completed")
	helpers.LogSuccess("ConfirmPayoutHandler", "settlement completed", map[string]any{
		"settlement_id": settlementID,
		"admin_id":      c.GetString(helpers.ActorKey),
	})
}
