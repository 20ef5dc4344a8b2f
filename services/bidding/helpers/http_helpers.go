package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrRateLimited):
		return http.StatusTooManyRequests, "too many bids, slow down"
	case errors.Is(err, biddingerrors.ErrPaymentFailed):
		return http.StatusPaymentRequired, "payment failed"
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction already closed"
	}

	switch biddingerrors.KindOf(err) {
	case biddingerrors.KindNotFound:
		return http.StatusNotFound, "resource not found"
	case biddingerrors.KindValidation:
		return http.StatusBadRequest, "request rejected"
	case biddingerrors.KindConflict:
		return http.StatusConflict, "conflicting update, retry with fresh state"
	case biddingerrors.KindForbidden:
		return http.StatusForbidden, "not authorized for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error envelope and logs it with the given fields
func RespondError(c *gin.Context, handlerName, what string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+what, fields)
		return
	}
	utils.Warn(handlerName+": "+what, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse flattens a bid for the wire, amounts as fixed two-decimal strings
func ToBidResponse(bid models.Bid) BidResponse {
	resp := BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount.StringFixed(2),
		Status:    string(bid.Status),
		IsAutoBid: bid.IsAutoBid,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
	if bid.LotID != nil {
		resp.LotID = *bid.LotID
	}
	return resp
}

func ToBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

// ActorKey is the gin context key the admin middleware stores the token subject under
const ActorKey = "actor_id"

// CallerKey holds the subject of a verified bearer token on user-scoped routes
const CallerKey = "caller_id"

// ResolveCaller returns the user a request acts for. Without a verified caller the
// claimed id stands; with one, the claim must be empty or match it.
func ResolveCaller(c *gin.Context, claimed string) (string, error) {
	caller := c.GetString(CallerKey)
	switch {
	case caller == "":
		return claimed, nil
	case claimed == "" || claimed == caller:
		return caller, nil
	default:
		return "", fmt.Errorf("%w - token subject %s cannot act for %s", biddingerrors.ErrNotAuthorized, caller, claimed)
	}
}
