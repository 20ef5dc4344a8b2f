package server

import (
	"net/http"

	"agri-auction/internal/config"
	"agri-auction/internal/lookup"
	"agri-auction/internal/metrics"
	handler "agri-auction/services/bidding/handler"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

// Services are the collaborators the HTTP layer dispatches to
type Services struct {
	Bidding     handler.BiddingServiceInterface
	Lifecycle   handler.LifecycleServiceInterface
	Settlements handler.SettlementServiceInterface
	Catalog     *lookup.Catalog
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services, cfg config.Config) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(metrics.Middleware)

	biddingHandler := handler.NewBiddingHandler(svc.Bidding)
	lifecycleHandler := handler.NewLifecycleHandler(svc.Lifecycle, svc.Settlements)
	lookupHandler := handler.NewLookupHandler(svc.Catalog)
	limiter := NewBidderRateLimiter(cfg.Server.RateLimit)
	caller := CallerMiddleware(cfg.Auth.JWTSecret)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/lookups/:kind", lookupHandler.ListHandler)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", biddingHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/lots", biddingHandler.AddLotHandler)

		auctions.POST("/:auction_id/bids", limiter.Middleware, biddingHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)

		auctions.POST("/:auction_id/participants", biddingHandler.RegisterParticipantHandler)
		auctions.PUT("/:auction_id/auto-bids", biddingHandler.SetAutoBidHandler)
		auctions.DELETE("/:auction_id/auto-bids/:user_id", caller, biddingHandler.DisableAutoBidHandler)

		auctions.POST("/:auction_id/watchlist", biddingHandler.AddToWatchlistHandler)
		auctions.DELETE("/:auction_id/watchlist/:user_id", biddingHandler.RemoveFromWatchlistHandler)

		auctions.POST("/:auction_id/cancel", caller, lifecycleHandler.CancelHandler)
		auctions.GET("/:auction_id/settlements", lifecycleHandler.ListSettlementsHandler)
	}

	router.GET("/settlements/:settlement_id", lifecycleHandler.GetSettlementHandler)

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", biddingHandler.GetAuctionsByUserHandler)
		users.GET("/:user_id/watchlist", biddingHandler.GetWatchlistHandler)
	}

	admin := router.Group("/admin", AdminAuthMiddleware(cfg.Auth.JWTSecret))
	{
		admin.POST("/auctions/:auction_id/cancel", lifecycleHandler.CancelHandler)
		admin.POST("/auctions/:auction_id/close", lifecycleHandler.CloseHandler)
		admin.POST("/auctions/:auction_id/reconcile", biddingHandler.ReconcileHandler)
		admin.POST("/auctions/:auction_id/participants/:user_id/status", biddingHandler.SetParticipantStatusHandler)
		admin.POST("/settlements/:settlement_id/collect", lifecycleHandler.CollectPaymentHandler)
		admin.POST("/settlements/:settlement_id/payout", lifecycleHandler.ConfirmPayoutHandler)
	}

	return router
}
