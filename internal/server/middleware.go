package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/config"
	"agri-auction/services/bidding/helpers"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// maxBidders caps the limiter table; it is reset wholesale when exceeded
const maxBidders = 10000

// BidderRateLimiter throttles bid placement per bidder. The bidder is the user_id of
// the JSON body, or the client IP when the body carries none.
type BidderRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewBidderRateLimiter(cfg config.RateLimitConfig) *BidderRateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &BidderRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(cfg.BidsPerSecond),
		burst:    burst,
	}
}

func (rl *BidderRateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxBidders {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// Allow reports whether key may place another bid now
func (rl *BidderRateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// Middleware rejects bursts with 429. A zero rate disables it.
func (rl *BidderRateLimiter) Middleware(c *gin.Context) {
	if rl.rate <= 0 {
		c.Next()
		return
	}

	key := bidderKey(c)
	if !rl.Allow(key) {
		err := fmt.Errorf("%w - bidder %s", biddingerrors.ErrRateLimited, key)
		status, message := helpers.MapErrorToHTTP(err)
		utils.AbortJSONError(c, status, err, message)
		utils.Warn("RateLimiter: bid rejected", map[string]any{"bidder": key, "path": c.Request.URL.Path})
		return
	}
	c.Next()
}

// bidderKey peeks at the body without consuming it
func bidderKey(c *gin.Context) string {
	if c.Request.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		if err == nil {
			var peek struct {
				UserID string `json:"user_id"`
			}
			if json.Unmarshal(raw, &peek) == nil && peek.UserID != "" {
				return "user:" + peek.UserID
			}
		}
	}
	return "ip:" + c.ClientIP()
}

// AdminClaims is the token payload admin routes accept
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var errUnauthorized = errors.New("admin token required")

// AdminAuthMiddleware accepts HS256 bearer tokens carrying role=admin and stores the
// subject under helpers.ActorKey. An empty secret locks the admin routes.
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if secret == "" || !found || raw == "" {
			c.Header("WWW-Authenticate", `Bearer realm="admin"`)
			utils.AbortJSONError(c, http.StatusUnauthorized, errUnauthorized, "unauthorized")
			return
		}

		claims, err := parseBearer(key, raw)
		if err != nil {
			utils.Warn("AdminAuth: invalid token", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			utils.AbortJSONError(c, http.StatusUnauthorized, fmt.Errorf("%w: %v", errUnauthorized, err), "unauthorized")
			return
		}
		if claims.Role != "admin" || claims.Subject == "" {
			err := fmt.Errorf("%w - role %q", biddingerrors.ErrNotAuthorized, claims.Role)
			utils.AbortJSONError(c, http.StatusForbidden, err, "admin role required")
			return
		}

		c.Set(helpers.ActorKey, claims.Subject)
		c.Next()
	}
}

func parseBearer(key []byte, raw string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// CallerMiddleware binds an optional bearer token of any role to the request. Without an
// Authorization header the user_id in the request is taken as given; with one, the token
// must verify and its subject is stored under helpers.CallerKey for handlers to match.
func CallerMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if secret == "" || !found || raw == "" {
			c.Header("WWW-Authenticate", `Bearer realm="bidder"`)
			utils.AbortJSONError(c, http.StatusUnauthorized, errUnauthorized, "unauthorized")
			return
		}
		claims, err := parseBearer(key, raw)
		if err == nil && claims.Subject == "" {
			err = errors.New("token has no subject")
		}
		if err != nil {
			utils.Warn("CallerAuth: invalid token", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			utils.AbortJSONError(c, http.StatusUnauthorized, fmt.Errorf("%w: %v", errUnauthorized, err), "unauthorized")
			return
		}

		c.Set(helpers.CallerKey, claims.Subject)
		c.Next()
	}
}
