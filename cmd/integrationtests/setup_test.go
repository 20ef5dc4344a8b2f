package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/clock"
	"agri-auction/internal/config"
	"agri-auction/internal/external"
	lifecycle "agri-auction/internal/lifecycleService"
	"agri-auction/internal/lookup"
	"agri-auction/internal/models"
	"agri-auction/internal/repository"
	"agri-auction/internal/server"
	settlement "agri-auction/internal/settlementService"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-secret"

var t0 = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

// testEnv is a full router over the in-memory repository with a controllable clock
type testEnv struct {
	router *gin.Engine
	clock  *clock.Manual
	wallet *external.MemoryWallet
	events *external.RecordingNotifier
}

// SetupTestEnv wires every service the way main does, minus the sweeper
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewManual(t0)
	repo := repository.NewMemoryRepo()
	wallet := external.NewMemoryWallet()
	events := &external.RecordingNotifier{}
	users := external.NewMemoryDirectory(
		models.User{UserID: "seller", Username: "farm", Status: models.UserStatusActive},
		models.User{UserID: "bob", Username: "bob", Status: models.UserStatusActive},
		models.User{UserID: "carol", Username: "carol", Status: models.UserStatusActive},
		models.User{UserID: "mallory", Username: "mallory", Status: models.UserStatusSuspended},
	)
	for _, id := range []string{"bob", "carol"} {
		wallet.Deposit(id, decimal.NewFromInt(100_000))
	}

	biddingSvc := bidding.NewBiddingService(repo,
		bidding.WithClock(clk),
		bidding.WithUserDirectory(users),
		bidding.WithWallet(wallet),
		bidding.WithNotifier(events),
	)
	settlementSvc := settlement.NewSettlementService(repo,
		settlement.WithClock(clk),
		settlement.WithWallet(wallet),
		settlement.WithOrders(external.NewMemoryOrders()),
	)
	lifecycleSvc := lifecycle.NewLifecycleService(repo, settlementSvc,
		lifecycle.WithClock(clk),
		lifecycle.WithWallet(wallet),
		lifecycle.WithNotifier(events),
	)

	cfg := config.Default()
	cfg.Server.RateLimit = config.RateLimitConfig{}
	cfg.Auth.JWTSecret = testSecret

	router := server.SetupRouter(server.Services{
		Bidding:     biddingSvc,
		Lifecycle:   lifecycleSvc,
		Settlements: settlementSvc,
		Catalog:     lookup.NewCatalog(),
	}, cfg)

	return &testEnv{router: router, clock: clk, wallet: wallet, events: events}
}

// AdminToken signs a token the admin routes accept
func AdminToken(t *testing.T) string {
	t.Helper()
	claims := server.AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// UserToken signs a bidder token for subject
func UserToken(t *testing.T, subject string) string {
	t.Helper()
	claims := server.AdminClaims{
		Role: "bidder",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// ExecuteRequestAndParse executes an HTTP request on the router and decodes the envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// Data returns the envelope's data object
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}

// CreateAuction lists an auction for "seller" open from t0 minus a minute to t0 plus an hour
func (e *testEnv) CreateAuction(t *testing.T, overrides map[string]any) map[string]any {
	t.Helper()
	body := map[string]any{
		"seller_id":               "seller",
		"product_id":              "wheat",
		"title":                   "Durum wheat",
		"start_timestamp":         t0.Add(-time.Minute),
		"end_timestamp":           t0.Add(time.Hour),
		"starting_price_per_unit": "100",
		"minimum_bid_increment":   "10",
		"quantity_offered":        "2.5",
		"unit_of_measure":         "TON",
	}
	for k, v := range overrides {
		body[k] = v
	}
	resp, w := ExecuteRequestAndParse(t, e.router, http.MethodPost, "/auctions", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return Data(t, resp)
}
