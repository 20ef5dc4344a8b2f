// Package metrics exposes Prometheus collectors for bidding, lifecycle and settlement activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"agri-auction/internal/biddingerrors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "auction"

var (
	BidsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bid",
			Name:      "accepted_total",
			Help:      "Accepted bids by origin",
		},
		[]string{"origin"}, // human | auto
	)

	BidsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bid",
			Name:      "rejected_total",
			Help:      "Rejected bid attempts by error kind",
		},
		[]string{"kind"},
	)

	BidLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bid",
			Name:      "placement_duration_seconds",
			Help:      "Bid placement latency including the auto-bid reaction",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		},
	)

	AuctionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Auction status transitions by target status",
		},
		[]string{"status"},
	)

	SweepRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "sweeps_total",
			Help:      "Sweeper runs by result",
		},
		[]string{"result"}, // ok | error | skipped
	)

	Settlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "transitions_total",
			Help:      "Settlements entering each status",
		},
		[]string{"status"},
	)

	SideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "external",
			Name:      "failures_total",
			Help:      "Wallet, notification and order calls that failed after commit",
		},
		[]string{"collaborator"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
		},
		[]string{"method", "route"},
	)
)

// ObserveBid records the outcome of one PlaceBid call
func ObserveBid(start time.Time, autoBids int, err error) {
	BidLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		BidsRejected.WithLabelValues(biddingerrors.KindOf(err).String()).Inc()
		return
	}
	BidsAccepted.WithLabelValues("human").Inc()
	if autoBids > 0 {
		BidsAccepted.WithLabelValues("auto").Add(float64(autoBids))
	}
}

// Middleware records request counts and latency by route template
func Middleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
