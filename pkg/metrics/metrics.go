package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	WSConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interview_ws_connections_active",
			Help: "Number of WebSocket connections subscribed to interview streams",
		},
	)

	BroadcastMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_broadcast_messages_total",
			Help: "Messages delivered to interview subscribers by message type",
		},
		[]string{"type"},
	)

	BroadcastFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_broadcast_failures_total",
			Help: "Failed sends that caused a subscriber to be pruned",
		},
	)

	SimulationsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interview_simulations_active",
			Help: "Number of running interview simulations",
		},
	)

	SimulationsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_simulations_finished_total",
			Help: "Finished interview simulations by outcome",
		},
		[]string{"outcome"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"prefix"},
	)
)
