// Package metrics defines Prometheus metrics for sociograph.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sociograph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	// FollowEventsApplied counts graph mutations folded into the in-memory
	// graph, labelled by op. Replays of self-originated notifications are
	// counted too, so this tracks apply work rather than distinct follows.
	FollowEventsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_follow_events_applied_total",
			Help: "Graph apply operations by op (follow, unfollow)",
		},
		[]string{"op"},
	)

	ResyncsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sociograph_resyncs_total",
			Help: "Full graph reloads from Postgres",
		},
	)

	GraphQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sociograph_graph_query_duration_seconds",
			Help:    "In-memory graph query duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"query"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	UserCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_users_total",
			Help: "Users with at least one follow edge",
		},
	)

	FollowCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_follows_total",
			Help: "Follow edges in the in-memory graph",
		},
	)
)

// ObserveGraphQuery records the elapsed time of one graph query.
// Call with defer: defer metrics.ObserveGraphQuery("shortest_path", time.Now()).
func ObserveGraphQuery(query string, start time.Time) {
	GraphQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		FollowEventsApplied, ResyncsTotal, GraphQueryDuration,
		WSConnections,
		UserCount, FollowCount,
	)
}
