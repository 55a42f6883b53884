package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Aerodrome
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal      prometheus.CounterVec
	CacheMissesTotal    prometheus.CounterVec
	CacheEvictionsTotal prometheus.CounterVec

	// Business Metrics
	OrdersCreatedTotal  prometheus.Counter
	OrdersUpdatedTotal  prometheus.Counter
	OrdersDeletedTotal  prometheus.Counter
	SeatConflictsTotal  prometheus.Counter
	TicketsBookedTotal  prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aerodrome_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "aerodrome_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aerodrome_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_cache_hits_total",
				Help: "Cache hits by view kind",
			},
			[]string{"view"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_cache_misses_total",
				Help: "Cache misses by view kind",
			},
			[]string{"view"},
		),
		CacheEvictionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_cache_evictions_total",
				Help: "Cache keys evicted by the invalidation bus, by entity kind",
			},
			[]string{"kind"},
		),

		// Business Metrics
		OrdersCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aerodrome_orders_created_total",
			Help: "Orders created successfully",
		}),
		OrdersUpdatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aerodrome_orders_updated_total",
			Help: "Orders whose ticket set was replaced successfully",
		}),
		OrdersDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aerodrome_orders_deleted_total",
			Help: "Orders deleted",
		}),
		SeatConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aerodrome_seat_conflicts_total",
			Help: "Bookings rejected because the seat was already taken",
		}),
		TicketsBookedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aerodrome_tickets_booked_total",
			Help: "Tickets persisted across all successful bookings",
		}),
	}
}
