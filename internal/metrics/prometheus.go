package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startTime = time.Now()

	// UptimeSeconds tracks the loyalty server uptime in seconds
	UptimeSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "uptime_seconds",
		Help:      "The uptime of the loyalty server in seconds",
	})

	// Total HTTP Request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "endpoint", "status"})

	// HTTP Request duration metrics
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	// Active HTTP requests
	ActiveRequests = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "active_requests",
		Help:      "Currently active HTTP requests",
	}, []string{"endpoint"})

	// Database operation metrics
	DatabaseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "database_operations_total",
		Help:      "Total database operations performed",
	}, []string{"operation", "table", "status"})

	// Database operation duration metrics
	DatabaseOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "database_operation_duration_seconds",
		Help:      "Database operation duration in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"operation", "table"})

	// Database slow queries metrics
	DBSlowQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "db_slow_queries_total",
		Help:      "Queries exceeding time threshold",
	}, []string{"threshold"})

	// Error and reliability metrics
	DatabaseErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "database_errors_total",
		Help:      "Database errors (error_type=timeout/connection/query/not_found)",
	}, []string{"error_type"})

	// Ledger contract call metrics
	LedgerCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "ledger_calls_total",
		Help:      "Total loyalty contract calls (method=mintNFT/addPointsToNFT/...)",
	}, []string{"method", "status"})

	// Ledger transaction duration metrics
	LedgerCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "ledger_call_duration_seconds",
		Help:      "Loyalty contract call duration in seconds",
		Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
	}, []string{"method"})

	// Reconciliation outcome metrics
	ReconciliationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "reconciliations_total",
		Help:      "Request reconciliations (action=approve/reject, type=mint/payment)",
	}, []string{"action", "type", "status"})

	// Token discovery scan metrics
	TokenScanLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "token_scan_length",
		Help:      "Tokens inspected per ownership scan",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000},
	})

	// Pending request backlog, refreshed by the cron sweeper
	PendingRequests = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "pending_requests",
		Help:      "Pending requests awaiting admin review",
	}, []string{"type"})

	// Stripe webhook metrics
	CheckoutEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "checkout_events_total",
		Help:      "Stripe webhook events received",
	}, []string{"event_type", "status"})

	// Panic recovery metrics
	PanicRecoveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "panic_recoveries_total",
		Help:      "Panic recovery instances",
	}, []string{"endpoint"})

	// Memory usage metrics
	MemoryUsageBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "memory_usage_bytes",
		Help:      "Memory consumption",
	})

	// CPU usage metrics
	CPUUsagePercent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "cpu_usage_percent",
		Help:      "CPU utilization percentage",
	})

	// Goroutines active metrics
	GoroutinesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "goroutines_active",
		Help:      "Active Go routines",
	})

	// Garbage collection duration metrics
	GCDurationSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "loopcard",
		Subsystem: "loyalty_server",
		Name:      "gc_duration_seconds",
		Help:      "Garbage collection time",
	})
)
