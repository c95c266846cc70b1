package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every custom metric the service exports.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Domain metrics
	UsersSignedUpTotal       prometheus.Counter
	TransactionsCreatedTotal *prometheus.CounterVec
	TransactionsDeletedTotal prometheus.Counter
}

// NewMetrics registers and returns all application metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		UsersSignedUpTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_signed_up_total",
				Help: "Total number of user accounts created",
			},
		),

		TransactionsCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created",
			},
			[]string{"type"}, // income or expense
		),

		TransactionsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
	}
}

// GlobalMetrics is the process-wide metrics instance.
var GlobalMetrics *Metrics

// InitMetrics initializes the global metrics.
func InitMetrics() {
	GlobalMetrics = NewMetrics()
}

// CountSignup increments the signup counter if metrics are initialized.
func CountSignup() {
	if GlobalMetrics != nil {
		GlobalMetrics.UsersSignedUpTotal.Inc()
	}
}

// CountTransactionCreated increments the creation counter for the given
// transaction type if metrics are initialized.
func CountTransactionCreated(txType string) {
	if GlobalMetrics != nil {
		GlobalMetrics.TransactionsCreatedTotal.WithLabelValues(txType).Inc()
	}
}

// CountTransactionDeleted increments the deletion counter if metrics
// are initialized.
func CountTransactionDeleted() {
	if GlobalMetrics != nil {
		GlobalMetrics.TransactionsDeletedTotal.Inc()
	}
}
