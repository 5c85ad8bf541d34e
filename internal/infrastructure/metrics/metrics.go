package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics driven by the use case layer.
// HTTP-level metrics are recorded separately by the metrics middleware.
type Metrics struct {
	// Member metrics
	MembersCreated   prometheus.Counter
	MemberOperations *prometheus.CounterVec

	// Loan metrics
	LoansCreated prometheus.Counter
	LoanAmount   prometheus.Histogram

	// Voucher metrics
	VouchersCreated  *prometheus.CounterVec
	VouchersRejected *prometheus.CounterVec
	VoucherDuration  prometheus.Histogram

	// Demand metrics
	DemandGenerations prometheus.Counter
	DemandRows        prometheus.Histogram
	DemandDuration    prometheus.Histogram

	// Number generation metrics
	NumberRetries *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Member metrics
		MembersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintcs_members_created_total",
			Help: "Total number of members created",
		}),
		MemberOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintcs_member_operations_total",
				Help: "Total member operations by type",
			},
			[]string{"operation"},
		),

		// Loan metrics
		LoansCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintcs_loans_created_total",
			Help: "Total number of loans created",
		}),
		LoanAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintcs_loan_amount",
			Help:    "Issued loan amounts",
			Buckets: []float64{1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		}),

		// Voucher metrics
		VouchersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintcs_vouchers_created_total",
				Help: "Total number of vouchers created by type",
			},
			[]string{"type"},
		),
		VouchersRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintcs_vouchers_rejected_total",
				Help: "Total number of vouchers rejected by reason",
			},
			[]string{"reason"},
		),
		VoucherDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintcs_voucher_duration_seconds",
			Help:    "Duration of voucher creation",
			Buckets: prometheus.DefBuckets,
		}),

		// Demand metrics
		DemandGenerations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintcs_demand_generations_total",
			Help: "Total number of demand statement generations",
		}),
		DemandRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintcs_demand_rows",
			Help:    "Rows per generated demand statement",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000},
		}),
		DemandDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintcs_demand_duration_seconds",
			Help:    "Duration of demand generation",
			Buckets: prometheus.DefBuckets,
		}),

		// Number generation metrics
		NumberRetries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintcs_number_retries_total",
				Help: "Total document number collisions by document kind",
			},
			[]string{"kind"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintcs_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintcs_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),
	}
}
