package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// GigMetrics holds the service counters. A nil *GigMetrics is valid and
// records nothing.
type GigMetrics struct {
	// Task lifecycle
	TasksStartedTotal   prometheus.Counter
	TasksSkippedTotal   *prometheus.CounterVec
	TasksSubmittedTotal prometheus.Counter
	TasksReviewedTotal  *prometheus.CounterVec
	TasksMissedTotal    prometheus.Counter
	TaskConflictsTotal  *prometheus.CounterVec

	// Quota
	QuotaExhaustedTotal *prometheus.CounterVec
	GrantsTotal         *prometheus.CounterVec

	// Referral commissions
	CommissionsTotal      *prometheus.CounterVec
	CommissionAmountTotal *prometheus.CounterVec

	// Wallet and payments
	WalletAmountTotal      *prometheus.CounterVec
	PaymentsConfirmedTotal *prometheus.CounterVec
	PaymentAmountTotal     prometheus.Counter

	// HTTP
	RequestDuration *prometheus.HistogramVec
}

func NewGigMetrics(reg prometheus.Registerer) *GigMetrics {
	f := promauto.With(reg)
	return &GigMetrics{
		TasksStartedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "gig_tasks_started_total",
			Help: "Tasks moved from available to in_progress",
		}),
		TasksSkippedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_tasks_skipped_total",
			Help: "Skipped tasks by the quota counter that was charged",
		}, []string{"charged"}),
		TasksSubmittedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "gig_tasks_submitted_total",
			Help: "Tasks submitted for review",
		}),
		TasksReviewedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_tasks_reviewed_total",
			Help: "Review decisions",
		}, []string{"decision"}),
		TasksMissedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "gig_tasks_missed_total",
			Help: "Tasks moved to missed by the timeout sweep",
		}),
		TaskConflictsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_task_conflicts_total",
			Help: "Conditional transitions lost to a concurrent change",
		}, []string{"action"}),
		QuotaExhaustedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_quota_exhausted_total",
			Help: "Actions refused because the vendor had no quota",
		}, []string{"action"}),
		GrantsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_grants_total",
			Help: "Quota grants issued per package",
		}, []string{"package_id"}),
		CommissionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_commissions_total",
			Help: "Referral commission records per level",
		}, []string{"level"}),
		CommissionAmountTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_commission_amount_total",
			Help: "Referral commission amount per level",
		}, []string{"level"}),
		WalletAmountTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_wallet_amount_total",
			Help: "Wallet amount moved by transaction type",
		}, []string{"type"}),
		PaymentsConfirmedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_payments_confirmed_total",
			Help: "Confirmed package purchases",
		}, []string{"package_id"}),
		PaymentAmountTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "gig_payment_amount_total",
			Help: "Confirmed purchase amount",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gig_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route", "status"}),
	}
}

func (m *GigMetrics) RecordTaskStarted() {
	if m == nil {
		return
	}
	m.TasksStartedTotal.Inc()
}

func (m *GigMetrics) RecordTaskSkipped(charged string) {
	if m == nil {
		return
	}
	m.TasksSkippedTotal.WithLabelValues(charged).Inc()
}

func (m *GigMetrics) RecordTaskSubmitted() {
	if m == nil {
		return
	}
	m.TasksSubmittedTotal.Inc()
}

func (m *GigMetrics) RecordTaskReviewed(decision string) {
	if m == nil {
		return
	}
	m.TasksReviewedTotal.WithLabelValues(decision).Inc()
}

func (m *GigMetrics) RecordTasksMissed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.TasksMissedTotal.Add(float64(n))
}

func (m *GigMetrics) RecordTaskConflict(action string) {
	if m == nil {
		return
	}
	m.TaskConflictsTotal.WithLabelValues(action).Inc()
}

func (m *GigMetrics) RecordQuotaExhausted(action string) {
	if m == nil {
		return
	}
	m.QuotaExhaustedTotal.WithLabelValues(action).Inc()
}

func (m *GigMetrics) RecordGrant(packageID string) {
	if m == nil {
		return
	}
	m.GrantsTotal.WithLabelValues(packageID).Inc()
}

func (m *GigMetrics) RecordCommission(level int, amount decimal.Decimal) {
	if m == nil {
		return
	}
	l := strconv.Itoa(level)
	m.CommissionsTotal.WithLabelValues(l).Inc()
	m.CommissionAmountTotal.WithLabelValues(l).Add(amount.InexactFloat64())
}

func (m *GigMetrics) RecordWallet(txType string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.WalletAmountTotal.WithLabelValues(txType).Add(amount.InexactFloat64())
}

func (m *GigMetrics) RecordPaymentConfirmed(packageID string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.PaymentsConfirmedTotal.WithLabelValues(packageID).Inc()
	m.PaymentAmountTotal.Add(amount.InexactFloat64())
}

func (m *GigMetrics) RecordRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
