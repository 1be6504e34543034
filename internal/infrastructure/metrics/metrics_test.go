package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestGigMetrics(t *testing.T) {
	m := NewGigMetrics(prometheus.NewRegistry())

	m.RecordTaskStarted()
	m.RecordTaskSkipped("task")
	m.RecordTaskSkipped("task")
	m.RecordCommission(1, decimal.NewFromInt(1000))
	m.RecordTasksMissed(3)

	if got := testutil.ToFloat64(m.TasksStartedTotal); got != 1 {
		t.Errorf("started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.TasksSkippedTotal.WithLabelValues("task")); got != 2 {
		t.Errorf("skipped(task) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CommissionAmountTotal.WithLabelValues("1")); got != 1000 {
		t.Errorf("commission amount = %v, want 1000", got)
	}
	if got := testutil.ToFloat64(m.TasksMissedTotal); got != 3 {
		t.Errorf("missed = %v, want 3", got)
	}
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *GigMetrics
	m.RecordTaskStarted()
	m.RecordCommission(2, decimal.NewFromInt(5))
	m.RecordRequest("GET", "/", 200, 0.1)
}
