package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOperationCounter(t *testing.T) {
	m := New()
	m.Operation("settle_round", "ok")
	m.Operation("settle_round", "ok")
	m.Operation("settle_round", "not_found")

	if got := testutil.ToFloat64(m.operations.WithLabelValues("settle_round", "ok")); got != 2 {
		t.Fatalf("expected 2 ok settlements, got %v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("settle_round", "not_found")); got != 1 {
		t.Fatalf("expected 1 failed settlement, got %v", got)
	}
}

func TestStoreHistogram(t *testing.T) {
	m := New()
	m.ObserveStore("memory", "load", 3*time.Millisecond)
	if got := testutil.CollectAndCount(m.store); got != 1 {
		t.Fatalf("expected one histogram series, got %d", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Operation("create_table", "ok")
	m.ObserveStore("memory", "save", time.Second)
	m.Request("GET", "/api/tables", "200")
}
