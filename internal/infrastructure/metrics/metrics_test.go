package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/walletledger/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.WalletsCreated == nil || m.Transactions == nil || m.DebitsRejected == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecorders(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	m.RecordWalletCreated()
	m.RecordTransaction(domain.TransactionCredit)
	m.RecordTransaction(domain.TransactionCredit)
	m.RecordTransaction(domain.TransactionDebit)
	m.RecordDebitRejected()

	if got := testutil.ToFloat64(m.WalletsCreated); got != 1 {
		t.Fatalf("expected 1 wallet created, got %v", got)
	}
	if got := testutil.ToFloat64(m.Transactions.WithLabelValues("credit")); got != 2 {
		t.Fatalf("expected 2 credits, got %v", got)
	}
	if got := testutil.ToFloat64(m.Transactions.WithLabelValues("debit")); got != 1 {
		t.Fatalf("expected 1 debit, got %v", got)
	}
	if got := testutil.ToFloat64(m.DebitsRejected); got != 1 {
		t.Fatalf("expected 1 rejected debit, got %v", got)
	}
}
