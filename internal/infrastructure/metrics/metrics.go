package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/walletledger/internal/domain"
)

// Metrics holds the wallet service's Prometheus metrics. It satisfies
// usecase.MetricsRecorder.
type Metrics struct {
	WalletsCreated prometheus.Counter
	Transactions   *prometheus.CounterVec
	DebitsRejected prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		WalletsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletledger_wallets_created_total",
			Help: "Total number of wallets created",
		}),
		Transactions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletledger_transactions_total",
				Help: "Total number of transaction records by type",
			},
			[]string{"type"},
		),
		DebitsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletledger_debits_rejected_total",
			Help: "Total number of debits rejected for insufficient balance",
		}),
	}
}

// RecordWalletCreated increments the wallet creation counter.
func (m *Metrics) RecordWalletCreated() {
	m.WalletsCreated.Inc()
}

// RecordTransaction increments the per-type transaction counter.
func (m *Metrics) RecordTransaction(txType domain.TransactionType) {
	m.Transactions.WithLabelValues(string(txType)).Inc()
}

// RecordDebitRejected increments the rejected debit counter.
func (m *Metrics) RecordDebitRejected() {
	m.DebitsRejected.Inc()
}
