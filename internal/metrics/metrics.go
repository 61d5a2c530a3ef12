// Package metrics registers Prometheus instrumentation for the ledger engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpendsRecorded counts spend events durably appended to the log.
	SpendsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlewise_spends_recorded_total",
		Help: "Number of spend events appended to the ledger.",
	})

	// BalanceComputations counts full folds over a group's event log.
	BalanceComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlewise_balance_computations_total",
		Help: "Number of balance recomputations over the spend log.",
	})

	// PlanTransfers observes the number of transfers per settlement plan.
	PlanTransfers = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "settlewise_plan_transfers",
		Help:    "Transfers emitted per settlement plan.",
		Buckets: prometheus.LinearBuckets(0, 1, 12),
	})

	// LedgerErrors counts engine failures by kind (validation,
	// invalid_ledger, unbalanced_ledger).
	LedgerErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlewise_ledger_errors_total",
		Help: "Ledger engine failures by kind.",
	}, []string{"kind"})
)
