// Package metrics defines the Prometheus instruments the checkout
// gateway exports on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the checkout instruments.
type Metrics struct {
	PaymentsTotal   *prometheus.CounterVec
	PaymentDuration prometheus.Histogram
	BankSelections  *prometheus.CounterVec
}

// New registers the checkout metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PaymentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_payments_total",
				Help: "Total number of payment submissions by outcome.",
			},
			[]string{"outcome"},
		),
		PaymentDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "checkout_payment_duration_seconds",
				Help:    "Duration of the order+payment pipeline in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
		BankSelections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_bank_selected_total",
				Help: "Count of bank tile selections by bank id.",
			},
			[]string{"bank"},
		),
	}
	reg.MustRegister(m.PaymentsTotal, m.PaymentDuration, m.BankSelections)
	return m
}

// NewNop returns metrics bound to a throwaway registry, for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
