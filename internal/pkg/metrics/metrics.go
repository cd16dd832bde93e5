package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "booking_ledger"

// Ledger holds the settlement counters exported on /metrics.
type Ledger struct {
	BookingsCreated  prometheus.Counter
	SettledVolume    prometheus.Counter
	FeesCollected    prometheus.Counter
	ReserveFailures  *prometheus.CounterVec
	IndexPruned      prometheus.Counter
	OutboxPublished  prometheus.Counter
	OutboxPublishErr prometheus.Counter
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return reg
}

func NewLedger(reg prometheus.Registerer) *Ledger {
	m := &Ledger{
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Reservations settled and recorded.",
		}),
		SettledVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_amount_total",
			Help:      "Sum of amounts charged for settled reservations, in the smallest currency unit.",
		}),
		FeesCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fees_collected_total",
			Help:      "Sum of platform fees routed to the platform wallet.",
		}),
		ReserveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reserve_failures_total",
			Help:      "Rejected reservations by reason.",
		}, []string{"reason"}),
		IndexPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_pruned_entries_total",
			Help:      "Expired per-user index entries removed during reservations.",
		}),
		OutboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Ledger events relayed to the message broker.",
		}),
		OutboxPublishErr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_publish_errors_total",
			Help:      "Ledger events that failed to publish and will be retried.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.BookingsCreated,
			m.SettledVolume,
			m.FeesCollected,
			m.ReserveFailures,
			m.IndexPruned,
			m.OutboxPublished,
			m.OutboxPublishErr,
		)
	}
	return m
}

// NewNopLedger returns counters that are not registered anywhere.
func NewNopLedger() *Ledger {
	return NewLedger(nil)
}
