package odevents

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Sink = (*PrometheusSink)(nil)

// PrometheusSink is a [Sink] that exports events as Prometheus counters.
type PrometheusSink struct {
	events  *prometheus.CounterVec
	txsSent *prometheus.CounterVec
}

// NewPrometheusSink creates the sink's collectors and registers them with reg.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	s := &PrometheusSink{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "godos",
			Name:      "events_total",
			Help:      "Number of ordering client events, by kind and peer.",
		}, []string{"kind", "peer"}),
		txsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "godos",
			Name:      "transactions_sent_total",
			Help:      "Number of transactions in attempted batch sends, by peer.",
		}, []string{"peer"}),
	}

	for _, c := range []prometheus.Collector{s.events, s.txsSent} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return s, nil
}

// Notify implements [Sink].
func (s *PrometheusSink) Notify(e Event) {
	s.events.WithLabelValues(e.Kind.String(), e.Peer).Inc()

	if e.Kind == EventSendBatchComplete {
		s.txsSent.WithLabelValues(e.Peer).Add(float64(e.Count))
	}
}
