package records

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts produced envelopes by entity, operation and status.
type Metrics struct {
	operations *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tillbook",
			Subsystem: "records",
			Name:      "operations_total",
			Help:      "Number of record operations by entity, operation and envelope status.",
		},
		[]string{"entity", "operation", "status"},
	)

	if err := registerer.Register(operations); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("failed to register records metrics: %w", err)
		}

		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("failed to register records metrics: %w", err)
		}
		operations = existing
	}

	return &Metrics{
		operations: operations,
	}, nil
}

func (m *Metrics) observe(entity, operation string, env Envelope) {
	if m == nil {
		return
	}

	m.operations.WithLabelValues(entity, operation, string(env.Status)).Inc()
}
