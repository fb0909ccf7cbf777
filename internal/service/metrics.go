package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"immo-assistant/internal/model"
)

// Metrics holds the assistant's Prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	TurnsTotal  *prometheus.CounterVec
	ParsesTotal prometheus.Counter
}

// NewMetrics registers the assistant metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TurnsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_turns_total",
			Help: "Chat turns handled, by resolved topic",
		}, []string{"topic"}),
		ParsesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "assistant_query_parses_total",
			Help: "Free-text search queries parsed into filters",
		}),
	}
}

// RecordTurn counts one chat turn
func (m *Metrics) RecordTurn(topic model.Topic) {
	if m == nil {
		return
	}
	m.TurnsTotal.WithLabelValues(topic.String()).Inc()
}

// RecordParse counts one parsed search query
func (m *Metrics) RecordParse() {
	if m == nil {
		return
	}
	m.ParsesTotal.Inc()
}
