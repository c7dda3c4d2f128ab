package tween

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects statistics of players. A single Metrics value may be
// shared by several players; the running gauge then reflects the player
// updated last.
type Metrics struct {
	Started  *prometheus.CounterVec // by property
	Finished *prometheus.CounterVec // by property
	Running  prometheus.Gauge
}

// NewMetrics creates the metrics and registers them with reg.
// Registration panics if the metrics are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Started: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viewsfrom_tween_started_total",
				Help: "Total number of tweens which passed their start offset",
			},
			[]string{"property"},
		),
		Finished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viewsfrom_tween_finished_total",
				Help: "Total number of tweens which reached their end",
			},
			[]string{"property"},
		),
		Running: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "viewsfrom_tween_running",
				Help: "Number of bound tweens not yet ended",
			},
		),
	}
}

// The following are no-ops for a nil *Metrics.

func (m *Metrics) started(p Property) {
	if m != nil {
		m.Started.WithLabelValues(p.String()).Inc()
	}
}

func (m *Metrics) finished(p Property) {
	if m != nil {
		m.Finished.WithLabelValues(p.String()).Inc()
	}
}

func (m *Metrics) running(n int) {
	if m != nil {
		m.Running.Set(float64(n))
	}
}
