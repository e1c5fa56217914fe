// seehuhn.de/go/areachart - layered area charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics records render and interaction statistics with
// Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one chart service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	markers  prometheus.Histogram
	events   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// If reg is nil, the collectors are not registered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "areachart_renders_total",
				Help: "Total number of chart renders",
			},
			[]string{"mode", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "areachart_render_duration_seconds",
				Help:    "Duration of chart renders",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"mode"},
		),
		markers: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "areachart_markers_per_render",
				Help:    "Number of point markers emitted per render",
				Buckets: prometheus.ExponentialBuckets(1, 4, 6),
			},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "areachart_interaction_events_total",
				Help: "Total number of dispatched interaction events",
			},
			[]string{"event"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.renders, m.duration, m.markers, m.events)
	}
	return m
}

// ObserveRender records one render call. result is "ok" or an error kind.
func (m *Metrics) ObserveRender(mode, result string, d time.Duration, markers int) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(mode, result).Inc()
	if result != "ok" {
		return
	}
	m.duration.WithLabelValues(mode).Observe(d.Seconds())
	m.markers.Observe(float64(markers))
}

// ObserveEvent counts one dispatched interaction event.
func (m *Metrics) ObserveEvent(event string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(event).Inc()
}
