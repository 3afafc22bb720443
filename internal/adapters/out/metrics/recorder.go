// Package metrics exposes lifecycle measurements to Prometheus.
package metrics

import (
	"net/http"

	"pressing/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pressing"

var _ ports.MetricsRecorder = (*Recorder)(nil)

// Recorder implements ports.MetricsRecorder on a registry of its own.
type Recorder struct {
	registry             *prometheus.Registry
	transitions          *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	ordersByStatus       *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	transitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Applied order status transitions",
		},
		[]string{"from", "to"},
	)

	notificationFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Customer notifications that could not be delivered",
		},
		[]string{"kind"},
	)

	ordersByStatus := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_by_status",
			Help:      "Orders per status at the last status report",
		},
		[]string{"status"},
	)

	registry.MustRegister(
		transitions,
		notificationFailures,
		ordersByStatus,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Recorder{
		registry:             registry,
		transitions:          transitions,
		notificationFailures: notificationFailures,
		ordersByStatus:       ordersByStatus,
	}
}

func (r *Recorder) TransitionApplied(from, to string) {
	r.transitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) NotificationFailed(kind ports.NotificationKind) {
	r.notificationFailures.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) OrdersByStatus(counts map[string]int) {
	for status, count := range counts {
		r.ordersByStatus.WithLabelValues(status).Set(float64(count))
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
