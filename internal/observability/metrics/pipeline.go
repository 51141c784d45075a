// Package metrics exposes Prometheus instrumentation for the order
// processing pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orderflow/internal/core/domain/model/order"
)

// PipelineMetrics tracks processed orders and batch runs.
type PipelineMetrics struct {
	registry *prometheus.Registry

	ordersTotal   *prometheus.CounterVec
	batchDuration prometheus.Histogram
	batchFailures prometheus.Counter
}

// NewPipelineMetrics creates and registers the pipeline metric set on a
// private registry.
func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()

	ordersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderflow",
			Subsystem: "pipeline",
			Name:      "orders_processed_total",
			Help:      "Total processed orders by final status.",
		},
		[]string{"status"},
	)
	batchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "orderflow",
			Subsystem: "pipeline",
			Name:      "batch_duration_seconds",
			Help:      "Duration of one user batch run in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	batchFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orderflow",
			Subsystem: "pipeline",
			Name:      "batch_failures_total",
			Help:      "Total user batch runs aborted by an unrecoverable fault.",
		},
	)

	registry.MustRegister(ordersTotal, batchDuration, batchFailures)

	return &PipelineMetrics{
		registry:      registry,
		ordersTotal:   ordersTotal,
		batchDuration: batchDuration,
		batchFailures: batchFailures,
	}
}

// Handler returns an HTTP handler serving the metric set.
func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBatch records the outcome of one user batch run.
func (m *PipelineMetrics) ObserveBatch(orders []*order.Order, duration time.Duration, err error) {
	m.batchDuration.Observe(duration.Seconds())
	if err != nil {
		m.batchFailures.Inc()
		return
	}
	for _, o := range orders {
		m.ordersTotal.WithLabelValues(o.Status().String()).Inc()
	}
}
