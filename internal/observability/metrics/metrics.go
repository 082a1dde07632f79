// Package metrics exposes prometheus counters for the document pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RenderMetrics tracks document render outcomes per kind and output format.
type RenderMetrics struct {
	Rendered  *prometheus.CounterVec
	Failures  *prometheus.CounterVec
	Fallbacks *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

func NewRenderMetrics(reg prometheus.Registerer) *RenderMetrics {
	m := &RenderMetrics{
		Rendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formadesk_documents_rendered_total",
			Help: "Documents produced, by kind and delivered format.",
		}, []string{"kind", "format"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formadesk_render_failures_total",
			Help: "Render attempts that failed, by failure reason.",
		}, []string{"reason"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formadesk_render_fallbacks_total",
			Help: "Renders delivered through the markup fallback path.",
		}, []string{"kind"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "formadesk_render_duration_seconds",
			Help:    "Wall-clock render duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}

	reg.MustRegister(m.Rendered, m.Failures, m.Fallbacks, m.Duration)
	return m
}
