package preview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the preview server.
type Metrics struct {
	pagesRendered  prometheus.Counter
	renderDuration prometheus.Histogram
	reloadsSent    prometheus.Counter
}

// NewMetrics registers the preview metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		pagesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "pages_rendered_total",
			Help:      "Number of preview pages rendered.",
		}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Time spent building and serializing the preview page.",
			Buckets:   prometheus.DefBuckets,
		}),
		reloadsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "domkit",
			Subsystem: "preview",
			Name:      "reloads_sent_total",
			Help:      "Number of hot-reload messages broadcast to browsers.",
		}),
	}
}

// ObserveRender records one rendered page and its duration.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.pagesRendered.Inc()
	m.renderDuration.Observe(d.Seconds())
}

// ObserveReload records one reload broadcast.
func (m *Metrics) ObserveReload() {
	if m == nil {
		return
	}
	m.reloadsSent.Inc()
}
