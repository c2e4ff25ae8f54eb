package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Render outcomes.
const (
	RenderSuccess  = "success"
	RenderRejected = "rejected"
	RenderFailed   = "failed"
)

var (
	renderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "certifypro",
			Subsystem: "pdf",
			Name:      "renders_total",
			Help:      "Certificate render attempts by result.",
		},
		[]string{"result"},
	)

	renderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "certifypro",
			Subsystem: "pdf",
			Name:      "render_duration_seconds",
			Help:      "Time spent painting and encoding a certificate.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)
)

// ObserveRender counts one render attempt. Duration is only recorded for
// successful renders.
func ObserveRender(result string, elapsed time.Duration) {
	renderTotal.WithLabelValues(result).Inc()
	if result == RenderSuccess {
		renderDuration.Observe(elapsed.Seconds())
	}
}
