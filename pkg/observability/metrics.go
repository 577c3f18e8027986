package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/vibinremote/pkg/capture"
	"github.com/aretw0/vibinremote/pkg/dispatch"
)

const namespace = "vibinremote"

// Metrics records pipeline activity as Prometheus collectors.
// It satisfies both capture.Recorder and dispatch.Recorder.
type Metrics struct {
	keyEvents  *prometheus.CounterVec
	dispatches *prometheus.CounterVec
	duration   prometheus.Histogram
}

var (
	_ capture.Recorder  = (*Metrics)(nil)
	_ dispatch.Recorder = (*Metrics)(nil)
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		keyEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "key_events_total",
			Help:      "Key releases seen by the capture loop, by result.",
		}, []string{"result"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "HTTP commands sent to the Vibin server, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent on each HTTP command.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
	}

	reg.MustRegister(m.keyEvents, m.dispatches, m.duration)
	return m
}

// ObserveKeyEvent implements capture.Recorder.
func (m *Metrics) ObserveKeyEvent(result capture.Result) {
	m.keyEvents.WithLabelValues(string(result)).Inc()
}

// ObserveDispatch implements dispatch.Recorder.
func (m *Metrics) ObserveDispatch(outcome dispatch.Outcome, elapsed time.Duration) {
	m.dispatches.WithLabelValues(string(outcome)).Inc()
	m.duration.Observe(elapsed.Seconds())
}
