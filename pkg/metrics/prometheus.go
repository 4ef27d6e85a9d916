package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	newslettersBuilt prometheus.Counter
	newslettersSent  prometheus.Counter
	errorsTotal      *prometheus.CounterVec
	lastReturn       *prometheus.GaugeVec
	stageLatency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		newslettersBuilt: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "newsletter_builds_total",
				Help: "Total number of newsletters assembled",
			},
		),
		newslettersSent: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "newsletter_emails_sent_total",
				Help: "Total number of newsletters delivered by email",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsletter_errors_total",
				Help: "Total number of errors encountered by kind",
			},
			[]string{"kind"},
		),
		lastReturn: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "newsletter_last_cumulative_return",
				Help: "Last computed 30-day cumulative return for a ticker",
			},
			[]string{"ticker"},
		),
		stageLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "newsletter_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// RecordBuild records one assembled newsletter.
func (r *Recorder) RecordBuild() {
	r.newslettersBuilt.Inc()
}

// RecordSend records one delivered newsletter.
func (r *Recorder) RecordSend() {
	r.newslettersSent.Inc()
}

// RecordError records an error occurrence by kind.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCumulativeReturn records the latest cumulative return for a ticker.
func (r *Recorder) RecordCumulativeReturn(ticker string, value float64) {
	r.lastReturn.WithLabelValues(ticker).Set(value)
}

// RecordStageLatency records pipeline stage latency in seconds.
func (r *Recorder) RecordStageLatency(stage string, seconds float64) {
	r.stageLatency.WithLabelValues(stage).Observe(seconds)
}
