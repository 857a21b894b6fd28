// Package prometheus records API client activity as Prometheus metrics.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "elevenlabs"

var (
	// requestDuration is a histogram of API call latency by operation.
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Duration of API calls in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)

	// requestsTotal counts API calls by operation and outcome code.
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of API calls",
		},
		[]string{"operation", "code"}, // code: HTTP status or a failure kind
	)

	// requestsInFlight is the number of calls awaiting a response.
	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "requests_in_flight",
			Help:      "Number of API calls currently awaiting a response",
		},
	)

	// charactersTotal counts characters submitted for synthesis.
	charactersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tts",
			Name:      "characters_total",
			Help:      "Total characters successfully synthesized",
		},
		[]string{"model"},
	)

	// audioBytesTotal counts audio bytes received from synthesis.
	audioBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tts",
			Name:      "audio_bytes_total",
			Help:      "Total bytes of audio returned by synthesis",
		},
		[]string{"model"},
	)

	allMetrics = []prometheus.Collector{
		requestDuration,
		requestsTotal,
		requestsInFlight,
		charactersTotal,
		audioBytesTotal,
	}
)

// RecordRequest records a finished API call.
func RecordRequest(operation, code string, d time.Duration) {
	requestDuration.WithLabelValues(operation).Observe(d.Seconds())
	requestsTotal.WithLabelValues(operation, code).Inc()
}

// RecordRequestStart marks a call as in flight.
func RecordRequestStart() {
	requestsInFlight.Inc()
}

// RecordRequestEnd clears an in-flight call.
func RecordRequestEnd() {
	requestsInFlight.Dec()
}

// RecordSynthesis records a successful synthesis.
func RecordSynthesis(model string, characters, audioBytes int) {
	if model == "" {
		model = "default"
	}
	if characters > 0 {
		charactersTotal.WithLabelValues(model).Add(float64(characters))
	}
	if audioBytes > 0 {
		audioBytesTotal.WithLabelValues(model).Add(float64(audioBytes))
	}
}

// Recorder adapts the package-level metrics to the hooks the clients call.
// The zero value is ready to use.
type Recorder struct{}

// NewRecorder returns a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RequestStarted implements the client metrics hook.
func (*Recorder) RequestStarted(string) {
	RecordRequestStart()
}

// RequestFinished implements the client metrics hook.
func (*Recorder) RequestFinished(operation, code string, d time.Duration) {
	RecordRequestEnd()
	RecordRequest(operation, code, d)
}

// Synthesized implements the tts metrics hook.
func (*Recorder) Synthesized(model string, characters, audioBytes int) {
	RecordSynthesis(model, characters, audioBytes)
}
