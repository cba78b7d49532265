// Package metrics defines the Prometheus instrumentation for the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Classifier metrics
	IntentClassificationsTotal *prometheus.CounterVec

	// Resolution metrics
	ResolutionHitsTotal   *prometheus.CounterVec
	ResolutionMissesTotal *prometheus.CounterVec

	// Session metrics
	SessionTransitionsTotal *prometheus.CounterVec
	SessionDurationSeconds  prometheus.Histogram

	// Speech metrics
	SpeechFailuresTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		IntentClassificationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pudim_intent_classifications_total",
				Help: "Total number of classified utterances by intent",
			},
			[]string{"intent"},
		),

		ResolutionHitsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pudim_resolution_hits_total",
				Help: "Total number of successful entity resolutions by kind",
			},
			[]string{"kind"}, // kind: course, subject, search
		),

		ResolutionMissesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pudim_resolution_misses_total",
				Help: "Total number of failed entity resolutions by kind",
			},
			[]string{"kind"},
		),

		SessionTransitionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pudim_session_transitions_total",
				Help: "Total number of session state transitions",
			},
			[]string{"to"}, // to: active, paused, ended
		),

		SessionDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pudim_session_duration_seconds",
				Help:    "Conversation session length in seconds",
				Buckets: []float64{10, 30, 60, 120, 300, 600, 1200},
			},
		),

		SpeechFailuresTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pudim_speech_failures_total",
				Help: "Total number of speech collaborator failures by direction",
			},
			[]string{"direction"}, // direction: input, output
		),
	}
}

// RecordIntent increments the classification counter for an intent.
func (m *Metrics) RecordIntent(intent string) {
	if m == nil {
		return
	}
	m.IntentClassificationsTotal.WithLabelValues(intent).Inc()
}

// RecordResolution records a resolution outcome for a kind.
func (m *Metrics) RecordResolution(kind string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.ResolutionHitsTotal.WithLabelValues(kind).Inc()
	} else {
		m.ResolutionMissesTotal.WithLabelValues(kind).Inc()
	}
}

// RecordSessionTransition records a state machine transition.
func (m *Metrics) RecordSessionTransition(to string) {
	if m == nil {
		return
	}
	m.SessionTransitionsTotal.WithLabelValues(to).Inc()
}

// RecordSessionDuration records a finished session's length.
func (m *Metrics) RecordSessionDuration(seconds float64) {
	if m == nil {
		return
	}
	m.SessionDurationSeconds.Observe(seconds)
}

// RecordSpeechFailure records a speech collaborator failure.
func (m *Metrics) RecordSpeechFailure(direction string) {
	if m == nil {
		return
	}
	m.SpeechFailuresTotal.WithLabelValues(direction).Inc()
}
