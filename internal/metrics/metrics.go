// Package metrics exposes Prometheus instrumentation for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the service records into. Constructing it
// against a fresh registry keeps tests isolated from the default registry.
type Metrics struct {
	SessionsActive    prometheus.Gauge
	SessionsCreated   prometheus.Counter
	SessionsDestroyed prometheus.Counter

	AudioBytesReceived prometheus.Counter
	ChunksDropped      prometheus.Counter
	WindowsCut         prometheus.Counter
	WindowsForced      prometheus.Counter

	Outcomes         *prometheus.CounterVec
	StageFaults      *prometheus.CounterVec
	FallbackAttempts     prometheus.Counter
	FallbackFailures     prometheus.Counter
	FallbackBreakerState prometheus.Gauge
	StageDuration    *prometheus.HistogramVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers all collectors with reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "answerline_sessions_active",
			Help: "Number of currently connected client sessions.",
		}),
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_sessions_created_total",
			Help: "Total client sessions created.",
		}),
		SessionsDestroyed: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_sessions_destroyed_total",
			Help: "Total client sessions destroyed.",
		}),
		AudioBytesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_audio_bytes_received_total",
			Help: "Total audio payload bytes received over WebSocket.",
		}),
		ChunksDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_audio_chunks_dropped_total",
			Help: "Audio chunks dropped by the per-connection rate limiter.",
		}),
		WindowsCut: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_windows_cut_total",
			Help: "Audio windows cut and queued for processing.",
		}),
		WindowsForced: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_windows_forced_total",
			Help: "Windows cut early because the session buffer hit its cap.",
		}),
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "answerline_pipeline_outcomes_total",
			Help: "Pipeline outcomes by kind.",
		}, []string{"kind"}),
		StageFaults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "answerline_pipeline_stage_faults_total",
			Help: "Pipeline stage faults by stage.",
		}, []string{"stage"}),
		FallbackAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_fallback_attempts_total",
			Help: "Fallback invocations after a primary stage fault.",
		}),
		FallbackFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "answerline_fallback_failures_total",
			Help: "Fallback invocations that themselves faulted.",
		}),
		FallbackBreakerState: factory.NewGauge(prometheus.GaugeOpts{
			Name: "answerline_fallback_breaker_state",
			Help: "Fallback circuit breaker state (0 closed, 1 open, 2 half-open).",
		}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "answerline_pipeline_stage_duration_seconds",
			Help:    "Duration of pipeline stages.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"stage"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "answerline_http_requests_total",
			Help: "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "answerline_http_request_duration_seconds",
			Help:    "HTTP request duration by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

// NewDefault registers against the default Prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
