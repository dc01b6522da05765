// Package metrics exposes Prometheus instruments for the analysis pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Stage outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds the pipeline instruments. A nil *Metrics records nothing.
//
// Metrics:
//   - resumecoach_stage_total{stage,outcome} - pipeline stage outcomes
//   - resumecoach_external_call_duration_seconds{call} - latency of inference and index calls
//   - resumecoach_history_write_failures_total - dropped history records
//   - resumecoach_analysis_events_total{job_description} - completed analyses seen by the events worker
//   - resumecoach_analysis_event_tips - retrieved tips per completed analysis
type Metrics struct {
	registry *prometheus.Registry

	StageTotal           *prometheus.CounterVec
	ExternalCallDuration *prometheus.HistogramVec
	HistoryWriteFailures prometheus.Counter
	AnalysisEvents       *prometheus.CounterVec
	AnalysisEventTips    prometheus.Histogram
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// New registers the pipeline instruments on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		StageTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumecoach_stage_total",
				Help: "Total number of pipeline stage executions by outcome",
			},
			[]string{"stage", "outcome"},
		),
		ExternalCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resumecoach_external_call_duration_seconds",
				Help:    "Duration of calls to the inference provider and tip index",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
			},
			[]string{"call"},
		),
		HistoryWriteFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "resumecoach_history_write_failures_total",
				Help: "Total number of analysis records that could not be persisted",
			},
		),
		AnalysisEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumecoach_analysis_events_total",
				Help: "Total number of analysis.completed events consumed",
			},
			[]string{"job_description"},
		),
		AnalysisEventTips: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resumecoach_analysis_event_tips",
				Help:    "Number of curated tips retrieved per completed analysis",
				Buckets: prometheus.LinearBuckets(0, 1, 6),
			},
		),
	}
}

// RecordStage counts one stage outcome.
func (m *Metrics) RecordStage(stage, outcome string) {
	if m == nil {
		return
	}
	m.StageTotal.WithLabelValues(stage, outcome).Inc()
}

// ObserveCall records the latency of an external call that started at started.
func (m *Metrics) ObserveCall(call string, started time.Time) {
	if m == nil {
		return
	}
	m.ExternalCallDuration.WithLabelValues(call).Observe(time.Since(started).Seconds())
}

// RecordHistoryWriteFailure counts a dropped history record.
func (m *Metrics) RecordHistoryWriteFailure() {
	if m == nil {
		return
	}
	m.HistoryWriteFailures.Inc()
}

// RecordAnalysisEvent counts one consumed analysis.completed event.
func (m *Metrics) RecordAnalysisEvent(hasJobDescription bool, tipCount int) {
	if m == nil {
		return
	}
	m.AnalysisEvents.WithLabelValues(strconv.FormatBool(hasJobDescription)).Inc()
	m.AnalysisEventTips.Observe(float64(tipCount))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry, New),
)
