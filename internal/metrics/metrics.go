// Package metrics exposes the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	MetricsNamespace         = "pr_range"
	MetricsSubsystemHTTP     = "http"
	MetricsSubsystemAPI      = "api"
	MetricsSubsystemUpstream = "upstream"
	MetricsSubsystemPipeline = "pipeline"
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type Metrics interface {
	GetRegistry() *prometheus.Registry

	ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64)

	IncrementHTTPRequests()
	IncrementHTTPErrors()

	IncrementUpstreamRequests(op, outcome string)
	IncrementUpstreamPages()

	ObservePipelineDuration(outcome string, elapsed float64)
}

type metrics struct {
	registry *prometheus.Registry

	apiTime *prometheus.HistogramVec

	httpRequestsTotal prometheus.Counter
	httpErrorsTotal   prometheus.Counter

	upstreamRequestsTotal *prometheus.CounterVec
	upstreamPagesTotal    prometheus.Counter

	pipelineTime *prometheus.HistogramVec
}

// NewMetrics creates a collector set on its own registry.
func NewMetrics() Metrics {
	m := &metrics{}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.apiTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemAPI,
			Name:      "time_seconds",
			Help:      "Time to execute the api handler",
		},
		[]string{"handler", "method", "status_code"},
	)
	m.registry.MustRegister(m.apiTime)

	m.httpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "requests_total",
		Help:      "The total number of http API requests.",
	})
	m.registry.MustRegister(m.httpRequestsTotal)

	m.httpErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "errors_total",
		Help:      "The total number of http API errors.",
	})
	m.registry.MustRegister(m.httpErrorsTotal)

	m.upstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemUpstream,
		Name:      "requests_total",
		Help:      "The total number of requests sent to the GitHub API.",
	}, []string{"op", "outcome"})
	m.registry.MustRegister(m.upstreamRequestsTotal)

	m.upstreamPagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemUpstream,
		Name:      "pages_total",
		Help:      "The total number of pull request pages fetched.",
	})
	m.registry.MustRegister(m.upstreamPagesTotal)

	m.pipelineTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemPipeline,
			Name:      "duration_seconds",
			Help:      "Time to validate, fetch, filter and format pull requests.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"outcome"},
	)
	m.registry.MustRegister(m.pipelineTime)

	return m
}

func (m *metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *metrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
	if m != nil {
		m.apiTime.With(prometheus.Labels{"handler": handler, "method": method, "status_code": statusCode}).Observe(elapsed)
	}
}

func (m *metrics) IncrementHTTPRequests() {
	if m != nil {
		m.httpRequestsTotal.Inc()
	}
}

func (m *metrics) IncrementHTTPErrors() {
	if m != nil {
		m.httpErrorsTotal.Inc()
	}
}

func (m *metrics) IncrementUpstreamRequests(op, outcome string) {
	if m != nil {
		m.upstreamRequestsTotal.With(prometheus.Labels{"op": op, "outcome": outcome}).Inc()
	}
}

func (m *metrics) IncrementUpstreamPages() {
	if m != nil {
		m.upstreamPagesTotal.Inc()
	}
}

func (m *metrics) ObservePipelineDuration(outcome string, elapsed float64) {
	if m != nil {
		m.pipelineTime.With(prometheus.Labels{"outcome": outcome}).Observe(elapsed)
	}
}
