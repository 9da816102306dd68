// Package metrics exposes Prometheus collectors for the HTTP API and LLM
// calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/coursemap/internal/llm"
)

const namespace = "coursemap"

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	llmRequests *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec
	llmTokens   *prometheus.CounterVec
	llmCost     *prometheus.CounterVec

	summaries   *prometheus.CounterVec
	quizResults *prometheus.CounterVec
}

// New registers all collectors plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "api", Name: "requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "api", Name: "request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "api", Name: "inflight_requests",
			Help: "HTTP requests currently being served.",
		}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "llm", Name: "requests_total",
			Help: "LLM provider calls by provider, purpose and outcome.",
		}, []string{"provider", "purpose", "outcome"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "llm", Name: "request_duration_seconds",
			Help:    "LLM provider call latency.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"provider", "purpose"}),
		llmTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "llm", Name: "tokens_total",
			Help: "Tokens consumed by direction.",
		}, []string{"provider", "direction"}),
		llmCost: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "llm", Name: "cost_usd_total",
			Help: "Estimated spend for priced models.",
		}, []string{"provider", "model"}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "summaries_total",
			Help: "Summarize calls by outcome.",
		}, []string{"outcome"}),
		quizResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "quiz_attempts_total",
			Help: "Graded quiz attempts by quiz and result.",
		}, []string{"quiz", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.llmRequests, m.llmLatency, m.llmTokens, m.llmCost,
		m.summaries, m.quizResults,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) APIInflightInc() { m.apiInflight.Inc() }
func (m *Metrics) APIInflightDec() { m.apiInflight.Dec() }

// ObserveAPI records one finished HTTP request.
func (m *Metrics) ObserveAPI(method, route, status string, d time.Duration) {
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveLLMRequest implements llm.Observer. Cost is only added for models
// in the pricing table.
func (m *Metrics) ObserveLLMRequest(provider, model, purpose string, ok bool, latency time.Duration, usage llm.Usage) {
	m.llmRequests.WithLabelValues(provider, purpose, outcome(ok)).Inc()
	m.llmLatency.WithLabelValues(provider, purpose).Observe(latency.Seconds())
	m.llmTokens.WithLabelValues(provider, "input").Add(float64(usage.InputTokens))
	m.llmTokens.WithLabelValues(provider, "output").Add(float64(usage.OutputTokens))
	if cost, ok := llm.EstimateCost(model, usage.InputTokens, usage.OutputTokens); ok {
		m.llmCost.WithLabelValues(provider, model).Add(cost)
	}
}

// ObserveSummary counts a Summarize call.
func (m *Metrics) ObserveSummary(ok bool) {
	m.summaries.WithLabelValues(outcome(ok)).Inc()
}

// ObserveQuizAttempt counts a graded attempt.
func (m *Metrics) ObserveQuizAttempt(quizID string, passed bool) {
	result := "failed"
	if passed {
		result = "passed"
	}
	m.quizResults.WithLabelValues(quizID, result).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}

var _ llm.Observer = (*Metrics)(nil)
