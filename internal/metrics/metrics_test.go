package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursemap/internal/llm"
)

func TestObserveAPI(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/api/modules", "200", 20*time.Millisecond)
	m.ObserveAPI("GET", "/api/modules", "200", 30*time.Millisecond)
	m.ObserveAPI("GET", "/api/modules/:id", "404", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/modules", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/modules/:id", "404")))

	m.APIInflightInc()
	m.APIInflightInc()
	m.APIInflightDec()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiInflight))
}

func TestObserveLLMRequest(t *testing.T) {
	m := New()
	usage := llm.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	m.ObserveLLMRequest("openai", "gpt-4o-mini", llm.PurposeModuleSummary, true, time.Second, usage)
	m.ObserveLLMRequest("openai", "unpriced-model", llm.PurposeModuleSummary, false, time.Second, llm.Usage{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmRequests.WithLabelValues("openai", "module-summary", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmRequests.WithLabelValues("openai", "module-summary", "error")))
	assert.Equal(t, 1_000_000.0, testutil.ToFloat64(m.llmTokens.WithLabelValues("openai", "input")))
	assert.InDelta(t, 0.75, testutil.ToFloat64(m.llmCost.WithLabelValues("openai", "gpt-4o-mini")), 1e-9)
	assert.Equal(t, 1, testutil.CollectAndCount(m.llmCost), "unpriced models add no cost series")
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.ObserveSummary(true)
	m.ObserveSummary(false)
	m.ObserveSummary(true)
	m.ObserveQuizAttempt("sample-w4", false)
	m.ObserveQuizAttempt("sample-w4", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.summaries.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quizResults.WithLabelValues("sample-w4", "passed")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSummary(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `coursemap_summaries_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveSummary(true)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.summaries.WithLabelValues("success")))
}
