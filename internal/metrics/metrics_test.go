package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/schynno0/studio/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestFlowRecorder_ObserveRun(t *testing.T) {
	labels := prometheus.Labels{"flow": "grade", "outcome": "success"}
	initial := testutil.ToFloat64(flowRuns.With(labels))

	NewFlowRecorder().ObserveRun("grade", "success", 250*time.Millisecond)

	assert.Equal(t, initial+1, testutil.ToFloat64(flowRuns.With(labels)))
}

func TestFlowRecorder_ObserveTokens(t *testing.T) {
	in := prometheus.Labels{"flow": "explain", "direction": "input"}
	out := prometheus.Labels{"flow": "explain", "direction": "output"}
	initialIn := testutil.ToFloat64(llmTokens.With(in))
	initialOut := testutil.ToFloat64(llmTokens.With(out))

	NewFlowRecorder().ObserveTokens("explain", llm.Usage{InputTokens: 120, OutputTokens: 30})

	assert.Equal(t, initialIn+120, testutil.ToFloat64(llmTokens.With(in)))
	assert.Equal(t, initialOut+30, testutil.ToFloat64(llmTokens.With(out)))
}

func TestRecordRequest(t *testing.T) {
	labels := prometheus.Labels{"route": "unmatched", "method": "GET", "status": "404"}
	initial := testutil.ToFloat64(httpRequests.With(labels))

	RecordRequest("", http.MethodGet, http.StatusNotFound)

	assert.Equal(t, initial+1, testutil.ToFloat64(httpRequests.With(labels)))
}

func TestHandler_ExposesFlowMetrics(t *testing.T) {
	NewFlowRecorder().ObserveRun("summarize", "generation_failed", time.Second)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "studio_flow_runs_total")
}
