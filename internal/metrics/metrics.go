package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schynno0/studio/internal/llm"
)

var (
	// flowRuns tracks flow runs by tool and outcome
	flowRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_flow_runs_total",
			Help: "Total lab flow runs by flow name and outcome",
		},
		[]string{"flow", "outcome"},
	)

	// flowDuration tracks end-to-end flow latency including the model call
	flowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_flow_duration_seconds",
			Help:    "Lab flow duration by flow name",
			Buckets: []float64{0.05, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"flow"},
	)

	// llmTokens tracks tokens reported by the provider
	llmTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_llm_tokens_total",
			Help: "Total model tokens by flow name and direction",
		},
		[]string{"flow", "direction"},
	)

	// httpRequests tracks API requests by route and status
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)
)

// implements flows.Recorder on the default registry
type FlowRecorder struct{}

func NewFlowRecorder() *FlowRecorder {
	return &FlowRecorder{}
}

func (FlowRecorder) ObserveRun(flow, outcome string, elapsed time.Duration) {
	flowRuns.WithLabelValues(flow, outcome).Inc()
	flowDuration.WithLabelValues(flow).Observe(elapsed.Seconds())
}

func (FlowRecorder) ObserveTokens(flow string, usage llm.Usage) {
	llmTokens.WithLabelValues(flow, "input").Add(float64(usage.InputTokens))
	llmTokens.WithLabelValues(flow, "output").Add(float64(usage.OutputTokens))
}

// RecordRequest increments the HTTP request counter
func RecordRequest(route, method string, status int) {
	if route == "" {
		route = "unmatched"
	}

	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
