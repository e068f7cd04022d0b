package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_assistant_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invoice_assistant_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	chatActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_assistant_chat_actions_total",
			Help: "Chat turns by interpreted action and outcome.",
		},
		[]string{"action", "outcome"},
	)

	llmCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_assistant_llm_calls_total",
			Help: "LLM calls by provider, purpose and outcome.",
		},
		[]string{"provider", "purpose", "outcome"},
	)

	llmCallDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invoice_assistant_llm_call_duration_seconds",
			Help:    "LLM call latency.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"provider", "purpose"},
	)

	reportsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_assistant_reports_generated_total",
			Help: "Report artifacts written.",
		},
		[]string{"kind", "format"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		chatActionsTotal,
		llmCallsTotal,
		llmCallDurationSeconds,
		reportsGeneratedTotal,
	)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDurationSeconds.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

func ObserveChatAction(action, outcome string) {
	if action == "" {
		action = "unknown"
	}
	chatActionsTotal.WithLabelValues(action, outcome).Inc()
}

func ObserveLLMCall(provider, purpose string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	llmCallsTotal.WithLabelValues(provider, purpose, outcome).Inc()
	llmCallDurationSeconds.WithLabelValues(provider, purpose).Observe(elapsed.Seconds())
}

func ObserveReport(kind, format string) {
	reportsGeneratedTotal.WithLabelValues(kind, format).Inc()
}
