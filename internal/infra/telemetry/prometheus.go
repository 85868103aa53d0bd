package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cufmcp/internal/domain"
)

type PrometheusMetrics struct {
	invocationDuration *prometheus.HistogramVec
	providerDuration   *prometheus.HistogramVec
	creditsUsed        *prometheus.CounterVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		invocationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cufmcp_invocation_duration_seconds",
				Help:    "Duration of tool invocations in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"tool", "status"},
		),
		providerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cufmcp_provider_request_duration_seconds",
				Help:    "Duration of provider round trips in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"endpoint", "code"},
		),
		creditsUsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cufmcp_provider_credits_total",
				Help: "Total provider credits reported as consumed",
			},
			[]string{"tool"},
		),
	}
}

func (p *PrometheusMetrics) ObserveInvocation(tool string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.invocationDuration.WithLabelValues(tool, status).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) ObserveProviderRequest(endpoint string, statusCode int, duration time.Duration) {
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	p.providerDuration.WithLabelValues(endpoint, code).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) ObserveCredits(tool string, credits int) {
	if credits <= 0 {
		return
	}
	p.creditsUsed.WithLabelValues(tool).Add(float64(credits))
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)
