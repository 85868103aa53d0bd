package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_ObserveInvocation(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.ObserveInvocation("find_business", 120*time.Millisecond, nil)
	metrics.ObserveInvocation("find_business", 50*time.Millisecond, errors.New("boom"))

	families, err := registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() != "cufmcp_invocation_duration_seconds" {
			continue
		}
		found = true
		require.Len(t, family.GetMetric(), 2)
		statuses := make(map[string]bool)
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" {
					statuses[label.GetValue()] = true
				}
			}
		}
		assert.True(t, statuses["success"])
		assert.True(t, statuses["error"])
	}
	assert.True(t, found, "invocation histogram must be registered")
}

func TestPrometheusMetrics_ObserveProviderRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.ObserveProviderRequest("/enc", 200, 90*time.Millisecond)
	// A transport failure has no HTTP status; it gets the "error" code label.
	metrics.ObserveProviderRequest("/enc", 0, 10*time.Millisecond)

	count := testutil.CollectAndCount(metrics.providerDuration, "cufmcp_provider_request_duration_seconds")
	assert.Equal(t, 2, count)
}

func TestPrometheusMetrics_ObserveCredits(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.ObserveCredits("find_business", 3)
	metrics.ObserveCredits("find_business", 9921)
	metrics.ObserveCredits("search_persons", 0)

	value := testutil.ToFloat64(metrics.creditsUsed.WithLabelValues("find_business"))
	assert.Equal(t, float64(9924), value)

	// Zero-credit responses must not create a series.
	count := testutil.CollectAndCount(metrics.creditsUsed, "cufmcp_provider_credits_total")
	assert.Equal(t, 1, count)
}
