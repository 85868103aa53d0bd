package domain

import "time"

// Metrics receives observations from the dispatcher and the provider client.
type Metrics interface {
	ObserveInvocation(tool string, duration time.Duration, err error)
	ObserveProviderRequest(endpoint string, statusCode int, duration time.Duration)
	ObserveCredits(tool string, credits int)
}

// NopMetrics discards all observations.
type NopMetrics struct{}

func (NopMetrics) ObserveInvocation(string, time.Duration, error)    {}
func (NopMetrics) ObserveProviderRequest(string, int, time.Duration) {}
func (NopMetrics) ObserveCredits(string, int)                        {}

var _ Metrics = NopMetrics{}
