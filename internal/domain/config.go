package domain

import "time"

// Config is the process-wide provider configuration. It is constructed once
// at startup and read-only afterwards; nothing here is mutated across
// invocations.
type Config struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
	UserAgent      string
	Observability  ObservabilityConfig
}

// ObservabilityConfig controls the optional metrics/health HTTP listener.
// Disabled by default: stdio is the primary surface and most hosts run one
// short-lived server per session.
type ObservabilityConfig struct {
	Enabled       bool
	ListenAddress string
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfig returns the baked-in provider defaults with no credential.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		UserAgent:      DefaultUserAgent,
		Observability: ObservabilityConfig{
			ListenAddress: DefaultObservabilityListenAddress,
		},
	}
}
