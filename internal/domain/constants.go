package domain

// Version is the server version advertised to MCP hosts and embedded in the
// outbound User-Agent header.
const Version = "0.2.0"

const (
	// DefaultBaseURL is the CUFinder v2 API host.
	DefaultBaseURL = "https://api.cufinder.io/v2"

	// DefaultTimeoutSeconds bounds a single provider round trip. The
	// provider contract fixes this at 60 seconds; a timed-out call is
	// reported immediately, never retried.
	DefaultTimeoutSeconds = 60

	DefaultUserAgent = "cufinder-mcp/" + Version

	// APIKeyEnvVar is consulted when no key is configured explicitly.
	APIKeyEnvVar = "CUFINDER_API_KEY"

	// APIKeyHeader carries the static credential on every request.
	APIKeyHeader = "x-api-key"

	DefaultObservabilityListenAddress = "127.0.0.1:9464"
)

// Preview caps for formatted collections. Lists longer than the cap render
// the first N entries plus a "... and K more" suffix.
const (
	TechnologiesPreview    = 10
	SpecialtiesPreview     = 5
	SuggestionsPreview     = 5
	AffiliatedPagesPreview = 3
)
