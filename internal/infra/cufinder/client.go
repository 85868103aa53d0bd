package cufinder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"cufmcp/internal/domain"
	"cufmcp/internal/infra/telemetry"
)

// Client is the outbound adapter for the CUFinder v2 API. Configuration is
// fixed at construction; the client holds no mutable state and is safe for
// the dispatcher's one-call-at-a-time usage without locking.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *zap.Logger
	metrics    domain.Metrics
}

type Options struct {
	Config  domain.Config
	Logger  *zap.Logger
	Metrics domain.Metrics

	// HTTPClient overrides the default client; used by tests.
	HTTPClient *http.Client
}

func New(opts Options) (*Client, error) {
	cfg := opts.Config
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	if parsed, err := url.ParseRequestURI(baseURL); err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("base url must be a valid http(s) URL: %q", cfg.BaseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = domain.NopMetrics{}
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = domain.DefaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		userAgent:  userAgent,
		logger:     logger.Named("cufinder"),
		metrics:    metrics,
	}, nil
}

// EnrichCompany looks up a single company by name or domain via /enc.
func (c *Client) EnrichCompany(ctx context.Context, params domain.CompanyEnrichParams) (*domain.CompanyEnrichResponse, error) {
	var out domain.CompanyEnrichResponse
	if err := c.postForm(ctx, domain.OpFindBusiness.Endpoint(), params.FormValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrichPerson looks up a single person by full name and employer via /tep.
func (c *Client) EnrichPerson(ctx context.Context, params domain.PersonEnrichParams) (*domain.PersonEnrichResponse, error) {
	var out domain.PersonEnrichResponse
	if err := c.postForm(ctx, domain.OpFindPerson.Endpoint(), params.FormValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchCompanies runs a filtered company search via /cse.
func (c *Client) SearchCompanies(ctx context.Context, params domain.CompanySearchParams) (*domain.CompanySearchResponse, error) {
	var out domain.CompanySearchResponse
	if err := c.postJSON(ctx, domain.OpSearchBusinesses.Endpoint(), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchPersons runs a filtered person search via /pse.
func (c *Client) SearchPersons(ctx context.Context, params domain.PersonSearchParams) (*domain.PersonSearchResponse, error) {
	var out domain.PersonSearchResponse
	if err := c.postJSON(ctx, domain.OpSearchPersons.Endpoint(), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchLocalBusinesses runs a filtered local business search via /lbs.
func (c *Client) SearchLocalBusinesses(ctx context.Context, params domain.LocalBusinessSearchParams) (*domain.LocalBusinessSearchResponse, error) {
	var out domain.LocalBusinessSearchResponse
	if err := c.postJSON(ctx, domain.OpSearchLocalBusinesses.Endpoint(), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, values url.Values, out any) error {
	body := strings.NewReader(values.Encode())
	return c.do(ctx, endpoint, body, "application/x-www-form-urlencoded", out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return domain.E(domain.CodeInternal, endpoint, "encode request", err)
	}
	return c.do(ctx, endpoint, bytes.NewReader(encoded), "application/json", out)
}

func (c *Client) do(ctx context.Context, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, body)
	if err != nil {
		return domain.E(domain.CodeInternal, endpoint, "build request", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(domain.APIKeyHeader, c.apiKey)

	logger := telemetry.LoggerWithRequest(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveProviderRequest(endpoint, 0, time.Since(start))
		logger.Warn("provider request failed", zap.String("endpoint", endpoint), zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.E(domain.CodeUnavailable, endpoint, "request timed out", err)
		}
		return domain.E(domain.CodeUnavailable, endpoint, "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start)
	c.metrics.ObserveProviderRequest(endpoint, resp.StatusCode, duration)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("provider returned non-success status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return domain.E(domain.CodeInternal, endpoint, fmt.Sprintf("provider returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.E(domain.CodeInternal, endpoint, "decode response", err)
	}

	logger.Debug("provider request completed",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	)
	return nil
}
