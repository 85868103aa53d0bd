package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cufmcp/internal/domain"
)

// Loader reads the optional YAML config file. Values resolve in flag > file >
// environment > default order; the file supports ${VAR} expansion so the API
// key can stay out of checked-in configs.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		return &Loader{logger: zap.NewNop()}
	}
	return &Loader{logger: logger.Named("config")}
}

type rawConfig struct {
	APIKey         string                 `mapstructure:"apiKey"`
	BaseURL        string                 `mapstructure:"baseURL"`
	TimeoutSeconds int                    `mapstructure:"timeoutSeconds"`
	UserAgent      string                 `mapstructure:"userAgent"`
	Observability  rawObservabilityConfig `mapstructure:"observability"`
}

type rawObservabilityConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ListenAddress string `mapstructure:"listenAddress"`
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("baseURL", domain.DefaultBaseURL)
	v.SetDefault("timeoutSeconds", domain.DefaultTimeoutSeconds)
	v.SetDefault("userAgent", domain.DefaultUserAgent)
	v.SetDefault("observability.listenAddress", domain.DefaultObservabilityListenAddress)
	return v
}

// Load reads and normalizes the config at path. An empty path yields the
// defaults with the API key taken from the environment.
func (l *Loader) Load(path string) (domain.Config, error) {
	raw := rawConfig{}
	v := newConfigViper()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Config{}, fmt.Errorf("read config: %w", err)
		}
		expanded, missing, err := expandConfigEnv(data)
		if err != nil {
			return domain.Config{}, err
		}
		if len(missing) > 0 {
			l.logger.Warn("missing environment variables in config",
				zap.String("path", path),
				zap.Strings("missing", missing),
			)
		}
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return domain.Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}

	return normalize(raw)
}

func normalize(raw rawConfig) (domain.Config, error) {
	var errs []string

	apiKey := strings.TrimSpace(raw.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(domain.APIKeyEnvVar))
	}

	baseURL := strings.TrimRight(strings.TrimSpace(raw.BaseURL), "/")
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	if parsed, err := url.ParseRequestURI(baseURL); err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		errs = append(errs, fmt.Sprintf("baseURL must be a valid http(s) URL, got %q", raw.BaseURL))
	}

	if raw.TimeoutSeconds < 0 {
		errs = append(errs, "timeoutSeconds must be >= 0")
	}
	timeout := raw.TimeoutSeconds
	if timeout == 0 {
		timeout = domain.DefaultTimeoutSeconds
	}

	userAgent := strings.TrimSpace(raw.UserAgent)
	if userAgent == "" {
		userAgent = domain.DefaultUserAgent
	}

	listenAddress := strings.TrimSpace(raw.Observability.ListenAddress)
	if listenAddress == "" {
		listenAddress = domain.DefaultObservabilityListenAddress
	}

	if len(errs) > 0 {
		return domain.Config{}, errors.New(strings.Join(errs, "; "))
	}

	return domain.Config{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		TimeoutSeconds: timeout,
		UserAgent:      userAgent,
		Observability: domain.ObservabilityConfig{
			Enabled:       raw.Observability.Enabled,
			ListenAddress: listenAddress,
		},
	}, nil
}
