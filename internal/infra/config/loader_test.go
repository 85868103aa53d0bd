package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cufmcp/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv(domain.APIKeyEnvVar, "env-key")

	cfg, err := NewLoader(nil).Load("")
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.APIKey = "env-key"
	assert.Equal(t, want, cfg)
	assert.Equal(t, time.Duration(domain.DefaultTimeoutSeconds)*time.Second, cfg.Timeout())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(domain.APIKeyEnvVar, "")
	path := writeConfig(t, `
apiKey: file-key
baseURL: https://api.example.com/v2/
timeoutSeconds: 30
userAgent: custom-agent/1.0
observability:
  enabled: true
  listenAddress: 127.0.0.1:9999
`)

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "https://api.example.com/v2", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "custom-agent/1.0", cfg.UserAgent)
	assert.True(t, cfg.Observability.Enabled)
	assert.Equal(t, "127.0.0.1:9999", cfg.Observability.ListenAddress)
}

func TestLoad_ExpandsEnvReferences(t *testing.T) {
	t.Setenv("TEST_CUF_KEY", "expanded-key")
	path := writeConfig(t, "apiKey: ${TEST_CUF_KEY}\n")

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "expanded-key", cfg.APIKey)
}

func TestLoad_MissingEnvReferenceFallsBackToEnvKey(t *testing.T) {
	// An unset ${VAR} expands to "", so the loader falls through to the
	// well-known environment variable.
	t.Setenv(domain.APIKeyEnvVar, "fallback-key")
	path := writeConfig(t, "apiKey: ${TEST_CUF_UNSET_VAR}\n")

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fallback-key", cfg.APIKey)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv(domain.APIKeyEnvVar, "env-key")
	path := writeConfig(t, "")

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, domain.DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "non http base url",
			content: "baseURL: ftp://api.example.com\n",
			wantErr: "baseURL must be a valid http(s) URL",
		},
		{
			name:    "negative timeout",
			content: "timeoutSeconds: -5\n",
			wantErr: "timeoutSeconds must be >= 0",
		},
		{
			name:    "malformed yaml",
			content: "apiKey: [unclosed\n",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := NewLoader(nil).Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ZeroTimeoutMeansDefault(t *testing.T) {
	t.Setenv(domain.APIKeyEnvVar, "env-key")
	path := writeConfig(t, "timeoutSeconds: 0\n")

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}
