// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML and TOML loading, env var expansion, defaults, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "")

	path := writeConfig(t, "config.yaml", `
server:
  http_addr: "0.0.0.0:9090"
  shutdown_timeout: "3s"

upstream:
  base_url: "https://example.test/api/v1"
  timeout: "30s"
  legacy_timeout: "15s"
  default_token: "file-token"

mcp:
  require_initialize: true

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:9090" {
		t.Errorf("Server.HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "0.0.0.0:9090")
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, 3*time.Second)
	}
	if cfg.Upstream.BaseURL != "https://example.test/api/v1" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Upstream.Timeout = %v, want %v", cfg.Upstream.Timeout, 30*time.Second)
	}
	if cfg.Upstream.LegacyTimeout != 15*time.Second {
		t.Errorf("Upstream.LegacyTimeout = %v, want %v", cfg.Upstream.LegacyTimeout, 15*time.Second)
	}
	if cfg.Upstream.DefaultToken != "file-token" {
		t.Errorf("Upstream.DefaultToken = %q, want %q", cfg.Upstream.DefaultToken, "file-token")
	}
	if !cfg.MCP.RequireInitialize {
		t.Error("MCP.RequireInitialize = false, want true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "")

	path := writeConfig(t, "config.yaml", `
logging:
  level: "warn"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "127.0.0.1:8080" {
		t.Errorf("Server.HTTPAddr = %q, want default", cfg.Server.HTTPAddr)
	}
	if cfg.Upstream.BaseURL != DefaultBaseURL {
		t.Errorf("Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, DefaultBaseURL)
	}
	if cfg.Upstream.Timeout != 0 {
		t.Errorf("Upstream.Timeout = %v, want 0", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.LegacyTimeout != 10*time.Second {
		t.Errorf("Upstream.LegacyTimeout = %v, want 10s", cfg.Upstream.LegacyTimeout)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "")

	path := writeConfig(t, "config.toml", `
[server]
http_addr = "127.0.0.1:7070"

[upstream]
legacy_timeout = "2s"

[logging]
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.HTTPAddr != "127.0.0.1:7070" {
		t.Errorf("Server.HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "127.0.0.1:7070")
	}
	if cfg.Upstream.LegacyTimeout != 2*time.Second {
		t.Errorf("Upstream.LegacyTimeout = %v, want 2s", cfg.Upstream.LegacyTimeout)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "")
	t.Setenv("TEST_ZAICO_BASE", "https://staging.example.test/api/v1")
	os.Unsetenv("UNSET_VAR_FOR_TEST")

	path := writeConfig(t, "config.yaml", `
upstream:
  base_url: "${TEST_ZAICO_BASE}"
  default_token: "${UNSET_VAR_FOR_TEST}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Upstream.BaseURL != "https://staging.example.test/api/v1" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.DefaultToken != "" {
		t.Errorf("Upstream.DefaultToken = %q, want empty", cfg.Upstream.DefaultToken)
	}
}

func TestLoad_TokenEnvOverridesFile(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "env-token")

	path := writeConfig(t, "config.yaml", `
upstream:
  default_token: "file-token"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Upstream.DefaultToken != "env-token" {
		t.Errorf("Upstream.DefaultToken = %q, want %q", cfg.Upstream.DefaultToken, "env-token")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			content: "server: [unclosed",
			wantErr: "parsing config file",
		},
		{
			name: "bad duration",
			content: `
upstream:
  timeout: "soon"
`,
			wantErr: "parsing timeout",
		},
		{
			name: "relative base url",
			content: `
upstream:
  base_url: "/api/v1"
`,
			wantErr: "not an absolute URL",
		},
		{
			name: "negative timeout",
			content: `
upstream:
  timeout: "-1s"
`,
			wantErr: "upstream.timeout must not be negative",
		},
		{
			name: "missing addr without tailscale",
			content: `
server:
  http_addr: ""
`,
			wantErr: "server.http_addr is required",
		},
		{
			name: "tailscale without hostname",
			content: `
tailscale:
  enabled: true
  hostname: ""
`,
			wantErr: "tailscale.hostname is required",
		},
		{
			name: "unknown log level",
			content: `
logging:
  level: "verbose"
`,
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "config.yaml", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "")
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadOrDefault(missing, true)
	if err != nil {
		t.Fatalf("LoadOrDefault(optional) error = %v", err)
	}
	if cfg.Upstream.BaseURL != DefaultBaseURL {
		t.Errorf("Upstream.BaseURL = %q, want default", cfg.Upstream.BaseURL)
	}

	if _, err := LoadOrDefault(missing, false); err == nil {
		t.Error("LoadOrDefault(explicit missing file) error = nil, want error")
	}
}

func TestPath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("ZAICO_MCP_CONFIG", "/env/config.yaml")
		path, implicit := Path("/flag/config.yaml")
		if path != "/flag/config.yaml" || implicit {
			t.Errorf("Path() = %q, %v", path, implicit)
		}
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv("ZAICO_MCP_CONFIG", "/env/config.yaml")
		path, implicit := Path("")
		if path != "/env/config.yaml" || implicit {
			t.Errorf("Path() = %q, %v", path, implicit)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("ZAICO_MCP_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		path, implicit := Path("")
		if path != filepath.Join("/xdg", "zaico-mcp", "config.yaml") || !implicit {
			t.Errorf("Path() = %q, %v", path, implicit)
		}
	})
}
