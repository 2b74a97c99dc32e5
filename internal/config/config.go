// ABOUTME: Configuration loading and parsing for zaico-mcp
// ABOUTME: Supports YAML or TOML files with environment variable expansion and duration parsing

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the ZAICO REST API root every tool path is appended to.
const DefaultBaseURL = "https://web.zaico.co.jp/api/v1"

// DefaultTokenEnv names the environment variable holding the default API token.
const DefaultTokenEnv = "ZAICO_API_TOKEN"

// Config represents the complete zaico-mcp configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale" toml:"tailscale"`
	Upstream  UpstreamConfig  `yaml:"upstream" toml:"upstream"`
	MCP       MCPConfig       `yaml:"mcp" toml:"mcp"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	HTTPAddr        string        `yaml:"http_addr" toml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"-" toml:"-"`

	ShutdownTimeoutRaw string `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// TailscaleConfig holds Tailscale tsnet configuration
type TailscaleConfig struct {
	Enabled   bool   `yaml:"enabled" toml:"enabled"`
	Hostname  string `yaml:"hostname" toml:"hostname"`
	AuthKey   string `yaml:"auth_key" toml:"auth_key"`
	StateDir  string `yaml:"state_dir" toml:"state_dir"`
	Ephemeral bool   `yaml:"ephemeral" toml:"ephemeral"`
	HTTPS     bool   `yaml:"https" toml:"https"`   // Serve HTTPS using Tailscale certs
	Funnel    bool   `yaml:"funnel" toml:"funnel"` // Enable public Funnel (implies HTTPS)
}

// UpstreamConfig describes how the ZAICO API is reached
type UpstreamConfig struct {
	BaseURL       string        `yaml:"base_url" toml:"base_url"`
	DefaultToken  string        `yaml:"default_token" toml:"default_token"`
	Timeout       time.Duration `yaml:"-" toml:"-"`
	LegacyTimeout time.Duration `yaml:"-" toml:"-"`

	// Raw string values for unmarshaling
	TimeoutRaw       string `yaml:"timeout" toml:"timeout"`
	LegacyTimeoutRaw string `yaml:"legacy_timeout" toml:"legacy_timeout"`
}

// MCPConfig holds protocol-level behavior switches
type MCPConfig struct {
	// RequireInitialize rejects tools/list and tools/call on a stdio session
	// that has not completed the initialize handshake.
	RequireInitialize bool `yaml:"require_initialize" toml:"require_initialize"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			HTTPAddr:           "127.0.0.1:8080",
			ShutdownTimeoutRaw: "5s",
		},
		Tailscale: TailscaleConfig{
			Hostname: "zaico-mcp",
		},
		Upstream: UpstreamConfig{
			BaseURL:          DefaultBaseURL,
			TimeoutRaw:       "0s",
			LegacyTimeoutRaw: "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
	cfg.Upstream.DefaultToken = os.Getenv(DefaultTokenEnv)
	// Default values are known-good durations.
	_ = parseDurations(cfg)
	return cfg
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Environment variables in the format ${VAR_NAME} are expanded and unset
// fields keep their Default() values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw content
	expanded := expandEnvVars(string(data))

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if token := os.Getenv(DefaultTokenEnv); token != "" {
		cfg.Upstream.DefaultToken = token
	}

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the file at path. When the file does not exist and
// optional is true, Default() is returned instead of an error; this is the
// case for the implicit XDG location, not for a path the user asked for.
func LoadOrDefault(path string, optional bool) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if optional && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return nil, err
}

// Path returns the config file location and whether it was chosen implicitly.
// Priority: explicit flag > ZAICO_MCP_CONFIG env var > XDG_CONFIG_HOME/zaico-mcp/config.yaml
// > ~/.config/zaico-mcp/config.yaml
func Path(flagValue string) (path string, implicit bool) {
	if flagValue != "" {
		return flagValue, false
	}
	if envPath := os.Getenv("ZAICO_MCP_CONFIG"); envPath != "" {
		return envPath, false
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml", true
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "zaico-mcp", "config.yaml"), true
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if !c.Tailscale.Enabled && c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required (or enable tailscale)")
	}

	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("upstream.base_url %q is not an absolute URL", c.Upstream.BaseURL)
	}

	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("upstream.timeout must not be negative")
	}
	if c.Upstream.LegacyTimeout < 0 {
		return fmt.Errorf("upstream.legacy_timeout must not be negative")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Server.ShutdownTimeoutRaw != "" {
		cfg.Server.ShutdownTimeout, err = time.ParseDuration(cfg.Server.ShutdownTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing shutdown_timeout %q: %w", cfg.Server.ShutdownTimeoutRaw, err)
		}
	}

	if cfg.Upstream.TimeoutRaw != "" {
		cfg.Upstream.Timeout, err = time.ParseDuration(cfg.Upstream.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing timeout %q: %w", cfg.Upstream.TimeoutRaw, err)
		}
	}

	if cfg.Upstream.LegacyTimeoutRaw != "" {
		cfg.Upstream.LegacyTimeout, err = time.ParseDuration(cfg.Upstream.LegacyTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing legacy_timeout %q: %w", cfg.Upstream.LegacyTimeoutRaw, err)
		}
	}

	return nil
}
