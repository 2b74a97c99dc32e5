// Package config handles configuration loading for zaico-mcp.
//
// # Overview
//
// Configuration is loaded from YAML or TOML files with environment variable
// expansion. Every field has a default, so a missing config file at the
// implicit location is not an error.
//
// # Configuration File
//
// Locations (in order):
//
//  1. Path given with --config
//  2. Path from ZAICO_MCP_CONFIG environment variable
//  3. $XDG_CONFIG_HOME/zaico-mcp/config.yaml
//  4. ~/.config/zaico-mcp/config.yaml
//
// Files ending in .toml are decoded as TOML; anything else as YAML.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	upstream:
//	  default_token: "${ZAICO_API_TOKEN}"
//
// ZAICO_API_TOKEN also overrides upstream.default_token directly. The default
// token is only used by the search_inventory and list_all_products tools;
// every other tool takes its token as a call argument.
//
// # Configuration Sections
//
//	server:
//	  http_addr: "127.0.0.1:8080"
//	  shutdown_timeout: "5s"
//
//	tailscale:
//	  enabled: false
//	  hostname: "zaico-mcp"
//	  auth_key: "${TS_AUTHKEY}"
//	  https: false
//	  funnel: false
//
//	upstream:
//	  base_url: "https://web.zaico.co.jp/api/v1"
//	  timeout: "0s"          # 0 disables the per-call timeout
//	  legacy_timeout: "10s"  # search_inventory / list_all_products; 0 disables
//
//	mcp:
//	  require_initialize: false
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
