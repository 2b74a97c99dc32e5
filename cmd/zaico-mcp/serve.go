// ABOUTME: serve and stdio subcommands
// ABOUTME: serve hosts /api/mcp over HTTP; stdio speaks line-delimited JSON-RPC on stdin/stdout

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2389/zaico-mcp/internal/catalog"
	"github.com/2389/zaico-mcp/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over HTTP",
		Long:  "Start the HTTP server hosting POST/GET /api/mcp, the landing page and /healthz. Listens on server.http_addr, or on a Tailscale node when tailscale.enabled is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, configPath, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			// Print banner
			cyan := color.New(color.FgCyan)
			cyan.Fprint(out, banner)

			// Version info
			gray := color.New(color.FgHiBlack)
			gray.Fprintf(out, "    version: %s\n\n", version)

			logger := setupLogger(cfg.Logging, out)

			// Startup info
			green := color.New(color.FgGreen)
			yellow := color.New(color.FgYellow)

			green.Fprint(out, "    ▶ ")
			fmt.Fprintf(out, "Config:    %s\n", configPath)
			green.Fprint(out, "    ▶ ")
			fmt.Fprintf(out, "HTTP:      %s\n", cfg.Server.HTTPAddr)
			green.Fprint(out, "    ▶ ")
			fmt.Fprintf(out, "Upstream:  %s\n", cfg.Upstream.BaseURL)
			green.Fprint(out, "    ▶ ")
			toolCount := len(catalog.Tools())
			if cfg.Upstream.DefaultToken != "" {
				toolCount += len(catalog.Convenience())
			}
			fmt.Fprintf(out, "Tools:     %d\n", toolCount)

			// Tailscale status
			if cfg.Tailscale.Enabled {
				green.Fprint(out, "    ▶ ")
				fmt.Fprintf(out, "Tailscale: ")
				cyan.Fprint(out, cfg.Tailscale.Hostname)
				if cfg.Tailscale.Funnel {
					yellow.Fprint(out, " [funnel]")
				}
				if cfg.Tailscale.Ephemeral {
					gray.Fprint(out, " (ephemeral)")
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintln(out)

			logger.Info("starting zaico-mcp",
				"config", configPath,
				"http_addr", cfg.Server.HTTPAddr,
				"tailscale", cfg.Tailscale.Enabled,
			)

			mcpServer, err := buildMCPServer(cfg, logger)
			if err != nil {
				return err
			}
			srv, err := server.New(cfg, mcpServer, logger)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return srv.Run(cmd.Context())
		},
	}
}

func newStdioCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin/stdout",
		Long:  "Read one JSON-RPC message per line from stdin and write one response per line to stdout. Logs go to stderr.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}

			logger := setupLogger(cfg.Logging, cmd.ErrOrStderr())
			mcpServer, err := buildMCPServer(cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("serving MCP on stdio", "version", version)
			return mcpServer.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
