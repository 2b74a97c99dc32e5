// ABOUTME: Entry point for zaico-mcp, the MCP server for the ZAICO inventory API
// ABOUTME: Wires config, logging and the cobra command tree

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/2389/zaico-mcp/internal/config"
	"github.com/2389/zaico-mcp/internal/mcp"
	"github.com/2389/zaico-mcp/internal/tools"
	"github.com/2389/zaico-mcp/internal/zaico"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
            _
 ______ _ (_) ___  ___        _ __ ___   ___ _ __
|_  / _' || |/ __|/ _ \ _____| '_ ' _ \ / __| '_ \
 / / (_| || | (__| (_) |_____| | | | | | (__| |_) |
/___\__,_||_|\___|\___/      |_| |_| |_|\___| .__/
                                            |_|
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "zaico-mcp",
		Short:         "MCP server for the ZAICO inventory management API",
		Long:          "zaico-mcp exposes the ZAICO inventory REST API as Model Context Protocol tools over HTTP or stdio.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/zaico-mcp/config.yaml)")

	root.AddCommand(
		newServeCmd(opts),
		newStdioCmd(opts),
		newToolsCmd(opts),
		newHealthCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig resolves and loads the config file. A missing file at the
// implicit location falls back to defaults.
func (o *rootOptions) loadConfig() (*config.Config, string, error) {
	path, implicit := config.Path(o.configPath)
	cfg, err := config.LoadOrDefault(path, implicit)
	if err != nil {
		return nil, path, fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

// buildMCPServer wires the upstream client, tool executor and dispatcher.
func buildMCPServer(cfg *config.Config, logger *slog.Logger) (*mcp.Server, error) {
	client, err := zaico.NewClient(zaico.ClientConfig{
		BaseURL:   cfg.Upstream.BaseURL,
		Timeout:   cfg.Upstream.Timeout,
		UserAgent: "zaico-mcp/" + version,
		Logger:    logger.With("component", "zaico"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating zaico client: %w", err)
	}

	executor, err := tools.NewExecutor(tools.Config{
		Client:        client,
		DefaultToken:  cfg.Upstream.DefaultToken,
		LegacyTimeout: cfg.Upstream.LegacyTimeout,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating tool executor: %w", err)
	}

	server, err := mcp.NewServer(mcp.Config{
		Executor:          executor,
		Logger:            logger,
		Version:           version,
		RequireInitialize: cfg.MCP.RequireInitialize,
	})
	if err != nil {
		return nil, fmt.Errorf("creating MCP server: %w", err)
	}
	return server, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "zaico-mcp %s\n", version)
			return err
		},
	}
}

// discard is used by commands that build components but never log.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
