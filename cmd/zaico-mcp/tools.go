// ABOUTME: tools and health subcommands
// ABOUTME: tools prints the published catalog; health queries a running server's discovery document

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2389/zaico-mcp/internal/mcp"
)

func newToolsCmd(opts *rootOptions) *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the published tool catalog",
		Example: `  zaico-mcp tools
  zaico-mcp tools --names`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			mcpServer, err := buildMCPServer(cfg, discard)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			published := mcpServer.Tools()

			if !namesOnly {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(mcp.MCPListToolsResult{Tools: published})
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			cyan := color.New(color.FgCyan)
			for _, t := range published {
				summary, _, _ := strings.Cut(t.Description, ". ")
				fmt.Fprintf(tw, "%s\t%s\n", cyan.Sprint(t.Name), strings.TrimSuffix(summary, "."))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print a name/summary table instead of JSON")
	return cmd
}

func newHealthCmd(opts *rootOptions) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check a running server",
		Long:  "GET the /api/mcp discovery document of a running server and report its version and tool count.",
		Example: `  zaico-mcp health
  zaico-mcp health --url https://zaico-mcp.example.ts.net/api/mcp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				cfg, _, err := opts.loadConfig()
				if err != nil {
					return err
				}
				url = fmt.Sprintf("http://%s%s", cfg.Server.HTTPAddr, mcp.Endpoint)
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return fmt.Errorf("creating request: %w", err)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
			}

			var doc mcp.Discovery
			if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
				return fmt.Errorf("decoding discovery document: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "healthy: %s %s, %d tools\n", doc.Name, doc.Version, len(doc.Tools))
			return err
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "MCP endpoint URL (default derived from server.http_addr)")
	return cmd
}
