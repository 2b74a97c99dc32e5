// ABOUTME: Executes tools/call requests against the ZAICO API.
// ABOUTME: Every outcome, including failures, is returned as MCP tool content.

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/2389/zaico-mcp/internal/catalog"
	"github.com/2389/zaico-mcp/internal/zaico"
)

// ErrUnknownTool indicates the tool name has no route.
var ErrUnknownTool = errors.New("unknown tool")

// Content is one block of tool output.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the tools/call result object.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Text returns the concatenated text of all content blocks.
func (r *Result) Text() string {
	var sb strings.Builder
	for _, c := range r.Content {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func textResult(text string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: text}}}
}

func errorResult(text string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: text}}, IsError: true}
}

// Config holds configuration for the Executor.
type Config struct {
	Client *zaico.Client
	Logger *slog.Logger

	// DefaultToken is used by the product listing tools when the call has no
	// token. It also controls whether those tools are published.
	DefaultToken string

	// LegacyTimeout bounds the product listing tools. Zero means no timeout,
	// the same as the client-wide upstream timeout.
	LegacyTimeout time.Duration
}

// Executor maps tool calls onto upstream requests.
type Executor struct {
	client        *zaico.Client
	defaultToken  string
	legacyTimeout time.Duration
	logger        *slog.Logger
	published     []mcp.Tool
}

// NewExecutor creates an Executor with the given configuration.
func NewExecutor(cfg Config) (*Executor, error) {
	if cfg.Client == nil {
		return nil, errors.New("zaico client is required")
	}
	if cfg.LegacyTimeout < 0 {
		return nil, errors.New("legacy timeout must not be negative")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	published := catalog.Tools()
	if cfg.DefaultToken != "" {
		published = append(published, catalog.Convenience()...)
	}

	return &Executor{
		client:        cfg.Client,
		defaultToken:  cfg.DefaultToken,
		legacyTimeout: cfg.LegacyTimeout,
		logger:        logger.With("component", "tools"),
		published:     published,
	}, nil
}

// Tools returns the published catalog.
func (e *Executor) Tools() []mcp.Tool {
	return append([]mcp.Tool(nil), e.published...)
}

// Call runs one tool. It never returns nil.
func (e *Executor) Call(ctx context.Context, name string, arguments json.RawMessage) *Result {
	out, err := e.execute(ctx, name, arguments)
	if err != nil {
		if errors.Is(err, ErrUnknownTool) {
			e.logger.Warn("unknown tool", "tool_name", name)
			return errorResult("Unknown tool: " + name)
		}
		e.logger.Debug("tool call failed", "tool_name", name, "error", err)
		return errorResult("Error: " + err.Error())
	}

	text, err := prettyJSON(out)
	if err != nil {
		return errorResult("Error: " + err.Error())
	}
	return textResult(text)
}

func (e *Executor) execute(ctx context.Context, name string, arguments json.RawMessage) (any, error) {
	route, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	args, err := DecodeArgs(arguments)
	if err != nil {
		return nil, err
	}

	switch route.Kind {
	case KindSearchProducts:
		return e.searchProducts(ctx, args)
	case KindListProducts:
		return e.listProducts(ctx, args)
	}

	if args.Token == "" {
		return nil, &ArgumentError{Name: "token"}
	}
	if route.Kind.PathBased() && args.ID == "" {
		return nil, &ArgumentError{Name: "id"}
	}
	if err := validate(name, args); err != nil {
		return nil, err
	}

	req := zaico.Request{
		Token:  args.Token,
		Method: route.Kind.Method(),
		Path:   route.Path,
	}
	if route.Kind.PathBased() {
		req.Path += "/" + url.PathEscape(args.ID)
	}
	switch route.Kind {
	case KindList:
		req.Query = args.Query()
	case KindCreate, KindUpdate:
		req.Body = args.Body(route.Kind.PathBased())
	}

	e.logger.Debug("calling upstream",
		"tool_name", name,
		"kind", route.Kind.String(),
		"method", req.Method,
		"path", req.Path,
	)

	return e.client.Do(ctx, req)
}

// prettyJSON renders v with two-space indentation and without HTML escaping.
func prettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
