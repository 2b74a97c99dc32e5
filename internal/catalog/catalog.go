// ABOUTME: Static catalog of MCP tool descriptors for the ZAICO API.
// ABOUTME: Built once at init with the mcp-go tool DSL; callers must treat the descriptors as read-only.

package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Status values accepted by the line-item resources.
var (
	PackingSlipStatuses = []string{"before_delivery", "during_delivery", "completed_delivery"}
	PurchaseStatuses    = []string{"none", "not_ordered", "ordered", "purchased", "quotation_requested"}
	CustomerTypes       = []string{"packing_slip", "purchase"}
)

var (
	perCall     = buildPerCall()
	convenience = buildConvenience()
	all         = append(append([]mcp.Tool{}, perCall...), convenience...)
	byName      = index(all)
)

// Tools returns the per-call tools in catalog order. Every one of them
// requires a token argument.
func Tools() []mcp.Tool {
	return append([]mcp.Tool(nil), perCall...)
}

// Convenience returns search_inventory and list_all_products, which fall
// back to the configured default token.
func Convenience() []mcp.Tool {
	return append([]mcp.Tool(nil), convenience...)
}

// All returns the per-call tools followed by the convenience tools.
func All() []mcp.Tool {
	return append([]mcp.Tool(nil), all...)
}

// Lookup finds a tool by name across the whole catalog.
func Lookup(name string) (mcp.Tool, bool) {
	t, ok := byName[name]
	return t, ok
}

// Names returns the tool names in order.
func Names(tools []mcp.Tool) []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

// Enum returns the enum values declared for a property, or nil.
func Enum(t mcp.Tool, property string) []string {
	prop, ok := t.InputSchema.Properties[property].(map[string]any)
	if !ok {
		return nil
	}
	switch v := prop["enum"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// IsRequired reports whether property is listed in the tool's required set.
func IsRequired(t mcp.Tool, property string) bool {
	for _, r := range t.InputSchema.Required {
		if r == property {
			return true
		}
	}
	return false
}

func index(tools []mcp.Tool) map[string]mcp.Tool {
	m := make(map[string]mcp.Tool, len(tools))
	for _, t := range tools {
		m[t.Name] = t
	}
	return m
}

// Shared property options.

func withToken() mcp.ToolOption {
	return mcp.WithString("token", mcp.Required(), mcp.Description("ZAICO API token (required)"))
}

func withID(what string) mcp.ToolOption {
	return mcp.WithNumber("id", mcp.Required(), mcp.Description(what+" ID (required)"))
}

func withPage(desc string) mcp.ToolOption {
	return mcp.WithNumber("page", mcp.Description(desc))
}

// Annotation presets by operation kind.

func readOnly() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func creates() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func updates() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func deletes() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func tool(name, description string, hints []mcp.ToolOption, opts ...mcp.ToolOption) mcp.Tool {
	options := append([]mcp.ToolOption{mcp.WithDescription(description)}, hints...)
	return mcp.NewTool(name, append(options, opts...)...)
}
