// ABOUTME: Pre-flight checks for the two line-item create tools.
// ABOUTME: Status values come from the catalog schema so messages track the published enum.

package tools

import (
	"strings"

	"github.com/2389/zaico-mcp/internal/catalog"
)

// lineItemRule describes a create call that needs a status and a non-empty
// array of line items.
type lineItemRule struct {
	items      string
	itemFields []string
}

var lineItemRules = map[string]lineItemRule{
	"create_packing_slip": {
		items:      "deliveries",
		itemFields: []string{"inventory_id", "quantity", "estimated_delivery_date"},
	},
	"create_purchase": {
		items:      "purchase_items",
		itemFields: []string{"inventory_id", "quantity", "estimated_purchase_date"},
	},
}

// validate runs the pre-flight checks registered for the tool, if any.
func validate(name string, args Args) error {
	rule, ok := lineItemRules[name]
	if !ok {
		return nil
	}

	if !present(args.Rest["status"]) {
		var statuses []string
		if t, ok := catalog.Lookup(name); ok {
			statuses = catalog.Enum(t, "status")
		}
		return &ArgumentError{
			Name: "status",
			Hint: "Specify one of " + strings.Join(statuses, "/") + ".",
		}
	}

	items, _ := args.Rest[rule.items].([]any)
	if len(items) == 0 {
		return &ArgumentError{
			Name: rule.items,
			Hint: "Specify a non-empty array of [{" + strings.Join(rule.itemFields, ", ") + "}].",
		}
	}
	return nil
}
