// ABOUTME: Tests for the tool catalog: ordering, schema consistency and enums.

package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantOrder = []string{
	"list_inventories", "get_inventory", "create_inventory", "update_inventory", "delete_inventory",
	"list_inventory_sets", "get_inventory_set", "create_inventory_set", "update_inventory_set", "delete_inventory_set",
	"list_packing_slips", "get_packing_slip", "create_packing_slip", "update_packing_slip", "delete_packing_slip",
	"list_deliveries",
	"list_purchases", "get_purchase", "create_purchase", "update_purchase", "delete_purchase",
	"list_purchase_items",
	"list_customers", "create_customer", "update_customer", "delete_customer",
	"list_inventory_group_items", "get_inventory_group_item",
}

func TestTools_Order(t *testing.T) {
	assert.Equal(t, wantOrder, Names(Tools()))
	assert.Equal(t, []string{"search_inventory", "list_all_products"}, Names(Convenience()))
	assert.Len(t, All(), len(wantOrder)+2)
}

func TestAll_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, tool := range All() {
		assert.False(t, seen[tool.Name], "duplicate tool %q", tool.Name)
		seen[tool.Name] = true
	}
}

func TestAll_RequiredAreProperties(t *testing.T) {
	for _, tool := range All() {
		assert.Equal(t, "object", tool.InputSchema.Type, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		for _, r := range tool.InputSchema.Required {
			_, ok := tool.InputSchema.Properties[r]
			assert.True(t, ok, "%s: required %q is not a property", tool.Name, r)
		}
	}
}

func TestTools_TokenRequired(t *testing.T) {
	for _, tool := range Tools() {
		assert.True(t, IsRequired(tool, "token"), tool.Name)
	}
	for _, tool := range Convenience() {
		assert.False(t, IsRequired(tool, "token"), tool.Name)
		_, ok := tool.InputSchema.Properties["token"]
		assert.True(t, ok, tool.Name)
	}
}

func TestTools_PathToolsRequireID(t *testing.T) {
	for _, name := range []string{"get_inventory", "update_customer", "delete_purchase", "get_inventory_group_item"} {
		tool, ok := Lookup(name)
		require.True(t, ok, name)
		assert.True(t, IsRequired(tool, "id"), name)
	}
}

func TestEnum(t *testing.T) {
	slip, ok := Lookup("create_packing_slip")
	require.True(t, ok)
	assert.Equal(t, PackingSlipStatuses, Enum(slip, "status"))
	assert.True(t, IsRequired(slip, "deliveries"))

	purchase, ok := Lookup("create_purchase")
	require.True(t, ok)
	assert.Equal(t, PurchaseStatuses, Enum(purchase, "status"))
	assert.True(t, IsRequired(purchase, "purchase_items"))

	customer, ok := Lookup("create_customer")
	require.True(t, ok)
	assert.Equal(t, CustomerTypes, Enum(customer, "customer_type"))

	list, ok := Lookup("list_inventories")
	require.True(t, ok)
	assert.Nil(t, Enum(list, "title"))
	assert.Nil(t, Enum(list, "missing"))
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("drop_database")
	assert.False(t, ok)
}

func TestTools_ReturnsCopy(t *testing.T) {
	tools := Tools()
	tools[0].Name = "mutated"
	assert.Equal(t, "list_inventories", Tools()[0].Name)
}

func TestTools_MarshalsAsDescriptor(t *testing.T) {
	tool, ok := Lookup("create_packing_slip")
	require.True(t, ok)

	raw, err := json.Marshal(tool)
	require.NoError(t, err)

	var got struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		InputSchema struct {
			Type       string                     `json:"type"`
			Properties map[string]json.RawMessage `json:"properties"`
			Required   []string                   `json:"required"`
		} `json:"inputSchema"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "create_packing_slip", got.Name)
	assert.Equal(t, "object", got.InputSchema.Type)
	assert.ElementsMatch(t, []string{"token", "status", "deliveries"}, got.InputSchema.Required)
	assert.Contains(t, string(got.InputSchema.Properties["deliveries"]), "estimated_delivery_date")
}
