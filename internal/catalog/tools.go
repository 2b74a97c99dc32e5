// ABOUTME: Tool descriptor literals, grouped by ZAICO resource.
// ABOUTME: Order here is the order tools/list reports.

package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func buildPerCall() []mcp.Tool {
	var tools []mcp.Tool
	tools = append(tools, inventoryTools()...)
	tools = append(tools, inventorySetTools()...)
	tools = append(tools, packingSlipTools()...)
	tools = append(tools, deliveryTools()...)
	tools = append(tools, purchaseTools()...)
	tools = append(tools, purchaseItemTools()...)
	tools = append(tools, customerTools()...)
	tools = append(tools, inventoryGroupItemTools()...)
	return tools
}

func buildConvenience() []mcp.Tool {
	return []mcp.Tool{
		tool("search_inventory",
			"Search ZAICO inventory by product name and return quantity and details. Uses the server's default API token unless token is given.",
			readOnly(),
			mcp.WithString("product_name", mcp.Required(), mcp.Description("Name of the product to search for (e.g. Koshihikari)")),
			mcp.WithString("token", mcp.Description("ZAICO API token (defaults to the server's configured token)")),
		),
		tool("list_all_products",
			"List every product in ZAICO inventory with its quantity. Uses the server's default API token unless token is given.",
			readOnly(),
			mcp.WithString("token", mcp.Description("ZAICO API token (defaults to the server's configured token)")),
		),
	}
}

// inventoryFields are the writable fields of an inventory record.
func inventoryFields(titleRequired bool) []mcp.ToolOption {
	title := mcp.WithString("title", mcp.Description("Inventory name (max 200 characters)"))
	if titleRequired {
		title = mcp.WithString("title", mcp.Required(), mcp.Description("Inventory name (required, max 200 characters)"))
	}
	return []mcp.ToolOption{
		title,
		mcp.WithNumber("quantity", mcp.Description("Quantity")),
		mcp.WithString("unit", mcp.Description("Unit")),
		mcp.WithString("category", mcp.Description("Category")),
		mcp.WithString("place", mcp.Description("Storage location")),
		mcp.WithString("code", mcp.Description("Code or barcode")),
		mcp.WithNumber("price", mcp.Description("Price")),
		mcp.WithNumber("cost_price", mcp.Description("Purchase unit price")),
		mcp.WithString("memo", mcp.Description("Memo (max 250 characters)")),
	}
}

func inventoryTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_inventories",
			"List inventory records. Filter by title, category, place or code.",
			readOnly(),
			withToken(),
			mcp.WithString("title", mcp.Description("Search by inventory name")),
			mcp.WithString("category", mcp.Description("Search by category")),
			mcp.WithString("place", mcp.Description("Search by storage location")),
			mcp.WithString("code", mcp.Description("Search by code")),
			withPage("Page number (100 records per page)"),
		),
		tool("get_inventory",
			"Get one inventory record by ID.",
			readOnly(),
			withToken(),
			withID("Inventory"),
		),
		tool("create_inventory",
			"Create an inventory record. title is required.",
			creates(),
			append([]mcp.ToolOption{withToken()}, inventoryFields(true)...)...,
		),
		tool("update_inventory",
			"Update the inventory record with the given ID.",
			updates(),
			append([]mcp.ToolOption{withToken(), withID("Inventory")}, inventoryFields(false)...)...,
		),
		tool("delete_inventory",
			"Delete the inventory record with the given ID.",
			deletes(),
			withToken(),
			withID("Inventory"),
		),
	}
}

var setItemsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"inventory_id": map[string]any{"type": "number", "description": "Inventory ID"},
		"quantity":     map[string]any{"type": "number", "description": "Quantity"},
	},
}

func inventorySetFields(titleRequired bool) []mcp.ToolOption {
	title := mcp.WithString("title", mcp.Description("Set name (max 200 characters)"))
	if titleRequired {
		title = mcp.WithString("title", mcp.Required(), mcp.Description("Set name (required, max 200 characters)"))
	}
	return []mcp.ToolOption{
		title,
		mcp.WithNumber("price", mcp.Description("Price")),
		mcp.WithString("code", mcp.Description("Code (max 200 characters)")),
		mcp.WithString("memo", mcp.Description("Memo (max 250 characters)")),
		mcp.WithArray("inventories_set_items_attributes",
			mcp.Description("Component items of the set"),
			mcp.Items(setItemsSchema),
		),
	}
}

func inventorySetTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_inventory_sets",
			"List inventory sets.",
			readOnly(),
			withToken(),
			withPage("Page number"),
		),
		tool("get_inventory_set",
			"Get one inventory set by ID.",
			readOnly(),
			withToken(),
			withID("Inventory set"),
		),
		tool("create_inventory_set",
			"Create an inventory set. title and its component items are required.",
			creates(),
			append([]mcp.ToolOption{withToken()}, inventorySetFields(true)...)...,
		),
		tool("update_inventory_set",
			"Update the inventory set with the given ID.",
			updates(),
			append([]mcp.ToolOption{withToken(), withID("Inventory set")}, inventorySetFields(false)...)...,
		),
		tool("delete_inventory_set",
			"Delete the inventory set with the given ID.",
			deletes(),
			withToken(),
			withID("Inventory set"),
		),
	}
}

var createDeliverySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"inventory_id":            map[string]any{"type": "number", "description": "Inventory ID"},
		"quantity":                map[string]any{"type": "number", "description": "Quantity shipped"},
		"unit_price":              map[string]any{"type": "number", "description": "Delivery unit price"},
		"estimated_delivery_date": map[string]any{"type": "string", "description": "Planned shipping date (YYYY-MM-DD)"},
		"etc":                     map[string]any{"type": "string", "description": "Remarks"},
	},
}

var updateDeliverySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"inventory_id":            map[string]any{"type": "number", "description": "Inventory ID"},
		"quantity":                map[string]any{"type": "number", "description": "Quantity shipped"},
		"unit_price":              map[string]any{"type": "number", "description": "Delivery unit price"},
		"status":                  map[string]any{"type": "string", "description": "Status (before_delivery/completed_delivery)"},
		"delivery_date":           map[string]any{"type": "string", "description": "Shipping date (YYYY-MM-DD)"},
		"estimated_delivery_date": map[string]any{"type": "string", "description": "Planned shipping date (YYYY-MM-DD)"},
		"etc":                     map[string]any{"type": "string", "description": "Remarks"},
	},
}

func packingSlipTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_packing_slips",
			"List packing slips (outbound shipments).",
			readOnly(),
			withToken(),
			withPage("Page number (100 records per page)"),
		),
		tool("get_packing_slip",
			"Get one packing slip by ID.",
			readOnly(),
			withToken(),
			withID("Packing slip"),
		),
		tool("create_packing_slip",
			"Create a packing slip. status and deliveries are required.",
			creates(),
			withToken(),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("Status: before_delivery / during_delivery / completed_delivery (required)"),
				mcp.Enum(PackingSlipStatuses...),
			),
			mcp.WithString("num", mcp.Description("Packing slip number (max 250 characters)")),
			mcp.WithString("customer_name", mcp.Description("Customer name (max 255 characters)")),
			mcp.WithString("delivery_date", mcp.Description("Shipping date (YYYY-MM-DD, required when completed_delivery)")),
			mcp.WithString("memo", mcp.Description("Shipping memo (max 250 characters)")),
			mcp.WithString("note", mcp.Description("Delivery note remarks (max 250 characters)")),
			mcp.WithArray("deliveries",
				mcp.Required(),
				mcp.Description("Items shipped (required)"),
				mcp.Items(createDeliverySchema),
			),
		),
		tool("update_packing_slip",
			"Update the packing slip with the given ID.",
			updates(),
			withToken(),
			withID("Packing slip"),
			mcp.WithString("num", mcp.Description("Packing slip number (max 250 characters)")),
			mcp.WithString("customer_name", mcp.Description("Customer name (max 255 characters)")),
			mcp.WithString("memo", mcp.Description("Shipping memo (max 250 characters)")),
			mcp.WithString("note", mcp.Description("Delivery note remarks (max 250 characters)")),
			mcp.WithArray("deliveries",
				mcp.Required(),
				mcp.Description("Items shipped (required)"),
				mcp.Items(updateDeliverySchema),
			),
		),
		tool("delete_packing_slip",
			"Delete the packing slip with the given ID. Quantities of a completed shipment are restored.",
			deletes(),
			withToken(),
			withID("Packing slip"),
		),
	}
}

func deliveryTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_deliveries",
			"List shipped items. Filter by status or date range.",
			readOnly(),
			withToken(),
			mcp.WithString("status", mcp.Description("Status: before_delivery/during_delivery/completed_delivery")),
			mcp.WithString("start_date", mcp.Description("Shipping date range start (YYYY-MM-DD)")),
			mcp.WithString("end_date", mcp.Description("Shipping date range end (YYYY-MM-DD)")),
			withPage("Page number (1000 records per page)"),
		),
	}
}

var createPurchaseItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"inventory_id":            map[string]any{"type": "number", "description": "Inventory ID"},
		"quantity":                map[string]any{"type": "number", "description": "Quantity received"},
		"unit_price":              map[string]any{"type": "number", "description": "Purchase unit price"},
		"estimated_purchase_date": map[string]any{"type": "string", "description": "Planned receiving date (YYYY-MM-DD)"},
		"etc":                     map[string]any{"type": "string", "description": "Remarks"},
	},
}

var updatePurchaseItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"inventory_id":            map[string]any{"type": "number", "description": "Inventory ID"},
		"quantity":                map[string]any{"type": "number", "description": "Quantity received"},
		"unit_price":              map[string]any{"type": "number", "description": "Purchase unit price"},
		"status":                  map[string]any{"type": "string", "description": "Status (none/not_ordered/ordered/purchased/quotation_requested)"},
		"purchase_date":           map[string]any{"type": "string", "description": "Receiving date (YYYY-MM-DD)"},
		"estimated_purchase_date": map[string]any{"type": "string", "description": "Planned receiving date (YYYY-MM-DD)"},
		"etc":                     map[string]any{"type": "string", "description": "Remarks"},
	},
}

func purchaseTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_purchases",
			"List purchases (inbound receipts).",
			readOnly(),
			withToken(),
			withPage("Page number (1000 records per page)"),
		),
		tool("get_purchase",
			"Get one purchase by ID.",
			readOnly(),
			withToken(),
			withID("Purchase"),
		),
		tool("create_purchase",
			"Create a purchase. status and purchase_items are required.",
			creates(),
			withToken(),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("Status: none / not_ordered / ordered / purchased / quotation_requested (required)"),
				mcp.Enum(PurchaseStatuses...),
			),
			mcp.WithString("num", mcp.Description("Purchase number (max 250 characters)")),
			mcp.WithString("customer_name", mcp.Description("Supplier name (max 255 characters)")),
			mcp.WithString("purchase_date", mcp.Description("Receiving date (YYYY-MM-DD, required when purchased)")),
			mcp.WithString("memo", mcp.Description("Receiving memo (max 250 characters)")),
			mcp.WithArray("purchase_items",
				mcp.Required(),
				mcp.Description("Items received (required)"),
				mcp.Items(createPurchaseItemSchema),
			),
		),
		tool("update_purchase",
			"Update the purchase with the given ID.",
			updates(),
			withToken(),
			withID("Purchase"),
			mcp.WithString("num", mcp.Description("Purchase number (max 250 characters)")),
			mcp.WithString("customer_name", mcp.Description("Supplier name (max 255 characters)")),
			mcp.WithString("memo", mcp.Description("Receiving memo (max 250 characters)")),
			mcp.WithArray("purchase_items",
				mcp.Required(),
				mcp.Description("Items received (required)"),
				mcp.Items(updatePurchaseItemSchema),
			),
		),
		tool("delete_purchase",
			"Delete the purchase with the given ID. Quantities of a completed receipt are restored.",
			deletes(),
			withToken(),
			withID("Purchase"),
		),
	}
}

func purchaseItemTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_purchase_items",
			"List received items. Filter by status or date range.",
			readOnly(),
			withToken(),
			mcp.WithString("status", mcp.Description("Status: none/not_ordered/ordered/purchased/quotation_requested")),
			mcp.WithString("start_date", mcp.Description("Receiving date range start (YYYY-MM-DD)")),
			mcp.WithString("end_date", mcp.Description("Receiving date range end (YYYY-MM-DD)")),
			withPage("Page number (1000 records per page)"),
		),
	}
}

func customerFields(nameRequired bool) []mcp.ToolOption {
	name := mcp.WithString("name", mcp.Description("Customer name (max 100 characters)"))
	customerType := mcp.WithString("customer_type", mcp.Description("Direction: packing_slip/purchase"))
	if nameRequired {
		name = mcp.WithString("name", mcp.Required(), mcp.Description("Customer name (required, max 100 characters)"))
		customerType = mcp.WithString("customer_type",
			mcp.Description("Direction: packing_slip/purchase"),
			mcp.Enum(CustomerTypes...),
		)
	}
	return []mcp.ToolOption{
		name,
		mcp.WithString("email", mcp.Description("Email address (max 200 characters)")),
		mcp.WithString("name_postfix", mcp.Description("Honorific suffix")),
		mcp.WithString("zip", mcp.Description("Postal code (max 7 characters)")),
		mcp.WithString("address", mcp.Description("Address")),
		mcp.WithString("building_name", mcp.Description("Building and room")),
		mcp.WithString("phone_number", mcp.Description("Phone number (max 11 characters)")),
		mcp.WithString("etc", mcp.Description("Remarks (max 500 characters)")),
		mcp.WithString("fax_number", mcp.Description("Fax number")),
		mcp.WithString("category", mcp.Description("Category")),
		customerType,
		mcp.WithString("num", mcp.Description("Customer number (max 200 characters)")),
	}
}

func customerTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_customers",
			"List customers.",
			readOnly(),
			withToken(),
			withPage("Page number (1000 records per page)"),
		),
		tool("create_customer",
			"Create a customer. name is required.",
			creates(),
			append([]mcp.ToolOption{withToken()}, customerFields(true)...)...,
		),
		tool("update_customer",
			"Update the customer with the given ID.",
			updates(),
			append([]mcp.ToolOption{withToken(), withID("Customer")}, customerFields(false)...)...,
		),
		tool("delete_customer",
			"Delete the customer with the given ID.",
			deletes(),
			withToken(),
			withID("Customer"),
		),
	}
}

func inventoryGroupItemTools() []mcp.Tool {
	return []mcp.Tool{
		tool("list_inventory_group_items",
			"List inventory group view records (full plan only). Search by group tag or title.",
			readOnly(),
			withToken(),
			mcp.WithString("group_value", mcp.Description("Search by group tag")),
			mcp.WithString("title", mcp.Description("Search by title")),
			withPage("Page number (1000 records per page)"),
		),
		tool("get_inventory_group_item",
			"Get one inventory group view record by ID (full plan only).",
			readOnly(),
			withToken(),
			withID("Inventory group item"),
		),
	}
}
