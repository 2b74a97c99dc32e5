// ABOUTME: Routing table from tool name to upstream verb and resource path.
// ABOUTME: Path-based kinds append the id argument to the resource path.

package tools

import (
	"net/http"
)

// Kind is the shape of an upstream call.
type Kind int

const (
	KindList Kind = iota + 1
	KindGet
	KindCreate
	KindUpdate
	KindDelete
	KindSearchProducts
	KindListProducts
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindGet:
		return "get"
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindSearchProducts:
		return "search_products"
	case KindListProducts:
		return "list_products"
	default:
		return "unknown"
	}
}

// Method returns the HTTP verb used for the kind.
func (k Kind) Method() string {
	switch k {
	case KindCreate:
		return http.MethodPost
	case KindUpdate:
		return http.MethodPut
	case KindDelete:
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}

// PathBased reports whether the call targets {path}/{id}.
func (k Kind) PathBased() bool {
	return k == KindGet || k == KindUpdate || k == KindDelete
}

// Route binds a tool to an upstream resource.
type Route struct {
	Kind Kind
	Path string
}

// Upstream resource paths.
const (
	pathInventories        = "/inventories"
	pathInventorySets      = "/inventories_sets"
	pathPackingSlips       = "/packing_slips"
	pathDeliveries         = "/deliveries"
	pathPurchases          = "/purchases"
	pathPurchaseItems      = "/purchases/items"
	pathCustomers          = "/customers"
	pathInventoryGroupItem = "/inventory_group_items"
)

var routes = map[string]Route{
	"list_inventories": {KindList, pathInventories},
	"get_inventory":    {KindGet, pathInventories},
	"create_inventory": {KindCreate, pathInventories},
	"update_inventory": {KindUpdate, pathInventories},
	"delete_inventory": {KindDelete, pathInventories},

	"list_inventory_sets":  {KindList, pathInventorySets},
	"get_inventory_set":    {KindGet, pathInventorySets},
	"create_inventory_set": {KindCreate, pathInventorySets},
	"update_inventory_set": {KindUpdate, pathInventorySets},
	"delete_inventory_set": {KindDelete, pathInventorySets},

	"list_packing_slips":  {KindList, pathPackingSlips},
	"get_packing_slip":    {KindGet, pathPackingSlips},
	"create_packing_slip": {KindCreate, pathPackingSlips},
	"update_packing_slip": {KindUpdate, pathPackingSlips},
	"delete_packing_slip": {KindDelete, pathPackingSlips},

	"list_deliveries": {KindList, pathDeliveries},

	"list_purchases":  {KindList, pathPurchases},
	"get_purchase":    {KindGet, pathPurchases},
	"create_purchase": {KindCreate, pathPurchases},
	"update_purchase": {KindUpdate, pathPurchases},
	"delete_purchase": {KindDelete, pathPurchases},

	"list_purchase_items": {KindList, pathPurchaseItems},

	"list_customers":  {KindList, pathCustomers},
	"create_customer": {KindCreate, pathCustomers},
	"update_customer": {KindUpdate, pathCustomers},
	"delete_customer": {KindDelete, pathCustomers},

	"list_inventory_group_items": {KindList, pathInventoryGroupItem},
	"get_inventory_group_item":   {KindGet, pathInventoryGroupItem},

	"search_inventory":  {KindSearchProducts, pathInventories},
	"list_all_products": {KindListProducts, pathInventories},
}

// Lookup returns the route for a tool name.
func Lookup(name string) (Route, bool) {
	r, ok := routes[name]
	return r, ok
}
