// Package tools executes MCP tool calls against the ZAICO API.
//
// # Routing
//
// Each tool name maps to a Route: a Kind (list, get, create, update,
// delete) and a resource path. The kind fixes the HTTP verb and how the
// remaining arguments travel:
//
//	list    GET    /path?arg=value
//	get     GET    /path/{id}
//	create  POST   /path          body: arguments minus token
//	update  PUT    /path/{id}     body: arguments minus token and id
//	delete  DELETE /path/{id}
//
// The token argument is always sent as a bearer credential and never appears
// in the query string or body.
//
// # Results
//
// Call never fails at the protocol level. Upstream responses, including 4xx
// and 5xx, are rendered as pretty-printed {status, ok, data} text. Missing
// arguments, unknown tools and transport failures come back as content with
// isError set.
//
// # Product tools
//
// search_inventory and list_all_products flatten inventory items into a
// fixed Product shape. They use the configured default token when the call
// has none, and are only published when such a token exists.
package tools
