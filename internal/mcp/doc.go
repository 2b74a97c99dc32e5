// Package mcp implements the Model Context Protocol server for the ZAICO tools.
//
// # Overview
//
// MCP (Model Context Protocol) is a JSON-RPC 2.0 convention for tool
// discovery and invocation. Server.Handle is the single dispatcher; the HTTP
// and stdio transports only frame messages around it.
//
// # Protocol
//
// Supported methods:
//
//   - initialize: returns protocolVersion 2024-11-05 and the tools capability
//   - ping: returns {}
//   - tools/list: returns the published catalog
//   - tools/call: runs a tool and returns {content, isError}
//
// Messages without an id are notifications and never get a response.
// notifications/initialized marks the session initialized.
//
// # Transports
//
// HTTP, mounted at /api/mcp:
//
//   - POST /api/mcp - one JSON-RPC envelope, 204 for notifications
//   - GET /api/mcp - discovery document listing tool names
//
// stdio: one message per line on stdin, one response per line on stdout.
// Malformed lines produce a parse-error envelope on stderr.
//
// # Tool Execution
//
// Clients call tools/call to execute a tool:
//
//	{
//	  "jsonrpc": "2.0",
//	  "method": "tools/call",
//	  "params": {
//	    "name": "list_inventories",
//	    "arguments": {"token": "<zaico api token>", "title": "rice"}
//	  },
//	  "id": 2
//	}
//
// The ZAICO token travels in the arguments of every call; the server itself
// performs no inbound authentication.
//
// # Integration with Claude Desktop
//
// Add to Claude Desktop's MCP configuration:
//
//	{
//	  "mcpServers": {
//	    "zaico": {
//	      "command": "zaico-mcp",
//	      "args": ["stdio"]
//	    }
//	  }
//	}
package mcp
