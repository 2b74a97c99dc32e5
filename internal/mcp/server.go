// ABOUTME: Transport-neutral MCP dispatcher for the ZAICO tool catalog.
// ABOUTME: Decodes one JSON-RPC 2.0 envelope and produces its response, or none for notifications.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/2389/zaico-mcp/internal/tools"
)

// ProtocolVersion is the MCP revision advertised by initialize.
const ProtocolVersion = "2024-11-05"

// ServerName is reported in serverInfo and the discovery document.
const ServerName = "zaico-mcp"

// MaxRequestBodySize is the maximum allowed size for request bodies (1MB).
const MaxRequestBodySize = 1 << 20

// JSON-RPC 2.0 types

// JSONRPCRequest represents a JSON-RPC 2.0 request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no id.
func (r JSONRPCRequest) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// JSONRPCResponse represents a JSON-RPC 2.0 response.
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError represents a JSON-RPC 2.0 error object.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Standard JSON-RPC error codes
const (
	JSONRPCParseError     = -32700
	JSONRPCInvalidRequest = -32600
	JSONRPCMethodNotFound = -32601
	JSONRPCInvalidParams  = -32602
	JSONRPCInternalError  = -32603
	// JSONRPCNotInitialized is returned for tool requests that precede
	// initialize when the server requires the handshake.
	JSONRPCNotInitialized = -32002
)

// MCP-specific types

// MCPCallToolParams are the params for tools/call.
type MCPCallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// MCPListToolsResult is the result for tools/list.
type MCPListToolsResult struct {
	Tools []mcpgo.Tool `json:"tools"`
}

// Executor runs tools and reports the published catalog.
type Executor interface {
	Tools() []mcpgo.Tool
	Call(ctx context.Context, name string, arguments json.RawMessage) *tools.Result
}

// Session is per-connection handshake state. A stdio stream is one session.
type Session struct {
	initialized atomic.Bool
}

// NewSession returns a session that has not seen initialize.
func NewSession() *Session {
	return &Session{}
}

// Initialized reports whether the client completed the handshake.
func (s *Session) Initialized() bool {
	return s.initialized.Load()
}

func (s *Session) markInitialized() {
	s.initialized.Store(true)
}

// Config holds configuration for the MCP server.
type Config struct {
	Executor Executor
	Logger   *slog.Logger
	Version  string
	// RequireInitialize rejects tools/list and tools/call before initialize.
	RequireInitialize bool
}

// Server dispatches MCP requests to the tool executor.
type Server struct {
	executor          Executor
	logger            *slog.Logger
	version           string
	requireInitialize bool
	// httpSession is shared by every HTTP request; HTTP carries no session id.
	httpSession *Session
}

// NewServer creates a new MCP server with the given configuration.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Executor == nil {
		return nil, errors.New("executor is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	httpSession := NewSession()
	httpSession.markInitialized()

	return &Server{
		executor:          cfg.Executor,
		logger:            logger.With("component", "mcp"),
		version:           version,
		requireInitialize: cfg.RequireInitialize,
		httpSession:       httpSession,
	}, nil
}

// Version returns the version reported in serverInfo.
func (s *Server) Version() string {
	return s.version
}

// Tools returns the published catalog.
func (s *Server) Tools() []mcpgo.Tool {
	return s.executor.Tools()
}

// Handle processes one raw JSON-RPC message. It returns nil when no response
// must be sent.
func (s *Server) Handle(ctx context.Context, sess *Session, raw []byte) (resp *JSONRPCResponse) {
	if !json.Valid(raw) {
		return errorResponse(nil, JSONRPCParseError, "Parse error")
	}

	var req JSONRPCRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(nil, JSONRPCInvalidRequest, "Invalid Request")
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic handling MCP request",
				"method", req.Method,
				"panic", r,
			)
			if req.IsNotification() {
				resp = nil
				return
			}
			resp = errorResponse(req.ID, JSONRPCInternalError, "Internal error")
		}
	}()

	if req.IsNotification() {
		s.handleNotification(ctx, sess, req)
		return nil
	}

	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return errorResponse(req.ID, JSONRPCInvalidRequest, "Invalid Request: jsonrpc must be \"2.0\"")
	}

	s.logger.Debug("MCP request", "method", req.Method)

	switch req.Method {
	case "notifications/initialized", "initialized":
		// Never answered, even when the client attached an id.
		sess.markInitialized()
		return nil
	case "initialize":
		sess.markInitialized()
		return resultResponse(req.ID, s.initializeResult())
	case "ping":
		return resultResponse(req.ID, map[string]any{})
	case "tools/list":
		if s.requireInitialize && !sess.Initialized() {
			return errorResponse(req.ID, JSONRPCNotInitialized, "Server not initialized")
		}
		return resultResponse(req.ID, MCPListToolsResult{Tools: s.executor.Tools()})
	case "tools/call":
		if s.requireInitialize && !sess.Initialized() {
			return errorResponse(req.ID, JSONRPCNotInitialized, "Server not initialized")
		}
		return s.handleToolsCall(ctx, req)
	default:
		return errorResponse(req.ID, JSONRPCMethodNotFound, "Method not found: "+req.Method)
	}
}

// handleNotification processes a message that must not be answered.
// tools/call still runs so writes are not lost; its result is discarded.
func (s *Server) handleNotification(ctx context.Context, sess *Session, req JSONRPCRequest) {
	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		s.logger.Debug("dropping notification with bad jsonrpc version", "method", req.Method)
		return
	}

	switch req.Method {
	case "notifications/initialized", "initialized":
		sess.markInitialized()
	case "tools/call":
		if s.requireInitialize && !sess.Initialized() {
			s.logger.Warn("dropping tools/call notification before initialize")
			return
		}
		if resp := s.handleToolsCall(ctx, req); resp.Error != nil {
			s.logger.Warn("tools/call notification rejected", "error", resp.Error.Message)
		}
		return
	}
	s.logger.Debug("accepted MCP notification", "method", req.Method)
}

func (s *Server) initializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": s.version,
		},
	}
}

// handleToolsCall handles tools/call requests.
func (s *Server) handleToolsCall(ctx context.Context, req JSONRPCRequest) *JSONRPCResponse {
	var params MCPCallToolParams
	if len(req.Params) > 0 && string(req.Params) != "null" {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, JSONRPCInvalidParams, fmt.Sprintf("Invalid params: %v", err))
		}
	}
	if params.Name == "" {
		return errorResponse(req.ID, JSONRPCInvalidParams, "Invalid params: missing tool name")
	}

	// Generate request ID for correlation
	requestID := uuid.New().String()

	s.logger.Debug("tools/call",
		"tool_name", params.Name,
		"request_id", requestID,
	)

	result := s.executor.Call(ctx, params.Name, params.Arguments)

	s.logger.Debug("tools/call complete",
		"tool_name", params.Name,
		"request_id", requestID,
		"is_error", result.IsError,
	)

	return resultResponse(req.ID, result)
}

func resultResponse(id json.RawMessage, result any) *JSONRPCResponse {
	return &JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	}
}
