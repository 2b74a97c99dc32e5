// ABOUTME: HTTP framing for the MCP dispatcher at /api/mcp.
// ABOUTME: POST carries one JSON-RPC envelope; GET returns a discovery document.

package mcp

import (
	"encoding/json"
	"io"
	"net/http"
)

// Endpoint is the path the MCP handler is mounted on.
const Endpoint = "/api/mcp"

// Discovery is the GET /api/mcp document.
type Discovery struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Endpoint    string          `json:"endpoint"`
	Tools       []DiscoveryTool `json:"tools"`
}

// DiscoveryTool is a tool summary in the discovery document.
type DiscoveryTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegisterRoutes registers the MCP endpoint on the given ServeMux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(Endpoint, s.handleMCP)
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handlePost(w, r)
	case http.MethodGet:
		s.handleDiscovery(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handlePost processes JSON-RPC messages sent via HTTP POST.
func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		s.writeJSON(w, errorResponse(nil, JSONRPCParseError, "Parse error"))
		return
	}
	if int64(len(body)) > MaxRequestBodySize {
		s.writeJSON(w, errorResponse(nil, JSONRPCInvalidRequest, "Invalid Request: body too large"))
		return
	}

	resp := s.Handle(r.Context(), s.httpSession, body)
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, resp)
}

func (s *Server) handleDiscovery(w http.ResponseWriter, _ *http.Request) {
	published := s.executor.Tools()
	doc := Discovery{
		Name:        ServerName,
		Version:     s.version,
		Description: "MCP server for the ZAICO inventory management API",
		Endpoint:    Endpoint,
		Tools:       make([]DiscoveryTool, len(published)),
	}
	for i, t := range published {
		doc.Tools[i] = DiscoveryTool{Name: t.Name, Description: t.Description}
	}
	s.writeJSON(w, doc)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode JSON response", "error", err)
	}
}
