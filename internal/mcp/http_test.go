// ABOUTME: Tests for the /api/mcp HTTP handler.

package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/zaico-mcp/internal/catalog"
)

func serveMCP(t *testing.T, s *Server, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	req := httptest.NewRequest(method, Endpoint, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestHTTP_Post(t *testing.T) {
	s, _ := setupTestServer(t, Config{})

	rr := serveMCP(t, s, http.MethodPost, `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "1", string(resp.ID))
	assert.Nil(t, resp.Error)
}

func TestHTTP_NotificationIs204(t *testing.T) {
	s, _ := setupTestServer(t, Config{})

	for _, body := range []string{
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":7,"method":"notifications/initialized"}`,
	} {
		rr := serveMCP(t, s, http.MethodPost, body)
		assert.Equal(t, http.StatusNoContent, rr.Code, body)
		assert.Empty(t, rr.Body.String(), body)
	}
}

func TestHTTP_ToolsCallNotificationReachesUpstream(t *testing.T) {
	s, up := setupTestServer(t, Config{})

	rr := serveMCP(t, s, http.MethodPost, `{"jsonrpc":"2.0","method":"tools/call","params":{"name":"create_inventory","arguments":{"token":"T","title":"x"}}}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Len(t, up.Requests(), 1)
}

func TestHTTP_ParseError(t *testing.T) {
	s, _ := setupTestServer(t, Config{})

	rr := serveMCP(t, s, http.MethodPost, `{oops`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`, rr.Body.String())
}

func TestHTTP_BodyTooLarge(t *testing.T) {
	s, _ := setupTestServer(t, Config{})

	body := `{"jsonrpc":"2.0","id":1,"method":"ping","pad":"` + strings.Repeat("x", MaxRequestBodySize) + `"}`
	rr := serveMCP(t, s, http.MethodPost, body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, JSONRPCInvalidRequest, resp.Error.Code)
}

func TestHTTP_RequireInitializeDoesNotApply(t *testing.T) {
	s, _ := setupTestServer(t, Config{RequireInitialize: true})

	rr := serveMCP(t, s, http.MethodPost, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
}

func TestHTTP_Discovery(t *testing.T) {
	s, _ := setupTestServer(t, Config{})

	rr := serveMCP(t, s, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var doc Discovery
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, "zaico-mcp", doc.Name)
	assert.Equal(t, "1.2.3", doc.Version)
	assert.Equal(t, "/api/mcp", doc.Endpoint)
	require.Len(t, doc.Tools, len(catalog.Tools()))
	assert.Equal(t, "list_inventories", doc.Tools[0].Name)
	assert.NotEmpty(t, doc.Tools[0].Description)
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	s, _ := setupTestServer(t, Config{})

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rr := serveMCP(t, s, method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, method)
		assert.Equal(t, "GET, POST", rr.Header().Get("Allow"))
	}
}
