// ABOUTME: Tests for the stdio transport.
// ABOUTME: Drives ServeStdio with scripted input and decodes each output line.

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	o "github.com/onsi/gomega"
)

type stdioResult struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *JSONRPCError   `json:"error"`
}

func runStdio(t *testing.T, s *Server, lines ...string) (map[string]stdioResult, string) {
	t.Helper()
	g := o.NewWithT(t)

	var stdout, stderr bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	g.Expect(s.ServeStdio(context.Background(), in, &stdout, &stderr)).To(o.Succeed())

	byID := map[string]stdioResult{}
	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		var r stdioResult
		g.Expect(json.Unmarshal(scanner.Bytes(), &r)).To(o.Succeed())
		g.Expect(r.JSONRPC).To(o.Equal("2.0"))
		byID[string(r.ID)] = r
	}
	return byID, stderr.String()
}

func TestStdio_Session(t *testing.T) {
	g := o.NewWithT(t)
	s, up := setupTestServer(t, Config{RequireInitialize: true})
	up.Reply(http.StatusOK, `[{"id":1,"title":"rice"}]`)

	out, errOut := runStdio(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"list_inventories","arguments":{"token":"T","title":"rice"}}}`,
		``,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_inventory","arguments":{"token":"T"}}}`,
	)
	g.Expect(errOut).To(o.BeEmpty())
	g.Expect(out).To(o.HaveLen(4))

	g.Expect(out["1"].Error).To(o.BeNil())
	g.Expect(string(out["1"].Result)).To(o.ContainSubstring(`"protocolVersion":"2024-11-05"`))

	var list mcpgo.ListToolsResult
	g.Expect(json.Unmarshal(out["2"].Result, &list)).To(o.Succeed())
	g.Expect(list.Tools).NotTo(o.BeEmpty())
	g.Expect(list.Tools[0].Name).To(o.Equal("list_inventories"))

	var call mcpgo.CallToolResult
	g.Expect(json.Unmarshal(out["3"].Result, &call)).To(o.Succeed())
	g.Expect(call.IsError).To(o.BeFalse())
	g.Expect(call.Content).To(o.HaveLen(1))
	text, ok := call.Content[0].(mcpgo.TextContent)
	g.Expect(ok).To(o.BeTrue())
	g.Expect(text.Text).To(o.ContainSubstring(`"title": "rice"`))

	var failed mcpgo.CallToolResult
	g.Expect(json.Unmarshal(out["4"].Result, &failed)).To(o.Succeed())
	g.Expect(failed.IsError).To(o.BeTrue())

	g.Expect(up.Requests()).To(o.HaveLen(1))
	g.Expect(up.Last(t).RawQuery).To(o.Equal("title=rice"))
}

func TestStdio_ParseErrorGoesToStderr(t *testing.T) {
	g := o.NewWithT(t)
	s, _ := setupTestServer(t, Config{})

	out, errOut := runStdio(t, s,
		`this is not json`,
		`{"jsonrpc":"2.0","id":7,"method":"ping"}`,
	)
	g.Expect(out).To(o.HaveLen(1))
	g.Expect(out).To(o.HaveKey("7"))
	g.Expect(errOut).To(o.MatchJSON(`{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`))
}

func TestStdio_InitializedWithIDWritesNothing(t *testing.T) {
	g := o.NewWithT(t)
	s, up := setupTestServer(t, Config{RequireInitialize: true})

	out, errOut := runStdio(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","method":"tools/call","params":{"name":"create_inventory","arguments":{"token":"T","title":"x"}}}`,
	)
	g.Expect(errOut).To(o.BeEmpty())
	g.Expect(out).To(o.HaveLen(1))
	g.Expect(out).To(o.HaveKey("2"))
	g.Expect(out["2"].Error).To(o.BeNil())
	g.Expect(up.Requests()).To(o.HaveLen(1))
}

func TestStdio_NotInitialized(t *testing.T) {
	g := o.NewWithT(t)
	s, _ := setupTestServer(t, Config{RequireInitialize: true})

	out, _ := runStdio(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	g.Expect(out["1"].Error).NotTo(o.BeNil())
	g.Expect(out["1"].Error.Code).To(o.Equal(JSONRPCNotInitialized))
}

func TestStdio_ConcurrentCallsAllAnswered(t *testing.T) {
	g := o.NewWithT(t)
	s, up := setupTestServer(t, Config{})

	var lines []string
	for i := 1; i <= 20; i++ {
		lines = append(lines, `{"jsonrpc":"2.0","id":`+strings.Repeat("1", i)+`,"method":"tools/call","params":{"name":"list_customers","arguments":{"token":"T"}}}`)
	}
	out, _ := runStdio(t, s, lines...)
	g.Expect(out).To(o.HaveLen(20))
	g.Expect(up.Requests()).To(o.HaveLen(20))
	for _, r := range out {
		g.Expect(r.Error).To(o.BeNil())
	}
}

func TestStdio_EmptyInput(t *testing.T) {
	g := o.NewWithT(t)
	s, _ := setupTestServer(t, Config{})

	var stdout, stderr bytes.Buffer
	g.Expect(s.ServeStdio(context.Background(), strings.NewReader(""), &stdout, &stderr)).To(o.Succeed())
	g.Expect(stdout.Len()).To(o.BeZero())
}
