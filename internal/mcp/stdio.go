// ABOUTME: Line-delimited stdio framing for the MCP dispatcher.
// ABOUTME: tools/call lines run concurrently; every other method is answered in order.

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single stdin message.
const maxLineSize = 10 * 1024 * 1024

// lineWriter serializes JSON lines onto a shared writer.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lineWriter) write(resp *JSONRPCResponse) error {
	if resp == nil {
		return nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	data = append(data, '\n')

	lw.mu.Lock()
	defer lw.mu.Unlock()
	if _, err := lw.w.Write(data); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// ServeStdio reads one JSON-RPC message per line from in and writes one
// response per line to out until in reaches EOF. Lines that are not valid
// JSON get a parse-error envelope on errOut. In-flight tool calls are
// awaited before returning.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	sess := NewSession()
	stdout := &lineWriter{w: out}
	stderr := &lineWriter{w: errOut}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var g errgroup.Group
	var loopErr error

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			loopErr = err
			break
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			s.logger.Debug("discarding malformed stdin line", "bytes", len(line))
			if err := stderr.write(errorResponse(nil, JSONRPCParseError, "Parse error")); err != nil {
				loopErr = err
				break
			}
			continue
		}

		// The scanner reuses its buffer.
		raw := append([]byte(nil), line...)

		if isToolsCall(raw) {
			g.Go(func() error {
				return stdout.write(s.Handle(ctx, sess, raw))
			})
			continue
		}
		if err := stdout.write(s.Handle(ctx, sess, raw)); err != nil {
			loopErr = err
			break
		}
	}

	waitErr := g.Wait()
	if loopErr != nil {
		return loopErr
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return waitErr
}

func isToolsCall(raw []byte) bool {
	var probe struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Method == "tools/call"
}
