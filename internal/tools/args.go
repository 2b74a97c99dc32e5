// ABOUTME: Decodes tools/call arguments and turns them into query strings and request bodies.
// ABOUTME: Numbers stay json.Number end to end so ids and quantities are forwarded unchanged.

package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ErrMissingArgument is matched by every ArgumentError.
var ErrMissingArgument = errors.New("missing argument")

// ArgumentError reports a required argument that was absent or empty.
type ArgumentError struct {
	Name string
	Hint string
}

func (e *ArgumentError) Error() string {
	if e.Hint == "" {
		return e.Name + " is required"
	}
	return e.Name + " is required. " + e.Hint
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// Args is a decoded tools/call argument object.
type Args struct {
	Token string
	// ID is the stringified id argument, empty when absent or null.
	ID string
	// Rest holds every argument except token, id included.
	Rest map[string]any
}

// DecodeArgs parses the raw arguments object. Empty or null input yields
// empty Args.
func DecodeArgs(raw json.RawMessage) (Args, error) {
	args := Args{Rest: map[string]any{}}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return args, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return args, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return args, errors.New("arguments must be a single JSON object")
	}

	for k, v := range m {
		if k == "token" {
			if v != nil {
				args.Token, _ = stringify(v)
			}
			continue
		}
		args.Rest[k] = v
	}
	if v, ok := m["id"]; ok && v != nil {
		args.ID, _ = stringify(v)
	}
	return args, nil
}

// Query converts Rest into query parameters. Null values are omitted.
func (a Args) Query() url.Values {
	q := url.Values{}
	for k, v := range a.Rest {
		if s, ok := stringify(v); ok {
			q.Set(k, s)
		}
	}
	return q
}

// Body returns the JSON body for create and update calls. Path-based calls
// drop id, which already appears in the path.
func (a Args) Body(pathBased bool) map[string]any {
	body := make(map[string]any, len(a.Rest))
	for k, v := range a.Rest {
		if pathBased && k == "id" {
			continue
		}
		body[k] = v
	}
	return body
}

// stringify renders a decoded JSON value as a query parameter. It reports
// false for null.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i], _ = stringify(e)
		}
		return strings.Join(parts, ","), true
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val), true
		}
		return string(out), true
	}
}

// present reports whether a required argument carries a usable value.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	}
	return true
}
