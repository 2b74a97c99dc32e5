// ABOUTME: Product listing helpers used by the convenience tools.
// ABOUTME: Resolves the inventory array from the response envelope and flattens items into Products.

package zaico

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnexpectedShape is returned when a listing response has no inventory array.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// envelopeKeys are the object keys checked, in order, for the inventory array
// when the response body is not itself an array.
var envelopeKeys = []string{"inventories", "products", "data"}

// APIError reports a non-2xx upstream status on calls that need a usable body.
type APIError struct {
	Status int
	Data   any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zaico API error (status %d)", e.Status)
}

// Product is the flattened view of an inventory item.
type Product struct {
	ID          any     `json:"id"`
	Title       string  `json:"title"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	Place       string  `json:"place"`
	LastUpdated string  `json:"lastUpdated"`
}

// ListProducts fetches /inventories and flattens every item. A non-empty
// title filters by inventory name on the server side.
func (c *Client) ListProducts(ctx context.Context, token, title string) ([]Product, error) {
	req := Request{Token: token, Method: http.MethodGet, Path: "/inventories"}
	if title != "" {
		req.Query = url.Values{"title": []string{title}}
	}

	res, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, &APIError{Status: res.Status, Data: res.Data}
	}

	items, err := ExtractItems(res.Data)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	products := make([]Product, 0, len(items))
	for _, item := range items {
		products = append(products, NormalizeProduct(item, now))
	}
	return products, nil
}

// ExtractItems returns the inventory array from a decoded response body: the
// body itself when it is an array, otherwise the first envelope key holding one.
func ExtractItems(data any) ([]any, error) {
	switch v := data.(type) {
	case []any:
		return v, nil
	case map[string]any:
		for _, key := range envelopeKeys {
			if items, ok := v[key].([]any); ok {
				return items, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: expected an array or one of the keys %v", ErrUnexpectedShape, envelopeKeys)
}

// NormalizeProduct flattens one inventory item. Field names vary between
// API versions, so each output field falls back through known aliases;
// now is used when no update timestamp is present.
func NormalizeProduct(item any, now time.Time) Product {
	m, _ := item.(map[string]any)

	p := Product{
		ID:          m["id"],
		Title:       firstString(m, "title", "name"),
		Quantity:    firstNumber(m, "quantity", "stock"),
		Unit:        firstString(m, "unit", "unit_of_measurement"),
		Category:    firstString(m, "category", "cate1"),
		Place:       firstString(m, "place", "location"),
		LastUpdated: firstString(m, "updated_at", "last_updated"),
	}
	if p.Category == "" {
		if cats, ok := m["categories"].([]any); ok && len(cats) > 0 {
			p.Category = stringValue(cats[0])
		}
	}
	if p.LastUpdated == "" {
		p.LastUpdated = now.Format(time.RFC3339)
	}
	return p
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringValue(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// firstNumber returns the first alias that parses to a non-zero number.
func firstNumber(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if f := numberValue(m[k]); f != 0 {
			return f
		}
	}
	return 0
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func numberValue(v any) float64 {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case float64:
		return n
	case string:
		s = strings.TrimSpace(n)
	default:
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
