// ABOUTME: search_inventory and list_all_products, the product listing tools.
// ABOUTME: Both fall back to the configured default token and run under the legacy timeout.

package tools

import (
	"context"
	"fmt"

	"github.com/2389/zaico-mcp/internal/zaico"
)

// ProductList is the list_all_products result.
type ProductList struct {
	Success  bool            `json:"success"`
	Total    int             `json:"total"`
	Products []zaico.Product `json:"products"`
}

// ProductSearch is the search_inventory result.
type ProductSearch struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Results []zaico.Product `json:"results"`
}

func (e *Executor) productToken(args Args) (string, error) {
	if args.Token != "" {
		return args.Token, nil
	}
	if e.defaultToken != "" {
		return e.defaultToken, nil
	}
	return "", &ArgumentError{Name: "token"}
}

// withLegacyTimeout bounds ctx by the legacy timeout when one is set.
func (e *Executor) withLegacyTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.legacyTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.legacyTimeout)
}

func (e *Executor) listProducts(ctx context.Context, args Args) (*ProductList, error) {
	token, err := e.productToken(args)
	if err != nil {
		return nil, err
	}

	ctx, cancel := e.withLegacyTimeout(ctx)
	defer cancel()

	products, err := e.client.ListProducts(ctx, token, "")
	if err != nil {
		return nil, err
	}
	return &ProductList{Success: true, Total: len(products), Products: products}, nil
}

func (e *Executor) searchProducts(ctx context.Context, args Args) (*ProductSearch, error) {
	name, _ := stringify(args.Rest["product_name"])
	if name == "" {
		return nil, &ArgumentError{Name: "product_name"}
	}
	token, err := e.productToken(args)
	if err != nil {
		return nil, err
	}

	ctx, cancel := e.withLegacyTimeout(ctx)
	defer cancel()

	products, err := e.client.ListProducts(ctx, token, name)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &ProductSearch{
			Message: fmt.Sprintf("Product %q not found", name),
			Results: []zaico.Product{},
		}, nil
	}
	return &ProductSearch{
		Success: true,
		Message: fmt.Sprintf("Found %d product(s)", len(products)),
		Results: products,
	}, nil
}
