// Package cj provides a resilient client for the CJ supplier API: session
// and token lifecycle, tier-based pacing, a serialized request lane, and
// classified retry, abstracted behind interfaces for testability.
package cj

import (
	"context"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// ProductFilter defines the parameters for a product search.
type ProductFilter struct {
	Query      string
	CategoryID string
	SKU        string
	PageNum    int
	PageSize   int
}

// ProductPage holds one page of product search results.
type ProductPage struct {
	Products []domain.Product
	Total    int
	PageNum  int
	PageSize int
	HasMore  bool
}

// Client is the seam the rest of the application depends on. The excluded
// CRUD and admin layers are only allowed to call through these operations.
type Client interface {
	SearchProducts(ctx context.Context, f ProductFilter) (*ProductPage, error)
	QueryVariants(ctx context.Context, productID string) ([]domain.Variant, error)
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderReceipt, error)
	TestConnection(ctx context.Context) error
}
