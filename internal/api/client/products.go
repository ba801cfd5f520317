package client

import (
	"context"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// SearchProductsRequest filters a partner catalog search.
type SearchProductsRequest struct {
	Query      string `json:"query,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	SKU        string `json:"sku,omitempty"`
	PageNum    int    `json:"page_num,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
}

// SearchProductsResponse is one page of catalog search results.
type SearchProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	PageNum  int              `json:"page_num"`
	HasMore  bool             `json:"has_more"`
}

// SearchProducts searches the partner catalog through the gateway.
func (c *Client) SearchProducts(
	ctx context.Context,
	req SearchProductsRequest,
) (*SearchProductsResponse, error) {
	var resp SearchProductsResponse
	if err := c.post(ctx, "/api/v1/products/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SweepCatalogRequest scopes a catalog sweep.
type SweepCatalogRequest struct {
	Query      string `json:"query,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// SweepCatalogResponse summarises a catalog sweep.
type SweepCatalogResponse struct {
	NewProducts []domain.Product `json:"new_products"`
	TotalSeen   int              `json:"total_seen"`
	PagesUsed   int              `json:"pages_used"`
	StoppedAt   string           `json:"stopped_at"`
}

// SweepCatalog walks the partner catalog until a locally mapped product is
// seen and returns the unmapped products found along the way.
func (c *Client) SweepCatalog(
	ctx context.Context,
	req SweepCatalogRequest,
) (*SweepCatalogResponse, error) {
	var resp SweepCatalogResponse
	if err := c.post(ctx, "/api/v1/products/sweep", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QueryVariantsResponse is the live variant list for one partner product.
type QueryVariantsResponse struct {
	ProductID string           `json:"product_id"`
	Variants  []domain.Variant `json:"variants"`
}

// QueryVariants returns the live variants for a partner product.
func (c *Client) QueryVariants(
	ctx context.Context,
	productID string,
) (*QueryVariantsResponse, error) {
	var resp QueryVariantsResponse
	if err := c.get(ctx, "/api/v1/products/"+productID+"/variants", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
