package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// ProductsHandler proxies catalog lookups to the partner API.
type ProductsHandler struct {
	client    cj.Client
	paginator *cj.Paginator
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(client cj.Client, paginator *cj.Paginator) *ProductsHandler {
	return &ProductsHandler{client: client, paginator: paginator}
}

// SearchProductsInput is the request body for the product search endpoint.
type SearchProductsInput struct {
	Body struct {
		Query      string `json:"query,omitempty" doc:"Product name query" example:"wireless earbuds"`
		CategoryID string `json:"category_id,omitempty" doc:"Partner category ID" example:"100015"`
		SKU        string `json:"sku,omitempty" doc:"Partner product SKU" example:"CJJJ196240"`
		PageNum    int    `json:"page_num,omitempty" minimum:"1" doc:"Page number (default 1)" example:"1"`
		PageSize   int    `json:"page_size,omitempty" minimum:"1" maximum:"200" doc:"Page size (default 20)" example:"20"`
	}
}

// SearchProductsOutput is the response body for the product search endpoint.
type SearchProductsOutput struct {
	Body struct {
		Products []domain.Product `json:"products" doc:"Matching catalog products"`
		Total    int              `json:"total" doc:"Total matching products"`
		PageNum  int              `json:"page_num" doc:"Page returned"`
		HasMore  bool             `json:"has_more" doc:"Whether more pages are available"`
	}
}

// SearchProducts proxies a catalog search to the partner API.
func (h *ProductsHandler) SearchProducts(
	ctx context.Context,
	input *SearchProductsInput,
) (*SearchProductsOutput, error) {
	page, err := h.client.SearchProducts(ctx, cj.ProductFilter{
		Query:      input.Body.Query,
		CategoryID: input.Body.CategoryID,
		SKU:        input.Body.SKU,
		PageNum:    input.Body.PageNum,
		PageSize:   input.Body.PageSize,
	})
	if err != nil {
		return nil, partnerError(err)
	}

	out := &SearchProductsOutput{}
	out.Body.Products = page.Products
	out.Body.Total = page.Total
	out.Body.PageNum = page.PageNum
	out.Body.HasMore = page.HasMore
	return out, nil
}

// QueryVariantsInput identifies the partner product whose variants to list.
type QueryVariantsInput struct {
	ProductID string `path:"id" doc:"Partner product ID" example:"1395212632214556672"`
}

// QueryVariantsOutput is the response body for the variant query endpoint.
type QueryVariantsOutput struct {
	Body struct {
		ProductID string           `json:"product_id" doc:"Partner product ID"`
		Variants  []domain.Variant `json:"variants" doc:"Live variants for the product"`
	}
}

// QueryVariants returns the live variant list for a partner product.
func (h *ProductsHandler) QueryVariants(
	ctx context.Context,
	input *QueryVariantsInput,
) (*QueryVariantsOutput, error) {
	variants, err := h.client.QueryVariants(ctx, input.ProductID)
	if err != nil {
		return nil, partnerError(err)
	}

	out := &QueryVariantsOutput{}
	out.Body.ProductID = input.ProductID
	out.Body.Variants = variants
	return out, nil
}

// SweepCatalogInput is the request body for the catalog sweep endpoint.
type SweepCatalogInput struct {
	Body struct {
		Query      string `json:"query,omitempty" doc:"Product name query" example:"wireless earbuds"`
		CategoryID string `json:"category_id,omitempty" doc:"Partner category ID" example:"100015"`
	}
}

// SweepCatalogOutput is the response body for the catalog sweep endpoint.
type SweepCatalogOutput struct {
	Body struct {
		NewProducts []domain.Product `json:"new_products" doc:"Products not yet mapped locally"`
		TotalSeen   int              `json:"total_seen" doc:"Catalog products examined"`
		PagesUsed   int              `json:"pages_used" doc:"Catalog pages fetched"`
		StoppedAt   string           `json:"stopped_at" doc:"Why the sweep stopped" enum:"known_product,max_pages,no_more_results"`
	}
}

// SweepCatalog walks the partner catalog page by page, stopping at the
// first locally mapped product, and returns the unmapped products seen.
func (h *ProductsHandler) SweepCatalog(
	ctx context.Context,
	input *SweepCatalogInput,
) (*SweepCatalogOutput, error) {
	result, err := h.paginator.Paginate(ctx, cj.ProductFilter{
		Query:      input.Body.Query,
		CategoryID: input.Body.CategoryID,
	})
	if err != nil {
		return nil, partnerError(err)
	}

	out := &SweepCatalogOutput{}
	out.Body.NewProducts = result.NewProducts
	if out.Body.NewProducts == nil {
		out.Body.NewProducts = []domain.Product{}
	}
	out.Body.TotalSeen = result.TotalSeen
	out.Body.PagesUsed = result.PagesUsed
	out.Body.StoppedAt = result.StoppedAt
	return out, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodPost,
		Path:        "/api/v1/products/search",
		Summary:     "Search partner catalog",
		Description: "Searches the partner product catalog with the configured pacing and session handling.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadGateway, http.StatusTooManyRequests},
	}, h.SearchProducts)

	huma.Register(api, huma.Operation{
		OperationID: "sweep-catalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/products/sweep",
		Summary:     "Sweep partner catalog for unmapped products",
		Description: "Walks the catalog page by page until a locally mapped product, a short page, or the configured page cap is reached.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadGateway, http.StatusTooManyRequests},
	}, h.SweepCatalog)

	huma.Register(api, huma.Operation{
		OperationID: "query-variants",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/variants",
		Summary:     "List live variants",
		Description: "Returns the current variant list for a partner product. Never served from cache.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadGateway, http.StatusTooManyRequests},
	}, h.QueryVariants)
}
