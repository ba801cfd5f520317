package cj

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/donaldgifford/dropship-gateway/internal/metrics"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

const defaultSearchPageSize = 20

// SearchProducts queries the partner catalog, memoizing pages through the
// TTL cache when one is configured.
func (c *GatewayClient) SearchProducts(
	ctx context.Context,
	f ProductFilter,
) (*ProductPage, error) {
	if f.PageNum <= 0 {
		f.PageNum = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultSearchPageSize
	}

	key := cacheKey(f)
	if c.cache != nil {
		if page, ok := c.cache.Get(key); ok {
			metrics.SearchCacheHitsTotal.Inc()
			return page, nil
		}
		metrics.SearchCacheMissesTotal.Inc()
	}

	q := url.Values{}
	q.Set("pageNum", strconv.Itoa(f.PageNum))
	q.Set("pageSize", strconv.Itoa(f.PageSize))
	if f.Query != "" {
		q.Set("productNameEn", f.Query)
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.SKU != "" {
		q.Set("productSku", f.SKU)
	}

	var data productListData
	if err := c.do(ctx, http.MethodGet, pathProductList, q, nil, &data); err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}

	page := &ProductPage{
		Products: toProducts(data.List),
		Total:    data.Total,
		PageNum:  f.PageNum,
		PageSize: f.PageSize,
		HasMore:  f.PageNum*f.PageSize < data.Total,
	}

	if c.cache != nil {
		c.cache.Set(key, page)
	}
	return page, nil
}

// QueryVariants fetches a product's current variant list. The result is
// live partner state and is never cached: variant identifiers drift, and
// resolution must see the current truth.
func (c *GatewayClient) QueryVariants(
	ctx context.Context,
	productID string,
) ([]domain.Variant, error) {
	q := url.Values{}
	q.Set("pid", productID)

	var data []variantInfo
	if err := c.do(ctx, http.MethodGet, pathVariantQuery, q, nil, &data); err != nil {
		return nil, fmt.Errorf("querying variants for %s: %w", productID, err)
	}

	return toVariants(data), nil
}
