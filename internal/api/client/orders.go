package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// CreateOrderRequest is the order placement request body.
type CreateOrderRequest struct {
	OrderNumber   string                 `json:"order_number"`
	Shipping      domain.ShippingAddress `json:"shipping"`
	LogisticsName string                 `json:"logistics_name,omitempty"`
	FromCountry   string                 `json:"from_country,omitempty"`
	Lines         []domain.OrderLine     `json:"lines"`
}

// CreateOrder places an order through the gateway.
func (c *Client) CreateOrder(
	ctx context.Context,
	req CreateOrderRequest,
) (*domain.OrderRecord, error) {
	var record domain.OrderRecord
	if err := c.post(ctx, "/api/v1/orders", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetOrder returns a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.OrderRecord, error) {
	var record domain.OrderRecord
	if err := c.get(ctx, "/api/v1/orders/"+id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListOrdersResponse is the order listing response body.
type ListOrdersResponse struct {
	Orders []domain.OrderRecord `json:"orders"`
	Count  int                  `json:"count"`
}

// ListOrders returns orders, optionally filtered by status.
func (c *Client) ListOrders(
	ctx context.Context,
	status string,
	limit int,
) (*ListOrdersResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListOrdersResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
