package cj

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/donaldgifford/dropship-gateway/internal/metrics"
)

// CreateOrder submits a transformed order payload to the partner and
// parses the returned identifier and amount breakdown.
func (c *GatewayClient) CreateOrder(
	ctx context.Context,
	req *CreateOrderRequest,
) (*OrderReceipt, error) {
	if len(req.Products) == 0 {
		return nil, fmt.Errorf("order %s has no products", req.OrderNumber)
	}

	var data createOrderData
	if err := c.do(ctx, http.MethodPost, pathCreateOrder, nil, req, &data); err != nil {
		return nil, fmt.Errorf("creating order %s: %w", req.OrderNumber, err)
	}

	metrics.OrdersSubmittedTotal.Inc()

	return &OrderReceipt{
		OrderID:       data.OrderID,
		ProductAmount: parseAmount(data.ProductAmount),
		PostageAmount: parseAmount(data.PostageAmount),
		TotalAmount:   parseAmount(data.TotalAmount),
	}, nil
}

// parseAmount converts a partner decimal string, tolerating absence.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
