package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dropship-gateway/internal/order"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// OrdersHandler exposes the order placement workflow over HTTP.
type OrdersHandler struct {
	service *order.Service
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(svc *order.Service) *OrdersHandler {
	return &OrdersHandler{service: svc}
}

// CreateOrderInput is the request body for the order placement endpoint.
type CreateOrderInput struct {
	Body struct {
		OrderNumber string `json:"order_number" minLength:"1" doc:"Internal order number" example:"SO-2031"`
		Shipping    struct {
			CustomerName string `json:"customer_name" minLength:"1" doc:"Recipient name"`
			Phone        string `json:"phone,omitempty" doc:"Recipient phone"`
			CountryCode  string `json:"country_code" minLength:"2" maxLength:"2" doc:"ISO country code" example:"US"`
			Province     string `json:"province,omitempty" doc:"State or province"`
			City         string `json:"city,omitempty" doc:"City"`
			Address      string `json:"address" minLength:"1" doc:"Street address"`
			Zip          string `json:"zip,omitempty" doc:"Postal code"`
		} `json:"shipping"`
		LogisticsName string `json:"logistics_name,omitempty" doc:"Preferred logistics channel" example:"CJPacket Ordinary"`
		FromCountry   string `json:"from_country,omitempty" doc:"Warehouse country" example:"CN"`
		Lines         []struct {
			LineRef   string `json:"line_ref" minLength:"1" doc:"Caller's line reference"`
			ProductID string `json:"product_id" minLength:"1" doc:"Internal product mapping ID"`
			SKU       string `json:"sku,omitempty" doc:"Internal SKU for variant matching"`
			Quantity  int    `json:"quantity" minimum:"1" doc:"Units ordered"`
		} `json:"lines" minItems:"1" doc:"Order lines"`
	}
}

// OrderOutput is the response body for order endpoints.
type OrderOutput struct {
	Body domain.OrderRecord
}

// CreateOrder runs an order through transformation and partner submission.
// Partial line failure still returns 201 with issues attached; an order
// where every line fails returns 422 with the collected issues.
func (h *OrdersHandler) CreateOrder(
	ctx context.Context,
	input *CreateOrderInput,
) (*OrderOutput, error) {
	o := &domain.InternalOrder{
		OrderNumber: input.Body.OrderNumber,
		Shipping: domain.ShippingAddress{
			CustomerName: input.Body.Shipping.CustomerName,
			Phone:        input.Body.Shipping.Phone,
			CountryCode:  input.Body.Shipping.CountryCode,
			Province:     input.Body.Shipping.Province,
			City:         input.Body.Shipping.City,
			Address:      input.Body.Shipping.Address,
			Zip:          input.Body.Shipping.Zip,
		},
		LogisticsName: input.Body.LogisticsName,
		FromCountry:   input.Body.FromCountry,
	}
	for _, l := range input.Body.Lines {
		o.Lines = append(o.Lines, domain.OrderLine{
			LineRef:   l.LineRef,
			ProductID: l.ProductID,
			SKU:       l.SKU,
			Quantity:  l.Quantity,
		})
	}

	record, err := h.service.CreateOrder(ctx, o)
	if err != nil {
		if errors.Is(err, order.ErrNoValidLines) {
			var details []error
			if record != nil {
				for _, issue := range record.Issues {
					details = append(details, &huma.ErrorDetail{
						Message:  issue.Reason,
						Location: "body.lines." + issue.LineRef,
					})
				}
			}
			return nil, huma.Error422UnprocessableEntity(
				"no order lines could be transformed", details...)
		}
		if record != nil && record.Status == domain.OrderRemoteError {
			return nil, partnerError(err)
		}
		return nil, huma.Error500InternalServerError("order placement failed: " + err.Error())
	}

	return &OrderOutput{Body: *record}, nil
}

// GetOrderInput identifies the order to fetch.
type GetOrderInput struct {
	ID string `path:"id" format:"uuid" doc:"Order ID"`
}

// GetOrder returns a persisted order record.
func (h *OrdersHandler) GetOrder(
	ctx context.Context,
	input *GetOrderInput,
) (*OrderOutput, error) {
	record, err := h.service.GetOrder(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching order: " + err.Error())
	}
	if record == nil {
		return nil, huma.Error404NotFound("order not found: " + input.ID)
	}
	return &OrderOutput{Body: *record}, nil
}

// ListOrdersInput filters the order listing.
type ListOrdersInput struct {
	Status string `query:"status" enum:"pending,transforming,submitted,rejected_no_valid_lines,confirmed,remote_error," doc:"Filter by status"`
	Limit  int    `query:"limit" minimum:"1" maximum:"500" default:"50" doc:"Maximum records to return"`
}

// ListOrdersOutput is the response body for the order listing endpoint.
type ListOrdersOutput struct {
	Body struct {
		Orders []domain.OrderRecord `json:"orders" doc:"Persisted orders, newest first"`
		Count  int                  `json:"count" doc:"Number of orders returned"`
	}
}

// ListOrders returns persisted orders, optionally filtered by status.
func (h *OrdersHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*ListOrdersOutput, error) {
	records, err := h.service.ListOrders(ctx, domain.OrderStatus(input.Status), input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing orders: " + err.Error())
	}

	out := &ListOrdersOutput{}
	out.Body.Orders = records
	out.Body.Count = len(records)
	return out, nil
}

// RegisterOrderRoutes registers order endpoints with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-order",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders",
		Summary:       "Place an order with the partner",
		Description:   "Transforms an internal order and submits the valid lines to the partner. Lines that fail validation are reported as issues.",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
			http.StatusTooManyRequests,
		},
	}, h.CreateOrder)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Get an order",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetOrder)

	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List orders",
		Tags:        []string{"orders"},
	}, h.ListOrders)
}
