package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dropship-gateway/internal/api/handlers"
	"github.com/donaldgifford/dropship-gateway/internal/cj"
	cjmocks "github.com/donaldgifford/dropship-gateway/internal/cj/mocks"
	notifymocks "github.com/donaldgifford/dropship-gateway/internal/notify/mocks"
	"github.com/donaldgifford/dropship-gateway/internal/order"
	storemocks "github.com/donaldgifford/dropship-gateway/internal/store/mocks"
	"github.com/donaldgifford/dropship-gateway/pkg/logger"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// orderAPI wires a real order service over mocked dependencies behind the
// HTTP handler, so tests exercise the full status and error mapping.
type orderAPI struct {
	store    *storemocks.MockStore
	client   *cjmocks.MockClient
	notifier *notifymocks.MockNotifier
	api      humatest.TestAPI
}

func newOrderAPI(t *testing.T) *orderAPI {
	t.Helper()

	f := &orderAPI{
		store:    storemocks.NewMockStore(t),
		client:   cjmocks.NewMockClient(t),
		notifier: notifymocks.NewMockNotifier(t),
	}

	resolver := order.NewVariantResolver(f.client, order.WithResolverLogger(logger.Nop()))
	transformer := order.NewTransformer(resolver, f.store, order.WithTransformerLogger(logger.Nop()))
	svc := order.NewService(
		f.store,
		transformer,
		f.client,
		order.WithServiceNotifier(f.notifier),
		order.WithServiceLogger(logger.Nop()),
	)

	_, api := humatest.New(t)
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(svc))
	f.api = api
	return f
}

func orderBody(lines ...map[string]any) map[string]any {
	return map[string]any{
		"order_number": "SO-2031",
		"shipping": map[string]any{
			"customer_name": "Taylor Reed",
			"country_code":  "US",
			"province":      "WA",
			"city":          "Seattle",
			"address":       "401 Pine St",
			"zip":           "98101",
		},
		"lines": lines,
	}
}

func line(ref, productID string, qty int) map[string]any {
	return map[string]any{
		"line_ref":   ref,
		"product_id": productID,
		"quantity":   qty,
	}
}

func (f *orderAPI) expectPersistence() {
	f.store.EXPECT().CreateOrderRecord(mock.Anything, mock.Anything).Return(nil).Once()
	f.store.EXPECT().
		UpdateOrderStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
}

func (f *orderAPI) expectValidLine(pid, vid string, stock int) {
	f.store.EXPECT().
		GetMapping(mock.Anything, "map-"+pid).
		Return(&domain.ProductMapping{
			ID:               "map-" + pid,
			PartnerProductID: pid,
			StoredVariantID:  vid,
			Supplier:         domain.SupplierCJ,
		}, nil).Once()
	f.client.EXPECT().
		QueryVariants(mock.Anything, pid).
		Return([]domain.Variant{{VariantID: vid, Stock: stock}}, nil).Once()
}

func TestOrdersHandler_CreateOrder_Created(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.expectPersistence()
	f.expectValidLine("pid-1", "100", 7)
	f.client.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		Return(&cj.OrderReceipt{OrderID: "partner-1", TotalAmount: 17.83}, nil).Once()
	f.store.EXPECT().
		SetOrderResult(mock.Anything, mock.Anything, "partner-1", 17.83, mock.Anything).
		Return(nil).Once()

	resp := f.api.Post("/api/v1/orders", orderBody(line("L1", "map-pid-1", 2)))
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"confirmed"`)
	assert.Contains(t, resp.Body.String(), `"partner_order_id":"partner-1"`)
}

func TestOrdersHandler_CreateOrder_PartialSuccess(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.expectPersistence()
	f.expectValidLine("pid-1", "100", 7)

	// Second line is out of stock and becomes an issue, not a failure.
	f.store.EXPECT().
		GetMapping(mock.Anything, "map-pid-2").
		Return(&domain.ProductMapping{
			ID:               "map-pid-2",
			PartnerProductID: "pid-2",
			StoredVariantID:  "200",
			Supplier:         domain.SupplierCJ,
		}, nil).Once()
	f.client.EXPECT().
		QueryVariants(mock.Anything, "pid-2").
		Return([]domain.Variant{{VariantID: "200", Stock: 0}}, nil).Once()

	f.client.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		Return(&cj.OrderReceipt{OrderID: "partner-2", TotalAmount: 6.42}, nil).Once()
	f.store.EXPECT().
		SetOrderResult(mock.Anything, mock.Anything, "partner-2", 6.42, mock.Anything).
		Return(nil).Once()

	resp := f.api.Post("/api/v1/orders", orderBody(
		line("L1", "map-pid-1", 1),
		line("L2", "map-pid-2", 1),
	))
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"confirmed"`)
	assert.Contains(t, resp.Body.String(), `"line_ref":"L2"`)
}

func TestOrdersHandler_CreateOrder_NoValidLines(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.expectPersistence()
	f.store.EXPECT().
		GetMapping(mock.Anything, "map-pid-1").
		Return(nil, errors.New("db error")).Once()
	f.store.EXPECT().
		SetOrderResult(mock.Anything, mock.Anything, "", 0.0, mock.Anything).
		Return(nil).Once()

	resp := f.api.Post("/api/v1/orders", orderBody(line("L1", "map-pid-1", 1)))
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "no order lines could be transformed")
	assert.Contains(t, resp.Body.String(), "body.lines.L1")
}

func TestOrdersHandler_CreateOrder_PartnerRemoteError(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.expectPersistence()
	f.expectValidLine("pid-1", "100", 7)
	f.client.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		Return(nil, &cj.RemoteError{Code: 1603000, Message: "system busy"}).Once()
	f.store.EXPECT().
		SetOrderResult(mock.Anything, mock.Anything, "", 0.0, mock.Anything).
		Return(nil).Once()
	f.notifier.EXPECT().SendOrderFailure(mock.Anything, mock.Anything).Return(nil).Once()

	resp := f.api.Post("/api/v1/orders", orderBody(line("L1", "map-pid-1", 1)))
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "partner error 1603000")
}

func TestOrdersHandler_CreateOrder_PartnerRateLimited(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.expectPersistence()
	f.expectValidLine("pid-1", "100", 7)
	f.client.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		Return(nil, &cj.RateLimitError{Message: "too much request"}).Once()
	f.store.EXPECT().
		SetOrderResult(mock.Anything, mock.Anything, "", 0.0, mock.Anything).
		Return(nil).Once()
	f.notifier.EXPECT().SendOrderFailure(mock.Anything, mock.Anything).Return(nil).Once()

	resp := f.api.Post("/api/v1/orders", orderBody(line("L1", "map-pid-1", 1)))
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Contains(t, resp.Body.String(), "partner rate limit exceeded")
}

func TestOrdersHandler_CreateOrder_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     map[string]any
		wantBody string
	}{
		{
			name: "missing order number",
			body: map[string]any{
				"shipping": map[string]any{
					"customer_name": "Taylor Reed",
					"country_code":  "US",
					"address":       "401 Pine St",
				},
				"lines": []map[string]any{line("L1", "map-pid-1", 1)},
			},
			wantBody: "expected required property order_number to be present",
		},
		{
			name:     "empty lines",
			body:     orderBody(),
			wantBody: "expected array length >= 1",
		},
		{
			name:     "zero quantity",
			body:     orderBody(line("L1", "map-pid-1", 0)),
			wantBody: "expected number >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newOrderAPI(t)
			resp := f.api.Post("/api/v1/orders", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.store.EXPECT().
		GetOrderRecord(mock.Anything, "7f9f2b4e-9a47-4f25-8f2e-3f6f1a2b3c4d").
		Return(&domain.OrderRecord{
			ID:          "7f9f2b4e-9a47-4f25-8f2e-3f6f1a2b3c4d",
			OrderNumber: "SO-2031",
			Status:      domain.OrderConfirmed,
		}, nil).Once()

	resp := f.api.Get("/api/v1/orders/7f9f2b4e-9a47-4f25-8f2e-3f6f1a2b3c4d")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"order_number":"SO-2031"`)
}

func TestOrdersHandler_GetOrder_NotFound(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.store.EXPECT().
		GetOrderRecord(mock.Anything, "7f9f2b4e-9a47-4f25-8f2e-3f6f1a2b3c4d").
		Return(nil, nil).Once()

	resp := f.api.Get("/api/v1/orders/7f9f2b4e-9a47-4f25-8f2e-3f6f1a2b3c4d")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "order not found")
}

func TestOrdersHandler_ListOrders(t *testing.T) {
	t.Parallel()

	f := newOrderAPI(t)
	f.store.EXPECT().
		ListOrderRecords(mock.Anything, domain.OrderConfirmed, 10).
		Return([]domain.OrderRecord{
			{ID: "a", OrderNumber: "SO-1", Status: domain.OrderConfirmed},
			{ID: "b", OrderNumber: "SO-2", Status: domain.OrderConfirmed},
		}, nil).Once()

	resp := f.api.Get("/api/v1/orders?status=confirmed&limit=10")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":2`)
}
