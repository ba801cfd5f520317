package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListOrders(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"title":"Bad Gateway"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListOrders(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 502)")
}

func TestClient_SearchProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/products/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SearchProductsRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "insulated bottle", req.Query)
		assert.Equal(t, 2, req.PageNum)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchProductsResponse{
			Products: []domain.Product{{PartnerID: "pid-1", Name: "Insulated Bottle"}},
			Total:    21,
			PageNum:  2,
			HasMore:  true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.SearchProducts(context.Background(), SearchProductsRequest{
		Query:   "insulated bottle",
		PageNum: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 21, resp.Total)
	assert.True(t, resp.HasMore)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "pid-1", resp.Products[0].PartnerID)
}

func TestClient_QueryVariants(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/pid-1/variants", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QueryVariantsResponse{
			ProductID: "pid-1",
			Variants:  []domain.Variant{{VariantID: "101", Stock: 5}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.QueryVariants(context.Background(), "pid-1")
	require.NoError(t, err)
	assert.Equal(t, "pid-1", resp.ProductID)
	require.Len(t, resp.Variants, 1)
	assert.Equal(t, "101", resp.Variants[0].VariantID)
}

func TestClient_CreateOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orders", r.URL.Path)

		var req CreateOrderRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "SO-2031", req.OrderNumber)
		assert.Len(t, req.Lines, 1)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.OrderRecord{
			ID:          "order-1",
			OrderNumber: req.OrderNumber,
			Status:      domain.OrderConfirmed,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	record, err := c.CreateOrder(context.Background(), CreateOrderRequest{
		OrderNumber: "SO-2031",
		Shipping: domain.ShippingAddress{
			CustomerName: "Taylor Reed",
			CountryCode:  "US",
			Address:      "401 Pine St",
		},
		Lines: []domain.OrderLine{
			{LineRef: "L1", ProductID: "map-pid-1", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", record.ID)
	assert.Equal(t, domain.OrderConfirmed, record.Status)
}

func TestClient_GetOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/order-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.OrderRecord{ID: "order-1", Status: domain.OrderConfirmed})
	}))
	defer srv.Close()

	c := New(srv.URL)
	record, err := c.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", record.ID)
}

func TestClient_ListOrders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "confirmed", r.URL.Query().Get("status"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListOrdersResponse{
			Orders: []domain.OrderRecord{{ID: "order-1"}},
			Count:  1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListOrders(context.Background(), "confirmed", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.Orders, 1)
}

func TestClient_TestConnection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/connection/test", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TestConnectionResponse{Status: "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.TestConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}

func TestClient_SweepCatalog(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/products/sweep", r.URL.Path)

		var req SweepCatalogRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "100015", req.CategoryID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SweepCatalogResponse{
			NewProducts: []domain.Product{{PartnerID: "pid-new-1", SKU: "CJHS109401"}},
			TotalSeen:   12,
			PagesUsed:   2,
			StoppedAt:   "known_product",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.SweepCatalog(context.Background(), SweepCatalogRequest{CategoryID: "100015"})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalSeen)
	assert.Equal(t, 2, resp.PagesUsed)
	assert.Equal(t, "known_product", resp.StoppedAt)
	require.Len(t, resp.NewProducts, 1)
	assert.Equal(t, "pid-new-1", resp.NewProducts[0].PartnerID)
}
