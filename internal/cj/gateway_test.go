package cj_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
	"github.com/donaldgifford/dropship-gateway/pkg/logger"
)

// partnerServer is a scripted stand-in for the partner API. Per-endpoint
// scripts are consumed one response per call; when a script runs out the
// endpoint answers with its default success payload.
type partnerServer struct {
	*httptest.Server

	mu            sync.Mutex
	loginCalls    int
	refreshCalls  int
	listCalls     int
	variantCalls  int
	orderCalls    int
	listScript    []func(w http.ResponseWriter)
	refreshScript []func(w http.ResponseWriter)
	listTokens    []string
	listQueries   []string
	lastOrderBody []byte
}

func writeEnv(w http.ResponseWriter, status, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"result":  code == 200,
		"message": message,
		"data":    data,
	})
}

func tokenPayload(prefix string, n int) map[string]string {
	return map[string]string{
		"accessToken":            fmt.Sprintf("%s-%d", prefix, n),
		"accessTokenExpiryDate":  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"refreshToken":           fmt.Sprintf("refresh-%d", n),
		"refreshTokenExpiryDate": time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}
}

func newPartnerServer(t *testing.T) *partnerServer {
	t.Helper()

	ps := &partnerServer{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /authentication/getAccessToken", func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		ps.loginCalls++
		n := ps.loginCalls
		ps.mu.Unlock()
		writeEnv(w, http.StatusOK, 200, "success", tokenPayload("login-token", n))
	})

	mux.HandleFunc("POST /authentication/refreshAccessToken", func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		ps.refreshCalls++
		n := ps.refreshCalls
		var scripted func(w http.ResponseWriter)
		if len(ps.refreshScript) > 0 {
			scripted = ps.refreshScript[0]
			ps.refreshScript = ps.refreshScript[1:]
		}
		ps.mu.Unlock()

		if scripted != nil {
			scripted(w)
			return
		}
		writeEnv(w, http.StatusOK, 200, "success", tokenPayload("refreshed-token", n))
	})

	mux.HandleFunc("GET /product/list", func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		ps.listCalls++
		ps.listTokens = append(ps.listTokens, r.Header.Get("CJ-Access-Token"))
		ps.listQueries = append(ps.listQueries, r.URL.RawQuery)
		var scripted func(w http.ResponseWriter)
		if len(ps.listScript) > 0 {
			scripted = ps.listScript[0]
			ps.listScript = ps.listScript[1:]
		}
		ps.mu.Unlock()

		if scripted != nil {
			scripted(w)
			return
		}
		writeEnv(w, http.StatusOK, 200, "success", map[string]any{
			"pageNum":  1,
			"pageSize": 20,
			"total":    45,
			"list": []map[string]any{
				{
					"pid":           "pid-1",
					"productNameEn": "Insulated Bottle",
					"productSku":    "CJHB-BOTTLE-750",
					"sellPrice":     "6.42",
					"variantNum":    3,
				},
			},
		})
	})

	mux.HandleFunc("GET /product/variant/query", func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		ps.variantCalls++
		ps.mu.Unlock()
		writeEnv(w, http.StatusOK, 200, "success", []map[string]any{
			{"vid": "v1", "variantSku": "SKU-1", "variantSellPrice": 6.42, "variantStock": 10},
			{"vid": "v2", "variantSku": "SKU-2", "variantSellPrice": 6.58, "variantStock": 0},
		})
	})

	mux.HandleFunc("POST /shopping/order/createOrderV2", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ps.mu.Lock()
		ps.orderCalls++
		ps.lastOrderBody = body
		ps.mu.Unlock()
		writeEnv(w, http.StatusOK, 200, "success", map[string]string{
			"orderId":       "partner-order-1",
			"orderNum":      "ORD-1001",
			"productAmount": "12.84",
			"postageAmount": "4.99",
			"orderAmount":   "17.83",
		})
	})

	ps.Server = httptest.NewServer(mux)
	t.Cleanup(ps.Close)
	return ps
}

func (ps *partnerServer) counts() (login, refresh, list int) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.loginCalls, ps.refreshCalls, ps.listCalls
}

func (ps *partnerServer) scriptList(fns ...func(w http.ResponseWriter)) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.listScript = append(ps.listScript, fns...)
}

func rejected(status, code int, message string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		writeEnv(w, status, code, message, nil)
	}
}

func newTestClient(t *testing.T, baseURL string, opts ...cj.GatewayOption) *cj.GatewayClient {
	t.Helper()

	base := []cj.GatewayOption{
		cj.WithBaseURL(baseURL),
		cj.WithRateLimiter(cj.NewRateLimiter(
			cj.TierFree,
			cj.WithMinInterval(time.Millisecond),
			cj.WithBackoffDelay(time.Millisecond),
		)),
		cj.WithGatewayLogger(logger.Nop()),
	}
	client := cj.NewGatewayClient("dev@example.test", "api-key", append(base, opts...)...)
	t.Cleanup(client.Close)
	return client
}

func TestGatewayClient_SearchProducts(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL)

	page, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "pid-1", page.Products[0].PartnerID)
	assert.InDelta(t, 6.42, page.Products[0].Price, 1e-9)
	assert.Equal(t, 45, page.Total)
	assert.True(t, page.HasMore, "45 results over page size 20 should mean more pages")

	login, refresh, list := ps.counts()
	assert.Equal(t, 1, login, "first call should authenticate")
	assert.Zero(t, refresh)
	assert.Equal(t, 1, list)

	ps.mu.Lock()
	defer ps.mu.Unlock()
	assert.Equal(t, "login-token-1", ps.listTokens[0], "catalog call should carry the issued token")
	assert.Contains(t, ps.listQueries[0], "productNameEn=bottle")
}

func TestGatewayClient_SessionReuse(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL)

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})
	require.NoError(t, err)
	_, err = client.SearchProducts(context.Background(), cj.ProductFilter{Query: "earbuds"})
	require.NoError(t, err)

	login, _, list := ps.counts()
	assert.Equal(t, 1, login, "session should be reused across calls")
	assert.Equal(t, 2, list)
}

func TestGatewayClient_SearchCache(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL, cj.WithSearchCache(cj.NewSearchCache()))

	filter := cj.ProductFilter{Query: "bottle"}
	first, err := client.SearchProducts(context.Background(), filter)
	require.NoError(t, err)
	second, err := client.SearchProducts(context.Background(), filter)
	require.NoError(t, err)
	assert.Same(t, first, second, "identical filter should be served from cache")

	_, _, list := ps.counts()
	assert.Equal(t, 1, list, "repeat search should not reach the partner")

	_, err = client.SearchProducts(context.Background(), cj.ProductFilter{Query: "earbuds"})
	require.NoError(t, err)
	_, _, list = ps.counts()
	assert.Equal(t, 2, list, "different filter should miss the cache")
}

func TestGatewayClient_RateLimitRetriesOnce(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	ps.scriptList(rejected(http.StatusTooManyRequests, 1600200, "too many requests"))
	client := newTestClient(t, ps.URL)

	page, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})
	require.NoError(t, err, "a single rate-limit rejection should be absorbed")
	assert.Equal(t, 45, page.Total)

	_, _, list := ps.counts()
	assert.Equal(t, 2, list, "exactly one retry after the rejection")
}

func TestGatewayClient_RateLimitExhausted(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	ps.scriptList(
		rejected(http.StatusTooManyRequests, 1600200, "too many requests"),
		rejected(http.StatusTooManyRequests, 1600200, "too many requests"),
	)
	client := newTestClient(t, ps.URL)

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})

	var rateErr *cj.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "too many requests", rateErr.Message)
	assert.Positive(t, rateErr.Backoff)

	_, _, list := ps.counts()
	assert.Equal(t, 2, list, "never more than one retry per call")
}

func TestGatewayClient_AuthExpiredRefreshesAndRetries(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	// The partner invalidated the token server-side even though it still
	// looks fresh locally.
	ps.scriptList(rejected(http.StatusOK, 1600001, "token expired"))

	tokens := cj.NewMemoryTokenStore()
	tokens.Set(cj.Session{
		AccessToken:      "stale-token",
		RefreshToken:     "refresh-ok",
		ExpiresAt:        time.Now().Add(time.Hour),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	})

	client := newTestClient(t, ps.URL, cj.WithTokenStore(tokens))

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})
	require.NoError(t, err)

	login, refresh, list := ps.counts()
	assert.Zero(t, login, "a usable refresh token should avoid a full login")
	assert.Equal(t, 1, refresh)
	assert.Equal(t, 2, list, "exactly one retry after re-authentication")

	ps.mu.Lock()
	defer ps.mu.Unlock()
	assert.Equal(t, "stale-token", ps.listTokens[0])
	assert.Equal(t, "refreshed-token-1", ps.listTokens[1], "retry should carry the new token")
}

func TestGatewayClient_AuthExhausted(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	ps.scriptList(
		rejected(http.StatusOK, 1600002, "token invalid"),
		rejected(http.StatusOK, 1600002, "token invalid"),
	)

	tokens := cj.NewMemoryTokenStore()
	tokens.Set(cj.Session{
		AccessToken:      "stale-token",
		RefreshToken:     "refresh-ok",
		ExpiresAt:        time.Now().Add(time.Hour),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	})

	client := newTestClient(t, ps.URL, cj.WithTokenStore(tokens))

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})

	var authErr *cj.AuthError
	require.ErrorAs(t, err, &authErr)

	_, _, list := ps.counts()
	assert.Equal(t, 2, list, "auth failure is retried at most once")

	_, ok := tokens.Get()
	assert.False(t, ok, "session should be cleared after a hard auth failure")
}

func TestGatewayClient_RefreshFailureFallsBackToLogin(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	ps.mu.Lock()
	ps.refreshScript = append(ps.refreshScript, rejected(http.StatusOK, 1600002, "refresh token invalid"))
	ps.mu.Unlock()

	tokens := cj.NewMemoryTokenStore()
	tokens.Set(cj.Session{
		AccessToken:      "expired-token",
		RefreshToken:     "rejected-refresh",
		ExpiresAt:        time.Now().Add(-time.Hour),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	})

	client := newTestClient(t, ps.URL, cj.WithTokenStore(tokens))

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})
	require.NoError(t, err)

	login, refresh, list := ps.counts()
	assert.Equal(t, 1, refresh, "refresh is attempted first")
	assert.Equal(t, 1, login, "a rejected refresh falls back to a full login")
	assert.Equal(t, 1, list)
}

func TestGatewayClient_RemoteErrorNotRetried(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	ps.scriptList(rejected(http.StatusOK, 1603000, "product off shelf"))
	client := newTestClient(t, ps.URL)

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})

	var remoteErr *cj.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 1603000, remoteErr.Code)
	assert.Equal(t, "product off shelf", remoteErr.Message)

	_, _, list := ps.counts()
	assert.Equal(t, 1, list, "partner business errors are surfaced without retry")
}

func TestGatewayClient_TransportError(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	url := ps.URL
	ps.Close()

	client := newTestClient(t, url)

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})

	var transportErr *cj.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, errors.Unwrap(transportErr))
}

func TestGatewayClient_NonJSONResponse(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	// A proxy answering 429 with an HTML body still classifies correctly.
	ps.scriptList(func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("<html>slow down</html>"))
	})
	client := newTestClient(t, ps.URL)

	_, err := client.SearchProducts(context.Background(), cj.ProductFilter{Query: "bottle"})
	require.NoError(t, err, "one 429 with a non-JSON body should still be retried")

	_, _, list := ps.counts()
	assert.Equal(t, 2, list)
}

func TestGatewayClient_QueryVariants(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL)

	variants, err := client.QueryVariants(context.Background(), "pid-1")
	require.NoError(t, err)

	require.Len(t, variants, 2)
	assert.Equal(t, "v1", variants[0].VariantID)
	assert.Equal(t, "SKU-1", variants[0].SKU)
	assert.Equal(t, 0, variants[1].Stock)
}

func TestGatewayClient_CreateOrder(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL)

	receipt, err := client.CreateOrder(context.Background(), &cj.CreateOrderRequest{
		OrderNumber: "ORD-1001",
		Products: []cj.OrderProduct{
			{Vid: "v1", Quantity: 2, ProductImages: []string{}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "partner-order-1", receipt.OrderID)
	assert.InDelta(t, 12.84, receipt.ProductAmount, 1e-9)
	assert.InDelta(t, 4.99, receipt.PostageAmount, 1e-9)
	assert.InDelta(t, 17.83, receipt.TotalAmount, 1e-9)

	ps.mu.Lock()
	body := string(ps.lastOrderBody)
	ps.mu.Unlock()
	assert.True(t, strings.Contains(body, `"productImages":[]`),
		"empty image list must still be serialized: %s", body)
}

func TestGatewayClient_CreateOrder_NoProducts(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL)

	_, err := client.CreateOrder(context.Background(), &cj.CreateOrderRequest{
		OrderNumber: "ORD-1002",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no products")

	ps.mu.Lock()
	defer ps.mu.Unlock()
	assert.Zero(t, ps.orderCalls, "an empty order must never reach the partner")
}

func TestGatewayClient_TestConnection(t *testing.T) {
	t.Parallel()

	ps := newPartnerServer(t)
	client := newTestClient(t, ps.URL)

	require.NoError(t, client.TestConnection(context.Background()))

	ps.mu.Lock()
	defer ps.mu.Unlock()
	require.Len(t, ps.listQueries, 1)
	assert.Contains(t, ps.listQueries[0], "pageSize=1", "connection test should ask for a minimal page")
}

func TestGatewayClient_SerializesConcurrentCallers(t *testing.T) {
	t.Parallel()

	var inFlight, maxInFlight atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /authentication/getAccessToken", func(w http.ResponseWriter, r *http.Request) {
		writeEnv(w, http.StatusOK, 200, "success", tokenPayload("login-token", 1))
	})
	mux.HandleFunc("GET /product/list", func(w http.ResponseWriter, r *http.Request) {
		writeEnv(w, http.StatusOK, 200, "success", map[string]any{
			"pageNum": 1, "pageSize": 20, "total": 0, "list": []any{},
		})
	})
	tracked := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		if n > maxInFlight.Load() {
			maxInFlight.Store(n)
		}
		defer inFlight.Add(-1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(tracked.Close)

	const interval = 20 * time.Millisecond
	client := newTestClient(t, tracked.URL, cj.WithRateLimiter(cj.NewRateLimiter(
		cj.TierFree,
		cj.WithMinInterval(interval),
		cj.WithBackoffDelay(time.Millisecond),
	)))

	start := time.Now()
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.SearchProducts(context.Background(), cj.ProductFilter{
				Query: fmt.Sprintf("query-%d", i),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	assert.Equal(t, int64(1), maxInFlight.Load(), "partner must never see overlapping requests")
	assert.GreaterOrEqual(t, elapsed, 3*interval, "callers must be paced, not raced")
}
