// Package main implements a mock supplier API server for local development.
// It serves canned responses from JSON fixtures to simulate the CJdropshipping
// authentication, product, and order endpoints without real credentials.
//
// Point the gateway at it with cj.base_url = http://localhost:8089/api2.0/v1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// envelope is the standard response wrapper every endpoint uses.
type envelope struct {
	Code    int    `json:"code"`
	Result  bool   `json:"result"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Body codes returned by the mock, matching the partner's wire contract.
const (
	codeSuccess      = 200
	codeBadRequest   = 1600100
	codeTokenInvalid = 1600002
	codeRateLimited  = 1600200
)

type variantFixture struct {
	Vid        string  `json:"vid"`
	VariantSKU string  `json:"variantSku"`
	SellPrice  float64 `json:"variantSellPrice"`
	Stock      int     `json:"variantStock"`
}

type productFixture struct {
	Pid          string           `json:"pid"`
	ProductName  string           `json:"productNameEn"`
	ProductSKU   string           `json:"productSku"`
	SellPrice    string           `json:"sellPrice"`
	ProductImage string           `json:"productImage"`
	CategoryName string           `json:"categoryName"`
	Variants     []variantFixture `json:"variants"`
}

// productRow is what the product list endpoint returns for one product.
// The fixture's variants are served by the variant endpoint, not inlined.
type productRow struct {
	Pid          string `json:"pid"`
	ProductName  string `json:"productNameEn"`
	ProductSKU   string `json:"productSku"`
	SellPrice    string `json:"sellPrice"`
	ProductImage string `json:"productImage"`
	CategoryName string `json:"categoryName"`
	VariantCount int    `json:"variantNum"`
}

type catalog struct {
	Products []productFixture `json:"products"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to product catalog fixture")
	rateLimitEvery := flag.Int("rate-limit-every", 0, "return a rate-limit response every Nth product request (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadCatalog(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded catalog", "products", len(cat.Products))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2.0/v1/authentication/getAccessToken", loginHandler(logger))
	mux.HandleFunc("POST /api2.0/v1/authentication/refreshAccessToken", refreshHandler(logger))
	mux.HandleFunc("GET /api2.0/v1/product/list", productListHandler(logger, cat, *rateLimitEvery))
	mux.HandleFunc("GET /api2.0/v1/product/variant/query", variantHandler(logger, cat))
	mux.HandleFunc("POST /api2.0/v1/shopping/order/createOrderV2", createOrderHandler(logger, cat))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock supplier server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var cat catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &cat, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeEnvelope(w http.ResponseWriter, status, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(envelope{
		Code:    code,
		Result:  code == codeSuccess,
		Message: message,
		Data:    data,
	})
}

// checkToken rejects requests without an access token header. Any non-empty
// token is accepted; the mock does not track issued tokens.
func checkToken(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("CJ-Access-Token") == "" {
		writeEnvelope(w, http.StatusOK, codeTokenInvalid, "access token invalid", nil)
		return false
	}
	return true
}

func tokenData(prefix string) map[string]string {
	now := time.Now()
	return map[string]string{
		"accessToken":            fmt.Sprintf("%s-%d", prefix, now.UnixNano()),
		"accessTokenExpiryDate":  now.Add(14 * 24 * time.Hour).Format(time.RFC3339),
		"refreshToken":           fmt.Sprintf("mock-refresh-%d", now.UnixNano()),
		"refreshTokenExpiryDate": now.Add(180 * 24 * time.Hour).Format(time.RFC3339),
	}
}

func loginHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
			logger.Warn("login request missing credentials")
			writeEnvelope(w, http.StatusOK, codeBadRequest, "email and password are required", nil)
			return
		}

		writeEnvelope(w, http.StatusOK, codeSuccess, "success", tokenData("mock-access"))
		logger.Info("issued mock session", "email", body.Email)
	}
}

func refreshHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
			logger.Warn("refresh request missing refresh token")
			writeEnvelope(w, http.StatusOK, codeTokenInvalid, "refresh token invalid", nil)
			return
		}

		writeEnvelope(w, http.StatusOK, codeSuccess, "success", tokenData("mock-refreshed"))
		logger.Info("refreshed mock session")
	}
}

func productListHandler(logger *slog.Logger, cat *catalog, rateLimitEvery int) http.HandlerFunc {
	var requests atomic.Int64

	return func(w http.ResponseWriter, r *http.Request) {
		if !checkToken(w, r) {
			return
		}

		if n := requests.Add(1); rateLimitEvery > 0 && n%int64(rateLimitEvery) == 0 {
			logger.Info("simulating rate limit", "request", n)
			writeEnvelope(w, http.StatusTooManyRequests, codeRateLimited, "too many requests", nil)
			return
		}

		query := strings.ToLower(r.URL.Query().Get("productNameEn"))
		sku := r.URL.Query().Get("productSku")

		pageNum := 1
		if v, err := strconv.Atoi(r.URL.Query().Get("pageNum")); err == nil && v > 0 {
			pageNum = v
		}
		pageSize := 20
		if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && v > 0 {
			pageSize = v
		}

		var matched []productRow
		for _, p := range cat.Products {
			if query != "" && !strings.Contains(strings.ToLower(p.ProductName), query) {
				continue
			}
			if sku != "" && p.ProductSKU != sku {
				continue
			}
			matched = append(matched, productRow{
				Pid:          p.Pid,
				ProductName:  p.ProductName,
				ProductSKU:   p.ProductSKU,
				SellPrice:    p.SellPrice,
				ProductImage: p.ProductImage,
				CategoryName: p.CategoryName,
				VariantCount: len(p.Variants),
			})
		}

		total := len(matched)
		start := (pageNum - 1) * pageSize
		if start >= total {
			matched = nil
		} else {
			matched = matched[start:min(start+pageSize, total)]
		}
		// Return empty array instead of null when no results.
		if matched == nil {
			matched = []productRow{}
		}

		writeEnvelope(w, http.StatusOK, codeSuccess, "success", map[string]any{
			"pageNum":  pageNum,
			"pageSize": pageSize,
			"total":    total,
			"list":     matched,
		})
		logger.Info("product list", "query", query, "sku", sku, "matched", total, "returned", len(matched))
	}
}

func variantHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checkToken(w, r) {
			return
		}

		pid := r.URL.Query().Get("pid")
		if pid == "" {
			writeEnvelope(w, http.StatusOK, codeBadRequest, "pid is required", nil)
			return
		}

		variants := []variantFixture{}
		for _, p := range cat.Products {
			if p.Pid == pid {
				variants = p.Variants
				break
			}
		}

		writeEnvelope(w, http.StatusOK, codeSuccess, "success", variants)
		logger.Info("variant query", "pid", pid, "variants", len(variants))
	}
}

func createOrderHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	// Variant prices keyed by vid so amounts can be computed per order.
	prices := make(map[string]float64)
	for _, p := range cat.Products {
		for _, v := range p.Variants {
			prices[v.Vid] = v.SellPrice
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !checkToken(w, r) {
			return
		}

		var body struct {
			OrderNumber string `json:"orderNumber"`
			Products    []struct {
				Vid           string    `json:"vid"`
				Quantity      int       `json:"quantity"`
				ProductImages *[]string `json:"productImages"`
			} `json:"products"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeEnvelope(w, http.StatusOK, codeBadRequest, "malformed order payload", nil)
			return
		}
		if body.OrderNumber == "" || len(body.Products) == 0 {
			writeEnvelope(w, http.StatusOK, codeBadRequest, "orderNumber and products are required", nil)
			return
		}

		productAmount := 0.0
		for _, line := range body.Products {
			// The real endpoint rejects lines missing the productImages
			// field even when its docs call the field optional.
			if line.ProductImages == nil {
				writeEnvelope(w, http.StatusOK, codeBadRequest, "productImages is required", nil)
				return
			}
			price, ok := prices[line.Vid]
			if !ok {
				writeEnvelope(w, http.StatusOK, codeBadRequest, fmt.Sprintf("unknown vid %q", line.Vid), nil)
				return
			}
			productAmount += price * float64(line.Quantity)
		}

		const postage = 4.99
		writeEnvelope(w, http.StatusOK, codeSuccess, "success", map[string]string{
			"orderId":       fmt.Sprintf("mock-order-%d", time.Now().UnixNano()),
			"orderNum":      body.OrderNumber,
			"productAmount": strconv.FormatFloat(productAmount, 'f', 2, 64),
			"postageAmount": strconv.FormatFloat(postage, 'f', 2, 64),
			"orderAmount":   strconv.FormatFloat(productAmount+postage, 'f', 2, 64),
		})
		logger.Info("created mock order", "order_number", body.OrderNumber, "lines", len(body.Products))
	}
}
