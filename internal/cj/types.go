package cj

import "encoding/json"

// apiEnvelope is the partner's standard response wrapper. The partner
// signals failures through the numeric body code as well as the HTTP
// status, so both are inspected during classification.
type apiEnvelope struct {
	Code    int             `json:"code"`
	Result  bool            `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Partner body codes observed on the wire.
const (
	codeSuccess      = 200
	codeTokenExpired = 1600001
	codeTokenInvalid = 1600002
	codeRateLimited  = 1600200
)

// accessTokenData is the payload of the login and refresh endpoints.
type accessTokenData struct {
	AccessToken            string `json:"accessToken"`
	AccessTokenExpiryDate  string `json:"accessTokenExpiryDate"`
	RefreshToken           string `json:"refreshToken"`
	RefreshTokenExpiryDate string `json:"refreshTokenExpiryDate"`
}

// productListData is the payload of the product list endpoint.
type productListData struct {
	PageNum  int              `json:"pageNum"`
	PageSize int              `json:"pageSize"`
	Total    int              `json:"total"`
	List     []productSummary `json:"list"`
}

// productSummary is one product row as the partner reports it.
type productSummary struct {
	Pid           string `json:"pid"`
	ProductName   string `json:"productNameEn"`
	ProductSKU    string `json:"productSku"`
	SellPrice     string `json:"sellPrice"`
	ProductImage  string `json:"productImage"`
	CategoryName  string `json:"categoryName"`
	VariantCount  int    `json:"variantNum"`
	SourceCountry string `json:"sourceFrom,omitempty"`
}

// variantInfo is one variant row from the variant query endpoint.
type variantInfo struct {
	Vid          string  `json:"vid"`
	VariantSKU   string  `json:"variantSku"`
	VariantPrice float64 `json:"variantSellPrice"`
	Stock        int     `json:"variantStock"`
}

// OrderProduct is one line of the partner order-creation payload.
//
// ProductImages intentionally has no omitempty: the partner endpoint
// rejects orders where the field is absent, even though its docs never
// say so. An empty list is always serialized.
type OrderProduct struct {
	Vid           string   `json:"vid"`
	Quantity      int      `json:"quantity"`
	ProductImages []string `json:"productImages"`
}

// CreateOrderRequest is the partner's order-creation contract.
type CreateOrderRequest struct {
	OrderNumber          string         `json:"orderNumber"`
	ShippingZip          string         `json:"shippingZip"`
	ShippingCountryCode  string         `json:"shippingCountryCode"`
	ShippingProvince     string         `json:"shippingProvince"`
	ShippingCity         string         `json:"shippingCity"`
	ShippingAddress      string         `json:"shippingAddress"`
	ShippingCustomerName string         `json:"shippingCustomerName"`
	ShippingPhone        string         `json:"shippingPhone"`
	LogisticName         string         `json:"logisticName"`
	FromCountryCode      string         `json:"fromCountryCode"`
	Products             []OrderProduct `json:"products"`
}

// createOrderData is the payload returned by the order-creation endpoint.
// Amounts come back as decimal strings.
type createOrderData struct {
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNum"`
	ProductAmount string `json:"productAmount"`
	PostageAmount string `json:"postageAmount"`
	TotalAmount   string `json:"orderAmount"`
}

// OrderReceipt is the parsed result of a successful order creation.
type OrderReceipt struct {
	OrderID       string  `json:"order_id"`
	ProductAmount float64 `json:"product_amount"`
	PostageAmount float64 `json:"postage_amount"`
	TotalAmount   float64 `json:"total_amount"`
}
