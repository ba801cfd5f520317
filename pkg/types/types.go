// Package domain defines the core business types for the dropship gateway.
package domain

import (
	"time"
)

// Supplier identifies which partner fulfills a product.
type Supplier string

// Supplier constants.
const (
	SupplierCJ    Supplier = "cj"
	SupplierOther Supplier = "other"
)

// Product represents one product as reported live by the partner catalog.
type Product struct {
	PartnerID    string   `json:"partner_id"`
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	CategoryName string   `json:"category_name,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	VariantCount int      `json:"variant_count,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
}

// Variant represents one purchasable variant of a partner product as
// reported live. Variant identifiers are not guaranteed stable over time.
type Variant struct {
	VariantID string  `json:"variant_id"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

// ProductMapping links an internal product to its partner product and the
// last known variant identifier. The stored variant id may be stale; the
// resolver treats the live catalog as the source of truth.
type ProductMapping struct {
	ID               string    `json:"id"                 db:"id"`
	InternalSKU      string    `json:"internal_sku"       db:"internal_sku"`
	PartnerProductID string    `json:"partner_product_id" db:"partner_product_id"`
	StoredVariantID  string    `json:"stored_variant_id"  db:"stored_variant_id"`
	Supplier         Supplier  `json:"supplier"           db:"supplier"`
	ImageURLs        []string  `json:"image_urls"         db:"image_urls"`
	CreatedAt        time.Time `json:"created_at"         db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"         db:"updated_at"`
}

// ShippingAddress holds the destination fields the partner order endpoint
// requires.
type ShippingAddress struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	CountryCode  string `json:"country_code"`
	Province     string `json:"province"`
	City         string `json:"city"`
	Address      string `json:"address"`
	Zip          string `json:"zip"`
}

// OrderLine is one line item of an internal order before transformation.
type OrderLine struct {
	LineRef   string `json:"line_ref"`
	ProductID string `json:"product_id"` // internal product mapping id
	SKU       string `json:"sku,omitempty"`
	Quantity  int    `json:"quantity"`
}

// InternalOrder is the order as modeled by the rest of the platform,
// before it is transformed into the partner's order-creation contract.
type InternalOrder struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Shipping      ShippingAddress `json:"shipping"`
	LogisticsName string          `json:"logistics_name"`
	FromCountry   string          `json:"from_country,omitempty"`
	Lines         []OrderLine     `json:"lines"`
}

// ValidationIssue records why an order line was skipped or rejected.
// Issues are collected and surfaced, never silently dropped.
type ValidationIssue struct {
	LineRef string `json:"line_ref"`
	Reason  string `json:"reason"`
}

// OrderStatus is the state of an order as it moves through transformation
// and submission.
type OrderStatus string

// Order status constants.
const (
	OrderPending      OrderStatus = "pending"
	OrderTransforming OrderStatus = "transforming"
	OrderSubmitted    OrderStatus = "submitted"
	OrderRejected     OrderStatus = "rejected_no_valid_lines"
	OrderConfirmed    OrderStatus = "confirmed"
	OrderRemoteError  OrderStatus = "remote_error"
)

// orderTransitions defines the allowed status transitions. Remote errors
// and rejections are terminal; retries are a manual, caller-driven decision.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:      {OrderTransforming},
	OrderTransforming: {OrderSubmitted, OrderRejected},
	OrderSubmitted:    {OrderConfirmed, OrderRemoteError},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether a status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// OrderRecord is the persisted view of an order placed through the gateway.
type OrderRecord struct {
	ID             string            `json:"id"               db:"id"`
	OrderNumber    string            `json:"order_number"     db:"order_number"`
	Status         OrderStatus       `json:"status"           db:"status"`
	PartnerOrderID string            `json:"partner_order_id" db:"partner_order_id"`
	TotalAmount    float64           `json:"total_amount"     db:"total_amount"`
	Issues         []ValidationIssue `json:"issues"           db:"issues"`
	CreatedAt      time.Time         `json:"created_at"       db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"       db:"updated_at"`
}
