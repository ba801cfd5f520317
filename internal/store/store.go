// Package store defines the datastore abstraction for the dropship
// gateway. The gateway core and order pipeline depend on the Store
// interface, never on concrete implementations; the relational layer is
// an external collaborator behind this seam.
package store

import (
	"context"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// Store defines all data access operations the gateway needs.
type Store interface {
	// Product mappings
	UpsertMapping(ctx context.Context, m *domain.ProductMapping) error
	GetMapping(ctx context.Context, internalProductID string) (*domain.ProductMapping, error)
	GetMappingByPartnerProduct(ctx context.Context, partnerProductID string) (*domain.ProductMapping, error)
	ListMappings(ctx context.Context, supplier domain.Supplier) ([]domain.ProductMapping, error)
	UpdateStoredVariantID(ctx context.Context, id, variantID string) error

	// Orders
	CreateOrderRecord(ctx context.Context, o *domain.OrderRecord) error
	GetOrderRecord(ctx context.Context, id string) (*domain.OrderRecord, error)
	ListOrderRecords(ctx context.Context, status domain.OrderStatus, limit int) ([]domain.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	SetOrderResult(ctx context.Context, id, partnerOrderID string, totalAmount float64, issues []domain.ValidationIssue) error

	Ping(ctx context.Context) error
}
