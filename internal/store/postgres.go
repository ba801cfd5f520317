package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled
// PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertMapping inserts or updates a product mapping by internal SKU.
func (s *PostgresStore) UpsertMapping(ctx context.Context, m *domain.ProductMapping) error {
	images, err := json.Marshal(m.ImageURLs)
	if err != nil {
		return fmt.Errorf("marshaling image urls: %w", err)
	}

	args := pgx.NamedArgs{
		"internal_sku":       m.InternalSKU,
		"partner_product_id": m.PartnerProductID,
		"stored_variant_id":  m.StoredVariantID,
		"supplier":           string(m.Supplier),
		"image_urls":         images,
	}

	err = s.pool.QueryRow(ctx, queryUpsertMapping, args).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting mapping %s: %w", m.InternalSKU, err)
	}
	return nil
}

// GetMapping returns a mapping by its id, or nil when absent.
func (s *PostgresStore) GetMapping(ctx context.Context, id string) (*domain.ProductMapping, error) {
	return s.scanMapping(s.pool.QueryRow(ctx, queryGetMapping, id))
}

// GetMappingByPartnerProduct returns the mapping for a partner product
// id, or nil when absent.
func (s *PostgresStore) GetMappingByPartnerProduct(
	ctx context.Context,
	partnerProductID string,
) (*domain.ProductMapping, error) {
	return s.scanMapping(s.pool.QueryRow(ctx, queryGetMappingByPartnerProduct, partnerProductID))
}

func (s *PostgresStore) scanMapping(row pgx.Row) (*domain.ProductMapping, error) {
	var m domain.ProductMapping
	var images []byte

	err := row.Scan(
		&m.ID, &m.InternalSKU, &m.PartnerProductID, &m.StoredVariantID,
		&m.Supplier, &images, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning mapping: %w", err)
	}

	if err := json.Unmarshal(images, &m.ImageURLs); err != nil {
		return nil, fmt.Errorf("parsing image urls: %w", err)
	}
	return &m, nil
}

// ListMappings returns all mappings for a supplier.
func (s *PostgresStore) ListMappings(
	ctx context.Context,
	supplier domain.Supplier,
) ([]domain.ProductMapping, error) {
	rows, err := s.pool.Query(ctx, queryListMappings, string(supplier))
	if err != nil {
		return nil, fmt.Errorf("listing mappings: %w", err)
	}
	defer rows.Close()

	var mappings []domain.ProductMapping
	for rows.Next() {
		var m domain.ProductMapping
		var images []byte
		if err := rows.Scan(
			&m.ID, &m.InternalSKU, &m.PartnerProductID, &m.StoredVariantID,
			&m.Supplier, &images, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mapping row: %w", err)
		}
		if err := json.Unmarshal(images, &m.ImageURLs); err != nil {
			return nil, fmt.Errorf("parsing image urls: %w", err)
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// UpdateStoredVariantID persists a corrected variant id after drift
// resolution.
func (s *PostgresStore) UpdateStoredVariantID(ctx context.Context, id, variantID string) error {
	tag, err := s.pool.Exec(ctx, queryUpdateStoredVariantID, id, variantID)
	if err != nil {
		return fmt.Errorf("updating stored variant id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mapping %s not found", id)
	}
	return nil
}

// CreateOrderRecord inserts a new order record.
func (s *PostgresStore) CreateOrderRecord(ctx context.Context, o *domain.OrderRecord) error {
	issues, err := json.Marshal(issuesOrEmpty(o.Issues))
	if err != nil {
		return fmt.Errorf("marshaling issues: %w", err)
	}

	args := pgx.NamedArgs{
		"id":               o.ID,
		"order_number":     o.OrderNumber,
		"status":           string(o.Status),
		"partner_order_id": o.PartnerOrderID,
		"total_amount":     o.TotalAmount,
		"issues":           issues,
	}

	if _, err := s.pool.Exec(ctx, queryCreateOrderRecord, args); err != nil {
		return fmt.Errorf("creating order record %s: %w", o.OrderNumber, err)
	}
	return nil
}

// GetOrderRecord returns an order by id, or nil when absent.
func (s *PostgresStore) GetOrderRecord(ctx context.Context, id string) (*domain.OrderRecord, error) {
	var o domain.OrderRecord
	var issues []byte

	err := s.pool.QueryRow(ctx, queryGetOrderRecord, id).Scan(
		&o.ID, &o.OrderNumber, &o.Status, &o.PartnerOrderID,
		&o.TotalAmount, &issues, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order %s: %w", id, err)
	}

	if err := json.Unmarshal(issues, &o.Issues); err != nil {
		return nil, fmt.Errorf("parsing order issues: %w", err)
	}
	return &o, nil
}

// ListOrderRecords returns orders newest first, optionally filtered by
// status.
func (s *PostgresStore) ListOrderRecords(
	ctx context.Context,
	status domain.OrderStatus,
	limit int,
) ([]domain.OrderRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, queryListOrderRecords, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.OrderRecord
	for rows.Next() {
		var o domain.OrderRecord
		var issues []byte
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.Status, &o.PartnerOrderID,
			&o.TotalAmount, &issues, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		if err := json.Unmarshal(issues, &o.Issues); err != nil {
			return nil, fmt.Errorf("parsing order issues: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus moves an order to a new status.
func (s *PostgresStore) UpdateOrderStatus(
	ctx context.Context,
	id string,
	status domain.OrderStatus,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateOrderStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}

// SetOrderResult records the partner order id, total amount, and the
// collected validation issues.
func (s *PostgresStore) SetOrderResult(
	ctx context.Context,
	id, partnerOrderID string,
	totalAmount float64,
	issues []domain.ValidationIssue,
) error {
	data, err := json.Marshal(issuesOrEmpty(issues))
	if err != nil {
		return fmt.Errorf("marshaling issues: %w", err)
	}

	tag, err := s.pool.Exec(ctx, querySetOrderResult, id, partnerOrderID, totalAmount, data)
	if err != nil {
		return fmt.Errorf("setting order result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}

// issuesOrEmpty keeps the issues column a JSON array, never null.
func issuesOrEmpty(issues []domain.ValidationIssue) []domain.ValidationIssue {
	if issues == nil {
		return []domain.ValidationIssue{}
	}
	return issues
}
