package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Product mapping queries.
const (
	queryUpsertMapping = `
		INSERT INTO product_mappings (
			internal_sku, partner_product_id, stored_variant_id,
			supplier, image_urls, created_at, updated_at
		) VALUES (
			@internal_sku, @partner_product_id, @stored_variant_id,
			@supplier, @image_urls, now(), now()
		)
		ON CONFLICT (internal_sku) DO UPDATE SET
			partner_product_id = EXCLUDED.partner_product_id,
			stored_variant_id = EXCLUDED.stored_variant_id,
			supplier = EXCLUDED.supplier,
			image_urls = EXCLUDED.image_urls,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetMapping = `
		SELECT id, internal_sku, partner_product_id, stored_variant_id,
			supplier, image_urls, created_at, updated_at
		FROM product_mappings
		WHERE id = $1`

	queryGetMappingByPartnerProduct = `
		SELECT id, internal_sku, partner_product_id, stored_variant_id,
			supplier, image_urls, created_at, updated_at
		FROM product_mappings
		WHERE partner_product_id = $1`

	queryListMappings = `
		SELECT id, internal_sku, partner_product_id, stored_variant_id,
			supplier, image_urls, created_at, updated_at
		FROM product_mappings
		WHERE supplier = $1
		ORDER BY internal_sku`

	queryUpdateStoredVariantID = `
		UPDATE product_mappings
		SET stored_variant_id = $2, updated_at = now()
		WHERE id = $1`
)

// Order queries.
const (
	queryCreateOrderRecord = `
		INSERT INTO orders (
			id, order_number, status, partner_order_id,
			total_amount, issues, created_at, updated_at
		) VALUES (
			@id, @order_number, @status, @partner_order_id,
			@total_amount, @issues, now(), now()
		)`

	queryGetOrderRecord = `
		SELECT id, order_number, status, partner_order_id,
			total_amount, issues, created_at, updated_at
		FROM orders
		WHERE id = $1`

	queryListOrderRecords = `
		SELECT id, order_number, status, partner_order_id,
			total_amount, issues, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2`

	queryUpdateOrderStatus = `
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1`

	querySetOrderResult = `
		UPDATE orders
		SET partner_order_id = $2, total_amount = $3, issues = $4,
			updated_at = now()
		WHERE id = $1`
)
