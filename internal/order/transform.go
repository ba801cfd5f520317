package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
	"github.com/donaldgifford/dropship-gateway/internal/metrics"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// ErrNoValidLines is returned when every line of an order fails
// transformation. No partner call is made in that case.
var ErrNoValidLines = errors.New("no valid order lines")

// MappingSource provides the stored product mapping for an internal
// product id. Implemented by the store; kept narrow so the transformer
// stays testable without a database.
type MappingSource interface {
	GetMapping(ctx context.Context, internalProductID string) (*domain.ProductMapping, error)
}

// TransformResult pairs the partner payload with the per-line issues
// collected along the way. Issues are reported, never silently dropped.
type TransformResult struct {
	Payload *cj.CreateOrderRequest
	Issues  []domain.ValidationIssue
	// SkippedForeign counts lines that belong to a different supplier and
	// were dropped without an issue.
	SkippedForeign int
}

// Transformer converts an internal order into the partner's strict
// order-creation contract, resolving volatile variant identifiers and
// rejecting malformed line items before submission.
type Transformer struct {
	resolver *VariantResolver
	mappings MappingSource
	log      *slog.Logger
}

// TransformerOption configures the Transformer.
type TransformerOption func(*Transformer)

// WithTransformerLogger sets the logger.
func WithTransformerLogger(l *slog.Logger) TransformerOption {
	return func(t *Transformer) {
		t.log = l
	}
}

// NewTransformer creates a Transformer.
func NewTransformer(
	resolver *VariantResolver,
	mappings MappingSource,
	opts ...TransformerOption,
) *Transformer {
	t := &Transformer{
		resolver: resolver,
		mappings: mappings,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform builds the partner payload for an internal order. Lines that
// fail resolution or validation are skipped with a recorded issue; the
// order degrades gracefully to the valid subset. When zero valid lines
// remain the whole transformation fails with ErrNoValidLines and the
// collected issues are still returned.
func (t *Transformer) Transform(
	ctx context.Context,
	o *domain.InternalOrder,
) (*TransformResult, error) {
	result := &TransformResult{}

	var products []cj.OrderProduct
	for i := range o.Lines {
		line := &o.Lines[i]

		product, issue := t.transformLine(ctx, line)
		if issue != nil {
			result.Issues = append(result.Issues, *issue)
			metrics.OrderLinesSkippedTotal.Inc()
			continue
		}
		if product == nil {
			// Fulfilled by a different supplier; not ours to submit.
			result.SkippedForeign++
			continue
		}
		products = append(products, *product)
	}

	if len(products) == 0 {
		return result, fmt.Errorf("order %s: %w", o.OrderNumber, ErrNoValidLines)
	}

	result.Payload = &cj.CreateOrderRequest{
		OrderNumber:          o.OrderNumber,
		ShippingZip:          o.Shipping.Zip,
		ShippingCountryCode:  o.Shipping.CountryCode,
		ShippingProvince:     o.Shipping.Province,
		ShippingCity:         o.Shipping.City,
		ShippingAddress:      o.Shipping.Address,
		ShippingCustomerName: o.Shipping.CustomerName,
		ShippingPhone:        o.Shipping.Phone,
		LogisticName:         o.LogisticsName,
		FromCountryCode:      o.FromCountry,
		Products:             products,
	}
	return result, nil
}

// transformLine handles one order line. Returns (nil, nil) for lines
// belonging to another supplier, (nil, issue) for skipped lines, and
// (product, nil) for valid ones.
func (t *Transformer) transformLine(
	ctx context.Context,
	line *domain.OrderLine,
) (*cj.OrderProduct, *domain.ValidationIssue) {
	mapping, err := t.mappings.GetMapping(ctx, line.ProductID)
	if err != nil {
		return nil, &domain.ValidationIssue{
			LineRef: line.LineRef,
			Reason:  "looking up product mapping: " + err.Error(),
		}
	}
	if mapping == nil || mapping.Supplier != domain.SupplierCJ {
		return nil, nil
	}

	res, err := t.resolver.Resolve(ctx, mapping.PartnerProductID, line.SKU, mapping.StoredVariantID)
	if err != nil {
		return nil, &domain.ValidationIssue{
			LineRef: line.LineRef,
			Reason:  "resolving variant: " + err.Error(),
		}
	}

	if !ValidVariantID(res.VariantID) {
		return nil, &domain.ValidationIssue{
			LineRef: line.LineRef,
			Reason:  fmt.Sprintf("variant id %q has invalid format", res.VariantID),
		}
	}

	// Availability must be confirmed live; a line we cannot verify is
	// skipped rather than silently included.
	if !res.Live {
		return nil, &domain.ValidationIssue{
			LineRef: line.LineRef,
			Reason:  "variant availability could not be confirmed live",
		}
	}
	if res.Stock <= 0 {
		return nil, &domain.ValidationIssue{
			LineRef: line.LineRef,
			Reason:  fmt.Sprintf("variant %s is out of stock", res.VariantID),
		}
	}

	if line.Quantity <= 0 {
		return nil, &domain.ValidationIssue{
			LineRef: line.LineRef,
			Reason:  fmt.Sprintf("invalid quantity %d", line.Quantity),
		}
	}

	// The partner rejects orders where productImages is absent, so the
	// field is always a list, possibly empty.
	images := mapping.ImageURLs
	if images == nil {
		images = []string{}
	}

	return &cj.OrderProduct{
		Vid:           res.VariantID,
		Quantity:      line.Quantity,
		ProductImages: images,
	}, nil
}
