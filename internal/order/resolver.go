// Package order implements the order transformation pipeline: variant
// identifier resolution with drift detection, payload construction, and
// the order placement workflow.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
	"github.com/donaldgifford/dropship-gateway/internal/metrics"
)

// ErrVariantNotFound is returned when neither the live catalog nor a
// trustworthy stored id yields a variant for a product.
var ErrVariantNotFound = errors.New("variant not found")

// Resolution is the outcome of resolving one variant id.
type Resolution struct {
	VariantID string
	// Drifted is set when the partner's live id differs from the stored
	// one. The caller owns persisting the correction.
	Drifted bool
	// Live is set when the id was confirmed against the current catalog,
	// as opposed to falling back to the stored value.
	Live  bool
	Stock int
}

// VariantResolver resolves stored variant identifiers against the
// partner's live catalog. It never mutates the origin store; corrected
// values are returned for the caller to persist.
type VariantResolver struct {
	client cj.Client
	log    *slog.Logger
}

// ResolverOption configures the VariantResolver.
type ResolverOption func(*VariantResolver)

// WithResolverLogger sets the logger.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *VariantResolver) {
		r.log = l
	}
}

// NewVariantResolver creates a VariantResolver.
func NewVariantResolver(client cj.Client, opts ...ResolverOption) *VariantResolver {
	r := &VariantResolver{
		client: client,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve determines the current variant id for a partner product. The
// live list is authoritative: an exact SKU match wins, else the first
// returned variant. A stored id is only used as a fallback when the live
// call yields nothing, and never when its format is suspect.
func (r *VariantResolver) Resolve(
	ctx context.Context,
	productID, knownSKU, storedVID string,
) (*Resolution, error) {
	variants, err := r.client.QueryVariants(ctx, productID)
	if err != nil || len(variants) == 0 {
		if storedVID != "" && !SuspectVariantID(storedVID) {
			r.log.Warn("live variant lookup failed, falling back to stored id",
				"product_id", productID,
				"stored_vid", storedVID,
				"err", err,
			)
			return &Resolution{VariantID: storedVID}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolving variant for %s: %w", productID, err)
		}
		return nil, fmt.Errorf("product %s: %w", productID, ErrVariantNotFound)
	}

	picked := variants[0]
	if knownSKU != "" {
		for i := range variants {
			if variants[i].SKU == knownSKU {
				picked = variants[i]
				break
			}
		}
	}

	res := &Resolution{
		VariantID: picked.VariantID,
		Live:      true,
		Stock:     picked.Stock,
	}

	if storedVID != "" && storedVID != picked.VariantID {
		// The partner reissued identifiers. Return the live id, never
		// the stale one.
		res.Drifted = true
		metrics.VariantDriftTotal.Inc()
		r.log.Warn("variant id drift detected",
			"product_id", productID,
			"stored_vid", storedVID,
			"live_vid", picked.VariantID,
		)
	}

	return res, nil
}
