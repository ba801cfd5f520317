// Package engine runs the periodic variant drift sweep: stored variant
// identifiers are re-resolved against the partner's live catalog and
// corrections are persisted before they can poison order creation.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/donaldgifford/dropship-gateway/internal/notify"
	"github.com/donaldgifford/dropship-gateway/internal/order"
	"github.com/donaldgifford/dropship-gateway/internal/store"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// Engine orchestrates drift sweeps over the stored product mappings.
type Engine struct {
	store    store.Store
	resolver *order.VariantResolver
	notifier notify.Notifier
	log      *slog.Logger

	staggerOffset time.Duration
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithStaggerOffset sets the delay between checking each mapping, on top
// of the gateway's own pacing.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithNotifier sets the notifier for sweep summaries.
func WithNotifier(n notify.Notifier) EngineOption {
	return func(e *Engine) {
		e.notifier = n
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, r *order.VariantResolver, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:         s,
		resolver:      r,
		notifier:      notify.Noop{},
		log:           slog.Default(),
		staggerOffset: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// SweepResult summarizes one drift sweep.
type SweepResult struct {
	Checked int
	Drifted int
	Errors  int
}

// RunDriftSweep re-resolves every stored variant id for the partner and
// persists corrections. Individual failures are logged and counted; they
// never abort the sweep.
func (eng *Engine) RunDriftSweep(ctx context.Context) (*SweepResult, error) {
	mappings, err := eng.store.ListMappings(ctx, domain.SupplierCJ)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	var driftedProducts []string

	for i := range mappings {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		m := &mappings[i]
		result.Checked++

		res, err := eng.resolver.Resolve(ctx, m.PartnerProductID, m.InternalSKU, m.StoredVariantID)
		if err != nil {
			result.Errors++
			eng.log.Warn("drift sweep resolution failed",
				"internal_sku", m.InternalSKU,
				"partner_product_id", m.PartnerProductID,
				"err", err,
			)
			continue
		}

		if res.Drifted || m.StoredVariantID == "" {
			if err := eng.store.UpdateStoredVariantID(ctx, m.ID, res.VariantID); err != nil {
				result.Errors++
				eng.log.Error("persisting corrected variant id",
					"internal_sku", m.InternalSKU,
					"err", err,
				)
				continue
			}
			if res.Drifted {
				result.Drifted++
				driftedProducts = append(driftedProducts, m.InternalSKU)
			}
		}

		if eng.staggerOffset > 0 && i < len(mappings)-1 {
			select {
			case <-time.After(eng.staggerOffset):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	eng.log.Info("drift sweep complete",
		"checked", result.Checked,
		"drifted", result.Drifted,
		"errors", result.Errors,
	)

	if result.Drifted > 0 {
		payload := notify.DriftSummaryPayload{
			MappingsChecked: result.Checked,
			DriftsFound:     result.Drifted,
			DriftedProducts: driftedProducts,
			Errors:          result.Errors,
		}
		if err := eng.notifier.SendDriftSummary(ctx, payload); err != nil {
			eng.log.Warn("sending drift summary", "err", err)
		}
	}

	return result, nil
}
