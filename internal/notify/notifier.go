// Package notify defines the notification interface and implementations
// for operational events that need human follow-up.
package notify

import (
	"context"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// OrderFailurePayload describes an order that reached a terminal failure
// state and needs manual attention.
type OrderFailurePayload struct {
	OrderID     string                   `json:"order_id"`
	OrderNumber string                   `json:"order_number"`
	Status      string                   `json:"status"`
	Reason      string                   `json:"reason"`
	Issues      []domain.ValidationIssue `json:"issues,omitempty"`
}

// DriftSummaryPayload describes the outcome of a variant drift sweep.
type DriftSummaryPayload struct {
	MappingsChecked int      `json:"mappings_checked"`
	DriftsFound     int      `json:"drifts_found"`
	DriftedProducts []string `json:"drifted_products,omitempty"`
	Errors          int      `json:"errors"`
}

// Notifier delivers operational notifications. Implementations must be
// safe for concurrent use.
type Notifier interface {
	SendOrderFailure(ctx context.Context, p OrderFailurePayload) error
	SendDriftSummary(ctx context.Context, p DriftSummaryPayload) error
}
