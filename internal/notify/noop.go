package notify

import "context"

// Noop is a Notifier that discards everything. Used when notifications
// are disabled.
type Noop struct{}

// SendOrderFailure implements Notifier.
func (Noop) SendOrderFailure(context.Context, OrderFailurePayload) error {
	return nil
}

// SendDriftSummary implements Notifier.
func (Noop) SendDriftSummary(context.Context, DriftSummaryPayload) error {
	return nil
}
