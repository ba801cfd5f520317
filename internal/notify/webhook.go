package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WebhookNotifier implements Notifier by POSTing JSON payloads to a
// configured endpoint.
type WebhookNotifier struct {
	url     string
	headers map[string]string
	client  *http.Client
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// WithHeaders sets extra headers sent with every webhook request.
func WithHeaders(h map[string]string) WebhookOption {
	return func(w *WebhookNotifier) {
		w.headers = h
	}
}

// NewWebhookNotifier creates a WebhookNotifier.
func NewWebhookNotifier(url string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// webhookEvent wraps every payload with an event type so one endpoint can
// route both kinds.
type webhookEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// SendOrderFailure posts a terminal order failure.
func (w *WebhookNotifier) SendOrderFailure(ctx context.Context, p OrderFailurePayload) error {
	return w.post(ctx, webhookEvent{Event: "order_failure", Payload: p})
}

// SendDriftSummary posts the outcome of a drift sweep.
func (w *WebhookNotifier) SendDriftSummary(ctx context.Context, p DriftSummaryPayload) error {
	return w.post(ctx, webhookEvent{Event: "drift_summary", Payload: p})
}

func (w *WebhookNotifier) post(ctx context.Context, event webhookEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.url,
		bytes.NewReader(data),
	)
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
