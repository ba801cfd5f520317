package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
	"github.com/donaldgifford/dropship-gateway/internal/metrics"
	"github.com/donaldgifford/dropship-gateway/internal/notify"
	"github.com/donaldgifford/dropship-gateway/internal/store"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// Service is the order placement workflow: persist, transform, submit,
// and record the outcome. It is the only entry point the application's
// order controllers are allowed to use.
type Service struct {
	store       store.Store
	transformer *Transformer
	client      cj.Client
	notifier    notify.Notifier
	log         *slog.Logger
	nowFunc     func() time.Time
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = l
	}
}

// WithServiceNotifier sets the notifier for terminal order failures.
func WithServiceNotifier(n notify.Notifier) ServiceOption {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithServiceNowFunc overrides the time function for testing.
func WithServiceNowFunc(f func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowFunc = f
	}
}

// NewService creates the order placement service.
func NewService(
	st store.Store,
	transformer *Transformer,
	client cj.Client,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		store:       st,
		transformer: transformer,
		client:      client,
		notifier:    notify.Noop{},
		log:         slog.Default(),
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder runs an internal order through the full pipeline. Partial
// line failure degrades gracefully: the valid subset is submitted and the
// issues are surfaced for manual follow-up. Total failure rejects the
// order before any partner call. A partner failure after submission marks
// the order remote_error, which is terminal; retrying is a manual,
// caller-driven decision.
func (s *Service) CreateOrder(
	ctx context.Context,
	o *domain.InternalOrder,
) (*domain.OrderRecord, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	now := s.nowFunc()
	record := &domain.OrderRecord{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      domain.OrderPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateOrderRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("persisting order: %w", err)
	}

	if err := s.transition(ctx, record, domain.OrderTransforming); err != nil {
		return nil, err
	}

	result, err := s.transformer.Transform(ctx, o)
	if err != nil {
		if errors.Is(err, ErrNoValidLines) {
			metrics.OrdersRejectedTotal.Inc()
			record.Issues = result.Issues
			if terr := s.transition(ctx, record, domain.OrderRejected); terr != nil {
				return nil, terr
			}
			if serr := s.store.SetOrderResult(ctx, record.ID, "", 0, result.Issues); serr != nil {
				s.log.Error("persisting rejection issues", "order_id", record.ID, "err", serr)
			}
			return record, err
		}
		return nil, err
	}

	record.Issues = result.Issues
	if err := s.transition(ctx, record, domain.OrderSubmitted); err != nil {
		return nil, err
	}

	receipt, err := s.client.CreateOrder(ctx, result.Payload)
	if err != nil {
		if terr := s.transition(ctx, record, domain.OrderRemoteError); terr != nil {
			s.log.Error("marking order remote_error", "order_id", record.ID, "err", terr)
		}
		if serr := s.store.SetOrderResult(ctx, record.ID, "", 0, result.Issues); serr != nil {
			s.log.Error("persisting order issues", "order_id", record.ID, "err", serr)
		}
		s.notifyFailure(ctx, record, err)
		return record, fmt.Errorf("submitting order %s: %w", o.OrderNumber, err)
	}

	record.PartnerOrderID = receipt.OrderID
	record.TotalAmount = receipt.TotalAmount
	if err := s.transition(ctx, record, domain.OrderConfirmed); err != nil {
		return nil, err
	}
	if err := s.store.SetOrderResult(ctx, record.ID, receipt.OrderID, receipt.TotalAmount, result.Issues); err != nil {
		s.log.Error("persisting order result", "order_id", record.ID, "err", err)
	}

	s.log.Info("order confirmed",
		"order_id", record.ID,
		"partner_order_id", receipt.OrderID,
		"lines_submitted", len(result.Payload.Products),
		"lines_skipped", len(result.Issues),
	)
	return record, nil
}

// GetOrder returns a persisted order record.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.OrderRecord, error) {
	return s.store.GetOrderRecord(ctx, id)
}

// ListOrders returns persisted orders, optionally filtered by status.
func (s *Service) ListOrders(
	ctx context.Context,
	status domain.OrderStatus,
	limit int,
) ([]domain.OrderRecord, error) {
	return s.store.ListOrderRecords(ctx, status, limit)
}

// transition moves the record to the next status, enforcing the state
// machine.
func (s *Service) transition(
	ctx context.Context,
	record *domain.OrderRecord,
	to domain.OrderStatus,
) error {
	if !domain.CanTransition(record.Status, to) {
		return fmt.Errorf("invalid order transition %s -> %s", record.Status, to)
	}
	if err := s.store.UpdateOrderStatus(ctx, record.ID, to); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	record.Status = to
	record.UpdatedAt = s.nowFunc()
	return nil
}

func (s *Service) notifyFailure(ctx context.Context, record *domain.OrderRecord, cause error) {
	payload := notify.OrderFailurePayload{
		OrderID:     record.ID,
		OrderNumber: record.OrderNumber,
		Status:      string(record.Status),
		Reason:      cause.Error(),
		Issues:      record.Issues,
	}
	if err := s.notifier.SendOrderFailure(ctx, payload); err != nil {
		s.log.Warn("sending order failure notification", "order_id", record.ID, "err", err)
	}
}
