package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

var tracer = otel.Tracer("payment-repository")

// TracingPaymentRepository wraps a PaymentRepository with spans
type TracingPaymentRepository struct {
	next domain.PaymentRepository
}

func NewTracingPaymentRepository(next domain.PaymentRepository) *TracingPaymentRepository {
	return &TracingPaymentRepository{next: next}
}

func (r *TracingPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("payment.order_id", payment.OrderID),
			attribute.String("payment.status", payment.Status),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, payment); err != nil {
		recordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("payment.id", int(payment.ID)))
	return nil
}

func (r *TracingPaymentRepository) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("payment.id", int(id))),
	)
	defer span.End()

	payment, err := r.next.FindByID(ctx, id)
	recordError(span, err)
	return payment, err
}

func (r *TracingPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByOrderID",
		trace.WithAttributes(attribute.String("payment.order_id", orderID)),
	)
	defer span.End()

	payment, err := r.next.FindByOrderID(ctx, orderID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("payment.status", payment.Status))
	return payment, nil
}

func (r *TracingPaymentRepository) FindByCustomerID(ctx context.Context, customerID uint, limit, offset int) ([]domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByCustomerID",
		trace.WithAttributes(
			attribute.Int("payment.customer_id", int(customerID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	payments, err := r.next.FindByCustomerID(ctx, customerID, limit, offset)
	recordError(span, err)
	span.SetAttributes(attribute.Int("result.count", len(payments)))
	return payments, err
}

func (r *TracingPaymentRepository) FindAll(ctx context.Context, filter domain.PaymentFilter, limit, offset int) ([]domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("filter.status", filter.Status),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	payments, err := r.next.FindAll(ctx, filter, limit, offset)
	recordError(span, err)
	span.SetAttributes(attribute.Int("result.count", len(payments)))
	return payments, err
}

func (r *TracingPaymentRepository) MarkCompleted(ctx context.Context, orderID string, cb domain.Callback) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.MarkCompleted",
		trace.WithAttributes(attribute.String("payment.order_id", orderID)),
	)
	defer span.End()

	ok, err := r.next.MarkCompleted(ctx, orderID, cb)
	recordError(span, err)
	span.SetAttributes(attribute.Bool("payment.transitioned", ok))
	return ok, err
}

func (r *TracingPaymentRepository) MarkFailed(ctx context.Context, orderID string, cb domain.Callback, reason string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.MarkFailed",
		trace.WithAttributes(attribute.String("payment.order_id", orderID)),
	)
	defer span.End()

	ok, err := r.next.MarkFailed(ctx, orderID, cb, reason)
	recordError(span, err)
	span.SetAttributes(attribute.Bool("payment.transitioned", ok))
	return ok, err
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
