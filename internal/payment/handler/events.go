package handler

import (
	"context"
	"net/http"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/kafka"
	"github.com/tair/launchpad-payments/pkg/logger"
)

// EventPublisher publishes payment lifecycle events
type EventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event kafka.PaymentEvent) error
}

func paymentEvent(eventType string, p *domain.Payment) kafka.PaymentEvent {
	ev := kafka.PaymentEvent{
		EventType:       eventType,
		PaymentID:       p.ID,
		OrderID:         p.OrderID,
		CustomerEmail:   p.CustomerEmail,
		CustomerID:      p.CustomerID,
		RequestedAmount: p.RequestedAmount,
		DiscountAmount:  p.DiscountAmount,
		FinalAmount:     p.FinalAmount,
		Currency:        p.Currency,
	}
	if p.ProviderPaymentID != nil {
		ev.ProviderPaymentID = *p.ProviderPaymentID
	}
	if p.CouponCode != nil {
		ev.CouponCode = *p.CouponCode
	}
	if p.VerificationError != nil {
		ev.Reason = *p.VerificationError
	}
	return ev
}

// publish is best effort; the payment state is already durable
func (h *PaymentHandler) publish(r *http.Request, eventType string, p *domain.Payment) {
	if h.publisher == nil || p == nil {
		return
	}

	if err := h.publisher.PublishPaymentEvent(r.Context(), paymentEvent(eventType, p)); err != nil {
		logger.Error(r.Context()).
			Err(err).
			Str("event_type", eventType).
			Str("order_id", p.OrderID).
			Msg("Failed to publish payment event")
	}
}
