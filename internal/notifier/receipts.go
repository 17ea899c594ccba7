package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/launchpad-payments/kafka"
	"github.com/tair/launchpad-payments/pkg/logger"
)

// ReceiptNotifier turns payment events into customer emails
type ReceiptNotifier struct {
	mailer Mailer
	from   string
}

func NewReceiptNotifier(mailer Mailer, from string) *ReceiptNotifier {
	return &ReceiptNotifier{mailer: mailer, from: from}
}

// Register wires the notifier into a consumer
func (n *ReceiptNotifier) Register(c *kafka.Consumer) {
	c.RegisterHandler(kafka.EventTypePaymentCompleted, n.HandlePaymentCompleted)
	c.RegisterHandler(kafka.EventTypePaymentFailed, n.HandlePaymentFailed)
}

// HandlePaymentCompleted sends the payment receipt
func (n *ReceiptNotifier) HandlePaymentCompleted(ctx context.Context, ev kafka.PaymentEvent) error {
	if ev.CustomerEmail == "" {
		return fmt.Errorf("payment event %s has no customer email", ev.EventID)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Thank you for your payment.\n\n")
	fmt.Fprintf(&body, "Order:      %s\n", ev.OrderID)
	if ev.ProviderPaymentID != "" {
		fmt.Fprintf(&body, "Payment:    %s\n", ev.ProviderPaymentID)
	}
	fmt.Fprintf(&body, "Amount:     %d %s\n", ev.RequestedAmount, ev.Currency)
	if ev.CouponCode != "" {
		fmt.Fprintf(&body, "Coupon:     %s (-%.2f)\n", ev.CouponCode, ev.DiscountAmount)
	}
	fmt.Fprintf(&body, "Total paid: %.2f %s\n", ev.FinalAmount, ev.Currency)

	err := n.mailer.Send(ctx, Email{
		From:    n.from,
		To:      []string{ev.CustomerEmail},
		Subject: "Payment receipt " + ev.OrderID,
		Body:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to send receipt: %w", err)
	}

	logger.Info(ctx).
		Str("order_id", ev.OrderID).
		Msg("Payment receipt sent")
	return nil
}

// HandlePaymentFailed tells the customer the payment could not be confirmed
func (n *ReceiptNotifier) HandlePaymentFailed(ctx context.Context, ev kafka.PaymentEvent) error {
	if ev.CustomerEmail == "" {
		return fmt.Errorf("payment event %s has no customer email", ev.EventID)
	}

	body := fmt.Sprintf("We could not confirm your payment for order %s.\n"+
		"No coupon usage was recorded. Please try again from the checkout page.\n", ev.OrderID)

	if err := n.mailer.Send(ctx, Email{
		From:    n.from,
		To:      []string{ev.CustomerEmail},
		Subject: "Payment not confirmed " + ev.OrderID,
		Body:    body,
	}); err != nil {
		return fmt.Errorf("failed to send failure notice: %w", err)
	}
	return nil
}
