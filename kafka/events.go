package kafka

import "time"

// PaymentEvent is published when a payment reaches a terminal state
type PaymentEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	PaymentID         uint      `json:"payment_id"`
	OrderID           string    `json:"order_id"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	CustomerEmail     string    `json:"customer_email"`
	CustomerID        *uint     `json:"customer_id,omitempty"`
	RequestedAmount   int64     `json:"requested_amount"`
	DiscountAmount    float64   `json:"discount_amount"`
	FinalAmount       float64   `json:"final_amount"`
	Currency          string    `json:"currency"`
	CouponCode        string    `json:"coupon_code,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePaymentCompleted = "payment.completed"
	EventTypePaymentFailed    = "payment.failed"
)

// Kafka topics
const (
	TopicPaymentEvents = "payment-events"
)
