package domain

import (
	"context"
	"strings"
	"time"
)

// Payment is one checkout attempt against the payment provider
type Payment struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	OrderID           string     `json:"orderId" gorm:"size:64;not null;uniqueIndex"`
	Receipt           string     `json:"receipt" gorm:"size:64;not null"`
	CustomerEmail     string     `json:"customerEmail" gorm:"size:255;not null;index"`
	CustomerID        *uint      `json:"customerId,omitempty" gorm:"index"`
	RequestedAmount   int64      `json:"requestedAmount" gorm:"not null"`
	Currency          string     `json:"currency" gorm:"size:8;not null"`
	CouponCode        *string    `json:"couponCode,omitempty" gorm:"size:64"`
	DiscountAmount    float64    `json:"discountAmount" gorm:"not null;default:0"`
	FinalAmount       float64    `json:"finalAmount" gorm:"not null"`
	Status            string     `json:"status" gorm:"size:16;not null;index"`
	ProviderPaymentID *string    `json:"providerPaymentId,omitempty" gorm:"size:64"`
	ProviderSignature *string    `json:"providerSignature,omitempty" gorm:"size:128"`
	VerificationError *string    `json:"verificationError,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// Payment statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// IsValidStatus reports whether s is a known payment status
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Callback is the provider-supplied proof attached to a payment on verification
type Callback struct {
	PaymentID string
	Signature string
	At        time.Time
}

// PaymentFilter narrows admin listings; empty fields match everything
type PaymentFilter struct {
	Status string
	Email  string
}

// PaymentRepository defines the contract for payment data access.
// MarkCompleted and MarkFailed only touch records that are still pending and
// report whether this call performed the transition.
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uint) (*Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (*Payment, error)
	FindByCustomerID(ctx context.Context, customerID uint, limit, offset int) ([]Payment, error)
	FindAll(ctx context.Context, filter PaymentFilter, limit, offset int) ([]Payment, error)
	MarkCompleted(ctx context.Context, orderID string, cb Callback) (bool, error)
	MarkFailed(ctx context.Context, orderID string, cb Callback, reason string) (bool, error)
}
