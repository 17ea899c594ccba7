package domain

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrInvalidAmount     = errors.New("amount must be a positive whole number")
	ErrMissingFields     = errors.New("required fields are missing")
	ErrInvalidCoupon     = errors.New("coupon is invalid or expired")
	ErrInvalidCouponRule = errors.New("invalid coupon definition")
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrInvalidConfig     = errors.New("invalid payment config")

	// ErrNothingToCharge means the discount leaves less than one minor unit to pay.
	ErrNothingToCharge = errors.New("discount covers the full amount; free checkout is not supported")
)

// Not-found errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrConfigNotFound  = errors.New("payment config not found")
)

// Conflict and integrity errors
var (
	ErrDuplicateCoupon      = errors.New("coupon code already exists")
	ErrCouponExhausted      = errors.New("coupon usage limit reached")
	ErrSignatureMismatch    = errors.New("payment signature verification failed")
	ErrPaymentAlreadyFailed = errors.New("payment already marked as failed")
)

// Provider and persistence errors
var (
	ErrOrderCreation = errors.New("failed to create payment order")

	// ErrRecordPersistence means the provider order exists but no local record was written.
	ErrRecordPersistence = errors.New("payment order created but could not be recorded")

	// ErrConfirmationPersistence means the provider confirmed the payment but the
	// completed state could not be written. Requires operator follow-up.
	ErrConfirmationPersistence = errors.New("payment verified but confirmation could not be saved")
)

// ProviderError carries the payment provider's own error description
type ProviderError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("payment provider error (%d %s): %s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("payment provider error (%d %s)", e.StatusCode, e.Code)
}

func (e *ProviderError) Unwrap() error { return ErrOrderCreation }
