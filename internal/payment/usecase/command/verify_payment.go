package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/pkg/logger"
)

const signatureMismatchReason = "signature mismatch"

// VerifyPaymentCommand carries the provider's callback payload.
// CouponCode is accepted for compatibility with older clients and ignored;
// the coupon credited is always the one stored on the payment.
type VerifyPaymentCommand struct {
	OrderID    string
	PaymentID  string
	Signature  string
	CouponCode string
}

// VerifyPaymentResult describes what a verification did
type VerifyPaymentResult struct {
	Payment *domain.Payment
	// Transitioned is true only for the call that moved the payment out of pending
	Transitioned bool
	// AlreadyCompleted is true when the callback repeated an earlier success
	AlreadyCompleted bool
	CouponRedeemed   bool
	CouponErr        error
}

// VerifyPaymentHandler handles verify payment command
type VerifyPaymentHandler struct {
	payments domain.PaymentRepository
	coupons  domain.CouponRepository
	verifier domain.SignatureVerifier
	now      func() time.Time
}

// NewVerifyPaymentHandler creates a new verify payment handler
func NewVerifyPaymentHandler(
	payments domain.PaymentRepository,
	coupons domain.CouponRepository,
	verifier domain.SignatureVerifier,
) *VerifyPaymentHandler {
	return &VerifyPaymentHandler{
		payments: payments,
		coupons:  coupons,
		verifier: verifier,
		now:      time.Now,
	}
}

// Handle executes the verify payment command.
// On a signature mismatch the result is returned together with ErrSignatureMismatch.
func (h *VerifyPaymentHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) (*VerifyPaymentResult, error) {
	if cmd.OrderID == "" || cmd.PaymentID == "" || cmd.Signature == "" {
		return nil, fmt.Errorf("%w: order_id, payment_id and signature are required", domain.ErrMissingFields)
	}

	payment, err := h.payments.FindByOrderID(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	cb := domain.Callback{
		PaymentID: cmd.PaymentID,
		Signature: cmd.Signature,
		At:        h.now().UTC(),
	}

	if !h.verifier.VerifyPaymentSignature(cmd.OrderID, cmd.PaymentID, cmd.Signature) {
		return h.recordMismatch(ctx, payment, cb)
	}

	switch payment.Status {
	case domain.StatusCompleted:
		return &VerifyPaymentResult{Payment: payment, AlreadyCompleted: true}, nil
	case domain.StatusFailed:
		return &VerifyPaymentResult{Payment: payment}, domain.ErrPaymentAlreadyFailed
	}

	transitioned, err := h.payments.MarkCompleted(ctx, cmd.OrderID, cb)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("order_id", cmd.OrderID).
			Str("payment_id", cmd.PaymentID).
			Bool("operator_attention", true).
			Msg("Payment verified but completion could not be saved")
		return nil, fmt.Errorf("%w: %w", domain.ErrConfirmationPersistence, err)
	}

	if !transitioned {
		// another callback got there first
		current, err := h.payments.FindByOrderID(ctx, cmd.OrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload payment: %w", err)
		}
		if current.Status == domain.StatusCompleted {
			return &VerifyPaymentResult{Payment: current, AlreadyCompleted: true}, nil
		}
		return &VerifyPaymentResult{Payment: current}, domain.ErrPaymentAlreadyFailed
	}

	completedAt := cb.At
	payment.Status = domain.StatusCompleted
	payment.ProviderPaymentID = &cb.PaymentID
	payment.ProviderSignature = &cb.Signature
	payment.VerificationError = nil
	payment.CompletedAt = &completedAt
	payment.UpdatedAt = completedAt

	result := &VerifyPaymentResult{Payment: payment, Transitioned: true}

	if payment.CouponCode != nil {
		if _, err := h.coupons.IncrementUsage(ctx, *payment.CouponCode); err != nil {
			result.CouponErr = err
			logger.Error(ctx).
				Err(err).
				Str("order_id", payment.OrderID).
				Str("coupon_code", *payment.CouponCode).
				Msg("Failed to record coupon usage for completed payment")
		} else {
			result.CouponRedeemed = true
		}
	}

	logger.Info(ctx).
		Str("order_id", payment.OrderID).
		Str("payment_id", cb.PaymentID).
		Float64("final_amount", payment.FinalAmount).
		Msg("Payment completed")

	return result, nil
}

func (h *VerifyPaymentHandler) recordMismatch(ctx context.Context, payment *domain.Payment, cb domain.Callback) (*VerifyPaymentResult, error) {
	logger.Warn(ctx).
		Str("order_id", payment.OrderID).
		Str("payment_id", cb.PaymentID).
		Str("status", payment.Status).
		Msg("Payment signature mismatch")

	transitioned, err := h.payments.MarkFailed(ctx, payment.OrderID, cb, signatureMismatchReason)
	if err != nil {
		return nil, fmt.Errorf("failed to record signature mismatch: %w", err)
	}
	if !transitioned {
		// terminal records keep their state
		return &VerifyPaymentResult{Payment: payment}, domain.ErrSignatureMismatch
	}

	reason := signatureMismatchReason
	payment.Status = domain.StatusFailed
	payment.ProviderPaymentID = &cb.PaymentID
	payment.ProviderSignature = &cb.Signature
	payment.VerificationError = &reason
	payment.UpdatedAt = cb.At

	return &VerifyPaymentResult{Payment: payment, Transitioned: true}, domain.ErrSignatureMismatch
}
