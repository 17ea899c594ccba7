package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/pkg/logger"
)

// CreateOrderCommand represents a checkout request
type CreateOrderCommand struct {
	Amount     int64
	Email      string
	CouponCode string
	CustomerID *uint
}

// CreateOrderResult is what the checkout widget needs to open the payment
type CreateOrderResult struct {
	OrderID        string  `json:"orderId"`
	Amount         int64   `json:"amount"`
	Currency       string  `json:"currency"`
	KeyID          string  `json:"keyId"`
	PaymentID      uint    `json:"paymentId"`
	OriginalAmount int64   `json:"originalAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	CouponCode     string  `json:"couponCode,omitempty"`
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	payments domain.PaymentRepository
	coupons  domain.CouponRepository
	provider domain.OrderProvider
	settings domain.CheckoutSettings
	now      func() time.Time
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(
	payments domain.PaymentRepository,
	coupons domain.CouponRepository,
	provider domain.OrderProvider,
	settings domain.CheckoutSettings,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		payments: payments,
		coupons:  coupons,
		provider: provider,
		settings: settings,
		now:      time.Now,
	}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if cmd.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	email := domain.NormalizeEmail(cmd.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email", domain.ErrMissingFields)
	}

	var (
		couponCode *string
		discount   float64
	)
	if code := domain.NormalizeCode(cmd.CouponCode); code != "" {
		coupon, err := h.coupons.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrCouponNotFound) {
				return nil, domain.ErrInvalidCoupon
			}
			return nil, fmt.Errorf("failed to load coupon: %w", err)
		}

		now := h.now()
		if !coupon.IsValid(float64(cmd.Amount), now) {
			logger.Info(ctx).
				Str("coupon_code", code).
				Str("reason", coupon.InvalidReason(float64(cmd.Amount), now)).
				Msg("Coupon rejected at checkout")
			return nil, domain.ErrInvalidCoupon
		}

		discount = coupon.CalculateDiscount(float64(cmd.Amount), now)
		couponCode = &coupon.Code
	}

	finalAmount := domain.RoundAmount(float64(cmd.Amount) - discount)
	if toMinorUnits(finalAmount) < 1 {
		logger.Info(ctx).
			Str("coupon_code", *couponCode).
			Int64("amount", cmd.Amount).
			Float64("discount", discount).
			Msg("Coupon leaves nothing to charge")
		return nil, domain.ErrNothingToCharge
	}
	receipt := newReceipt(h.now())

	notes := map[string]string{
		"email":           email,
		"original_amount": strconv.FormatInt(cmd.Amount, 10),
		"discount_amount": strconv.FormatFloat(discount, 'f', 2, 64),
	}
	if cmd.CustomerID != nil {
		notes["customer_id"] = strconv.FormatUint(uint64(*cmd.CustomerID), 10)
	}
	if couponCode != nil {
		notes["coupon_code"] = *couponCode
	}

	order, err := h.provider.CreateOrder(ctx, domain.OrderRequest{
		AmountMinor: toMinorUnits(finalAmount),
		Currency:    h.settings.Currency,
		Receipt:     receipt,
		Notes:       notes,
	})
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		OrderID:         order.ID,
		Receipt:         receipt,
		CustomerEmail:   email,
		CustomerID:      cmd.CustomerID,
		RequestedAmount: cmd.Amount,
		Currency:        h.settings.Currency,
		CouponCode:      couponCode,
		DiscountAmount:  discount,
		FinalAmount:     finalAmount,
		Status:          domain.StatusPending,
	}

	if err := h.payments.Create(ctx, payment); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("order_id", order.ID).
			Str("receipt", receipt).
			Bool("operator_attention", true).
			Msg("Provider order created but payment record was not saved")
		return nil, fmt.Errorf("%w: %w", domain.ErrRecordPersistence, err)
	}

	result := &CreateOrderResult{
		OrderID:        order.ID,
		Amount:         toMinorUnits(finalAmount),
		Currency:       h.settings.Currency,
		KeyID:          h.provider.KeyID(),
		PaymentID:      payment.ID,
		OriginalAmount: cmd.Amount,
		DiscountAmount: discount,
		FinalAmount:    finalAmount,
	}
	if couponCode != nil {
		result.CouponCode = *couponCode
	}

	return result, nil
}

// toMinorUnits converts a major-unit amount to paise/cents
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func newReceipt(now time.Time) string {
	return fmt.Sprintf("rcpt_%d_%s", now.UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
