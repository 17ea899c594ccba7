package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// ReasonCouponsDisabled is reported when coupon entry is switched off globally
const ReasonCouponsDisabled = "coupons_disabled"

// ReasonNotFound is reported for unknown codes
const ReasonNotFound = "not_found"

// ListCouponsHandler handles list coupons query
type ListCouponsHandler struct {
	repo domain.CouponRepository
}

// NewListCouponsHandler creates a new list coupons handler
func NewListCouponsHandler(repo domain.CouponRepository) *ListCouponsHandler {
	return &ListCouponsHandler{repo: repo}
}

// Handle executes the list coupons query
func (h *ListCouponsHandler) Handle(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// ValidateCouponQuery previews a coupon against an amount
type ValidateCouponQuery struct {
	Code   string
	Amount int64
}

// CouponPreview is what the checkout shows before the order is created
type CouponPreview struct {
	Code           string  `json:"code"`
	Valid          bool    `json:"valid"`
	Reason         string  `json:"reason,omitempty"`
	DiscountType   string  `json:"discountType,omitempty"`
	DiscountValue  float64 `json:"discountValue,omitempty"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}

// ValidateCouponHandler handles the coupon preview query
type ValidateCouponHandler struct {
	coupons  domain.CouponRepository
	settings domain.SettingsRepository
	now      func() time.Time
}

// NewValidateCouponHandler creates a new validate coupon handler
func NewValidateCouponHandler(coupons domain.CouponRepository, settings domain.SettingsRepository) *ValidateCouponHandler {
	return &ValidateCouponHandler{coupons: coupons, settings: settings, now: time.Now}
}

// Handle executes the coupon preview. An unusable coupon is not an error; the
// preview reports why.
func (h *ValidateCouponHandler) Handle(ctx context.Context, query ValidateCouponQuery) (*CouponPreview, error) {
	code := domain.NormalizeCode(query.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code", domain.ErrMissingFields)
	}
	if query.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	amount := float64(query.Amount)
	preview := &CouponPreview{Code: code, FinalAmount: amount}

	enabled, err := h.settings.GetBool(ctx, domain.SettingCouponsEnabled, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read coupon setting: %w", err)
	}
	if !enabled {
		preview.Reason = ReasonCouponsDisabled
		return preview, nil
	}

	coupon, err := h.coupons.FindByCode(ctx, code)
	if errors.Is(err, domain.ErrCouponNotFound) {
		preview.Reason = ReasonNotFound
		return preview, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load coupon: %w", err)
	}

	now := h.now()
	preview.DiscountType = coupon.DiscountType
	preview.DiscountValue = coupon.DiscountValue
	if reason := coupon.InvalidReason(amount, now); reason != "" {
		preview.Reason = reason
		return preview, nil
	}

	preview.Valid = true
	preview.DiscountAmount = coupon.CalculateDiscount(amount, now)
	preview.FinalAmount = domain.RoundAmount(amount - preview.DiscountAmount)
	return preview, nil
}

// GetCouponFlagHandler reads the global coupon switch
type GetCouponFlagHandler struct {
	repo domain.SettingsRepository
}

// NewGetCouponFlagHandler creates a new get coupon flag handler
func NewGetCouponFlagHandler(repo domain.SettingsRepository) *GetCouponFlagHandler {
	return &GetCouponFlagHandler{repo: repo}
}

// Handle returns whether coupons are enabled; unset means enabled
func (h *GetCouponFlagHandler) Handle(ctx context.Context) (bool, error) {
	return h.repo.GetBool(ctx, domain.SettingCouponsEnabled, true)
}
