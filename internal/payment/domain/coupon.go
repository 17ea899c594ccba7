package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// Discount types
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Reasons a coupon cannot be applied
const (
	ReasonInactive      = "inactive"
	ReasonNotYetValid   = "not_yet_valid"
	ReasonExpired       = "expired"
	ReasonUsageExceeded = "usage_limit_reached"
	ReasonBelowMinimum  = "below_minimum_amount"
)

// Coupon is a reusable discount rule
type Coupon struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	Code              string     `json:"code" gorm:"size:64;not null;uniqueIndex"`
	Description       string     `json:"description"`
	DiscountType      string     `json:"discountType" gorm:"size:16;not null"`
	DiscountValue     float64    `json:"discountValue" gorm:"not null"`
	MaxDiscountAmount *float64   `json:"maxDiscountAmount,omitempty"`
	MinAmount         float64    `json:"minAmount" gorm:"not null;default:0"`
	MaxUses           *int       `json:"maxUses,omitempty"`
	UsedCount         int        `json:"usedCount" gorm:"not null;default:0"`
	ValidFrom         time.Time  `json:"validFrom" gorm:"not null"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`
	IsActive          bool       `json:"isActive" gorm:"not null"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// TableName specifies the table name
func (Coupon) TableName() string {
	return "coupons"
}

// NormalizeCode canonicalizes a coupon code for storage and lookup
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RoundAmount rounds half-up to two decimal places
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// InvalidReason returns why the coupon cannot be applied to amount at now,
// or an empty string when it can.
func (c *Coupon) InvalidReason(amount float64, now time.Time) string {
	switch {
	case !c.IsActive:
		return ReasonInactive
	case now.Before(c.ValidFrom):
		return ReasonNotYetValid
	case c.ValidUntil != nil && now.After(*c.ValidUntil):
		return ReasonExpired
	case c.MaxUses != nil && c.UsedCount >= *c.MaxUses:
		return ReasonUsageExceeded
	case amount < c.MinAmount:
		return ReasonBelowMinimum
	}
	return ""
}

// IsValid reports whether the coupon is usable for amount at now
func (c *Coupon) IsValid(amount float64, now time.Time) bool {
	return c.InvalidReason(amount, now) == ""
}

// CalculateDiscount returns the discount for amount, or 0 when the coupon is not usable.
// The result never exceeds amount.
func (c *Coupon) CalculateDiscount(amount float64, now time.Time) float64 {
	if !c.IsValid(amount, now) {
		return 0
	}

	var discount float64
	switch c.DiscountType {
	case DiscountPercentage:
		discount = amount * c.DiscountValue / 100
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			discount = *c.MaxDiscountAmount
		}
	case DiscountFixed:
		discount = math.Min(c.DiscountValue, amount)
	default:
		return 0
	}

	if discount < 0 {
		discount = 0
	}
	return RoundAmount(math.Min(discount, amount))
}

// Validate checks an admin-supplied coupon definition
func (c *Coupon) Validate() error {
	switch {
	case c.Code == "":
		return ErrInvalidCouponRule
	case c.DiscountType != DiscountPercentage && c.DiscountType != DiscountFixed:
		return ErrInvalidCouponRule
	case c.DiscountValue < 0:
		return ErrInvalidCouponRule
	case c.DiscountType == DiscountPercentage && c.DiscountValue > 100:
		return ErrInvalidCouponRule
	case c.MaxDiscountAmount != nil && (c.DiscountType != DiscountPercentage || *c.MaxDiscountAmount < 0):
		return ErrInvalidCouponRule
	case c.MinAmount < 0:
		return ErrInvalidCouponRule
	case c.MaxUses != nil && *c.MaxUses < 0:
		return ErrInvalidCouponRule
	case c.ValidUntil != nil && c.ValidUntil.Before(c.ValidFrom):
		return ErrInvalidCouponRule
	}
	return nil
}

// CouponRepository defines the contract for coupon data access.
// IncrementUsage must be a single atomic update at the storage layer.
type CouponRepository interface {
	Create(ctx context.Context, coupon *Coupon) error
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	FindAll(ctx context.Context) ([]Coupon, error)
	Update(ctx context.Context, coupon *Coupon) error
	DeleteByCode(ctx context.Context, code string) error
	IncrementUsage(ctx context.Context, code string) (*Coupon, error)
}
