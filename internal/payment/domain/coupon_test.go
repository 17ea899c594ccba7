package domain

import (
	"errors"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func usable() Coupon {
	return Coupon{
		Code:          "SAVE20",
		DiscountType:  DiscountPercentage,
		DiscountValue: 20,
		ValidFrom:     now.Add(-24 * time.Hour),
		IsActive:      true,
	}
}

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name   string
		coupon func() Coupon
		amount float64
		want   float64
	}{
		{
			name: "percentage capped by max discount",
			coupon: func() Coupon {
				c := usable()
				c.MaxDiscountAmount = floatPtr(500)
				return c
			},
			amount: 5000,
			want:   500,
		},
		{
			name:   "percentage without cap",
			coupon: usable,
			amount: 1000,
			want:   200,
		},
		{
			name: "fixed never exceeds order amount",
			coupon: func() Coupon {
				c := usable()
				c.DiscountType = DiscountFixed
				c.DiscountValue = 1000
				return c
			},
			amount: 500,
			want:   500,
		},
		{
			name: "fixed below order amount",
			coupon: func() Coupon {
				c := usable()
				c.DiscountType = DiscountFixed
				c.DiscountValue = 750
				return c
			},
			amount: 4999,
			want:   750,
		},
		{
			name: "rounded to two decimals",
			coupon: func() Coupon {
				c := usable()
				c.DiscountValue = 12.5
				return c
			},
			amount: 4999,
			want:   624.88,
		},
		{
			name: "invalid coupon yields zero",
			coupon: func() Coupon {
				c := usable()
				c.IsActive = false
				return c
			},
			amount: 1000,
			want:   0,
		},
		{
			name: "unknown type yields zero",
			coupon: func() Coupon {
				c := usable()
				c.DiscountType = "bogus"
				return c
			},
			amount: 1000,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.coupon()
			if got := c.CalculateDiscount(tt.amount, now); got != tt.want {
				t.Errorf("CalculateDiscount(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestIsValidEachConditionIndependently(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Coupon)
		amount float64
		reason string
	}{
		{"below minimum amount", func(c *Coupon) { c.MinAmount = 1000 }, 999, ReasonBelowMinimum},
		{"usage at limit", func(c *Coupon) { c.MaxUses = intPtr(3); c.UsedCount = 3 }, 1000, ReasonUsageExceeded},
		{"usage above limit", func(c *Coupon) { c.MaxUses = intPtr(3); c.UsedCount = 4 }, 1000, ReasonUsageExceeded},
		{"expired", func(c *Coupon) { c.ValidUntil = timePtr(now.Add(-time.Second)) }, 1000, ReasonExpired},
		{"inactive", func(c *Coupon) { c.IsActive = false }, 1000, ReasonInactive},
		{"not yet valid", func(c *Coupon) { c.ValidFrom = now.Add(time.Hour) }, 1000, ReasonNotYetValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := usable()
			tt.mutate(&c)
			if c.IsValid(tt.amount, now) {
				t.Fatal("expected coupon to be invalid")
			}
			if got := c.InvalidReason(tt.amount, now); got != tt.reason {
				t.Errorf("reason = %q, want %q", got, tt.reason)
			}
		})
	}
}

func TestIsValidBoundaries(t *testing.T) {
	c := usable()
	c.MinAmount = 1000
	c.MaxUses = intPtr(3)
	c.UsedCount = 2
	c.ValidUntil = timePtr(now)
	c.ValidFrom = now

	if !c.IsValid(1000, now) {
		t.Errorf("coupon should be valid at its boundaries, reason %q", c.InvalidReason(1000, now))
	}
}

func TestValidate(t *testing.T) {
	ok := usable()
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []func(*Coupon){
		func(c *Coupon) { c.Code = "" },
		func(c *Coupon) { c.DiscountType = "bogo" },
		func(c *Coupon) { c.DiscountValue = 101 },
		func(c *Coupon) { c.DiscountValue = -1 },
		func(c *Coupon) { c.DiscountType = DiscountFixed; c.MaxDiscountAmount = floatPtr(10) },
		func(c *Coupon) { c.MinAmount = -5 },
		func(c *Coupon) { c.MaxUses = intPtr(-1) },
		func(c *Coupon) { c.ValidUntil = timePtr(c.ValidFrom.Add(-time.Hour)) },
	}
	for i, mutate := range bad {
		c := usable()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidCouponRule) {
			t.Errorf("case %d: err = %v, want ErrInvalidCouponRule", i, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := NormalizeCode("  save20 "); got != "SAVE20" {
		t.Errorf("NormalizeCode = %q", got)
	}
	if got := NormalizeEmail(" A@B.com "); got != "a@b.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestProviderErrorUnwrapsToOrderCreation(t *testing.T) {
	err := error(&ProviderError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "amount too low"})
	if !errors.Is(err, ErrOrderCreation) {
		t.Error("ProviderError should match ErrOrderCreation")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
