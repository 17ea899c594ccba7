package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/internal/payment/repository"
	"github.com/tair/launchpad-payments/internal/testutil"
)

func TestCreateCoupon(t *testing.T) {
	var stored *domain.Coupon
	repo := &mockCouponRepo{CreateFunc: func(ctx context.Context, c *domain.Coupon) error {
		stored = c
		return nil
	}}
	h := NewCreateCouponHandler(repo)
	h.now = func() time.Time { return fixedNow }

	c, err := h.Handle(context.Background(), SaveCouponCommand{
		Code: " launch50 ", DiscountType: domain.DiscountPercentage, DiscountValue: 50,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if stored != c || c.Code != "LAUNCH50" || !c.IsActive || !c.ValidFrom.Equal(fixedNow) || c.UsedCount != 0 {
		t.Errorf("coupon = %+v", c)
	}
}

func TestCreateCouponValidation(t *testing.T) {
	repo := &mockCouponRepo{CreateFunc: func(ctx context.Context, c *domain.Coupon) error {
		t.Error("invalid coupon must not be stored")
		return nil
	}}

	for _, cmd := range []SaveCouponCommand{
		{Code: "", DiscountType: domain.DiscountFixed, DiscountValue: 1},
		{Code: "X", DiscountType: "bogus", DiscountValue: 1},
		{Code: "X", DiscountType: domain.DiscountPercentage, DiscountValue: 150},
		{Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: -1},
	} {
		if _, err := NewCreateCouponHandler(repo).Handle(context.Background(), cmd); !errors.Is(err, domain.ErrInvalidCouponRule) {
			t.Errorf("%+v: err = %v", cmd, err)
		}
	}
}

func TestCreateCouponDuplicate(t *testing.T) {
	repo := &mockCouponRepo{CreateFunc: func(ctx context.Context, c *domain.Coupon) error {
		return domain.ErrDuplicateCoupon
	}}
	_, err := NewCreateCouponHandler(repo).Handle(context.Background(), SaveCouponCommand{
		Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: 1,
	})
	if !errors.Is(err, domain.ErrDuplicateCoupon) {
		t.Fatalf("err = %v, want ErrDuplicateCoupon", err)
	}
}

func TestUpdateCouponKeepsUsage(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewGormCouponRepository(db)

	created, err := NewCreateCouponHandler(repo).Handle(ctx, SaveCouponCommand{
		Code: "SPRING", DiscountType: domain.DiscountFixed, DiscountValue: 100, MaxUses: ptr(2),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.IncrementUsage(ctx, "SPRING"); err != nil {
		t.Fatalf("increment: %v", err)
	}

	updated, err := NewUpdateCouponHandler(repo).Handle(ctx, SaveCouponCommand{
		Code: "spring", DiscountType: domain.DiscountPercentage, DiscountValue: 20, MaxUses: ptr(10),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.UsedCount != 1 || updated.DiscountValue != 20 || *updated.MaxUses != 10 {
		t.Errorf("updated = %+v", updated)
	}
	if !updated.IsActive || !updated.ValidFrom.Equal(created.ValidFrom) {
		t.Errorf("unset fields should keep stored values: %+v", updated)
	}

	if _, err := NewUpdateCouponHandler(repo).Handle(ctx, SaveCouponCommand{Code: "MISSING", DiscountType: domain.DiscountFixed}); !errors.Is(err, domain.ErrCouponNotFound) {
		t.Errorf("err = %v, want ErrCouponNotFound", err)
	}

	if err := NewDeleteCouponHandler(repo).Handle(ctx, "spring"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := NewDeleteCouponHandler(repo).Handle(ctx, "spring"); !errors.Is(err, domain.ErrCouponNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestUpsertConfig(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	h := NewUpsertConfigHandler(repository.NewGormConfigRepository(db))

	first, err := h.Handle(ctx, UpsertConfigCommand{Email: "Investor@Fund.io", CustomAmount: 9999})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	second, err := h.Handle(ctx, UpsertConfigCommand{Email: "investor@fund.io", CustomAmount: 1999, Notes: "promo"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if first.ID != second.ID || second.CustomAmount != 1999 || !second.IsActive || second.Notes != "promo" {
		t.Errorf("first = %+v, second = %+v", first, second)
	}

	tests := []struct {
		cmd  UpsertConfigCommand
		want error
	}{
		{UpsertConfigCommand{Email: "", CustomAmount: 1}, domain.ErrMissingFields},
		{UpsertConfigCommand{Email: "not-an-email", CustomAmount: 1}, domain.ErrInvalidConfig},
		{UpsertConfigCommand{Email: "a@b", CustomAmount: 1}, domain.ErrInvalidConfig},
		{UpsertConfigCommand{Email: "two@@fund.io", CustomAmount: 1}, domain.ErrInvalidConfig},
		{UpsertConfigCommand{Email: "Investor <investor@fund.io>", CustomAmount: 1}, domain.ErrInvalidConfig},
		{UpsertConfigCommand{Email: "a@b.com", CustomAmount: 0}, domain.ErrInvalidAmount},
	}
	for _, tt := range tests {
		if _, err := h.Handle(ctx, tt.cmd); !errors.Is(err, tt.want) {
			t.Errorf("%+v: err = %v, want %v", tt.cmd, err, tt.want)
		}
	}

	del := NewDeleteConfigHandler(repository.NewGormConfigRepository(db))
	if err := del.Handle(ctx, "INVESTOR@fund.io"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := del.Handle(ctx, "investor@fund.io"); !errors.Is(err, domain.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestSetCouponFlag(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	settings := repository.NewGormSettingsRepository(db)

	if err := NewSetCouponFlagHandler(settings).Handle(ctx, false); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	enabled, err := settings.GetBool(ctx, domain.SettingCouponsEnabled, true)
	if err != nil || enabled {
		t.Errorf("enabled = %v, err = %v", enabled, err)
	}
}
