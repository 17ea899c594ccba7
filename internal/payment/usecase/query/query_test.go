package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/internal/payment/repository"
	"github.com/tair/launchpad-payments/internal/testutil"
)

var (
	inr      = domain.CheckoutSettings{Currency: "INR", DefaultAmount: 4999}
	fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func seedPayments(t *testing.T, db *gorm.DB) *repository.GormPaymentRepository {
	t.Helper()
	repo := repository.NewGormPaymentRepository(db)
	customer := uint(42)
	for i, p := range []domain.Payment{
		{OrderID: "order_a", CustomerEmail: "a@b.com", CustomerID: &customer, Status: domain.StatusPending},
		{OrderID: "order_b", CustomerEmail: "a@b.com", CustomerID: &customer, Status: domain.StatusCompleted},
		{OrderID: "order_c", CustomerEmail: "c@d.com", Status: domain.StatusFailed},
	} {
		p.Receipt = "rcpt"
		p.Currency = "INR"
		p.RequestedAmount = int64(1000 * (i + 1))
		p.FinalAmount = float64(p.RequestedAmount)
		if err := repo.Create(context.Background(), &p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestGetAmount(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	configs := repository.NewGormConfigRepository(db)

	if _, err := configs.Upsert(ctx, &domain.PaymentConfig{Email: "vip@fund.io", CustomAmount: 1999, IsActive: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := configs.Upsert(ctx, &domain.PaymentConfig{Email: "old@fund.io", CustomAmount: 99, IsActive: false}); err != nil {
		t.Fatal(err)
	}

	h := NewGetAmountHandler(configs, inr)
	tests := []struct {
		email  string
		amount int64
		custom bool
	}{
		{" VIP@fund.io ", 1999, true},
		{"old@fund.io", 4999, false},
		{"nobody@fund.io", 4999, false},
		{"", 4999, false},
	}
	for _, tt := range tests {
		res, err := h.Handle(ctx, GetAmountQuery{Email: tt.email})
		if err != nil {
			t.Fatalf("%q: %v", tt.email, err)
		}
		if res.Amount != tt.amount || res.HasCustomAmount != tt.custom || res.Currency != "INR" {
			t.Errorf("%q: got %+v", tt.email, res)
		}
	}
}

func TestGetStatus(t *testing.T) {
	repo := seedPayments(t, testutil.NewDB(t))
	h := NewGetStatusHandler(repo)

	p, err := h.Handle(context.Background(), GetStatusQuery{OrderID: "order_b"})
	if err != nil || p.Status != domain.StatusCompleted {
		t.Fatalf("p = %+v, err = %v", p, err)
	}
	if _, err := h.Handle(context.Background(), GetStatusQuery{OrderID: "order_zzz"}); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Errorf("err = %v, want ErrPaymentNotFound", err)
	}
	if _, err := h.Handle(context.Background(), GetStatusQuery{}); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("err = %v, want ErrMissingFields", err)
	}
}

func TestListPayments(t *testing.T) {
	repo := seedPayments(t, testutil.NewDB(t))
	h := NewListPaymentsHandler(repo)
	ctx := context.Background()

	all, err := h.Handle(ctx, ListPaymentsQuery{})
	if err != nil || len(all) != 3 {
		t.Fatalf("all = %d, err = %v", len(all), err)
	}
	byEmail, _ := h.Handle(ctx, ListPaymentsQuery{Email: "A@B.com"})
	if len(byEmail) != 2 {
		t.Errorf("by email = %d", len(byEmail))
	}
	failed, _ := h.Handle(ctx, ListPaymentsQuery{Status: domain.StatusFailed})
	if len(failed) != 1 || failed[0].OrderID != "order_c" {
		t.Errorf("failed = %+v", failed)
	}
	if _, err := h.Handle(ctx, ListPaymentsQuery{Status: "bogus"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestGetMyPayments(t *testing.T) {
	repo := seedPayments(t, testutil.NewDB(t))
	h := NewGetMyPaymentsHandler(repo)

	mine, err := h.Handle(context.Background(), GetMyPaymentsQuery{CustomerID: 42, Limit: 1})
	if err != nil || len(mine) != 1 {
		t.Fatalf("mine = %+v, err = %v", mine, err)
	}
	if _, err := h.Handle(context.Background(), GetMyPaymentsQuery{}); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("err = %v", err)
	}
}

func TestPage(t *testing.T) {
	tests := []struct{ limit, offset, wantLimit, wantOffset int }{
		{0, 0, 10, 0},
		{500, 5, 100, 5},
		{25, -1, 25, 0},
	}
	for _, tt := range tests {
		l, o := page(tt.limit, tt.offset)
		if l != tt.wantLimit || o != tt.wantOffset {
			t.Errorf("page(%d, %d) = %d, %d", tt.limit, tt.offset, l, o)
		}
	}
}

func TestValidateCoupon(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	coupons := repository.NewGormCouponRepository(db)
	settings := repository.NewGormSettingsRepository(db)

	for _, c := range []domain.Coupon{
		{Code: "LAUNCH50", DiscountType: domain.DiscountPercentage, DiscountValue: 50, MaxDiscountAmount: func() *float64 { v := 500.0; return &v }()},
		{Code: "BIGSPEND", DiscountType: domain.DiscountFixed, DiscountValue: 100, MinAmount: 10000},
	} {
		c.ValidFrom = fixedNow.Add(-time.Hour)
		c.IsActive = true
		if err := coupons.Create(ctx, &c); err != nil {
			t.Fatal(err)
		}
	}

	h := NewValidateCouponHandler(coupons, settings)
	h.now = func() time.Time { return fixedNow }

	p, err := h.Handle(ctx, ValidateCouponQuery{Code: "launch50", Amount: 4999})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Valid || p.DiscountAmount != 500 || p.FinalAmount != 4499 {
		t.Errorf("preview = %+v", p)
	}

	p, _ = h.Handle(ctx, ValidateCouponQuery{Code: "BIGSPEND", Amount: 4999})
	if p.Valid || p.Reason != domain.ReasonBelowMinimum || p.FinalAmount != 4999 {
		t.Errorf("preview = %+v", p)
	}

	p, _ = h.Handle(ctx, ValidateCouponQuery{Code: "NOPE", Amount: 4999})
	if p.Valid || p.Reason != ReasonNotFound {
		t.Errorf("preview = %+v", p)
	}

	if err := settings.SetBool(ctx, domain.SettingCouponsEnabled, false); err != nil {
		t.Fatal(err)
	}
	p, _ = h.Handle(ctx, ValidateCouponQuery{Code: "LAUNCH50", Amount: 4999})
	if p.Valid || p.Reason != ReasonCouponsDisabled {
		t.Errorf("preview = %+v", p)
	}

	flag, err := NewGetCouponFlagHandler(settings).Handle(ctx)
	if err != nil || flag {
		t.Errorf("flag = %v, err = %v", flag, err)
	}

	if _, err := h.Handle(ctx, ValidateCouponQuery{Code: "LAUNCH50", Amount: 0}); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("err = %v", err)
	}
}

func TestListCouponsAndConfigs(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	list, err := NewListCouponsHandler(repository.NewGormCouponRepository(db)).Handle(ctx)
	if err != nil || len(list) != 0 {
		t.Errorf("coupons = %v, err = %v", list, err)
	}

	configs := repository.NewGormConfigRepository(db)
	if _, err := configs.Upsert(ctx, &domain.PaymentConfig{Email: "b@x.io", CustomAmount: 1, IsActive: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := configs.Upsert(ctx, &domain.PaymentConfig{Email: "a@x.io", CustomAmount: 2, IsActive: true}); err != nil {
		t.Fatal(err)
	}
	cfgs, err := NewListConfigsHandler(configs).Handle(ctx)
	if err != nil || len(cfgs) != 2 || cfgs[0].Email != "a@x.io" {
		t.Errorf("configs = %+v, err = %v", cfgs, err)
	}
}
