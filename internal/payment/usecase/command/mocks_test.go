package command

import (
	"context"
	"time"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

type mockPaymentRepo struct {
	CreateFunc           func(ctx context.Context, p *domain.Payment) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Payment, error)
	FindByOrderIDFunc    func(ctx context.Context, orderID string) (*domain.Payment, error)
	FindByCustomerIDFunc func(ctx context.Context, id uint, limit, offset int) ([]domain.Payment, error)
	FindAllFunc          func(ctx context.Context, f domain.PaymentFilter, limit, offset int) ([]domain.Payment, error)
	MarkCompletedFunc    func(ctx context.Context, orderID string, cb domain.Callback) (bool, error)
	MarkFailedFunc       func(ctx context.Context, orderID string, cb domain.Callback, reason string) (bool, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *mockPaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if m.FindByOrderIDFunc != nil {
		return m.FindByOrderIDFunc(ctx, orderID)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *mockPaymentRepo) FindByCustomerID(ctx context.Context, id uint, limit, offset int) ([]domain.Payment, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(ctx, id, limit, offset)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, f domain.PaymentFilter, limit, offset int) ([]domain.Payment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, f, limit, offset)
	}
	return nil, nil
}

func (m *mockPaymentRepo) MarkCompleted(ctx context.Context, orderID string, cb domain.Callback) (bool, error) {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, orderID, cb)
	}
	return true, nil
}

func (m *mockPaymentRepo) MarkFailed(ctx context.Context, orderID string, cb domain.Callback, reason string) (bool, error) {
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(ctx, orderID, cb, reason)
	}
	return true, nil
}

type mockCouponRepo struct {
	CreateFunc         func(ctx context.Context, c *domain.Coupon) error
	FindByCodeFunc     func(ctx context.Context, code string) (*domain.Coupon, error)
	FindAllFunc        func(ctx context.Context) ([]domain.Coupon, error)
	UpdateFunc         func(ctx context.Context, c *domain.Coupon) error
	DeleteByCodeFunc   func(ctx context.Context, code string) error
	IncrementUsageFunc func(ctx context.Context, code string) (*domain.Coupon, error)

	increments int
}

func (m *mockCouponRepo) Create(ctx context.Context, c *domain.Coupon) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCouponRepo) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, domain.ErrCouponNotFound
}

func (m *mockCouponRepo) FindAll(ctx context.Context) ([]domain.Coupon, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCouponRepo) Update(ctx context.Context, c *domain.Coupon) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCouponRepo) DeleteByCode(ctx context.Context, code string) error {
	if m.DeleteByCodeFunc != nil {
		return m.DeleteByCodeFunc(ctx, code)
	}
	return nil
}

func (m *mockCouponRepo) IncrementUsage(ctx context.Context, code string) (*domain.Coupon, error) {
	m.increments++
	if m.IncrementUsageFunc != nil {
		return m.IncrementUsageFunc(ctx, code)
	}
	return &domain.Coupon{Code: code}, nil
}

type mockProvider struct {
	CreateOrderFunc func(ctx context.Context, req domain.OrderRequest) (*domain.ProviderOrder, error)

	calls []domain.OrderRequest
}

func (m *mockProvider) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.ProviderOrder, error) {
	m.calls = append(m.calls, req)
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	return &domain.ProviderOrder{
		ID:          "order_test",
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		Receipt:     req.Receipt,
		Status:      "created",
	}, nil
}

func (m *mockProvider) KeyID() string { return "rzp_test_key" }

type stubVerifier bool

func (v stubVerifier) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return bool(v)
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }
