package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// AutoMigrate creates or updates every table owned by the payment service
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Payment{},
		&domain.Coupon{},
		&domain.PaymentConfig{},
		&domain.PaymentSetting{},
	)
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *GormPaymentRepository) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, notFound(err, domain.ErrPaymentNotFound)
	}
	return &payment, nil
}

func (r *GormPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, notFound(err, domain.ErrPaymentNotFound)
	}
	return &payment, nil
}

func (r *GormPaymentRepository) FindByCustomerID(ctx context.Context, customerID uint, limit, offset int) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *GormPaymentRepository) FindAll(ctx context.Context, filter domain.PaymentFilter, limit, offset int) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Payment{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		q = q.Where("customer_email = ?", domain.NormalizeEmail(filter.Email))
	}

	var payments []domain.Payment
	err := q.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// MarkCompleted moves a pending payment to completed in one conditional UPDATE
func (r *GormPaymentRepository) MarkCompleted(ctx context.Context, orderID string, cb domain.Callback) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("order_id = ? AND status = ?", orderID, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":              domain.StatusCompleted,
			"provider_payment_id": cb.PaymentID,
			"provider_signature":  cb.Signature,
			"verification_error":  nil,
			"completed_at":        cb.At,
			"updated_at":          cb.At,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkFailed moves a pending payment to failed in one conditional UPDATE
func (r *GormPaymentRepository) MarkFailed(ctx context.Context, orderID string, cb domain.Callback, reason string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("order_id = ? AND status = ?", orderID, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":              domain.StatusFailed,
			"provider_payment_id": cb.PaymentID,
			"provider_signature":  cb.Signature,
			"verification_error":  reason,
			"updated_at":          cb.At,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
