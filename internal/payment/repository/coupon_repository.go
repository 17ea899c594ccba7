package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

type GormCouponRepository struct {
	db *gorm.DB
}

func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

func (r *GormCouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	coupon.Code = domain.NormalizeCode(coupon.Code)

	if _, err := r.FindByCode(ctx, coupon.Code); err == nil {
		return domain.ErrDuplicateCoupon
	} else if !errors.Is(err, domain.ErrCouponNotFound) {
		return err
	}

	// the unique index still guards against a concurrent create
	if err := r.db.WithContext(ctx).Create(coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCoupon
		}
		return err
	}
	return nil
}

func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ?", domain.NormalizeCode(code)).
		First(&coupon).Error
	if err != nil {
		return nil, notFound(err, domain.ErrCouponNotFound)
	}
	return &coupon, nil
}

func (r *GormCouponRepository) FindAll(ctx context.Context) ([]domain.Coupon, error) {
	var coupons []domain.Coupon
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

// Update rewrites the editable fields of the coupon identified by its code.
// used_count is never written here.
func (r *GormCouponRepository) Update(ctx context.Context, coupon *domain.Coupon) error {
	coupon.Code = domain.NormalizeCode(coupon.Code)

	res := r.db.WithContext(ctx).Model(&domain.Coupon{}).
		Where("code = ?", coupon.Code).
		Updates(map[string]interface{}{
			"description":         coupon.Description,
			"discount_type":       coupon.DiscountType,
			"discount_value":      coupon.DiscountValue,
			"max_discount_amount": coupon.MaxDiscountAmount,
			"min_amount":          coupon.MinAmount,
			"max_uses":            coupon.MaxUses,
			"valid_from":          coupon.ValidFrom,
			"valid_until":         coupon.ValidUntil,
			"is_active":           coupon.IsActive,
			"updated_at":          nowUTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

func (r *GormCouponRepository) DeleteByCode(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Where("code = ?", domain.NormalizeCode(code)).
		Delete(&domain.Coupon{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

// IncrementUsage bumps used_count by one in a single UPDATE that also enforces max_uses,
// so concurrent redemptions can never push the counter past the cap.
func (r *GormCouponRepository) IncrementUsage(ctx context.Context, code string) (*domain.Coupon, error) {
	code = domain.NormalizeCode(code)

	res := r.db.WithContext(ctx).Model(&domain.Coupon{}).
		Where("code = ?", code).
		Where("(max_uses IS NULL OR used_count < max_uses)").
		Updates(map[string]interface{}{
			"used_count": gorm.Expr("used_count + ?", 1),
			"updated_at": nowUTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	coupon, err := r.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return coupon, domain.ErrCouponExhausted
	}
	return coupon, nil
}
