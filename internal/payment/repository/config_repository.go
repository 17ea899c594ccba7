package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

type GormConfigRepository struct {
	db *gorm.DB
}

func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// Upsert inserts the config or replaces the one stored for the same email
func (r *GormConfigRepository) Upsert(ctx context.Context, cfg *domain.PaymentConfig) (*domain.PaymentConfig, error) {
	cfg.Email = domain.NormalizeEmail(cfg.Email)
	cfg.UpdatedAt = nowUTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"custom_amount", "is_active", "notes", "updated_at"}),
	}).Create(cfg).Error
	if err != nil {
		return nil, err
	}

	var stored domain.PaymentConfig
	if err := r.db.WithContext(ctx).Where("email = ?", cfg.Email).First(&stored).Error; err != nil {
		return nil, notFound(err, domain.ErrConfigNotFound)
	}
	return &stored, nil
}

func (r *GormConfigRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.PaymentConfig, error) {
	var cfg domain.PaymentConfig
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", domain.NormalizeEmail(email), true).
		First(&cfg).Error
	if err != nil {
		return nil, notFound(err, domain.ErrConfigNotFound)
	}
	return &cfg, nil
}

func (r *GormConfigRepository) FindAll(ctx context.Context) ([]domain.PaymentConfig, error) {
	var cfgs []domain.PaymentConfig
	err := r.db.WithContext(ctx).Order("email ASC").Find(&cfgs).Error
	return cfgs, err
}

func (r *GormConfigRepository) DeleteByEmail(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).
		Where("email = ?", domain.NormalizeEmail(email)).
		Delete(&domain.PaymentConfig{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConfigNotFound
	}
	return nil
}

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) GetBool(ctx context.Context, key string, fallback bool) (bool, error) {
	var setting domain.PaymentSetting
	err := r.db.WithContext(ctx).Where("name = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}

	v, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return fallback, nil
	}
	return v, nil
}

func (r *GormSettingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	setting := domain.PaymentSetting{
		Key:       key,
		Value:     strconv.FormatBool(value),
		UpdatedAt: nowUTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
