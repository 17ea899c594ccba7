package domain

import (
	"context"
	"time"
)

// PaymentConfig overrides the checkout amount for one customer email
type PaymentConfig struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	CustomAmount int64     `json:"customAmount" gorm:"not null"`
	IsActive     bool      `json:"isActive" gorm:"not null"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (PaymentConfig) TableName() string {
	return "payment_configs"
}

// PaymentSetting is a named switch shared by the checkout UI
type PaymentSetting struct {
	Key       string    `json:"key" gorm:"column:name;primaryKey;size:64"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (PaymentSetting) TableName() string {
	return "payment_settings"
}

// SettingCouponsEnabled toggles coupon entry in the checkout UI
const SettingCouponsEnabled = "coupons_enabled"

// CheckoutSettings are the platform-wide checkout parameters
type CheckoutSettings struct {
	Currency      string
	DefaultAmount int64
}

// ConfigRepository stores per-customer amount overrides. Upsert replaces any
// existing config for the same normalized email.
type ConfigRepository interface {
	Upsert(ctx context.Context, cfg *PaymentConfig) (*PaymentConfig, error)
	FindActiveByEmail(ctx context.Context, email string) (*PaymentConfig, error)
	FindAll(ctx context.Context) ([]PaymentConfig, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// SettingsRepository stores boolean switches
type SettingsRepository interface {
	GetBool(ctx context.Context, key string, fallback bool) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}
