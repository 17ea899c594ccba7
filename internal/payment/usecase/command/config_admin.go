package command

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// UpsertConfigCommand sets a custom checkout amount for one email
type UpsertConfigCommand struct {
	Email        string
	CustomAmount int64
	IsActive     *bool
	Notes        string
}

// UpsertConfigHandler handles upsert config command
type UpsertConfigHandler struct {
	repo     domain.ConfigRepository
	validate *validator.Validate
}

// NewUpsertConfigHandler creates a new upsert config handler
func NewUpsertConfigHandler(repo domain.ConfigRepository) *UpsertConfigHandler {
	return &UpsertConfigHandler{repo: repo, validate: validator.New()}
}

// Handle executes the upsert config command
func (h *UpsertConfigHandler) Handle(ctx context.Context, cmd UpsertConfigCommand) (*domain.PaymentConfig, error) {
	email := domain.NormalizeEmail(cmd.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email", domain.ErrMissingFields)
	}
	if err := h.validate.Var(email, "email,max=255"); err != nil {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalidConfig)
	}
	if cmd.CustomAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	active := true
	if cmd.IsActive != nil {
		active = *cmd.IsActive
	}

	cfg, err := h.repo.Upsert(ctx, &domain.PaymentConfig{
		Email:        email,
		CustomAmount: cmd.CustomAmount,
		IsActive:     active,
		Notes:        cmd.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save payment config: %w", err)
	}
	return cfg, nil
}

// DeleteConfigHandler handles delete config command
type DeleteConfigHandler struct {
	repo domain.ConfigRepository
}

// NewDeleteConfigHandler creates a new delete config handler
func NewDeleteConfigHandler(repo domain.ConfigRepository) *DeleteConfigHandler {
	return &DeleteConfigHandler{repo: repo}
}

// Handle executes the delete config command
func (h *DeleteConfigHandler) Handle(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email", domain.ErrMissingFields)
	}
	return h.repo.DeleteByEmail(ctx, email)
}

// SetCouponFlagHandler toggles coupon entry in the checkout UI
type SetCouponFlagHandler struct {
	repo domain.SettingsRepository
}

// NewSetCouponFlagHandler creates a new set coupon flag handler
func NewSetCouponFlagHandler(repo domain.SettingsRepository) *SetCouponFlagHandler {
	return &SetCouponFlagHandler{repo: repo}
}

// Handle stores the flag
func (h *SetCouponFlagHandler) Handle(ctx context.Context, enabled bool) error {
	if err := h.repo.SetBool(ctx, domain.SettingCouponsEnabled, enabled); err != nil {
		return fmt.Errorf("failed to save coupon setting: %w", err)
	}
	return nil
}
