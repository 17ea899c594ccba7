package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// SaveCouponCommand represents the admin's coupon definition
type SaveCouponCommand struct {
	Code              string
	Description       string
	DiscountType      string
	DiscountValue     float64
	MaxDiscountAmount *float64
	MinAmount         float64
	MaxUses           *int
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	IsActive          *bool
}

func (cmd SaveCouponCommand) toCoupon(now time.Time) *domain.Coupon {
	coupon := &domain.Coupon{
		Code:              domain.NormalizeCode(cmd.Code),
		Description:       cmd.Description,
		DiscountType:      cmd.DiscountType,
		DiscountValue:     cmd.DiscountValue,
		MaxDiscountAmount: cmd.MaxDiscountAmount,
		MinAmount:         cmd.MinAmount,
		MaxUses:           cmd.MaxUses,
		ValidFrom:         now.UTC(),
		ValidUntil:        cmd.ValidUntil,
		IsActive:          true,
	}
	if cmd.ValidFrom != nil {
		coupon.ValidFrom = cmd.ValidFrom.UTC()
	}
	if cmd.IsActive != nil {
		coupon.IsActive = *cmd.IsActive
	}
	return coupon
}

// CreateCouponHandler handles create coupon command
type CreateCouponHandler struct {
	repo domain.CouponRepository
	now  func() time.Time
}

// NewCreateCouponHandler creates a new create coupon handler
func NewCreateCouponHandler(repo domain.CouponRepository) *CreateCouponHandler {
	return &CreateCouponHandler{repo: repo, now: time.Now}
}

// Handle executes the create coupon command
func (h *CreateCouponHandler) Handle(ctx context.Context, cmd SaveCouponCommand) (*domain.Coupon, error) {
	coupon := cmd.toCoupon(h.now())
	if err := coupon.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return coupon, nil
}

// UpdateCouponHandler handles update coupon command
type UpdateCouponHandler struct {
	repo domain.CouponRepository
}

// NewUpdateCouponHandler creates a new update coupon handler
func NewUpdateCouponHandler(repo domain.CouponRepository) *UpdateCouponHandler {
	return &UpdateCouponHandler{repo: repo}
}

// Handle replaces the editable fields of an existing coupon. Unset ValidFrom and
// IsActive keep their stored values.
func (h *UpdateCouponHandler) Handle(ctx context.Context, cmd SaveCouponCommand) (*domain.Coupon, error) {
	existing, err := h.repo.FindByCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}

	coupon := cmd.toCoupon(existing.ValidFrom)
	if cmd.IsActive == nil {
		coupon.IsActive = existing.IsActive
	}
	if err := coupon.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}

	return h.repo.FindByCode(ctx, coupon.Code)
}

// DeleteCouponHandler handles delete coupon command
type DeleteCouponHandler struct {
	repo domain.CouponRepository
}

// NewDeleteCouponHandler creates a new delete coupon handler
func NewDeleteCouponHandler(repo domain.CouponRepository) *DeleteCouponHandler {
	return &DeleteCouponHandler{repo: repo}
}

// Handle executes the delete coupon command
func (h *DeleteCouponHandler) Handle(ctx context.Context, code string) error {
	code = domain.NormalizeCode(code)
	if code == "" {
		return fmt.Errorf("%w: code", domain.ErrMissingFields)
	}
	return h.repo.DeleteByCode(ctx, code)
}
