package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/launchpad-payments/internal/payment/usecase/command"
	"github.com/tair/launchpad-payments/internal/payment/usecase/query"
	"github.com/tair/launchpad-payments/pkg/logger"
)

type couponRequest struct {
	Code              string     `json:"code" validate:"omitempty,max=64"`
	Description       string     `json:"description" validate:"max=500"`
	DiscountType      string     `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue     float64    `json:"discountValue" validate:"gte=0"`
	MaxDiscountAmount *float64   `json:"maxDiscountAmount" validate:"omitempty,gte=0"`
	MinAmount         float64    `json:"minAmount" validate:"gte=0"`
	MaxUses           *int       `json:"maxUses" validate:"omitempty,gte=0"`
	ValidFrom         *time.Time `json:"validFrom"`
	ValidUntil        *time.Time `json:"validUntil"`
	IsActive          *bool      `json:"isActive"`
}

func (req couponRequest) command(code string) command.SaveCouponCommand {
	return command.SaveCouponCommand{
		Code:              code,
		Description:       req.Description,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		MinAmount:         req.MinAmount,
		MaxUses:           req.MaxUses,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
		IsActive:          req.IsActive,
	}
}

type validateCouponRequest struct {
	Code   string `json:"code" validate:"required,max=64"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

type couponSettingsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ValidateCoupon handles POST /api/payments/coupons/validate
func (h *PaymentHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req validateCouponRequest
	if !h.decode(w, r, &req) || !h.valid(w, req) {
		return
	}

	preview, err := h.queries.ValidateCoupon.Handle(r.Context(), query.ValidateCouponQuery{
		Code:   req.Code,
		Amount: req.Amount,
	})
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to validate coupon")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: preview})
}

// GetCouponSettings handles GET /api/payments/coupon-settings
func (h *PaymentHandler) GetCouponSettings(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.queries.GetCouponFlag.Handle(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to read coupon settings")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"enabled": enabled},
	})
}

// SetCouponSettings handles PUT /api/payments/coupon-settings
func (h *PaymentHandler) SetCouponSettings(w http.ResponseWriter, r *http.Request) {
	var req couponSettingsRequest
	if !h.decode(w, r, &req) || !h.valid(w, req) {
		return
	}

	if err := h.commands.SetCouponFlag.Handle(r.Context(), *req.Enabled); err != nil {
		h.respondDomainError(w, r, err, "Failed to save coupon settings")
		return
	}

	logger.Info(r.Context()).Bool("enabled", *req.Enabled).Msg("Coupon entry toggled")
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Coupon settings updated",
		Data:    map[string]bool{"enabled": *req.Enabled},
	})
}

// ListCoupons handles GET /api/payments/coupons
func (h *PaymentHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.queries.ListCoupons.Handle(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to list coupons")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"coupons": coupons,
			"total":   len(coupons),
		},
	})
}

// CreateCoupon handles POST /api/payments/coupons
func (h *PaymentHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if !h.decode(w, r, &req) || !h.valid(w, req) {
		return
	}

	coupon, err := h.commands.CreateCoupon.Handle(r.Context(), req.command(req.Code))
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to create coupon")
		return
	}

	logger.Info(r.Context()).Str("coupon_code", coupon.Code).Msg("Coupon created")
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Coupon created successfully",
		Data:    coupon,
	})
}

// UpdateCoupon handles PUT /api/payments/coupons/{code}
func (h *PaymentHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if !h.decode(w, r, &req) || !h.valid(w, req) {
		return
	}

	coupon, err := h.commands.UpdateCoupon.Handle(r.Context(), req.command(mux.Vars(r)["code"]))
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to update coupon")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Coupon updated successfully",
		Data:    coupon,
	})
}

// DeleteCoupon handles DELETE /api/payments/coupons/{code}
func (h *PaymentHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.commands.DeleteCoupon.Handle(r.Context(), code); err != nil {
		h.respondDomainError(w, r, err, "Failed to delete coupon")
		return
	}

	logger.Info(r.Context()).Str("coupon_code", code).Msg("Coupon deleted")
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Coupon deleted successfully",
	})
}
