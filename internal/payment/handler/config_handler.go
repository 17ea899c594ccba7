package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/launchpad-payments/internal/payment/usecase/command"
)

type configRequest struct {
	Email        string `json:"email" validate:"required,email,max=255"`
	CustomAmount int64  `json:"customAmount" validate:"gt=0"`
	IsActive     *bool  `json:"isActive"`
	Notes        string `json:"notes" validate:"max=1000"`
}

// ListConfigs handles GET /api/payments/configs
func (h *PaymentHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	cfgs, err := h.queries.ListConfigs.Handle(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to list payment configs")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"configs": cfgs,
			"total":   len(cfgs),
		},
	})
}

// UpsertConfig handles PUT /api/payments/configs
func (h *PaymentHandler) UpsertConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if !h.decode(w, r, &req) || !h.valid(w, req) {
		return
	}

	cfg, err := h.commands.UpsertConfig.Handle(r.Context(), command.UpsertConfigCommand{
		Email:        req.Email,
		CustomAmount: req.CustomAmount,
		IsActive:     req.IsActive,
		Notes:        req.Notes,
	})
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to save payment config")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment config saved",
		Data:    cfg,
	})
}

// DeleteConfig handles DELETE /api/payments/configs/{email}
func (h *PaymentHandler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteConfig.Handle(r.Context(), mux.Vars(r)["email"]); err != nil {
		h.respondDomainError(w, r, err, "Failed to delete payment config")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment config deleted",
	})
}
