package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// GetAmountQuery asks for the checkout amount of a customer
type GetAmountQuery struct {
	Email string
}

// AmountResult is the amount a customer is asked to pay, in major units
type AmountResult struct {
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	HasCustomAmount bool   `json:"hasCustomAmount"`
}

// GetAmountHandler resolves per-customer overrides against the platform default
type GetAmountHandler struct {
	repo     domain.ConfigRepository
	settings domain.CheckoutSettings
}

// NewGetAmountHandler creates a new get amount handler
func NewGetAmountHandler(repo domain.ConfigRepository, settings domain.CheckoutSettings) *GetAmountHandler {
	return &GetAmountHandler{repo: repo, settings: settings}
}

// Handle executes the get amount query
func (h *GetAmountHandler) Handle(ctx context.Context, query GetAmountQuery) (*AmountResult, error) {
	result := &AmountResult{
		Amount:   h.settings.DefaultAmount,
		Currency: h.settings.Currency,
	}

	email := domain.NormalizeEmail(query.Email)
	if email == "" {
		return result, nil
	}

	cfg, err := h.repo.FindActiveByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrConfigNotFound):
		return result, nil
	case err != nil:
		return nil, fmt.Errorf("failed to resolve payment amount: %w", err)
	}

	result.Amount = cfg.CustomAmount
	result.HasCustomAmount = true
	return result, nil
}
