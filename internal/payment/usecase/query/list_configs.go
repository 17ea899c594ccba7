package query

import (
	"context"
	"fmt"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// ListConfigsHandler handles list payment configs query
type ListConfigsHandler struct {
	repo domain.ConfigRepository
}

// NewListConfigsHandler creates a new list configs handler
func NewListConfigsHandler(repo domain.ConfigRepository) *ListConfigsHandler {
	return &ListConfigsHandler{repo: repo}
}

// Handle executes the list configs query
func (h *ListConfigsHandler) Handle(ctx context.Context) ([]domain.PaymentConfig, error) {
	cfgs, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment configs: %w", err)
	}
	return cfgs, nil
}
