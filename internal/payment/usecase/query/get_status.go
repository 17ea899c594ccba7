package query

import (
	"context"
	"fmt"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// GetStatusQuery represents the query to get a payment by provider order id
type GetStatusQuery struct {
	OrderID string
}

// GetStatusHandler handles get status query
type GetStatusHandler struct {
	repo domain.PaymentRepository
}

// NewGetStatusHandler creates a new get status handler
func NewGetStatusHandler(repo domain.PaymentRepository) *GetStatusHandler {
	return &GetStatusHandler{repo: repo}
}

// Handle executes the get status query
func (h *GetStatusHandler) Handle(ctx context.Context, query GetStatusQuery) (*domain.Payment, error) {
	if query.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id", domain.ErrMissingFields)
	}

	return h.repo.FindByOrderID(ctx, query.OrderID)
}
