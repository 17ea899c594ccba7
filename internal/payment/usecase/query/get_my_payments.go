package query

import (
	"context"
	"fmt"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// GetMyPaymentsQuery represents the query to get the caller's own payments
type GetMyPaymentsQuery struct {
	CustomerID uint
	Limit      int
	Offset     int
}

// GetMyPaymentsHandler handles get my payments query
type GetMyPaymentsHandler struct {
	repo domain.PaymentRepository
}

// NewGetMyPaymentsHandler creates a new get my payments handler
func NewGetMyPaymentsHandler(repo domain.PaymentRepository) *GetMyPaymentsHandler {
	return &GetMyPaymentsHandler{repo: repo}
}

// Handle executes the get my payments query
func (h *GetMyPaymentsHandler) Handle(ctx context.Context, query GetMyPaymentsQuery) ([]domain.Payment, error) {
	if query.CustomerID == 0 {
		return nil, fmt.Errorf("%w: customer_id", domain.ErrMissingFields)
	}

	limit, offset := page(query.Limit, query.Offset)
	payments, err := h.repo.FindByCustomerID(ctx, query.CustomerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer payments: %w", err)
	}

	return payments, nil
}
