package query

import (
	"context"
	"fmt"

	"github.com/tair/launchpad-payments/internal/payment/domain"
)

// ListPaymentsQuery represents the query to list payments
type ListPaymentsQuery struct {
	Status string
	Email  string
	Limit  int
	Offset int
}

// ListPaymentsHandler handles list payments query
type ListPaymentsHandler struct {
	repo domain.PaymentRepository
}

// NewListPaymentsHandler creates a new list payments handler
func NewListPaymentsHandler(repo domain.PaymentRepository) *ListPaymentsHandler {
	return &ListPaymentsHandler{repo: repo}
}

// Handle executes the list payments query
func (h *ListPaymentsHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]domain.Payment, error) {
	if query.Status != "" && !domain.IsValidStatus(query.Status) {
		return nil, domain.ErrInvalidStatus
	}

	limit, offset := page(query.Limit, query.Offset)
	filter := domain.PaymentFilter{
		Status: query.Status,
		Email:  domain.NormalizeEmail(query.Email),
	}

	payments, err := h.repo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}

// page clamps pagination to 1..100 with a default of 10
func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
