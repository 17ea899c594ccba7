package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/internal/payment/usecase/command"
	"github.com/tair/launchpad-payments/internal/payment/usecase/query"
	"github.com/tair/launchpad-payments/kafka"
	"github.com/tair/launchpad-payments/pkg/logger"
)

// CommandHandlers groups the write-side use cases
type CommandHandlers struct {
	CreateOrder   *command.CreateOrderHandler
	VerifyPayment *command.VerifyPaymentHandler
	CreateCoupon  *command.CreateCouponHandler
	UpdateCoupon  *command.UpdateCouponHandler
	DeleteCoupon  *command.DeleteCouponHandler
	UpsertConfig  *command.UpsertConfigHandler
	DeleteConfig  *command.DeleteConfigHandler
	SetCouponFlag *command.SetCouponFlagHandler
}

// QueryHandlers groups the read-side use cases
type QueryHandlers struct {
	GetAmount      *query.GetAmountHandler
	GetStatus      *query.GetStatusHandler
	ListPayments   *query.ListPaymentsHandler
	GetMyPayments  *query.GetMyPaymentsHandler
	ListCoupons    *query.ListCouponsHandler
	ValidateCoupon *query.ValidateCouponHandler
	GetCouponFlag  *query.GetCouponFlagHandler
	ListConfigs    *query.ListConfigsHandler
}

// PaymentHandler handles HTTP requests for payments using CQRS pattern
type PaymentHandler struct {
	commands  CommandHandlers
	queries   QueryHandlers
	publisher EventPublisher
	limiter   *RateLimiter
	validate  *validator.Validate
}

// NewPaymentHandler creates a new payment handler. publisher and limiter may be nil.
func NewPaymentHandler(commands CommandHandlers, queries QueryHandlers, publisher EventPublisher, limiter *RateLimiter) *PaymentHandler {
	return &PaymentHandler{
		commands:  commands,
		queries:   queries,
		publisher: publisher,
		limiter:   limiter,
		validate:  newValidator(),
	}
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type createOrderRequest struct {
	Amount     float64 `json:"amount"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	CouponCode string  `json:"couponCode" validate:"omitempty,max=64"`
}

// verifyRequest accepts both the documented field names and the ones the
// provider's checkout widget emits
type verifyRequest struct {
	OrderID      string `json:"orderId"`
	PaymentID    string `json:"paymentId"`
	Signature    string `json:"signature"`
	CouponCode   string `json:"couponCode"`
	RzpOrderID   string `json:"razorpay_order_id"`
	RzpPaymentID string `json:"razorpay_payment_id"`
	RzpSignature string `json:"razorpay_signature"`
}

func (r verifyRequest) command() command.VerifyPaymentCommand {
	cmd := command.VerifyPaymentCommand{
		OrderID:    r.OrderID,
		PaymentID:  r.PaymentID,
		Signature:  r.Signature,
		CouponCode: r.CouponCode,
	}
	if cmd.OrderID == "" {
		cmd.OrderID = r.RzpOrderID
	}
	if cmd.PaymentID == "" {
		cmd.PaymentID = r.RzpPaymentID
	}
	if cmd.Signature == "" {
		cmd.Signature = r.RzpSignature
	}
	return cmd
}

// GetAmount handles GET /api/payments/amount
func (h *PaymentHandler) GetAmount(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetAmount.Handle(r.Context(), query.GetAmountQuery{
		Email: r.URL.Query().Get("email"),
	})
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to resolve payment amount")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// CreateOrder handles POST /api/payments/create-order
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	if req.Amount <= 0 || req.Amount != math.Trunc(req.Amount) || req.Amount > math.MaxInt32 {
		ordersTotal.WithLabelValues("rejected").Inc()
		respondError(w, http.StatusBadRequest, domain.ErrInvalidAmount.Error())
		return
	}
	if !h.valid(w, req) {
		ordersTotal.WithLabelValues("rejected").Inc()
		return
	}

	cmd := command.CreateOrderCommand{
		Amount:     int64(req.Amount),
		Email:      req.Email,
		CouponCode: req.CouponCode,
	}
	if id, ok := userIDFromContext(r.Context()); ok {
		cmd.CustomerID = &id
	}

	result, err := h.commands.CreateOrder.Handle(r.Context(), cmd)
	if err != nil {
		ordersTotal.WithLabelValues(orderResult(err)).Inc()
		h.respondDomainError(w, r, err, "Failed to create order")
		return
	}

	ordersTotal.WithLabelValues("created").Inc()
	logger.Info(r.Context()).
		Str("order_id", result.OrderID).
		Uint("payment_id", result.PaymentID).
		Float64("final_amount", result.FinalAmount).
		Str("coupon_code", result.CouponCode).
		Msg("Payment order created")

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    result,
	})
}

// VerifyPayment handles POST /api/payments/verify
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.commands.VerifyPayment.Handle(r.Context(), req.command())
	switch {
	case errors.Is(err, domain.ErrSignatureMismatch):
		verificationsTotal.WithLabelValues("signature_mismatch").Inc()
		if result != nil && result.Transitioned {
			h.publish(r, kafka.EventTypePaymentFailed, result.Payment)
		}
		var data interface{}
		if result != nil {
			data = result.Payment
		}
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
			Data:    data,
		})
		return
	case errors.Is(err, domain.ErrConfirmationPersistence):
		verificationsTotal.WithLabelValues("persistence_error").Inc()
		confirmationPersistenceFailures.Inc()
		h.respondDomainError(w, r, err, "")
		return
	case errors.Is(err, domain.ErrPaymentAlreadyFailed):
		verificationsTotal.WithLabelValues("already_failed").Inc()
		h.respondDomainError(w, r, err, "")
		return
	case err != nil:
		verificationsTotal.WithLabelValues("rejected").Inc()
		h.respondDomainError(w, r, err, "Failed to verify payment")
		return
	}

	if result.AlreadyCompleted {
		verificationsTotal.WithLabelValues("duplicate").Inc()
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Payment already verified",
			Data:    result.Payment,
		})
		return
	}

	verificationsTotal.WithLabelValues("completed").Inc()
	if result.Payment.CouponCode != nil {
		if result.CouponRedeemed {
			couponRedemptionsTotal.WithLabelValues("redeemed").Inc()
		} else {
			couponRedemptionsTotal.WithLabelValues("failed").Inc()
		}
	}
	h.publish(r, kafka.EventTypePaymentCompleted, result.Payment)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment verified successfully",
		Data:    result.Payment,
	})
}

// GetStatus handles GET /api/payments/status/{orderId}
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	payment, err := h.queries.GetStatus.Handle(r.Context(), query.GetStatusQuery{
		OrderID: mux.Vars(r)["orderId"],
	})
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to get payment status")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: payment})
}

// ListPayments handles GET /api/payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	payments, err := h.queries.ListPayments.Handle(r.Context(), query.ListPaymentsQuery{
		Status: q.Get("status"),
		Email:  q.Get("email"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to list payments")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"payments": payments,
			"total":    len(payments),
		},
	})
}

// GetMyPayments handles GET /api/payments/my (authenticated user)
func (h *PaymentHandler) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	payments, err := h.queries.GetMyPayments.Handle(r.Context(), query.GetMyPaymentsQuery{
		CustomerID: userID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.respondDomainError(w, r, err, "Failed to get payments")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"payments": payments,
			"total":    len(payments),
		},
	})
}

// RegisterRoutes registers all payment routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	rl := h.limiter

	// Checkout (public)
	router.HandleFunc("/api/payments/amount", h.GetAmount).Methods("GET")
	router.HandleFunc("/api/payments/create-order", rl.Limit("create-order", OptionalAuthMiddleware(h.CreateOrder))).Methods("POST")
	router.HandleFunc("/api/payments/verify", rl.Limit("verify", h.VerifyPayment)).Methods("POST")
	router.HandleFunc("/api/payments/status/{orderId}", h.GetStatus).Methods("GET")
	router.HandleFunc("/api/payments/coupons/validate", rl.Limit("coupon-validate", h.ValidateCoupon)).Methods("POST")
	router.HandleFunc("/api/payments/coupon-settings", h.GetCouponSettings).Methods("GET")

	// Authenticated user routes
	router.HandleFunc("/api/payments/my", AuthMiddleware(h.GetMyPayments)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/payments", AdminMiddleware(h.ListPayments)).Methods("GET")
	router.HandleFunc("/api/payments/coupon-settings", AdminMiddleware(h.SetCouponSettings)).Methods("PUT")
	router.HandleFunc("/api/payments/coupons", AdminMiddleware(h.ListCoupons)).Methods("GET")
	router.HandleFunc("/api/payments/coupons", AdminMiddleware(h.CreateCoupon)).Methods("POST")
	router.HandleFunc("/api/payments/coupons/{code}", AdminMiddleware(h.UpdateCoupon)).Methods("PUT")
	router.HandleFunc("/api/payments/coupons/{code}", AdminMiddleware(h.DeleteCoupon)).Methods("DELETE")
	router.HandleFunc("/api/payments/configs", AdminMiddleware(h.ListConfigs)).Methods("GET")
	router.HandleFunc("/api/payments/configs", AdminMiddleware(h.UpsertConfig)).Methods("PUT")
	router.HandleFunc("/api/payments/configs/{email}", AdminMiddleware(h.DeleteConfig)).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *PaymentHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Payment service is healthy",
		})
	}).Methods("GET")
}

// decode reads a JSON body, answering 400 on malformed input
func (h *PaymentHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// valid runs struct validation, answering 400 with per-field tags on failure
func (h *PaymentHandler) valid(w http.ResponseWriter, req interface{}) bool {
	err := h.validate.Struct(req)
	if err == nil {
		return true
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return false
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	respondJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Error:   validationMessage(ve[0]),
		Data:    fields,
	})
	return false
}

// validationMessage describes the first failing rule
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingFields.Error()
	case "email":
		return "invalid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// respondDomainError maps use case errors onto HTTP statuses. fallback is the
// message shown for unexpected errors.
func (h *PaymentHandler) respondDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		event := logger.Error(r.Context()).Err(err).Str("path", r.URL.Path)
		if errors.Is(err, domain.ErrRecordPersistence) || errors.Is(err, domain.ErrConfirmationPersistence) {
			event = event.Bool("operator_attention", true)
		}
		event.Msg("Request failed")
	}
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = "Internal server error"
	}
	respondError(w, status, msg)
}

func statusFor(err error) (int, string) {
	var perr *domain.ProviderError
	switch {
	case errors.As(err, &perr):
		if perr.Description != "" {
			return http.StatusBadGateway, perr.Description
		}
		return http.StatusBadGateway, domain.ErrOrderCreation.Error()
	case errors.Is(err, domain.ErrOrderCreation):
		return http.StatusBadGateway, domain.ErrOrderCreation.Error()
	case errors.Is(err, domain.ErrRecordPersistence):
		return http.StatusInternalServerError, domain.ErrRecordPersistence.Error()
	case errors.Is(err, domain.ErrConfirmationPersistence):
		return http.StatusInternalServerError, domain.ErrConfirmationPersistence.Error()
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidCoupon),
		errors.Is(err, domain.ErrInvalidCouponRule),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrNothingToCharge),
		errors.Is(err, domain.ErrSignatureMismatch):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrConfigNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicateCoupon),
		errors.Is(err, domain.ErrPaymentAlreadyFailed),
		errors.Is(err, domain.ErrCouponExhausted):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, ""
}

func orderResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderCreation):
		return "provider_error"
	case errors.Is(err, domain.ErrRecordPersistence):
		return "persistence_error"
	}
	if status, _ := statusFor(err); status < http.StatusInternalServerError {
		return "rejected"
	}
	return "error"
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, Response{Success: false, Error: msg})
}
