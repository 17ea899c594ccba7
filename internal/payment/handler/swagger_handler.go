package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetAmount godoc
// @Summary Get checkout amount
// @Description Returns the custom amount configured for the email, or the platform default
// @Tags Checkout
// @Produce json
// @Param email query string false "Customer email"
// @Success 200 {object} object{success=bool,data=object{amount=int,currency=string,hasCustomAmount=bool}}
// @Router /api/payments/amount [get]
func (h *PaymentHandler) GetAmountDoc() {}

// CreateOrder godoc
// @Summary Create a payment order
// @Description Applies an optional coupon, creates the provider order and stores a pending payment
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body object{amount=int,email=string,couponCode=string} true "Checkout request"
// @Success 201 {object} object{success=bool,message=string,data=object{orderId=string,amount=int,currency=string,keyId=string,paymentId=int,originalAmount=int,discountAmount=number,finalAmount=number,couponCode=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 429 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/payments/create-order [post]
func (h *PaymentHandler) CreateOrderDoc() {}

// VerifyPayment godoc
// @Summary Verify a payment callback
// @Description Checks the provider signature and completes the payment exactly once
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body object{orderId=string,paymentId=string,signature=string} true "Provider callback"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/payments/verify [post]
func (h *PaymentHandler) VerifyPaymentDoc() {}

// GetStatus godoc
// @Summary Get payment status
// @Tags Checkout
// @Produce json
// @Param orderId path string true "Provider order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/payments/status/{orderId} [get]
func (h *PaymentHandler) GetStatusDoc() {}

// ValidateCoupon godoc
// @Summary Preview a coupon
// @Description Reports whether the coupon applies to the amount and the resulting discount
// @Tags Coupons
// @Accept json
// @Produce json
// @Param request body object{code=string,amount=int} true "Coupon and amount"
// @Success 200 {object} object{success=bool,data=object{code=string,valid=bool,reason=string,discountAmount=number,finalAmount=number}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/payments/coupons/validate [post]
func (h *PaymentHandler) ValidateCouponDoc() {}

// GetCouponSettings godoc
// @Summary Get coupon UI flag
// @Tags Coupons
// @Produce json
// @Success 200 {object} object{success=bool,data=object{enabled=bool}}
// @Router /api/payments/coupon-settings [get]
func (h *PaymentHandler) GetCouponSettingsDoc() {}

// SetCouponSettings godoc
// @Summary Set coupon UI flag
// @Tags Coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{enabled=bool} true "Flag"
// @Success 200 {object} object{success=bool,data=object{enabled=bool}}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/payments/coupon-settings [put]
func (h *PaymentHandler) SetCouponSettingsDoc() {}

// ListCoupons godoc
// @Summary List coupons
// @Tags Coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{coupons=array,total=int}}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/payments/coupons [get]
func (h *PaymentHandler) ListCouponsDoc() {}

// CreateCoupon godoc
// @Summary Create a coupon
// @Tags Coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{code=string,discountType=string,discountValue=number,maxDiscountAmount=number,minAmount=number,maxUses=int,validFrom=string,validUntil=string,isActive=bool} true "Coupon"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/payments/coupons [post]
func (h *PaymentHandler) CreateCouponDoc() {}

// UpdateCoupon godoc
// @Summary Update a coupon
// @Tags Coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param request body object{discountType=string,discountValue=number,maxDiscountAmount=number,minAmount=number,maxUses=int,validFrom=string,validUntil=string,isActive=bool} true "Coupon"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/payments/coupons/{code} [put]
func (h *PaymentHandler) UpdateCouponDoc() {}

// DeleteCoupon godoc
// @Summary Delete a coupon
// @Tags Coupons
// @Security BearerAuth
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/payments/coupons/{code} [delete]
func (h *PaymentHandler) DeleteCouponDoc() {}

// ListConfigs godoc
// @Summary List payment configs
// @Tags Configs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{configs=array,total=int}}
// @Router /api/payments/configs [get]
func (h *PaymentHandler) ListConfigsDoc() {}

// UpsertConfig godoc
// @Summary Set a custom amount for an email
// @Tags Configs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{email=string,customAmount=int,isActive=bool,notes=string} true "Config"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/payments/configs [put]
func (h *PaymentHandler) UpsertConfigDoc() {}

// DeleteConfig godoc
// @Summary Delete a payment config
// @Tags Configs
// @Security BearerAuth
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/payments/configs/{email} [delete]
func (h *PaymentHandler) DeleteConfigDoc() {}

// ListPayments godoc
// @Summary List payments
// @Description Lists payments with optional status and email filters (Admin only)
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, completed, failed or refunded"
// @Param email query string false "Customer email"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{payments=array,total=int}}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/payments [get]
func (h *PaymentHandler) ListPaymentsDoc() {}

// GetMyPayments godoc
// @Summary Get my payments
// @Description Get payments for the authenticated user
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{payments=array,total=int}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/payments/my [get]
func (h *PaymentHandler) GetMyPaymentsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *PaymentHandler) HealthCheckDoc() {}
