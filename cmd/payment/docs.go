package main

// @title Launchpad Payments API
// @version 1.0
// @description Checkout, coupon and payment verification service with full observability stack (Prometheus, Jaeger)

// @host localhost:8083
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Checkout
// @tag.description Public checkout endpoints

// @tag.name Coupons
// @tag.description Coupon preview and administration

// @tag.name Configs
// @tag.description Per-email custom amounts (Admin only)

// @tag.name Payments
// @tag.description Payment listings

// @tag.name Health
// @tag.description Health check endpoints
