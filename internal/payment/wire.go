//go:build wireinject
// +build wireinject

package payment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/launchpad-payments/internal/payment/config"
	"github.com/tair/launchpad-payments/internal/payment/handler"
)

// InitializeHandler initializes payment handler with all dependencies.
// publisher and limiter are optional and may be nil.
func InitializeHandler(db *gorm.DB, cfg config.Config, publisher handler.EventPublisher, limiter *handler.RateLimiter) (*handler.PaymentHandler, error) {
	wire.Build(
		AllHandlersSet,
		handler.NewPaymentHandler,
	)
	return nil, nil
}
