package payment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/launchpad-payments/internal/payment/config"
	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/internal/payment/handler"
	"github.com/tair/launchpad-payments/internal/payment/provider"
	"github.com/tair/launchpad-payments/internal/payment/repository"
	"github.com/tair/launchpad-payments/internal/payment/usecase/command"
	"github.com/tair/launchpad-payments/internal/payment/usecase/query"
)

// ProvidePaymentRepository provides the payment repository with span instrumentation
func ProvidePaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return repository.NewTracingPaymentRepository(repository.NewGormPaymentRepository(db))
}

// ProvideCouponRepository provides the coupon repository
func ProvideCouponRepository(db *gorm.DB) domain.CouponRepository {
	return repository.NewGormCouponRepository(db)
}

// ProvideConfigRepository provides the per-email amount repository
func ProvideConfigRepository(db *gorm.DB) domain.ConfigRepository {
	return repository.NewGormConfigRepository(db)
}

// ProvideSettingsRepository provides the settings repository
func ProvideSettingsRepository(db *gorm.DB) domain.SettingsRepository {
	return repository.NewGormSettingsRepository(db)
}

// ProvideRazorpayClient provides the payment provider client
func ProvideRazorpayClient(cfg provider.Config) *provider.RazorpayClient {
	return provider.NewRazorpayClient(cfg)
}

// Wire sets
var ConfigSet = wire.NewSet(
	wire.FieldsOf(new(config.Config), "Provider", "Checkout"),
)

var RepositorySet = wire.NewSet(
	ProvidePaymentRepository,
	ProvideCouponRepository,
	ProvideConfigRepository,
	ProvideSettingsRepository,
)

var ProviderSet = wire.NewSet(
	ProvideRazorpayClient,
	wire.Bind(new(domain.OrderProvider), new(*provider.RazorpayClient)),
	wire.Bind(new(domain.SignatureVerifier), new(*provider.RazorpayClient)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateOrderHandler,
	command.NewVerifyPaymentHandler,
	command.NewCreateCouponHandler,
	command.NewUpdateCouponHandler,
	command.NewDeleteCouponHandler,
	command.NewUpsertConfigHandler,
	command.NewDeleteConfigHandler,
	command.NewSetCouponFlagHandler,
	wire.Struct(new(handler.CommandHandlers), "*"),
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetAmountHandler,
	query.NewGetStatusHandler,
	query.NewListPaymentsHandler,
	query.NewGetMyPaymentsHandler,
	query.NewListCouponsHandler,
	query.NewValidateCouponHandler,
	query.NewGetCouponFlagHandler,
	query.NewListConfigsHandler,
	wire.Struct(new(handler.QueryHandlers), "*"),
)

var AllHandlersSet = wire.NewSet(
	ConfigSet,
	RepositorySet,
	ProviderSet,
	CommandHandlerSet,
	QueryHandlerSet,
)
