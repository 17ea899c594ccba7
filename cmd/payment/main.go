package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/launchpad-payments/docs"
	"github.com/tair/launchpad-payments/internal/payment"
	"github.com/tair/launchpad-payments/internal/payment/config"
	"github.com/tair/launchpad-payments/internal/payment/handler"
	"github.com/tair/launchpad-payments/internal/payment/repository"
	"github.com/tair/launchpad-payments/kafka"
	"github.com/tair/launchpad-payments/pkg/auth"
	"github.com/tair/launchpad-payments/pkg/database"
	"github.com/tair/launchpad-payments/pkg/logger"
	"github.com/tair/launchpad-payments/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting payment service")

	if cfg.Provider.KeyID == "" || cfg.Provider.KeySecret == "" {
		logger.Logger.Fatal().Msg("PROVIDER_KEY_ID and PROVIDER_KEY_SECRET must be set")
	}
	if cfg.JWTSecret == "" {
		logger.Logger.Warn().Msg("JWT_SECRET not set, authenticated routes will reject every token")
	}
	auth.SetSecret(cfg.JWTSecret)

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Version, cfg.JaegerURL)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Redis rate limiter
	var limiter *handler.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, rate limiter will fail open")
		}
		cancel()

		limiter = handler.NewRateLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWin, cfg.TrustedProxies)
	}

	// Optional Kafka publisher
	var publisher handler.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, payment events disabled")
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// Initialize handler with Wire DI
	paymentHandler, err := payment.InitializeHandler(db, cfg, publisher, limiter)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	logger.Logger.Info().
		Bool("rate_limiting", limiter != nil).
		Bool("events", publisher != nil).
		Str("currency", cfg.Checkout.Currency).
		Int64("default_amount", cfg.Checkout.DefaultAmount).
		Msg("Payment handler initialized")

	srv := newHTTPServer(paymentHandler, sqlDB, cfg)

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func newHTTPServer(paymentHandler *handler.PaymentHandler, db *sql.DB, cfg config.Config) *http.Server {
	// Setup router
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	handler.RegisterMiddlewares(router, handler.DefaultMiddlewareConfig())

	// Register routes
	paymentHandler.RegisterRoutes(router)

	// Health check endpoint
	paymentHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	handler.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigin,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
