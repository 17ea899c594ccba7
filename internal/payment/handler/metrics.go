package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_http_requests_total",
		Help: "HTTP requests handled by the payment service",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ordersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_orders_total",
		Help: "Order creation attempts by result",
	}, []string{"result"})

	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_verifications_total",
		Help: "Callback verifications by outcome",
	}, []string{"outcome"})

	couponRedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_coupon_redemptions_total",
		Help: "Coupon usage increments after completed payments",
	}, []string{"result"})

	confirmationPersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_confirmation_persistence_failures_total",
		Help: "Verified payments whose completion could not be saved",
	})
)

// MetricsMiddleware records request counts and latency per route template
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
