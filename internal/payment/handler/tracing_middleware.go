package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TracingMiddleware wraps HTTP handlers with OpenTelemetry tracing. Spans are
// named after the matched route template so order ids do not explode cardinality.
func TracingMiddleware(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operationName,
		otelhttp.WithSpanNameFormatter(func(op string, r *http.Request) string {
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					return r.Method + " " + tpl
				}
			}
			return op
		}),
	)
}
