package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tair/launchpad-payments/pkg/logger"
)

// LoggingMiddleware logs each request once it has completed. Server errors
// log at error level, client errors at warn.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		ctx := r.Context()

		logger.Debug(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("HTTP request started")

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		var event *zerolog.Event
		switch {
		case ww.statusCode >= 500:
			event = logger.Error(ctx)
		case ww.statusCode >= 400:
			event = logger.Warn(ctx)
		default:
			event = logger.Info(ctx)
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_ip", remoteIP(r)).
			Str("user_agent", r.UserAgent()).
			Int("status", ww.statusCode).
			Int("bytes", ww.bytes).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("HTTP request completed")
	})
}

// loggingResponseWriter captures the status code and body size
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	bytes       int
	wroteHeader bool
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.statusCode = code
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytes += n
	return n, err
}
