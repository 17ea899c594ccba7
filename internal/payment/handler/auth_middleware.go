package handler

import (
	"context"
	"net/http"

	"github.com/tair/launchpad-payments/pkg/auth"
	"github.com/tair/launchpad-payments/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UsernameKey, claims.Username)
	return context.WithValue(ctx, RoleKey, claims.Role)
}

// AuthMiddleware requires a valid bearer token
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Rejected request without usable bearer token")
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Invalid token")
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		logger.Debug(r.Context()).
			Uint("user_id", claims.UserID).
			Str("role", claims.Role).
			Msg("User authenticated")

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	}
}

// AdminMiddleware requires a valid bearer token carrying the admin role
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)
		if role != auth.RoleAdmin {
			logger.Warn(r.Context()).
				Str("role", role).
				Msg("Admin access denied")
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// OptionalAuthMiddleware attaches the caller's identity when a valid token is
// present and otherwise lets the request through anonymously
func OptionalAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.Debug(r.Context()).Err(err).Msg("Ignoring invalid optional token")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	}
}

func userIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok && id != 0
}
