package handler

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/launchpad-payments/pkg/logger"
)

// RateLimiter implements a sliding-window limit per client IP using Redis
type RateLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
	trusted     []*net.IPNet
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter. A nil client disables limiting.
// trustedProxies lists the CIDRs (or bare IPs) whose X-Forwarded-For header is
// believed; requests from anyone else are keyed on the connection address.
func NewRateLimiter(redisClient *redis.Client, maxRequests int, window time.Duration, trustedProxies []string) *RateLimiter {
	if redisClient == nil {
		return nil
	}
	return &RateLimiter{
		redis:       redisClient,
		maxRequests: maxRequests,
		window:      window,
		trusted:     parseTrustedProxies(trustedProxies),
		now:         time.Now,
	}
}

func parseTrustedProxies(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "/") {
			if ip := net.ParseIP(e); ip != nil {
				bits := 8 * net.IPv6len
				if ip.To4() != nil {
					ip, bits = ip.To4(), 8*net.IPv4len
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
				continue
			}
		}
		_, n, err := net.ParseCIDR(e)
		if err != nil {
			logger.Logger.Warn().Str("entry", e).Msg("Ignoring malformed trusted proxy")
			continue
		}
		nets = append(nets, n)
	}
	return nets
}

// Limit wraps a handler; requests are allowed through when Redis is unavailable
func (rl *RateLimiter) Limit(scope string, next http.HandlerFunc) http.HandlerFunc {
	if rl == nil {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		identifier := rl.clientIP(r)

		allowed, remaining, resetTime, err := rl.checkLimit(r.Context(), scope+":"+identifier)
		if err != nil {
			logger.Error(r.Context()).
				Err(err).
				Str("identifier", identifier).
				Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			logger.Warn(r.Context()).
				Str("identifier", identifier).
				Str("scope", scope).
				Int("limit", rl.maxRequests).
				Msg("Rate limit exceeded")

			retryAfter := int(rl.window.Seconds())
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			respondJSON(w, http.StatusTooManyRequests, Response{
				Success: false,
				Error:   fmt.Sprintf("Too many requests. Try again in %v", rl.window.Round(time.Second)),
			})
			return
		}

		next.ServeHTTP(w, r)
	}
}

// checkLimit counts requests in the current window and records this one
func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := "ratelimit:payments:" + identifier
	now := rl.now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()[:8],
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := countCmd.Val()
	remaining := rl.maxRequests - int(count) - 1
	if remaining < 0 {
		remaining = 0
	}

	return count < int64(rl.maxRequests), remaining, now.Add(rl.window), nil
}

// clientIP returns the connection address unless it belongs to a trusted
// proxy, in which case X-Forwarded-For is walked right to left and the first
// untrusted hop wins.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteIP(r)
	if !rl.isTrusted(peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" || net.ParseIP(hop) == nil {
			continue
		}
		if !rl.isTrusted(hop) {
			return hop
		}
	}
	return peer
}

func (rl *RateLimiter) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range rl.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
