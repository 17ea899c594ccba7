package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, max int, trusted ...string) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRateLimiter(client, max, time.Minute, trusted), mr
}

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func hit(h http.HandlerFunc, ip string) *httptest.ResponseRecorder {
	return hitVia(h, ip+":40000", "")
}

func hitVia(h http.HandlerFunc, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	rl, _ := newTestLimiter(t, 3)
	h := rl.Limit("verify", ok)

	for i := 0; i < 3; i++ {
		if rec := hit(h, "203.0.113.9"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec := hit(h, "203.0.113.9")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("headers = %v", rec.Header())
	}

	// other clients keep their own budget
	if rec := hit(h, "198.51.100.1"); rec.Code != http.StatusOK {
		t.Errorf("other client status = %d", rec.Code)
	}
}

func TestRateLimiterScopesAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)

	if rec := hit(rl.Limit("verify", ok), "203.0.113.9"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := hit(rl.Limit("create-order", ok), "203.0.113.9"); rec.Code != http.StatusOK {
		t.Errorf("separate scope status = %d", rec.Code)
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Limit("verify", ok)

	if rec := hit(h, "203.0.113.9"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := hit(h, "203.0.113.9"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	now = now.Add(2 * time.Minute)
	if rec := hit(h, "203.0.113.9"); rec.Code != http.StatusOK {
		t.Errorf("status after window = %d", rec.Code)
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	rl, mr := newTestLimiter(t, 1)
	mr.Close()

	h := rl.Limit("verify", ok)
	for i := 0; i < 3; i++ {
		if rec := hit(h, "203.0.113.9"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want pass-through", i, rec.Code)
		}
	}
}

func TestNilRateLimiterPassesThrough(t *testing.T) {
	var rl *RateLimiter
	if NewRateLimiter(nil, 5, time.Minute, nil) != nil {
		t.Fatal("nil client should disable limiting")
	}
	if rec := hit(rl.Limit("verify", ok), "203.0.113.9"); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestRateLimiterIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	rl, _ := newTestLimiter(t, 3)
	h := rl.Limit("verify", ok)

	blocked := 0
	for i := 0; i < 20; i++ {
		xff := fmt.Sprintf("203.0.113.%d", i+1)
		if rec := hitVia(h, "198.51.100.1:5555", xff); rec.Code == http.StatusTooManyRequests {
			blocked++
		}
	}
	if blocked != 17 {
		t.Errorf("blocked = %d, want 17", blocked)
	}
}

func TestRateLimiterHonoursForwardedForBehindTrustedProxy(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, "10.0.0.0/8")
	h := rl.Limit("verify", ok)

	if rec := hitVia(h, "10.0.0.2:8080", "203.0.113.9"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := hitVia(h, "10.0.0.2:8080", "198.51.100.1"); rec.Code != http.StatusOK {
		t.Errorf("second client behind proxy status = %d", rec.Code)
	}
	if rec := hitVia(h, "10.0.0.3:8080", "203.0.113.9"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("repeat client status = %d, want 429", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	rl := &RateLimiter{trusted: parseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.1", "not-a-cidr"})}
	if len(rl.trusted) != 2 {
		t.Fatalf("trusted = %v", rl.trusted)
	}

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{"direct peer", "192.0.2.7:4711", "", "192.0.2.7"},
		{"untrusted peer spoofing header", "192.0.2.7:4711", "203.0.113.9", "192.0.2.7"},
		{"trusted peer", "10.1.2.3:80", " 203.0.113.9 , 10.0.0.1", "203.0.113.9"},
		{"spoofed left-most hop", "10.1.2.3:80", "6.6.6.6, 203.0.113.9, 10.0.0.1", "203.0.113.9"},
		{"bare trusted ip", "192.0.2.1:80", "198.51.100.4", "198.51.100.4"},
		{"trusted peer without header", "10.1.2.3:80", "", "10.1.2.3"},
		{"garbage hop skipped", "10.1.2.3:80", "198.51.100.4, junk", "198.51.100.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := rl.clientIP(req); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
