package provider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/pkg/logger"
)

const defaultBaseURL = "https://api.razorpay.com"

// Config holds payment provider credentials
type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
}

// RazorpayClient talks to a Razorpay-compatible orders API
type RazorpayClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewRazorpayClient creates a provider client whose requests are traced
func NewRazorpayClient(cfg Config) *RazorpayClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &RazorpayClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// KeyID returns the public key id handed to the checkout widget
func (c *RazorpayClient) KeyID() string {
	return c.cfg.KeyID
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder creates an order at the provider
func (c *RazorpayClient) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.ProviderOrder, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   req.AmountMinor,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrOrderCreation, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderCreation, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderCreation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrOrderCreation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &domain.ProviderError{StatusCode: resp.StatusCode}
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil {
			perr.Code = er.Error.Code
			perr.Description = er.Error.Description
		}

		logger.Warn(ctx).
			Int("status", resp.StatusCode).
			Str("code", perr.Code).
			Str("receipt", req.Receipt).
			Msg("Provider rejected order")
		return nil, perr
	}

	var out orderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrOrderCreation, err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: provider returned no order id", domain.ErrOrderCreation)
	}

	return &domain.ProviderOrder{
		ID:          out.ID,
		AmountMinor: out.Amount,
		Currency:    out.Currency,
		Receipt:     out.Receipt,
		Status:      out.Status,
	}, nil
}

// VerifyPaymentSignature checks the callback signature in constant time
func (c *RazorpayClient) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	expected := Sign(c.cfg.KeySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes hex(HMAC-SHA256(secret, orderID + "|" + paymentID))
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
