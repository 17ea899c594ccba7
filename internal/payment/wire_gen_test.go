package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/tair/launchpad-payments/internal/payment/config"
	"github.com/tair/launchpad-payments/internal/payment/domain"
	"github.com/tair/launchpad-payments/internal/payment/provider"
	"github.com/tair/launchpad-payments/internal/testutil"
)

func TestInitializeHandlerServesCheckout(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_wired",
			"amount":   req.Amount,
			"currency": req.Currency,
			"receipt":  req.Receipt,
			"status":   "created",
		})
	}))
	defer gateway.Close()

	cfg := config.Config{
		Provider: provider.Config{BaseURL: gateway.URL, KeyID: "rzp_test_wired", KeySecret: "wired_secret"},
		Checkout: domain.CheckoutSettings{Currency: "INR", DefaultAmount: 4999},
	}
	db := testutil.NewDB(t)

	h, err := InitializeHandler(db, cfg, nil, nil)
	if err != nil {
		t.Fatalf("InitializeHandler: %v", err)
	}
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	post := func(path string, body interface{}) *httptest.ResponseRecorder {
		b, _ := json.Marshal(body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b)))
		return rec
	}

	rec := post("/api/payments/create-order", map[string]interface{}{"amount": 4999, "email": "wired@example.com"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create-order status = %d, body = %s", rec.Code, rec.Body)
	}

	rec = post("/api/payments/verify", map[string]string{
		"orderId":   "order_wired",
		"paymentId": "pay_wired",
		"signature": provider.Sign("wired_secret", "order_wired", "pay_wired"),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body = %s", rec.Code, rec.Body)
	}

	var stored domain.Payment
	if err := db.Where("order_id = ?", "order_wired").First(&stored).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if stored.Status != domain.StatusCompleted || stored.FinalAmount != 4999 {
		t.Errorf("payment = %+v", stored)
	}
}
