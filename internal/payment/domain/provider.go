package domain

import "context"

// OrderRequest asks the provider for a new order. AmountMinor is in the
// smallest currency unit (paise for INR).
type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// ProviderOrder is the provider's view of a created order
type ProviderOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
	Receipt     string
	Status      string
}

// OrderProvider creates orders at the payment provider
type OrderProvider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*ProviderOrder, error)
	// KeyID is the public key the checkout widget needs
	KeyID() string
}

// SignatureVerifier checks the provider's callback signature
type SignatureVerifier interface {
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}
