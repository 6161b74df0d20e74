package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external card processors (e.g. Mercado Pago).
//
// The engine uses it to capture card payments at commit time when a gateway
// is configured; the provider response payload is kept for traceability.
// CancelPayment voids a capture when the commit fails after it.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	CancelPayment(ctx context.Context, providerPaymentID string) error
}
