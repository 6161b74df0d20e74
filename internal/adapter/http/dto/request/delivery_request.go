package request

import (
	"strings"

	"partsdesk/internal/usecase"
)

// LineDeliveryRequest is one requested delivery quantity for a line.
type LineDeliveryRequest struct {
	LineID   string `json:"line_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// DeliverRequest is the payload for PATCH /transactions/{id}/deliver.
// RequestID is a client-generated idempotency key: a retried network call
// with the same id is a no-op replay.
type DeliverRequest struct {
	RequestID  string                `json:"request_id" binding:"required"`
	Deliveries []LineDeliveryRequest `json:"deliveries" binding:"required"`
}

func (r DeliverRequest) ResolveRequestID() string {
	return strings.TrimSpace(r.RequestID)
}

func (r DeliverRequest) ToLineDeliveries() []usecase.LineDelivery {
	out := make([]usecase.LineDelivery, 0, len(r.Deliveries))
	for _, d := range r.Deliveries {
		out = append(out, usecase.LineDelivery{
			LineID:   strings.TrimSpace(d.LineID),
			Quantity: d.Quantity,
		})
	}
	return out
}

// CancelRequest is the payload for PATCH /transactions/{id}/cancel.
type CancelRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

func (r CancelRequest) ResolveRequestID() string {
	return strings.TrimSpace(r.RequestID)
}

func (r CancelRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
