package response

import (
	"time"

	"partsdesk/internal/domain/entities"
)

type TransactionLineResponse struct {
	LineID      string  `json:"line_id"`
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Delivered   int     `json:"delivered"`
	Remaining   int     `json:"remaining"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"`
	Subtotal    float64 `json:"subtotal"`
}

type PaymentResponse struct {
	PaymentID        string  `json:"payment_id"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	Description      string  `json:"description,omitempty"`
	LedgerMovementID string  `json:"ledger_movement_id,omitempty"`
	GatewayRef       string  `json:"gateway_ref,omitempty"`
}

type TransactionResponse struct {
	ID             string                    `json:"id"`
	DocumentNumber string                    `json:"document_number"`
	Kind           string                    `json:"kind"`
	ClientID       *string                   `json:"client_id,omitempty"`
	QuotationID    *string                   `json:"quotation_id,omitempty"`
	Notes          string                    `json:"notes,omitempty"`
	Subtotal       float64                   `json:"subtotal"`
	Discount       float64                   `json:"discount"`
	Surcharge      float64                   `json:"surcharge"`
	Total          float64                   `json:"total"`
	Status         string                    `json:"status"`
	CancelReason   string                    `json:"cancel_reason,omitempty"`
	CancelledAt    *time.Time                `json:"cancelled_at,omitempty"`
	Lines          []TransactionLineResponse `json:"lines"`
	Payments       []PaymentResponse         `json:"payments"`
	DocumentDate   time.Time                 `json:"document_date"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// TransactionListResponse pages a listing; next_cursor is opaque and empty on
// the last page.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	lines := make([]TransactionLineResponse, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, TransactionLineResponse{
			LineID:      l.ID,
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			Delivered:   l.Delivered,
			Remaining:   l.Remaining(),
			UnitPrice:   l.UnitPrice,
			DiscountPct: l.DiscountPct,
			Subtotal:    l.Subtotal,
		})
	}
	payments := make([]PaymentResponse, 0, len(t.Payments))
	for _, p := range t.Payments {
		payments = append(payments, PaymentResponse{
			PaymentID:        p.ID,
			Type:             string(p.Type),
			Amount:           p.Amount,
			Description:      p.Description,
			LedgerMovementID: p.LedgerMovementID,
			GatewayRef:       p.GatewayRef,
		})
	}
	return TransactionResponse{
		ID:             t.ID,
		DocumentNumber: t.DocumentNumber,
		Kind:           string(t.Kind),
		ClientID:       t.ClientID,
		QuotationID:    t.QuotationID,
		Notes:          t.Notes,
		Subtotal:       t.Subtotal,
		Discount:       t.Discount,
		Surcharge:      t.Surcharge,
		Total:          t.Total,
		Status:         string(t.Status),
		CancelReason:   t.CancelReason,
		CancelledAt:    t.CancelledAt,
		Lines:          lines,
		Payments:       payments,
		DocumentDate:   t.DocumentDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTransactions(items []entities.Transaction, nextCursor string) TransactionListResponse {
	out := TransactionListResponse{
		Items:      make([]TransactionResponse, 0, len(items)),
		NextCursor: nextCursor,
	}
	for _, t := range items {
		out.Items = append(out.Items, FromTransaction(t))
	}
	return out
}
