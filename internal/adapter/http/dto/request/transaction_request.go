package request

import (
	"strings"
	"time"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase"
)

// TransactionLineRequest is one cart line as the UI sends it.
type TransactionLineRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"`
}

// TransactionPaymentRequest is one entry of the payment breakdown.
type TransactionPaymentRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// AdjustmentRequest carries the single discount-or-surcharge adjustment,
// either flat or as a percentage of the subtotal.
type AdjustmentRequest struct {
	Mode    string  `json:"mode"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// TransactionCreateRequest is the commit payload for POST /transactions.
type TransactionCreateRequest struct {
	Kind         string                      `json:"kind" binding:"required"`
	ClientID     *string                     `json:"client_id"`
	QuotationID  *string                     `json:"quotation_id"`
	Notes        string                      `json:"notes"`
	DocumentDate *time.Time                  `json:"document_date"`
	Lines        []TransactionLineRequest    `json:"lines"`
	Payments     []TransactionPaymentRequest `json:"payments"`
	Adjustment   *AdjustmentRequest          `json:"adjustment"`
}

// ToDraftInput translates the payload into the engine's draft command.
// A blank/whitespace client id is normalized to walk-in (nil).
func (r TransactionCreateRequest) ToDraftInput() usecase.DraftInput {
	in := usecase.DraftInput{
		Kind:  entities.TransactionKind(strings.TrimSpace(r.Kind)),
		Notes: r.Notes,
	}
	if r.ClientID != nil && strings.TrimSpace(*r.ClientID) != "" {
		clientID := strings.TrimSpace(*r.ClientID)
		in.ClientID = &clientID
	}
	if r.QuotationID != nil && strings.TrimSpace(*r.QuotationID) != "" {
		quotationID := strings.TrimSpace(*r.QuotationID)
		in.QuotationID = &quotationID
	}
	if r.DocumentDate != nil {
		in.DocumentDate = *r.DocumentDate
	}
	for _, l := range r.Lines {
		in.Lines = append(in.Lines, usecase.DraftLine{
			ProductID:   strings.TrimSpace(l.ProductID),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			DiscountPct: l.DiscountPct,
		})
	}
	for _, p := range r.Payments {
		in.Payments = append(in.Payments, usecase.DraftPayment{
			Type:        entities.PaymentType(strings.TrimSpace(p.Type)),
			Amount:      p.Amount,
			Description: p.Description,
		})
	}
	if r.Adjustment != nil {
		switch strings.ToLower(strings.TrimSpace(r.Adjustment.Mode)) {
		case "discount", "descuento":
			in.AdjustmentMode = usecase.AdjustmentDiscount
		case "surcharge", "interes":
			in.AdjustmentMode = usecase.AdjustmentSurcharge
		}
		in.AdjustmentFlat = r.Adjustment.Amount
		in.AdjustmentPct = r.Adjustment.Percent
	}
	return in
}
