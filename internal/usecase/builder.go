package usecase

import (
	"math"
	"time"

	"partsdesk/internal/domain/entities"

	"github.com/google/uuid"
)

// AdjustmentMode selects whether the single configured adjustment reduces
// (discount) or increases (surcharge / "interes") the total.
type AdjustmentMode string

const (
	AdjustmentNone      AdjustmentMode = ""
	AdjustmentDiscount  AdjustmentMode = "discount"
	AdjustmentSurcharge AdjustmentMode = "surcharge"
)

// DraftLine is the UI-shaped cart line.
type DraftLine struct {
	ProductID   string
	Quantity    int
	UnitPrice   float64
	DiscountPct float64
}

// DraftPayment is the UI-shaped payment breakdown entry.
type DraftPayment struct {
	Type        entities.PaymentType
	Amount      float64
	Description string
}

// DraftInput is everything the caller supplies to build a transaction draft.
// The adjustment is either a flat amount or a percentage of the subtotal,
// never both; Percent wins when both are set.
type DraftInput struct {
	Kind           entities.TransactionKind
	ClientID       *string
	QuotationID    *string
	Notes          string
	Lines          []DraftLine
	Payments       []DraftPayment
	AdjustmentMode AdjustmentMode
	AdjustmentFlat float64
	AdjustmentPct  float64
	DocumentDate   time.Time
}

// round2 rounds to 2 decimals. Line subtotals are rounded per line (not
// summed-then-rounded) so the stored amounts match the per-line display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildDraft transforms UI-shaped input into a canonical unpersisted
// Transaction with deterministic totals. It performs no I/O and no
// validation beyond the arithmetic; ValidateDraft gates the result.
func BuildDraft(in DraftInput) entities.Transaction {
	now := time.Now().UTC()
	docDate := in.DocumentDate
	if docDate.IsZero() {
		docDate = now
	}

	lines := make([]entities.TransactionLine, 0, len(in.Lines))
	subtotal := 0.0
	for _, dl := range in.Lines {
		lineSubtotal := round2(float64(dl.Quantity) * dl.UnitPrice * (1 - dl.DiscountPct/100))
		delivered := 0
		if in.Kind == entities.KindVenta {
			// Immediate sales ship complete at commit.
			delivered = dl.Quantity
		}
		lines = append(lines, entities.TransactionLine{
			ID:          uuid.NewString(),
			ProductID:   dl.ProductID,
			Quantity:    dl.Quantity,
			Delivered:   delivered,
			UnitPrice:   dl.UnitPrice,
			DiscountPct: dl.DiscountPct,
			Subtotal:    lineSubtotal,
		})
		subtotal = round2(subtotal + lineSubtotal)
	}

	discount, surcharge := 0.0, 0.0
	switch in.AdjustmentMode {
	case AdjustmentDiscount:
		discount = resolveAdjustment(subtotal, in.AdjustmentFlat, in.AdjustmentPct)
	case AdjustmentSurcharge:
		surcharge = resolveAdjustment(subtotal, in.AdjustmentFlat, in.AdjustmentPct)
	}

	total := round2(subtotal - discount + surcharge)
	if total < 0 {
		total = 0
	}

	payments := make([]entities.Payment, 0, len(in.Payments))
	for _, dp := range in.Payments {
		payments = append(payments, entities.Payment{
			ID:          uuid.NewString(),
			Type:        dp.Type,
			Amount:      dp.Amount,
			Description: dp.Description,
		})
	}

	status := entities.StatusPendiente
	if in.Kind == entities.KindVenta {
		status = entities.StatusCompletada
	}

	return entities.Transaction{
		ID:           uuid.NewString(),
		Kind:         in.Kind,
		ClientID:     in.ClientID,
		QuotationID:  in.QuotationID,
		Notes:        in.Notes,
		Subtotal:     subtotal,
		Discount:     discount,
		Surcharge:    surcharge,
		Total:        total,
		Status:       status,
		Lines:        lines,
		Payments:     payments,
		DocumentDate: docDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func resolveAdjustment(subtotal, flat, pct float64) float64 {
	if pct != 0 {
		return round2(subtotal * pct / 100)
	}
	return round2(flat)
}
