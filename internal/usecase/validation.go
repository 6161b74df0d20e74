package usecase

import (
	"fmt"
	"math"
	"strings"

	"partsdesk/internal/domain/entities"
)

// paymentSumEpsilon is the tolerance for the payment-sum invariant
// |sum(payments) - total| <= epsilon, in currency units.
const paymentSumEpsilon = 0.01

// ValidateLines checks cart lines for structural validity. Returns every
// violation found, not just the first.
func ValidateLines(lines []entities.TransactionLine) []Violation {
	if len(lines) == 0 {
		return []Violation{{Code: ViolationEmptyCart, Message: "the cart has no lines"}}
	}

	var out []Violation
	for i, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" {
			out = append(out, Violation{
				Code:    ViolationInvalidLine,
				Message: fmt.Sprintf("line %d: missing product reference", i+1),
			})
		}
		if l.Quantity < 1 {
			out = append(out, Violation{
				Code:    ViolationInvalidLine,
				Message: fmt.Sprintf("line %d: quantity must be at least 1", i+1),
			})
		}
		if l.UnitPrice < 0 {
			out = append(out, Violation{
				Code:    ViolationInvalidLine,
				Message: fmt.Sprintf("line %d: unit price must not be negative", i+1),
			})
		}
	}
	return out
}

// ValidatePayments checks the payment breakdown against the expected total.
func ValidatePayments(payments []entities.Payment, expectedTotal float64) []Violation {
	if len(payments) == 0 {
		return []Violation{{Code: ViolationNoPayments, Message: "at least one payment is required"}}
	}

	var out []Violation
	sum := 0.0
	for i, p := range payments {
		if !p.Type.Valid() {
			out = append(out, Violation{
				Code:    ViolationInvalidPayment,
				Message: fmt.Sprintf("payment %d: unknown type %q", i+1, p.Type),
			})
		}
		if p.Amount <= 0 {
			out = append(out, Violation{
				Code:    ViolationInvalidPayment,
				Message: fmt.Sprintf("payment %d: amount must be positive", i+1),
			})
		}
		sum += p.Amount
	}
	if math.Abs(sum-expectedTotal) > paymentSumEpsilon {
		out = append(out, Violation{
			Code:    ViolationPaymentMismatch,
			Message: fmt.Sprintf("payments sum %.2f does not match total %.2f", sum, expectedTotal),
		})
	}
	return out
}

// ValidateTotals checks the computed amounts of a draft.
func ValidateTotals(t entities.Transaction) []Violation {
	var out []Violation
	if t.Subtotal < 0 {
		out = append(out, Violation{Code: ViolationNegativeSubtotal, Message: "subtotal must not be negative"})
	}
	if t.Total <= 0 {
		out = append(out, Violation{Code: ViolationNonPositiveTotal, Message: "total must be positive"})
	}
	if t.Discount < 0 || t.Surcharge < 0 {
		out = append(out, Violation{Code: ViolationNegativeAdjustment, Message: "discount and surcharge must not be negative"})
	}
	return out
}

// ValidateDraft composes all draft validations and the commit-time rule that
// an on-account payment requires a registered client. Returns nil when the
// draft is well formed.
func ValidateDraft(t entities.Transaction) *ValidationError {
	var all []Violation
	all = append(all, ValidateLines(t.Lines)...)
	all = append(all, ValidatePayments(t.Payments, t.Total)...)
	all = append(all, ValidateTotals(t)...)

	for _, p := range t.Payments {
		if p.Type == entities.PaymentCuentaCorriente && t.ClientID == nil {
			all = append(all, Violation{
				Code:    ViolationCreditNeedsClient,
				Message: "on-account payments require a registered client",
			})
			break
		}
	}

	if len(all) == 0 {
		return nil
	}
	return &ValidationError{Violations: all}
}
