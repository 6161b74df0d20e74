package usecase

import (
	"testing"

	"partsdesk/internal/domain/entities"
)

func countCode(vs []Violation, code ViolationCode) int {
	n := 0
	for _, v := range vs {
		if v.Code == code {
			n++
		}
	}
	return n
}

func TestValidateLines(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		vs := ValidateLines(nil)
		if len(vs) != 1 || vs[0].Code != ViolationEmptyCart {
			t.Fatalf("expected EmptyCart, got %+v", vs)
		}
	})

	t.Run("valid lines", func(t *testing.T) {
		vs := ValidateLines([]entities.TransactionLine{
			{ProductID: "P1", Quantity: 2, UnitPrice: 100},
			{ProductID: "P2", Quantity: 1, UnitPrice: 0},
		})
		if len(vs) != 0 {
			t.Fatalf("expected no violations, got %+v", vs)
		}
	})

	t.Run("collects every violation", func(t *testing.T) {
		vs := ValidateLines([]entities.TransactionLine{
			{ProductID: "  ", Quantity: 0, UnitPrice: -1},
			{ProductID: "P2", Quantity: 1, UnitPrice: 10},
			{ProductID: "P3", Quantity: -5, UnitPrice: 10},
		})
		if got := countCode(vs, ViolationInvalidLine); got != 4 {
			t.Fatalf("expected 4 InvalidLine violations, got %d (%+v)", got, vs)
		}
	})
}

func TestValidatePayments(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		vs := ValidatePayments(nil, 100)
		if len(vs) != 1 || vs[0].Code != ViolationNoPayments {
			t.Fatalf("expected NoPayments, got %+v", vs)
		}
	})

	t.Run("payment mismatch", func(t *testing.T) {
		vs := ValidatePayments([]entities.Payment{
			{Type: entities.PaymentEfectivo, Amount: 150},
		}, 200)
		if countCode(vs, ViolationPaymentMismatch) != 1 {
			t.Fatalf("expected PaymentMismatch, got %+v", vs)
		}
	})

	t.Run("sum within epsilon passes", func(t *testing.T) {
		vs := ValidatePayments([]entities.Payment{
			{Type: entities.PaymentEfectivo, Amount: 100.004},
			{Type: entities.PaymentTarjeta, Amount: 100},
		}, 200)
		if len(vs) != 0 {
			t.Fatalf("expected no violations, got %+v", vs)
		}
	})

	t.Run("unknown type and non-positive amount", func(t *testing.T) {
		vs := ValidatePayments([]entities.Payment{
			{Type: "cheque", Amount: 100},
			{Type: entities.PaymentEfectivo, Amount: 0},
		}, 100)
		if countCode(vs, ViolationInvalidPayment) != 2 {
			t.Fatalf("expected 2 InvalidPayment violations, got %+v", vs)
		}
	})
}

func TestValidateTotals(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		vs := ValidateTotals(entities.Transaction{Subtotal: 100, Total: 90, Discount: 10})
		if len(vs) != 0 {
			t.Fatalf("expected no violations, got %+v", vs)
		}
	})

	t.Run("negative adjustment and non-positive total", func(t *testing.T) {
		vs := ValidateTotals(entities.Transaction{Subtotal: -5, Total: 0, Discount: -1})
		if countCode(vs, ViolationNegativeSubtotal) != 1 ||
			countCode(vs, ViolationNonPositiveTotal) != 1 ||
			countCode(vs, ViolationNegativeAdjustment) != 1 {
			t.Fatalf("expected all three violations, got %+v", vs)
		}
	})
}

func TestValidateDraft(t *testing.T) {
	valid := entities.Transaction{
		Subtotal: 200,
		Total:    200,
		Lines: []entities.TransactionLine{
			{ProductID: "P1", Quantity: 2, UnitPrice: 100},
		},
		Payments: []entities.Payment{
			{Type: entities.PaymentEfectivo, Amount: 200},
		},
	}

	t.Run("valid draft", func(t *testing.T) {
		if err := ValidateDraft(valid); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("on-account requires a registered client", func(t *testing.T) {
		draft := valid
		draft.Payments = []entities.Payment{
			{Type: entities.PaymentCuentaCorriente, Amount: 200},
		}
		err := ValidateDraft(draft)
		if err == nil || countCode(err.Violations, ViolationCreditNeedsClient) != 1 {
			t.Fatalf("expected CreditNeedsClient, got %v", err)
		}

		clientID := "c-1"
		draft.ClientID = &clientID
		if err := ValidateDraft(draft); err != nil {
			t.Fatalf("expected nil with registered client, got %v", err)
		}
	})

	t.Run("aggregates across validators", func(t *testing.T) {
		err := ValidateDraft(entities.Transaction{Discount: -1})
		if err == nil {
			t.Fatal("expected error")
		}
		if countCode(err.Violations, ViolationEmptyCart) != 1 ||
			countCode(err.Violations, ViolationNoPayments) != 1 ||
			countCode(err.Violations, ViolationNegativeAdjustment) != 1 {
			t.Fatalf("expected aggregated violations, got %+v", err.Violations)
		}
	})
}
