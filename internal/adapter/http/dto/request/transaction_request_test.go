package request

import (
	"testing"
	"time"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase"
)

func TestTransactionCreateRequest_ToDraftInput(t *testing.T) {
	clientID := " c-1 "
	quotationID := "q-1"
	docDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	r := TransactionCreateRequest{
		Kind:         " venta ",
		ClientID:     &clientID,
		QuotationID:  &quotationID,
		Notes:        "mostrador",
		DocumentDate: &docDate,
		Lines: []TransactionLineRequest{
			{ProductID: " P1 ", Quantity: 2, UnitPrice: 100, DiscountPct: 10},
		},
		Payments: []TransactionPaymentRequest{
			{Type: " efectivo ", Amount: 180, Description: "caja"},
		},
		Adjustment: &AdjustmentRequest{Mode: "Descuento", Amount: 20},
	}

	in := r.ToDraftInput()
	if in.Kind != entities.KindVenta {
		t.Fatalf("expected venta, got %q", in.Kind)
	}
	if in.ClientID == nil || *in.ClientID != "c-1" {
		t.Fatalf("expected trimmed client id, got %v", in.ClientID)
	}
	if in.QuotationID == nil || *in.QuotationID != "q-1" {
		t.Fatalf("expected quotation id, got %v", in.QuotationID)
	}
	if !in.DocumentDate.Equal(docDate) {
		t.Fatalf("expected document date, got %v", in.DocumentDate)
	}
	if len(in.Lines) != 1 || in.Lines[0].ProductID != "P1" || in.Lines[0].DiscountPct != 10 {
		t.Fatalf("unexpected lines: %+v", in.Lines)
	}
	if len(in.Payments) != 1 || in.Payments[0].Type != entities.PaymentEfectivo {
		t.Fatalf("unexpected payments: %+v", in.Payments)
	}
	if in.AdjustmentMode != usecase.AdjustmentDiscount || in.AdjustmentFlat != 20 {
		t.Fatalf("unexpected adjustment: mode=%q flat=%v", in.AdjustmentMode, in.AdjustmentFlat)
	}
}

func TestTransactionCreateRequest_WalkInNormalization(t *testing.T) {
	blank := "   "
	r := TransactionCreateRequest{Kind: "venta", ClientID: &blank}
	in := r.ToDraftInput()
	if in.ClientID != nil {
		t.Fatalf("expected nil client id for blank input, got %v", *in.ClientID)
	}

	r2 := TransactionCreateRequest{Kind: "venta"}
	if in2 := r2.ToDraftInput(); in2.ClientID != nil {
		t.Fatalf("expected nil client id when omitted, got %v", *in2.ClientID)
	}
}

func TestTransactionCreateRequest_AdjustmentAliases(t *testing.T) {
	cases := []struct {
		mode string
		want usecase.AdjustmentMode
	}{
		{"discount", usecase.AdjustmentDiscount},
		{"descuento", usecase.AdjustmentDiscount},
		{"surcharge", usecase.AdjustmentSurcharge},
		{"interes", usecase.AdjustmentSurcharge},
		{"unknown", usecase.AdjustmentMode("")},
	}
	for _, c := range cases {
		r := TransactionCreateRequest{
			Kind:       "venta",
			Adjustment: &AdjustmentRequest{Mode: c.mode, Percent: 5},
		}
		in := r.ToDraftInput()
		if in.AdjustmentMode != c.want {
			t.Fatalf("mode %q: expected %q, got %q", c.mode, c.want, in.AdjustmentMode)
		}
		if in.AdjustmentPct != 5 {
			t.Fatalf("mode %q: expected pct 5, got %v", c.mode, in.AdjustmentPct)
		}
	}
}

func TestDeliverRequest_Resolvers(t *testing.T) {
	r := DeliverRequest{
		RequestID: " req-1 ",
		Deliveries: []LineDeliveryRequest{
			{LineID: " l-1 ", Quantity: 4},
			{LineID: "l-2", Quantity: 0},
		},
	}
	if got := r.ResolveRequestID(); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	deliveries := r.ToLineDeliveries()
	if len(deliveries) != 2 || deliveries[0].LineID != "l-1" || deliveries[0].Quantity != 4 {
		t.Fatalf("unexpected deliveries: %+v", deliveries)
	}
}

func TestCancelRequest_Resolvers(t *testing.T) {
	r := CancelRequest{RequestID: " req-1 ", Reason: " cliente se arrepintio "}
	if got := r.ResolveRequestID(); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	if got := r.ResolveReason(); got != "cliente se arrepintio" {
		t.Fatalf("unexpected reason %q", got)
	}

	r2 := CancelRequest{Reason: "   "}
	if got := r2.ResolveReason(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
