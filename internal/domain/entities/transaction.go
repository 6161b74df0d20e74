package entities

import "time"

// TransactionKind discriminates the two commercial documents handled by the
// engine. Both share the same lifecycle; only commit-time delivery differs.
//
// Domain notes:
//   - venta: immediate sale, ships complete at commit (stock leaves on commit).
//   - presupuesto: deferred-fulfillment budget, stock leaves on delivery.

type TransactionKind string

const (
	KindVenta       TransactionKind = "venta"
	KindPresupuesto TransactionKind = "presupuesto"
)

func (k TransactionKind) Valid() bool {
	return k == KindVenta || k == KindPresupuesto
}

// TransactionStatus represents the lifecycle of a transaction.
//
// Transitions:
//   - pendiente -> parcial -> completada (terminal)
//   - any non-terminal -> cancelada (terminal)
//
// A venta that ships complete at commit enters completada directly.

type TransactionStatus string

const (
	StatusPendiente  TransactionStatus = "pendiente"
	StatusParcial    TransactionStatus = "parcial"
	StatusCompletada TransactionStatus = "completada"
	StatusCancelada  TransactionStatus = "cancelada"
)

// Terminal reports whether no further delivery may happen in this status.
// Cancellation is still legal from completada (reverses delivered stock).
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompletada || s == StatusCancelada
}

// PaymentType enumerates the accepted payment instruments. cuenta_corriente is
// the only type that touches the client ledger.

type PaymentType string

const (
	PaymentEfectivo        PaymentType = "efectivo"
	PaymentTarjeta         PaymentType = "tarjeta"
	PaymentTransferencia   PaymentType = "transferencia"
	PaymentCuentaCorriente PaymentType = "cuenta_corriente"
	PaymentOtro            PaymentType = "otro"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentEfectivo, PaymentTarjeta, PaymentTransferencia, PaymentCuentaCorriente, PaymentOtro:
		return true
	}
	return false
}

// Transaction is the commercial document (sale or budget) persisted by the
// service. Totals are computed by the builder at draft time and frozen at
// commit; only delivery progress, status and cancellation fields mutate
// afterwards, and only through the engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - lines/payments are embedded documents (they cannot outlive the parent)
//
// ClientID == nil means a walk-in customer (no magic sentinel id).

type Transaction struct {
	ID             string            `json:"id"`
	DocumentNumber string            `json:"document_number"`
	Kind           TransactionKind   `json:"kind"`
	ClientID       *string           `json:"client_id,omitempty"`
	QuotationID    *string           `json:"quotation_id,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Subtotal       float64           `json:"subtotal"`
	Discount       float64           `json:"discount"`
	Surcharge      float64           `json:"surcharge"`
	Total          float64           `json:"total"`
	Status         TransactionStatus `json:"status"`
	CancelReason   string            `json:"cancel_reason,omitempty"`
	CancelledAt    *time.Time        `json:"cancelled_at,omitempty"`

	Lines    []TransactionLine `json:"lines"`
	Payments []Payment         `json:"payments"`

	// AppliedRequestIDs records client-generated request ids already applied
	// by Deliver/Cancel so a retried call cannot double-apply.
	AppliedRequestIDs []string `json:"applied_request_ids,omitempty"`

	DocumentDate time.Time `json:"document_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionLine is one product line. Subtotal is the per-line rounded value
// quantity * unitPrice * (1 - discountPct/100) and is immutable after commit.
type TransactionLine struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Delivered   int     `json:"delivered"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"`
	Subtotal    float64 `json:"subtotal"`
}

// Remaining is the undelivered portion of the line.
func (l TransactionLine) Remaining() int {
	return l.Quantity - l.Delivered
}

// Payment is one payment instrument applied to the transaction. Immutable
// after commit; cancellation reverses linked ledger movements, it never
// deletes the payment.
type Payment struct {
	ID               string      `json:"id"`
	Type             PaymentType `json:"type"`
	Amount           float64     `json:"amount"`
	Description      string      `json:"description,omitempty"`
	LedgerMovementID string      `json:"ledger_movement_id,omitempty"`
	GatewayRef       string      `json:"gateway_ref,omitempty"`
}

// FullyDelivered reports whether every line has been delivered in full.
func (t Transaction) FullyDelivered() bool {
	for _, l := range t.Lines {
		if l.Delivered < l.Quantity {
			return false
		}
	}
	return true
}

// HasDeliveries reports whether any quantity has physically left stock.
func (t Transaction) HasDeliveries() bool {
	for _, l := range t.Lines {
		if l.Delivered > 0 {
			return true
		}
	}
	return false
}

// RequestApplied reports whether an idempotency key was already consumed.
func (t Transaction) RequestApplied(requestID string) bool {
	for _, id := range t.AppliedRequestIDs {
		if id == requestID {
			return true
		}
	}
	return false
}
