package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTransaction  = errors.New("invalid transaction id")
	ErrInvalidRequestID    = errors.New("invalid request id")

	// State errors: the client's view of the transaction is stale or the
	// request is malformed for the current state.
	ErrAlreadyCancelled    = errors.New("transaction already cancelled")
	ErrNotDeliverable      = errors.New("transaction is not in a deliverable state")
	ErrMissingReason       = errors.New("cancellation reason is required")
	ErrNoDeliverySpecified = errors.New("no delivery quantities specified")
	ErrUnknownLine         = errors.New("unknown transaction line")
)

// ViolationCode identifies one validation rule breach.
type ViolationCode string

const (
	ViolationEmptyCart          ViolationCode = "EMPTY_CART"
	ViolationInvalidLine        ViolationCode = "INVALID_LINE"
	ViolationNoPayments         ViolationCode = "NO_PAYMENTS"
	ViolationInvalidPayment     ViolationCode = "INVALID_PAYMENT"
	ViolationPaymentMismatch    ViolationCode = "PAYMENT_MISMATCH"
	ViolationNegativeSubtotal   ViolationCode = "NEGATIVE_SUBTOTAL"
	ViolationNonPositiveTotal   ViolationCode = "NON_POSITIVE_TOTAL"
	ViolationNegativeAdjustment ViolationCode = "NEGATIVE_ADJUSTMENT"
	ViolationCreditNeedsClient  ViolationCode = "CREDIT_NEEDS_CLIENT"
)

// Violation is one structural problem found in a draft. Validators return
// every violation (not just the first) so the UI can show a complete
// correction list.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
}

// ValidationError aggregates all violations found in a draft.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, string(v.Code)+": "+v.Message)
	}
	return "invalid draft: " + strings.Join(msgs, "; ")
}

// PolicyErrorReason classifies credit-policy refusals.
type PolicyErrorReason string

const (
	ReasonNoCreditAccount     PolicyErrorReason = "NO_CREDIT_ACCOUNT"
	ReasonCreditLimitExceeded PolicyErrorReason = "CREDIT_LIMIT_EXCEEDED"
)

// PolicyError is returned when the credit policy refuses an on-account
// payment. Shortfall carries the credit still available on the account, for
// UI display.
type PolicyError struct {
	Reason    PolicyErrorReason
	Shortfall float64
}

func (e *PolicyError) Error() string {
	if e.Reason == ReasonCreditLimitExceeded {
		return fmt.Sprintf("credit limit exceeded; available credit is %.2f", e.Shortfall)
	}
	return "client has no credit account"
}

// DeliveryError is a state error raised while validating a delivery request,
// before any stock mutation.
type DeliveryError struct {
	LineID    string
	Requested int
	Remaining int
	Negative  bool
}

func (e *DeliveryError) Error() string {
	if e.Negative {
		return fmt.Sprintf("negative delivery quantity %d for line %s", e.Requested, e.LineID)
	}
	return fmt.Sprintf("over-delivery for line %s: requested %d, remaining %d", e.LineID, e.Requested, e.Remaining)
}

// CollaboratorOp names the collaborator sub-step that failed.
type CollaboratorOp string

const (
	OpStockAdjustment  CollaboratorOp = "STOCK_ADJUSTMENT_FAILED"
	OpLedgerAdjustment CollaboratorOp = "LEDGER_ADJUSTMENT_FAILED"
	OpPaymentCapture   CollaboratorOp = "PAYMENT_CAPTURE_FAILED"
	OpPersistence      CollaboratorOp = "PERSISTENCE_FAILED"
)

// CollaboratorError wraps a failure of an external collaborator. The engine
// guarantees all already-applied sub-steps were compensated before this is
// returned; Cause is the collaborator error verbatim.
type CollaboratorError struct {
	Op    CollaboratorOp
	Cause error
}

func (e *CollaboratorError) Error() string {
	return string(e.Op) + ": " + e.Cause.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}
