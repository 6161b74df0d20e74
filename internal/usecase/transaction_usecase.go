package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase/interfaces"
)

// LineDelivery is one requested delivery against a transaction line.
type LineDelivery struct {
	LineID   string
	Quantity int
}

// EngineConfig carries the commit-time stock policy. The observed lenient
// behavior lets an immediate sale drive stock negative; Deliver always
// enforces non-negative stock.
type EngineConfig struct {
	AllowNegativeStockOnSale bool
}

// ITransactionUseCase is the transaction engine: the state machine governing
// commit, partial delivery and cancellation of sales and budgets.
//
// All operations are all-or-nothing from the caller's perspective: a failure
// at any collaborator sub-step compensates the sub-steps already applied
// before the error is surfaced.

type ITransactionUseCase interface {
	Commit(ctx context.Context, in DraftInput) (entities.Transaction, error)
	Deliver(ctx context.Context, transactionID, requestID string, deliveries []LineDelivery) (entities.Transaction, error)
	Cancel(ctx context.Context, transactionID, requestID, reason string) (entities.Transaction, error)
	GetByID(ctx context.Context, transactionID string) (entities.Transaction, error)
	List(ctx context.Context, f interfaces.ListFilters) ([]entities.Transaction, string, error)
}

type TransactionUseCase struct {
	store   interfaces.ITransactionStore
	stock   interfaces.IStockStore
	ledger  interfaces.IClientLedger
	gateway interfaces.IPaymentGateway
	cfg     EngineConfig

	txnLocks     *keyedMutex
	productLocks *keyedMutex
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

// NewTransactionUseCase wires the engine. gateway may be nil; card payments
// are then recorded without external capture.
func NewTransactionUseCase(
	store interfaces.ITransactionStore,
	stock interfaces.IStockStore,
	ledger interfaces.IClientLedger,
	gateway interfaces.IPaymentGateway,
	cfg EngineConfig,
) *TransactionUseCase {
	return &TransactionUseCase{
		store:        store,
		stock:        stock,
		ledger:       ledger,
		gateway:      gateway,
		cfg:          cfg,
		txnLocks:     newKeyedMutex(),
		productLocks: newKeyedMutex(),
	}
}

// stockDelta records an applied stock adjustment so it can be compensated.
type stockDelta struct {
	productID string
	delta     int
}

func (u *TransactionUseCase) adjustStock(ctx context.Context, productID string, delta int, allowNegative bool) (int, error) {
	u.productLocks.Lock(productID)
	defer u.productLocks.Unlock(productID)
	return u.stock.Adjust(ctx, productID, delta, allowNegative)
}

// compensateStock reverses already-applied deltas. Compensation always allows
// negative results: restoring what we took out must never fail on policy.
func (u *TransactionUseCase) compensateStock(ctx context.Context, applied []stockDelta) {
	for i := len(applied) - 1; i >= 0; i-- {
		d := applied[i]
		if _, err := u.adjustStock(ctx, d.productID, -d.delta, true); err != nil {
			log.Printf("[txn][usecase] WARNING stock compensation failed product_id=%s delta=%d err=%v", d.productID, -d.delta, err)
		}
	}
}

// Commit validates a draft, applies its commit-time side effects atomically
// (stock decrement for immediate sales, ledger movements for on-account
// payments, optional card capture) and persists the transaction with its
// sequential document number.
func (u *TransactionUseCase) Commit(ctx context.Context, in DraftInput) (entities.Transaction, error) {
	if !in.Kind.Valid() {
		return entities.Transaction{}, &ValidationError{Violations: []Violation{{
			Code:    ViolationInvalidLine,
			Message: fmt.Sprintf("unknown transaction kind %q", in.Kind),
		}}}
	}

	t := BuildDraft(in)
	log.Printf("[txn][usecase] commit start kind=%s lines=%d payments=%d total=%.2f", t.Kind, len(t.Lines), len(t.Payments), t.Total)

	if verr := ValidateDraft(t); verr != nil {
		return entities.Transaction{}, verr
	}

	onAccount := 0.0
	for _, p := range t.Payments {
		if p.Type == entities.PaymentCuentaCorriente {
			onAccount += p.Amount
		}
	}
	if onAccount > 0 {
		profile, err := u.ledger.GetProfile(ctx, *t.ClientID)
		if err != nil {
			return entities.Transaction{}, &CollaboratorError{Op: OpLedgerAdjustment, Cause: err}
		}
		decision := CanSellOnCredit(profile, onAccount)
		if !decision.Authorized {
			reason := ReasonNoCreditAccount
			if decision.Reason == CreditLimitExceeded {
				reason = ReasonCreditLimitExceeded
			}
			return entities.Transaction{}, &PolicyError{Reason: reason, Shortfall: decision.Shortfall}
		}
	}

	// Stock leaves inventory at commit only for immediate sales; budgets
	// decrement on delivery.
	var applied []stockDelta
	if t.Kind == entities.KindVenta {
		for _, l := range t.Lines {
			if _, err := u.adjustStock(ctx, l.ProductID, -l.Quantity, u.cfg.AllowNegativeStockOnSale); err != nil {
				u.compensateStock(ctx, applied)
				return entities.Transaction{}, &CollaboratorError{Op: OpStockAdjustment, Cause: err}
			}
			applied = append(applied, stockDelta{productID: l.ProductID, delta: -l.Quantity})
		}
	}

	var movements []string
	for i := range t.Payments {
		if t.Payments[i].Type != entities.PaymentCuentaCorriente {
			continue
		}
		movementID, err := u.ledger.PostMovement(ctx, *t.ClientID, t.Payments[i].Amount, t.ID)
		if err != nil {
			u.compensateLedger(ctx, movements)
			u.compensateStock(ctx, applied)
			return entities.Transaction{}, &CollaboratorError{Op: OpLedgerAdjustment, Cause: err}
		}
		t.Payments[i].LedgerMovementID = movementID
		movements = append(movements, movementID)
	}

	if err := u.captureCardPayments(ctx, &t); err != nil {
		u.voidCardPayments(ctx, t)
		u.compensateLedger(ctx, movements)
		u.compensateStock(ctx, applied)
		return entities.Transaction{}, err
	}

	docNum, err := u.store.NextDocumentNumber(ctx, t.Kind)
	if err != nil {
		u.voidCardPayments(ctx, t)
		u.compensateLedger(ctx, movements)
		u.compensateStock(ctx, applied)
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	t.DocumentNumber = docNum

	created, err := u.store.Create(ctx, t)
	if err != nil {
		u.voidCardPayments(ctx, t)
		u.compensateLedger(ctx, movements)
		u.compensateStock(ctx, applied)
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}

	log.Printf("[txn][usecase] commit success id=%s document_number=%s status=%s", created.ID, created.DocumentNumber, created.Status)
	return created, nil
}

func (u *TransactionUseCase) compensateLedger(ctx context.Context, movementIDs []string) {
	for i := len(movementIDs) - 1; i >= 0; i-- {
		if err := u.ledger.ReverseMovement(ctx, movementIDs[i]); err != nil {
			log.Printf("[txn][usecase] WARNING ledger compensation failed movement_id=%s err=%v", movementIDs[i], err)
		}
	}
}

// captureCardPayments runs tarjeta payments through the external gateway
// when one is configured. The gateway response id is kept on the payment for
// reconciliation.
func (u *TransactionUseCase) captureCardPayments(ctx context.Context, t *entities.Transaction) error {
	if u.gateway == nil {
		return nil
	}
	for i := range t.Payments {
		if t.Payments[i].Type != entities.PaymentTarjeta {
			continue
		}
		payload, err := json.Marshal(map[string]any{
			"transaction_amount": t.Payments[i].Amount,
			"description":        fmt.Sprintf("POS transaction %s", t.ID),
			"external_reference": t.ID,
		})
		if err != nil {
			return &CollaboratorError{Op: OpPaymentCapture, Cause: err}
		}
		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[txn][usecase] card capture failed transaction_id=%s err=%v", t.ID, err)
			return &CollaboratorError{Op: OpPaymentCapture, Cause: err}
		}
		log.Printf("[txn][usecase] card capture success transaction_id=%s provider_payment_id=%s provider_status=%s", t.ID, providerID, providerStatus)
		t.Payments[i].GatewayRef = providerID
	}
	return nil
}

// voidCardPayments cancels captures already taken at the gateway when a
// later commit step fails, so no money is held without a persisted document.
func (u *TransactionUseCase) voidCardPayments(ctx context.Context, t entities.Transaction) {
	if u.gateway == nil {
		return
	}
	for _, p := range t.Payments {
		if p.Type != entities.PaymentTarjeta || p.GatewayRef == "" {
			continue
		}
		if err := u.gateway.CancelPayment(ctx, p.GatewayRef); err != nil {
			log.Printf("[txn][usecase] WARNING card capture void failed transaction_id=%s provider_payment_id=%s err=%v", t.ID, p.GatewayRef, err)
		}
	}
}

// Deliver fulfills some quantity of one or more lines of a pendiente/parcial
// transaction. Stock is decremented per delivered line (it was not touched at
// commit for deferred documents). Replays identified by requestID return the
// stored state without re-applying side effects.
func (u *TransactionUseCase) Deliver(ctx context.Context, transactionID, requestID string, deliveries []LineDelivery) (entities.Transaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Transaction{}, ErrInvalidTransaction
	}
	if strings.TrimSpace(requestID) == "" {
		return entities.Transaction{}, ErrInvalidRequestID
	}

	u.txnLocks.Lock(transactionID)
	defer u.txnLocks.Unlock(transactionID)

	t, err := u.store.GetByID(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if t.RequestApplied(requestID) {
		log.Printf("[txn][usecase] deliver replay id=%s request_id=%s", transactionID, requestID)
		return t, nil
	}

	if t.Status == entities.StatusCancelada {
		return entities.Transaction{}, ErrAlreadyCancelled
	}
	if t.Status != entities.StatusPendiente && t.Status != entities.StatusParcial {
		return entities.Transaction{}, ErrNotDeliverable
	}

	// Validate the whole request before touching stock. Quantities are
	// aggregated per line first so a request repeating the same line cannot
	// slip past the remaining check.
	lineIdx := make(map[string]int, len(t.Lines))
	for i, l := range t.Lines {
		lineIdx[l.ID] = i
	}
	requested := make(map[string]int, len(deliveries))
	anyPositive := false
	for _, d := range deliveries {
		i, ok := lineIdx[d.LineID]
		if !ok {
			return entities.Transaction{}, fmt.Errorf("%w: %s", ErrUnknownLine, d.LineID)
		}
		if d.Quantity < 0 {
			return entities.Transaction{}, &DeliveryError{LineID: d.LineID, Requested: d.Quantity, Negative: true}
		}
		requested[d.LineID] += d.Quantity
		if requested[d.LineID] > t.Lines[i].Remaining() {
			return entities.Transaction{}, &DeliveryError{LineID: d.LineID, Requested: requested[d.LineID], Remaining: t.Lines[i].Remaining()}
		}
		if d.Quantity > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		return entities.Transaction{}, ErrNoDeliverySpecified
	}

	var applied []stockDelta
	for _, d := range deliveries {
		if d.Quantity == 0 {
			continue
		}
		i := lineIdx[d.LineID]
		if _, err := u.adjustStock(ctx, t.Lines[i].ProductID, -d.Quantity, false); err != nil {
			u.compensateStock(ctx, applied)
			return entities.Transaction{}, &CollaboratorError{Op: OpStockAdjustment, Cause: err}
		}
		applied = append(applied, stockDelta{productID: t.Lines[i].ProductID, delta: -d.Quantity})
		t.Lines[i].Delivered += d.Quantity
	}

	if t.FullyDelivered() {
		t.Status = entities.StatusCompletada
	} else {
		t.Status = entities.StatusParcial
	}
	t.AppliedRequestIDs = append(t.AppliedRequestIDs, requestID)
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.store.Update(ctx, t)
	if err != nil {
		u.compensateStock(ctx, applied)
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	log.Printf("[txn][usecase] deliver success id=%s request_id=%s status=%s", updated.ID, requestID, updated.Status)
	return updated, nil
}

// Cancel moves a transaction to cancelada, restoring the stock that actually
// left inventory (delivered quantities only) and posting opposite ledger
// movements for on-account payments. Original movements are never deleted.
// Re-invoking on an already-cancelled transaction fails with AlreadyCancelled
// and applies nothing; a replay of the same requestID is a no-op success.
func (u *TransactionUseCase) Cancel(ctx context.Context, transactionID, requestID, reason string) (entities.Transaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Transaction{}, ErrInvalidTransaction
	}
	if strings.TrimSpace(requestID) == "" {
		return entities.Transaction{}, ErrInvalidRequestID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Transaction{}, ErrMissingReason
	}

	u.txnLocks.Lock(transactionID)
	defer u.txnLocks.Unlock(transactionID)

	t, err := u.store.GetByID(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if t.RequestApplied(requestID) {
		log.Printf("[txn][usecase] cancel replay id=%s request_id=%s", transactionID, requestID)
		return t, nil
	}
	if t.Status == entities.StatusCancelada {
		return entities.Transaction{}, ErrAlreadyCancelled
	}

	// Restore only what physically left inventory. Undelivered portions of a
	// deferred document never touched stock.
	var applied []stockDelta
	for _, l := range t.Lines {
		if l.Delivered == 0 {
			continue
		}
		if _, err := u.adjustStock(ctx, l.ProductID, l.Delivered, true); err != nil {
			u.compensateStock(ctx, applied)
			return entities.Transaction{}, &CollaboratorError{Op: OpStockAdjustment, Cause: err}
		}
		applied = append(applied, stockDelta{productID: l.ProductID, delta: l.Delivered})
	}

	// Reverse on-account movements. If one fails midway, the already-applied
	// reversals are reinstated (the originals become reversible again) so a
	// retried cancel can reverse them; history stays append-only either way.
	var done []string
	for _, p := range t.Payments {
		if p.LedgerMovementID == "" {
			continue
		}
		if err := u.ledger.ReverseMovement(ctx, p.LedgerMovementID); err != nil {
			u.reinstateLedger(ctx, done)
			u.compensateStock(ctx, applied)
			return entities.Transaction{}, &CollaboratorError{Op: OpLedgerAdjustment, Cause: err}
		}
		done = append(done, p.LedgerMovementID)
	}

	now := time.Now().UTC()
	t.Status = entities.StatusCancelada
	t.CancelReason = reason
	t.CancelledAt = &now
	t.AppliedRequestIDs = append(t.AppliedRequestIDs, requestID)
	t.UpdatedAt = now

	updated, err := u.store.Update(ctx, t)
	if err != nil {
		u.reinstateLedger(ctx, done)
		u.compensateStock(ctx, applied)
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	log.Printf("[txn][usecase] cancel success id=%s request_id=%s reason=%q", updated.ID, requestID, reason)
	return updated, nil
}

// reinstateLedger undoes already-applied reversals after a failed cancel so
// the originals stay reversible for a retry.
func (u *TransactionUseCase) reinstateLedger(ctx context.Context, movementIDs []string) {
	for i := len(movementIDs) - 1; i >= 0; i-- {
		if err := u.ledger.ReinstateMovement(ctx, movementIDs[i]); err != nil {
			log.Printf("[txn][usecase] WARNING ledger reinstate compensation failed movement_id=%s err=%v", movementIDs[i], err)
		}
	}
}

func (u *TransactionUseCase) GetByID(ctx context.Context, transactionID string) (entities.Transaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Transaction{}, ErrInvalidTransaction
	}

	t, err := u.store.GetByID(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *TransactionUseCase) List(ctx context.Context, f interfaces.ListFilters) ([]entities.Transaction, string, error) {
	items, cursor, err := u.store.List(ctx, f)
	if err != nil {
		return nil, "", &CollaboratorError{Op: OpPersistence, Cause: err}
	}
	return items, cursor, nil
}
