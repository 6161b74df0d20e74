package interfaces

import (
	"context"
	"partsdesk/internal/domain/entities"
)

// ListFilters narrows and paginates transaction listings. Cursor is an opaque
// token produced by the store (DynamoDB last-evaluated-key, base64 encoded).
type ListFilters struct {
	Kind     entities.TransactionKind
	Status   entities.TransactionStatus
	ClientID string
	Limit    int
	Cursor   string
}

// ITransactionStore abstracts persistence for Transaction documents.
//
// The engine must be able to:
//   - reserve the next human-readable document number per kind
//   - create a transaction exactly once (conditional put)
//   - replace a transaction after delivery/cancellation progress
//   - load one transaction and list with filters + pagination

type ITransactionStore interface {
	NextDocumentNumber(ctx context.Context, kind entities.TransactionKind) (string, error)
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	List(ctx context.Context, f ListFilters) ([]entities.Transaction, string, error)
}
