package interfaces

import (
	"context"
	"partsdesk/internal/domain/entities"
)

// IClientLedger abstracts the accounts-receivable ledger consumed by the
// credit policy and mutated by the engine for cuenta_corriente payments.
//
// ReverseMovement must post an equal-and-opposite movement rather than delete
// the original, preserving audit history. ReinstateMovement undoes a reversal
// the same way (opposite movement, original made reversible again); the engine
// uses it to compensate a cancel that failed after reversing movements.

type IClientLedger interface {
	GetProfile(ctx context.Context, clientID string) (entities.ClientCreditProfile, error)
	PostMovement(ctx context.Context, clientID string, amount float64, transactionID string) (string, error)
	ReverseMovement(ctx context.Context, movementID string) error
	ReinstateMovement(ctx context.Context, movementID string) error
}
