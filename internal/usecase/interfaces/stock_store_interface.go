package interfaces

import (
	"context"
	"errors"
)

// ErrInsufficientStock is returned by Adjust when the resulting quantity
// would go negative and allowNegative is false.
var ErrInsufficientStock = errors.New("insufficient stock")

// IStockStore abstracts the inventory subsystem's stock levels. The engine
// adjusts quantities but does not own the product lifecycle.
//
// Adjust applies delta atomically and returns the new quantity. With
// allowNegative false the store must reject (ErrInsufficientStock) instead of
// letting the level drop below zero.

type IStockStore interface {
	GetStock(ctx context.Context, productID string) (int, error)
	Adjust(ctx context.Context, productID string, delta int, allowNegative bool) (int, error)
}
