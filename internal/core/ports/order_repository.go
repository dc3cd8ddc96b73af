package ports

import (
	"context"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
)

// OrderFilter narrows a listing of orders. Nil fields mean "no constraint";
// the empty filter returns all orders in creation order.
type OrderFilter struct {
	CustomerID *kernel.UUID
	Status     *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
// The header and its line items are one persistence unit: every write stores or
// replaces them together, and deleting an order deletes its items.
type OrderRepository interface {
	// Add persists a new order aggregate, header and items together.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored aggregate with the given state, including a
	// wholesale replacement of the item rows.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching the filter, in creation order.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the order and all its items. No-op when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
