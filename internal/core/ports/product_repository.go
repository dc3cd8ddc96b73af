package ports

import (
	"context"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/product"
)

// ProductFilter narrows a listing of catalog products. Zero-valued fields mean
// "no constraint".
type ProductFilter struct {
	NameContains string
	Category     string
	InStock      *bool
	MinPrice     *kernel.Money
	MaxPrice     *kernel.Money
}

// ProductRepository defines the persistence contract for catalog products.
// Product names carry a uniqueness constraint enforced by the storage layer;
// a violating write fails with an errs.ObjectAlreadyExistsError.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, entity *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, entity *product.Product) error

	// Get retrieves a product by identifier.
	// Returns an errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves products matching the filter, in creation order.
	GetAll(ctx context.Context, filter ProductFilter) ([]*product.Product, error)

	// Exists reports whether a product with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsByName reports whether another product (excluding excludeID) already
	// uses the given name. This is a best-effort pre-check; the unique index is
	// the source of truth under concurrent writers.
	ExistsByName(ctx context.Context, name string, excludeID kernel.UUID) (bool, error)

	// Delete removes the product. No-op when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
