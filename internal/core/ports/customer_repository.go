package ports

import (
	"context"

	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/kernel"
)

// CustomerFilter narrows a listing of customers. Zero-valued fields mean
// "no constraint"; name matches are case-insensitive substring matches.
type CustomerFilter struct {
	FirstNameContains string
	LastNameContains  string
	Email             string
	IsActive          *bool
}

// CustomerRepository defines the persistence contract for customers.
// Email addresses carry a uniqueness constraint enforced by the storage layer;
// a violating write fails with an errs.ObjectAlreadyExistsError.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, entity *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, entity *customer.Customer) error

	// Get retrieves a customer by identifier.
	// Returns an errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by email address.
	// Returns an errs.ObjectNotFoundError when no such customer exists.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// GetAll retrieves customers matching the filter, in creation order.
	GetAll(ctx context.Context, filter CustomerFilter) ([]*customer.Customer, error)

	// Exists reports whether a customer with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsByEmail reports whether another customer (excluding excludeID)
	// already uses the given email. Best-effort pre-check; the unique index is
	// the source of truth under concurrent writers.
	ExistsByEmail(ctx context.Context, email string, excludeID kernel.UUID) (bool, error)

	// Delete removes the customer. No-op when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
