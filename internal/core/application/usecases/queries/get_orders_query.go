package queries

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally narrowed to one customer, one
// status, or both. Nil filters mean "no constraint", so the zero filter set
// lists every order.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. Either filter may be nil.
func NewGetOrdersQuery(customerID *kernel.UUID, status *order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.customerID = customerID
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = status
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, nil when unset.
func (q GetOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter, nil when unset.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
