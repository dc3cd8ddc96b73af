package queries

import (
	"errors"

	"retailedge/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
)

// CustomerFilters narrows a customer listing. Zero-valued fields mean
// "no constraint"; name fields match case-insensitively as substrings.
type CustomerFilters struct {
	FirstNameContains string
	LastNameContains  string
	IsActive          *bool
}

// GetCustomersQuery retrieves customers matching a set of optional filters.
// The zero filter set lists every customer.
type GetCustomersQuery struct { //nolint:recvcheck //using for validation
	filters CustomerFilters

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to list customers.
func NewGetCustomersQuery(filters CustomerFilters) GetCustomersQuery {
	return GetCustomersQuery{
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Filters returns the listing filters.
func (q GetCustomersQuery) Filters() CustomerFilters {
	return q.filters
}
