package queries

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// ProductFilters narrows a catalog listing. Zero-valued fields mean
// "no constraint"; NameContains matches case-insensitively.
type ProductFilters struct {
	NameContains string
	Category     string
	InStock      *bool
	MinPrice     *kernel.Money
	MaxPrice     *kernel.Money
}

// GetProductsQuery retrieves catalog products matching a set of optional
// filters. The zero filter set lists the whole catalog.
type GetProductsQuery struct { //nolint:recvcheck //using for validation
	filters ProductFilters

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list catalog products.
func NewGetProductsQuery(filters ProductFilters) (GetProductsQuery, error) {
	if filters.MinPrice != nil {
		if err := filters.MinPrice.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}
	if filters.MaxPrice != nil {
		if err := filters.MaxPrice.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}

	return GetProductsQuery{
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Filters returns the listing filters.
func (q GetProductsQuery) Filters() ProductFilters {
	return q.filters
}
