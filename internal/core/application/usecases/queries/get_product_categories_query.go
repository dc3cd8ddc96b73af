package queries

import (
	"errors"

	"retailedge/internal/pkg/guard"
)

var (
	ErrGetProductCategoriesQueryIsNotConstructed = errors.New(
		"GetProductCategoriesQuery must be created via NewGetProductCategoriesQuery constructor",
	)
)

// GetProductCategoriesQuery retrieves the distinct set of categories currently
// present in the catalog.
type GetProductCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductCategoriesQuery creates a query to list catalog categories.
// This is a parameterless query.
func NewGetProductCategoriesQuery() GetProductCategoriesQuery {
	return GetProductCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetProductCategoriesQueryIsNotConstructed)
}
