package queries

import (
	"errors"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetProductQuery retrieves a single catalog product.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve a product by identifier.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product to retrieve.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// ProductResponse represents a catalog product read model.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	InStock     bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
