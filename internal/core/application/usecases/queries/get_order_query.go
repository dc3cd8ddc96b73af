package queries

import (
	"errors"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LineItemResponse represents one order line in a read model.
type LineItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	TotalPrice  kernel.Money
}

// OrderResponse represents a full order read model: the header plus its line
// items in insertion order.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Status          order.Status
	TotalAmount     kernel.Money
	Notes           string
	ShippingAddress string
	BillingAddress  string
	Items           []LineItemResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
