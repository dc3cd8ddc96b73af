package commands

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
	"retailedge/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemArgument carries one requested order line as raw request data.
// Full validation (quantity bounds, price construction, name snapshot) happens
// when the domain line item is built from it, before anything is persisted.
type ItemArgument struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// CreateOrderCommand represents a request to place a new order with an initial
// set of line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, items, "", "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	items           []ItemArgument
	notes           string
	shippingAddress string
	billingAddress  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid and at least one item is supplied.
// Item contents are validated by the domain when the handler builds the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []ItemArgument,
	notes string,
	shippingAddress string,
	billingAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:           notes,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemArgument {
	return c.items
}

// Notes returns the optional order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// ShippingAddress returns the optional shipping address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// BillingAddress returns the optional billing address.
func (c CreateOrderCommand) BillingAddress() string {
	return c.billingAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemArgument) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = items
	return nil
}
