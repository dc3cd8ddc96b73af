package commands

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
	"retailedge/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to rewrite an existing order: header
// fields are reassigned and the item collection is replaced wholesale with the
// supplied set. The replacement set must be non-empty, the same rule that
// applies at creation.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	items           []ItemArgument
	notes           string
	shippingAddress string
	billingAddress  string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to rewrite an existing order.
// Validates that both identifiers are valid and at least one item is supplied.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []ItemArgument,
	notes string,
	shippingAddress string,
	billingAddress string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
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
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to rewrite.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer identifier to assign.
func (c UpdateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the replacement order lines.
func (c UpdateOrderCommand) Items() []ItemArgument {
	return c.items
}

// Notes returns the notes to assign.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

// ShippingAddress returns the shipping address to assign.
func (c UpdateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// BillingAddress returns the billing address to assign.
func (c UpdateOrderCommand) BillingAddress() string {
	return c.billingAddress
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []ItemArgument) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = items
	return nil
}
