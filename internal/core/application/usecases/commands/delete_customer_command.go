package commands

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrDeleteCustomerCommandIsNotConstructed = errors.New(
		"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
	)
)

// DeleteCustomerCommand represents a request to remove a customer.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to delete a customer.
func NewDeleteCustomerCommand(customerID kernel.UUID) (DeleteCustomerCommand, error) {
	cmd := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to delete.
func (c DeleteCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *DeleteCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
