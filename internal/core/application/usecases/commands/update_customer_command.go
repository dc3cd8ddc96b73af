package commands

import (
	"errors"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
)

// UpdateCustomerCommand represents a full replacement of a customer's mutable
// fields.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	firstName   string
	lastName    string
	email       string
	phoneNumber string
	dateOfBirth *time.Time
	isActive    bool

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	dateOfBirth *time.Time,
	isActive bool,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phoneNumber: phoneNumber,
		dateOfBirth: dateOfBirth,
		isActive:    isActive,

		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the replacement first name.
func (c UpdateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the replacement last name.
func (c UpdateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the replacement email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// PhoneNumber returns the replacement phone number, possibly empty.
func (c UpdateCustomerCommand) PhoneNumber() string {
	return c.phoneNumber
}

// DateOfBirth returns the replacement date of birth, possibly nil.
func (c UpdateCustomerCommand) DateOfBirth() *time.Time {
	return c.dateOfBirth
}

// IsActive returns the replacement activity flag.
func (c UpdateCustomerCommand) IsActive() bool {
	return c.isActive
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
