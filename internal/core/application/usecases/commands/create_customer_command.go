package commands

import (
	"errors"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand represents a request to register a customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	firstName   string
	lastName    string
	email       string
	phoneNumber string
	dateOfBirth *time.Time
	isActive    bool

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	dateOfBirth *time.Time,
	isActive bool,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phoneNumber: phoneNumber,
		dateOfBirth: dateOfBirth,
		isActive:    isActive,

		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier assigned to the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the customer's first name.
func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// PhoneNumber returns the customer's phone number, possibly empty.
func (c CreateCustomerCommand) PhoneNumber() string {
	return c.phoneNumber
}

// DateOfBirth returns the customer's date of birth, possibly nil.
func (c CreateCustomerCommand) DateOfBirth() *time.Time {
	return c.dateOfBirth
}

// IsActive returns the initial activity flag.
func (c CreateCustomerCommand) IsActive() bool {
	return c.isActive
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
