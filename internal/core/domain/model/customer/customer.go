// Package customer provides the Customer entity for the users collaborator.
// Email uniqueness is enforced by the storage layer; the entity only validates
// shape and bounds.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
	maxPhoneLength = 20
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
// through the NewCustomer or RestoreCustomer factory functions.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is a registered buyer.
type Customer struct {
	id          kernel.UUID
	firstName   string
	lastName    string
	email       string
	phoneNumber string
	dateOfBirth *time.Time
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewCustomer creates a customer. First name, last name, and a well-formed
// email are required; phone number and date of birth are optional.
func NewCustomer(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	dateOfBirth *time.Time,
	isActive bool,
) (*Customer, error) {
	c := &Customer{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setEmail(email),
		c.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	c.dateOfBirth = dateOfBirth
	now := time.Now().UTC()
	c.createdAt = now
	c.updatedAt = now
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistent storage.
func RestoreCustomer(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	dateOfBirth *time.Time,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, firstName, lastName, email, phoneNumber, dateOfBirth, isActive)
	if err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Customer instance was created through a factory function.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// UpdateDetails assigns all mutable fields and refreshes updatedAt.
func (c *Customer) UpdateDetails(
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	dateOfBirth *time.Time,
	isActive bool,
) error {
	if err := errors.Join(
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setEmail(email),
		c.setPhoneNumber(phoneNumber),
	); err != nil {
		return err
	}

	c.dateOfBirth = dateOfBirth
	c.isActive = isActive
	c.updatedAt = time.Now().UTC()
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c *Customer) LastName() string { return c.lastName }

// Email returns the customer's unique email address.
func (c *Customer) Email() string { return c.email }

// PhoneNumber returns the optional phone number.
func (c *Customer) PhoneNumber() string { return c.phoneNumber }

// DateOfBirth returns the optional date of birth.
func (c *Customer) DateOfBirth() *time.Time { return c.dateOfBirth }

// IsActive reports whether the customer account is active.
func (c *Customer) IsActive() bool { return c.isActive }

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if len(firstName) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"first name",
			fmt.Errorf("length %d exceeds maximum of %d", len(firstName), maxNameLength),
		)
	}
	c.firstName = firstName
	return nil
}

func (c *Customer) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	if len(lastName) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"last name",
			fmt.Errorf("length %d exceeds maximum of %d", len(lastName), maxNameLength),
		)
	}
	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > maxEmailLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("length %d exceeds maximum of %d", len(email), maxEmailLength),
		)
	}

	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}

	c.email = email
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber string) error {
	if len(phoneNumber) > maxPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone number",
			fmt.Errorf("length %d exceeds maximum of %d", len(phoneNumber), maxPhoneLength),
		)
	}
	c.phoneNumber = phoneNumber
	return nil
}
