package queries

import (
	"errors"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
	"retailedge/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetCustomerQuery retrieves a single customer, by identifier or by email.
// Exactly one selector is set; the constructors enforce which.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID
	email      string

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query to retrieve a customer by identifier.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetCustomerByEmailQuery creates a query to retrieve a customer by email.
func NewGetCustomerByEmailQuery(email string) (GetCustomerQuery, error) {
	if email == "" {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetCustomerQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier selector, nil when selecting by email.
func (q GetCustomerQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Email returns the email selector, empty when selecting by identifier.
func (q GetCustomerQuery) Email() string {
	return q.email
}

// CustomerResponse represents a customer read model.
type CustomerResponse struct {
	ID          kernel.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
