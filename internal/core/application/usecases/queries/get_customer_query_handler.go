package queries

import (
	"context"
	"database/sql"
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves a single customer read model from the
// database, selected by identifier or by email.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer.
// Returns an errs.ObjectNotFoundError when no such customer exists.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	querySQL := `
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone_number,
			date_of_birth,
			is_active,
			created_at,
			updated_at
		FROM customers
		WHERE `

	var (
		arg      any
		selector string
	)
	if query.CustomerID() != nil {
		querySQL += "id = ?"
		arg = query.CustomerID().String()
		selector = "customer_id"
	} else {
		querySQL += "email = ?"
		arg = query.Email()
		selector = "email"
	}

	row := h.db.WithContext(ctx).Raw(querySQL, arg).Row()

	resp, err := scanCustomerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, errs.NewObjectNotFoundError(selector, arg)
		}
		return CustomerResponse{}, err
	}

	return resp, nil
}

func scanCustomerRow(row rowScanner) (CustomerResponse, error) {
	var (
		resp        CustomerResponse
		id          uuid.UUID
		phoneNumber sql.NullString
		dateOfBirth sql.NullTime
	)

	err := row.Scan(
		&id,
		&resp.FirstName,
		&resp.LastName,
		&resp.Email,
		&phoneNumber,
		&dateOfBirth,
		&resp.IsActive,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	resp.ID = customerID

	if phoneNumber.Valid {
		resp.PhoneNumber = phoneNumber.String
	}
	if dateOfBirth.Valid {
		dob := dateOfBirth.Time
		resp.DateOfBirth = &dob
	}

	return resp, nil
}
