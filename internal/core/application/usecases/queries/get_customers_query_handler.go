package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves customer read models from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query to list customers matching the filters.
// Results are sorted by creation time for stable listing output.
func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		WHERE 1=1`
	args := make([]any, 0, 3)

	filters := query.Filters()
	if filters.FirstNameContains != "" {
		querySQL += " AND first_name ILIKE ?"
		args = append(args, "%"+escapeLikePattern(filters.FirstNameContains)+"%")
	}
	if filters.LastNameContains != "" {
		querySQL += " AND last_name ILIKE ?"
		args = append(args, "%"+escapeLikePattern(filters.LastNameContains)+"%")
	}
	if filters.IsActive != nil {
		querySQL += " AND is_active = ?"
		args = append(args, *filters.IsActive)
	}
	querySQL += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		resp, scanErr := scanCustomerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
