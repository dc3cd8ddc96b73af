package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductCategoriesQueryHandler retrieves the distinct catalog categories.
type GetProductCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetProductCategoriesQueryHandler creates a handler for category listing.
func NewGetProductCategoriesQueryHandler(db *gorm.DB) GetProductCategoriesQueryHandler {
	return GetProductCategoriesQueryHandler{db: db}
}

// Handle executes the query to list distinct categories in alphabetical order.
func (h GetProductCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetProductCategoriesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM products
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
