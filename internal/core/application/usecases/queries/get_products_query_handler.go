package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves product read models from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to list products matching the filters.
// Results are sorted by creation time for stable listing output.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			id,
			name,
			description,
			price,
			category,
			in_stock,
			image_url,
			created_at,
			updated_at
		FROM products
		WHERE 1=1`
	args := make([]any, 0, 4)

	filters := query.Filters()
	if filters.NameContains != "" {
		querySQL += " AND name ILIKE ?"
		args = append(args, "%"+escapeLikePattern(filters.NameContains)+"%")
	}
	if filters.Category != "" {
		querySQL += " AND category = ?"
		args = append(args, filters.Category)
	}
	if filters.InStock != nil {
		querySQL += " AND in_stock = ?"
		args = append(args, *filters.InStock)
	}
	if filters.MinPrice != nil {
		querySQL += " AND price >= ?"
		args = append(args, filters.MinPrice.String())
	}
	if filters.MaxPrice != nil {
		querySQL += " AND price <= ?"
		args = append(args, filters.MaxPrice.String())
	}
	querySQL += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		resp, scanErr := scanProductRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// escapeLikePattern quotes LIKE wildcards in caller input so a search for a
// literal "%" or "_" matches those characters instead of everything.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
