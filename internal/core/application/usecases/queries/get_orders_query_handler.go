package queries

import (
	"context"

	"retailedge/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Line items are fetched in a second round trip covering every matched order,
// so listing N orders costs two queries rather than N+1.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders matching the filters.
// Results are sorted by creation time for stable listing output.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			notes,
			shipping_address,
			billing_address,
			created_at,
			updated_at
		FROM orders
		WHERE 1=1`
	args := make([]any, 0, 2)

	if query.CustomerID() != nil {
		querySQL += " AND customer_id = ?"
		args = append(args, query.CustomerID().String())
	}
	if query.Status() != nil {
		querySQL += " AND status = ?"
		args = append(args, int(*query.Status()))
	}
	querySQL += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderHeader(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	items, err := loadOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}
