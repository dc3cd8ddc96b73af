package queries

import (
	"context"
	"database/sql"
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order and its line items.
// Returns an errs.ObjectNotFoundError when no such order exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderHeader(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
		}
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, []kernel.UUID{resp.ID})
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items[resp.ID]

	return resp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderHeader(row rowScanner) (OrderResponse, error) {
	var (
		resp        OrderResponse
		id          uuid.UUID
		customerID  uuid.UUID
		status      int
		totalAmount string
	)

	err := row.Scan(
		&id,
		&customerID,
		&status,
		&totalAmount,
		&resp.Notes,
		&resp.ShippingAddress,
		&resp.BillingAddress,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = custID

	resp.Status = order.Status(status)

	total, err := kernel.MoneyFromString(totalAmount)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.TotalAmount = total

	resp.Items = make([]LineItemResponse, 0)
	return resp, nil
}

// loadOrderItems fetches line items for the given orders in one round trip,
// keyed by order, preserving each order's insertion order.
func loadOrderItems(
	ctx context.Context, db *gorm.DB, orderIDs []kernel.UUID,
) (map[kernel.UUID][]LineItemResponse, error) {
	items := make(map[kernel.UUID][]LineItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		ids = append(ids, orderID.String())
		items[orderID] = make([]LineItemResponse, 0)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price,
			total_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item       LineItemResponse
			id         uuid.UUID
			orderIDRaw uuid.UUID
			productID  uuid.UUID
			unitPrice  string
			totalPrice string
		)

		err = rows.Scan(
			&id,
			&orderIDRaw,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&unitPrice,
			&totalPrice,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = prodID

		unit, priceErr := kernel.MoneyFromString(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item.UnitPrice = unit

		total, priceErr := kernel.MoneyFromString(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item.TotalPrice = total

		orderID, idErr := kernel.UUIDFromBytes(orderIDRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		items[orderID] = append(items[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
