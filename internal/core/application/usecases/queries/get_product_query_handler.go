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

// GetProductQueryHandler retrieves a single product read model from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve the product.
// Returns an errs.ObjectNotFoundError when no such product exists.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.ProductID().String()).Row()

	resp, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("product_id", query.ProductID())
		}
		return ProductResponse{}, err
	}

	return resp, nil
}

func scanProductRow(row rowScanner) (ProductResponse, error) {
	var (
		resp  ProductResponse
		id    uuid.UUID
		price string
	)

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Description,
		&price,
		&resp.Category,
		&resp.InStock,
		&resp.ImageURL,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	priceMoney, err := kernel.MoneyFromString(price)
	if err != nil {
		return ProductResponse{}, err
	}
	resp.Price = priceMoney

	return resp, nil
}
