// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database row for a catalog product. The unique
// index on name backs the catalog's uniqueness rule under concurrent writers.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex"`
	Description string    `gorm:"type:varchar(1000)"`
	Price       string    `gorm:"type:decimal(12,2)"`
	Category    string    `gorm:"type:varchar(100);index"`
	InStock     bool
	ImageURL    string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().String(),
		Category:    aggregate.Category(),
		InStock:     aggregate.InStock(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.MoneyFromString(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.InStock,
		dto.ImageURL,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
