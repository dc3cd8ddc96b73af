// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, storing the header and its line items in separate tables and
// converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order header. Line items live in
// their own table and cascade on delete, so removing a header removes the
// whole aggregate.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index"`
	TotalAmount     string    `gorm:"type:decimal(12,2)"`
	Notes           string    `gorm:"type:varchar(500)"`
	ShippingAddress string    `gorm:"type:varchar(1000)"`
	BillingAddress  string    `gorm:"type:varchar(1000)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database row for one order line. Position is the
// zero-based index of the line within its order; item identifiers are random
// UUIDs, so reads must sort by position to restore insertion order.
type LineItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string    `gorm:"type:varchar(255)"`
	Quantity    int
	UnitPrice   string `gorm:"type:decimal(12,2)"`
	TotalPrice  string `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]LineItemDTO, 0, len(domainItems))
	for position, item := range domainItems {
		items = append(items, LineItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			Position:    position,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			TotalPrice:  item.TotalPrice().String(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Status:          int(aggregate.Status()),
		TotalAmount:     aggregate.TotalAmount().String(),
		Notes:           aggregate.Notes(),
		ShippingAddress: aggregate.ShippingAddress(),
		BillingAddress:  aggregate.BillingAddress(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which recomputes the total from the item rows rather than
// trusting the stored column.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		items,
		dto.Notes,
		dto.ShippingAddress,
		dto.BillingAddress,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.MoneyFromString(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, productID, dto.ProductName, dto.Quantity, unitPrice)
}
