package orderrepo

import (
	"context"
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/core/ports"
	"retailedge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items are replaced
// wholesale: the old rows are deleted and the aggregate's current rows are
// inserted, so a replaced item never leaves a stale row behind. Callers run
// this inside a unit of work transaction to keep the swap atomic.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("CustomerID", "Status", "TotalAmount", "Notes", "ShippingAddress", "BillingAddress", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// orderByPosition sorts preloaded line items into insertion order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// GetAll retrieves orders matching the filter, oldest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items", orderByPosition)
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}

	var dtos []OrderDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Exists reports whether an order with the given ID is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an order header; item rows go with it via the cascade.
// No-op when the order does not exist.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id = ?", id.Bytes()).
		Delete(&OrderDTO{}).Error
}
