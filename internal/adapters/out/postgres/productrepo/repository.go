package productrepo

import (
	"context"
	"errors"
	"strings"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/product"
	"retailedge/internal/core/ports"
	"retailedge/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database. A name collision surfaces as an
// errs.ObjectAlreadyExistsError via the unique index, covering writers that
// race past the handler's pre-check.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, "product name", aggregate.Name())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Description", "Price", "Category", "InStock", "ImageURL", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return translateUniqueViolation(result.Error, "product name", aggregate.Name())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves products matching the filter, oldest first.
func (r *GormProductRepository) GetAll(ctx context.Context, filter ports.ProductFilter) ([]*product.Product, error) {
	query := r.db.WithContext(ctx)
	if filter.NameContains != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLikePattern(filter.NameContains)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice.String())
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice.String())
	}

	var dtos []ProductDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Exists reports whether a product with the given ID is stored.
func (r *GormProductRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsByName reports whether another product already uses the given name.
func (r *GormProductRepository) ExistsByName(ctx context.Context, name string, excludeID kernel.UUID) (bool, error) {
	if err := excludeID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("name = ? AND id <> ?", name, excludeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a product. No-op when the product does not exist.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id = ?", id.Bytes()).
		Delete(&ProductDTO{}).Error
}

// escapeLikePattern quotes LIKE wildcards in caller input so a search for a
// literal "%" or "_" matches those characters instead of everything.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// translateUniqueViolation maps a PostgreSQL unique constraint violation to
// the domain's ObjectAlreadyExistsError, leaving other errors untouched.
func translateUniqueViolation(err error, paramName string, value any) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return errs.NewObjectAlreadyExistsErrorWithCause(paramName, value, err)
	}
	return err
}
