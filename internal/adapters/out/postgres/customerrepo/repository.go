package customerrepo

import (
	"context"
	"errors"
	"strings"

	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/ports"
	"retailedge/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database. An email collision surfaces as an
// errs.ObjectAlreadyExistsError via the unique index, covering writers that
// race past the handler's pre-check.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, "customer email", aggregate.Email())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("FirstName", "LastName", "Email", "PhoneNumber", "DateOfBirth", "IsActive", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return translateUniqueViolation(result.Error, "customer email", aggregate.Email())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a customer by email address.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves customers matching the filter, oldest first.
func (r *GormCustomerRepository) GetAll(
	ctx context.Context, filter ports.CustomerFilter,
) ([]*customer.Customer, error) {
	query := r.db.WithContext(ctx)
	if filter.FirstNameContains != "" {
		query = query.Where("first_name ILIKE ?", "%"+escapeLikePattern(filter.FirstNameContains)+"%")
	}
	if filter.LastNameContains != "" {
		query = query.Where("last_name ILIKE ?", "%"+escapeLikePattern(filter.LastNameContains)+"%")
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var dtos []CustomerDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// Exists reports whether a customer with the given ID is stored.
func (r *GormCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsByEmail reports whether another customer already uses the given email.
func (r *GormCustomerRepository) ExistsByEmail(
	ctx context.Context, email string, excludeID kernel.UUID,
) (bool, error) {
	if err := excludeID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("email = ? AND id <> ?", email, excludeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a customer. No-op when the customer does not exist.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id = ?", id.Bytes()).
		Delete(&CustomerDTO{}).Error
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
