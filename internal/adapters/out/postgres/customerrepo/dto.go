// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database row for a customer. The unique index on
// email backs the registration uniqueness rule under concurrent writers.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"type:varchar(100)"`
	LastName    string    `gorm:"type:varchar(100)"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string    `gorm:"type:varchar(20)"`
	DateOfBirth *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		Email:       aggregate.Email(),
		PhoneNumber: aggregate.PhoneNumber(),
		DateOfBirth: aggregate.DateOfBirth(),
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PhoneNumber,
		dto.DateOfBirth,
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
