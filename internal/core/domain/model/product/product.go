package product

import (
	"errors"
	"fmt"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1000
	maxCategoryLength    = 100
	maxImageURLLength    = 500
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog entry. Product names are unique across the catalog; the
// uniqueness itself is enforced by the storage layer, with a best-effort
// pre-check in the application layer.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	inStock     bool
	imageURL    string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalog product. Name and category are required and
// bounded; the price must be a constructed Money value (hence non-negative).
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	inStock bool,
	imageURL string,
) (*Product, error) {
	p := &Product{
		inStock:       inStock,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setCategory(category),
		p.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.createdAt = now
	p.updatedAt = now
	return p, nil
}

// RestoreProduct reconstructs a product from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	inStock bool,
	imageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, description, price, category, inStock, imageURL)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Product instance was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// UpdateDetails assigns all mutable fields and refreshes updatedAt.
func (p *Product) UpdateDetails(
	name string,
	description string,
	price kernel.Money,
	category string,
	inStock bool,
	imageURL string,
) error {
	if err := errors.Join(
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setCategory(category),
		p.setImageURL(imageURL),
	); err != nil {
		return err
	}

	p.inStock = inStock
	p.updatedAt = time.Now().UTC()
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the unique product name.
func (p *Product) Name() string { return p.name }

// Description returns the optional product description.
func (p *Product) Description() string { return p.description }

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money { return p.price }

// Category returns the product category.
func (p *Product) Category() string { return p.category }

// InStock reports availability.
func (p *Product) InStock() bool { return p.inStock }

// ImageURL returns the optional product image URL.
func (p *Product) ImageURL() string { return p.imageURL }

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"product name",
			fmt.Errorf("length %d exceeds maximum of %d", len(name), maxNameLength),
		)
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"description",
			fmt.Errorf("length %d exceeds maximum of %d", len(description), maxDescriptionLength),
		)
	}
	p.description = description
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if len(category) > maxCategoryLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("length %d exceeds maximum of %d", len(category), maxCategoryLength),
		)
	}
	p.category = category
	return nil
}

func (p *Product) setImageURL(imageURL string) error {
	if len(imageURL) > maxImageURLLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"image url",
			fmt.Errorf("length %d exceeds maximum of %d", len(imageURL), maxImageURLLength),
		)
	}
	p.imageURL = imageURL
	return nil
}
