package commands

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to add a product to the catalog.
// Field-level validation lives in the product aggregate; the command only
// checks what it needs to be routable.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	inStock     bool
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	inStock bool,
	imageURL string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:        name,
		description: description,
		category:    category,
		inStock:     inStock,
		imageURL:    imageURL,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the product price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Category returns the product category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// InStock returns the availability flag.
func (c CreateProductCommand) InStock() bool {
	return c.inStock
}

// ImageURL returns the product image URL.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
