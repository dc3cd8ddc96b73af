package commands

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a full replacement of a product's mutable
// fields.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	inStock     bool
	imageURL    string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	inStock bool,
	imageURL string,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
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
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the replacement product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the replacement description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the replacement price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// Category returns the replacement category.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// InStock returns the replacement availability flag.
func (c UpdateProductCommand) InStock() bool {
	return c.inStock
}

// ImageURL returns the replacement image URL.
func (c UpdateProductCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
