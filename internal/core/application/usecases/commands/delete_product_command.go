package commands

import (
	"errors"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/guard"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// DeleteProductCommand represents a request to remove a catalog product.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a catalog product.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to delete.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
