package commands

import (
	"context"
)

// DeleteProductCommandHandler handles catalog product removal.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the product. Returns false without error when the product
// does not exist.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	exists, err := productRepo.Exists(ctx, cmd.ProductID())
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err = productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
