package commands

import (
	"context"

	"retailedge/internal/core/domain/model/product"
	"retailedge/internal/pkg/errs"
)

// UpdateProductCommandHandler handles catalog product updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, replaces its mutable fields and persists the
// change. Renaming to a name another product already uses fails with an
// ObjectAlreadyExistsError.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if cmd.Name() != aggregate.Name() {
		taken, existsErr := productRepo.ExistsByName(ctx, cmd.Name(), cmd.ProductID())
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewObjectAlreadyExistsError("product name", cmd.Name())
		}
	}

	if err = aggregate.UpdateDetails(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.InStock(),
		cmd.ImageURL(),
	); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
