package commands

import (
	"context"

	"retailedge/internal/core/domain/model/product"
	"retailedge/internal/pkg/errs"
)

// CreateProductCommandHandler handles catalog product creation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the product and persists it. Product names are unique: a
// pre-check returns an ObjectAlreadyExistsError for the common case, and the
// storage layer's unique index covers concurrent writers.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.InStock(),
		cmd.ImageURL(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	taken, err := productRepo.ExistsByName(ctx, cmd.Name(), cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("product name", cmd.Name())
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
