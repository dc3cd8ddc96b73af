package commands

import (
	"context"

	"retailedge/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles order rewrites: header reassignment plus a
// wholesale item replacement, persisted as one transactional write.
//
// The aggregate is loaded and stored within the same transaction, so the header
// row and the replaced item rows can never diverge. Fails with an
// errs.ObjectNotFoundError when the order does not exist.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order rewrites.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the updated aggregate.
// New line items are built (and validated) before the transaction begins.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildLineItems(cmd.Items())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(
		cmd.CustomerID(),
		cmd.Notes(),
		cmd.ShippingAddress(),
		cmd.BillingAddress(),
	); err != nil {
		return nil, err
	}

	if err = aggregate.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
