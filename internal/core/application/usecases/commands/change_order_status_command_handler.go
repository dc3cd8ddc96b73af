package commands

import (
	"context"

	"retailedge/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles status transitions for orders.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the requested status and persists the
// change. Returns the updated aggregate, or an ObjectNotFoundError when the
// order does not exist.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
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
