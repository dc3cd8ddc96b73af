package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order removal.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order and its line items. Returns false without error
// when the order does not exist, so callers can translate absence into their
// own response without treating it as a failure.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
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

	orderRepo := uow.OrderRepository()
	exists, err := orderRepo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
