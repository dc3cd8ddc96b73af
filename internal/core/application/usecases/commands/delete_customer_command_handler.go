package commands

import (
	"context"
)

// DeleteCustomerCommandHandler handles customer removal.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the customer. Returns false without error when the customer
// does not exist.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) (bool, error) {
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

	customerRepo := uow.CustomerRepository()
	exists, err := customerRepo.Exists(ctx, cmd.CustomerID())
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err = customerRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
