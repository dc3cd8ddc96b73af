package commands

import (
	"context"

	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/pkg/errs"
)

// UpdateCustomerCommandHandler handles customer profile updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, replaces its mutable fields and persists the
// change. Changing the email to one another customer already uses fails with
// an ObjectAlreadyExistsError.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context, cmd UpdateCustomerCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if cmd.Email() != aggregate.Email() {
		taken, existsErr := customerRepo.ExistsByEmail(ctx, cmd.Email(), cmd.CustomerID())
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewObjectAlreadyExistsError("customer email", cmd.Email())
		}
	}

	if err = aggregate.UpdateDetails(
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.PhoneNumber(),
		cmd.DateOfBirth(),
		cmd.IsActive(),
	); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
