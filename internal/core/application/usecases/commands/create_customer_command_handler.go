package commands

import (
	"context"

	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/pkg/errs"
)

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the customer and persists it. Emails are unique: a pre-check
// returns an ObjectAlreadyExistsError for the common case, and the storage
// layer's unique index covers concurrent writers.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.PhoneNumber(),
		cmd.DateOfBirth(),
		cmd.IsActive(),
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

	customerRepo := uow.CustomerRepository()
	taken, err := customerRepo.ExistsByEmail(ctx, cmd.Email(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("customer email", cmd.Email())
	}

	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
