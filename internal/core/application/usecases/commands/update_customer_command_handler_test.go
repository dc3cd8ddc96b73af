package commands_test

import (
	"testing"

	"retailedge/internal/core/application/usecases/commands"
	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedCustomer(t *testing.T, customerID kernel.UUID, email string) *customer.Customer {
	t.Helper()
	aggregate, err := customer.NewCustomer(customerID, "Ada", "Park", email, "", nil, true)
	require.NoError(t, err)
	return aggregate
}

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, "Ada", "Park-Lee", "ada.park@example.com", "+15550100", nil, false)
	require.NoError(t, err)

	existing := storedCustomer(t, customerID, "ada.park@example.com")

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customerID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Park-Lee", updated.LastName())
	require.False(t, updated.IsActive())
	// Email unchanged, so no uniqueness pre-check.
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_ChangeEmailToTaken(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, "Ada", "Park", "new.address@example.com", "", nil, true)
	require.NoError(t, err)

	existing := storedCustomer(t, customerID, "ada.park@example.com")

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customerID).Return(existing, nil).Once(),
		repo.On("ExistsByEmail", mock.Anything, "new.address@example.com", customerID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomerCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, "Ada", "Park", "ada.park@example.com", "", nil, true)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("customer_id", customerID)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customerID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, customerID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomerCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, deleted)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
