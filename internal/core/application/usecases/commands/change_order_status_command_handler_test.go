package commands_test

import (
	"testing"

	"retailedge/internal/core/application/usecases/commands"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Shipped)
	require.NoError(t, err)

	existing := storedOrder(t, orderID, kernel.NewUUID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Shipped, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

// Any defined status can move to any other, including backwards and straight
// to terminal states.
func TestChangeOrderStatusCommandHandler_Handle_BackwardTransition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	existing := storedOrder(t, orderID, kernel.NewUUID())
	require.NoError(t, existing.ChangeStatus(order.Delivered))

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Pending)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Pending, updated.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("order_id", orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Confirmed)
	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
