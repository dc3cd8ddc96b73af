package commands_test

import (
	"testing"

	"retailedge/internal/core/application/usecases/commands"
	"retailedge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, productID).Return(true, nil).Once(),
		repo.On("Delete", mock.Anything, productID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, deleted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, productID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, deleted)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
