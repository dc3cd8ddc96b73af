package commands_test

import (
	"context"
	"errors"
	"testing"

	"retailedge/internal/core/application/usecases/commands"
	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/ports"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(_ context.Context, _ string) (*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCustomerRepository) GetAll(_ context.Context, _ ports.CustomerFilter) ([]*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerUoW struct{ mock.Mock }

func (m *MockCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, "Ada", "Park", "ada.park@example.com", "+15550100", nil, true)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("ExistsByEmail", mock.Anything, "ada.park@example.com", customerID).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "ada.park@example.com", created.Email())
	require.True(t, created.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, "Ada", "Park", "ada.park@example.com", "", nil, true)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("ExistsByEmail", mock.Anything, "ada.park@example.com", customerID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateCustomerCommandHandler_Handle_InvalidEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(
		kernel.NewUUID(), "Ada", "Park", "not-an-email", "", nil, true)
	require.NoError(t, err)

	factory := new(MockCustomerUoWFactory)

	h := commands.NewCreateCustomerCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}
