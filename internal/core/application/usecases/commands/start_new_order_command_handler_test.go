package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/dinnertable"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStartOrderRepository struct{ mock.Mock }

func (m *MockStartOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockStartOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockStartOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStartOrderRepository) GetAllByStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStartOrderRepository) GetAllByTable(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockStartTableRepository struct{ mock.Mock }

func (m *MockStartTableRepository) Add(_ context.Context, _ *dinnertable.Table) error { return nil }
func (m *MockStartTableRepository) Update(_ context.Context, _ *dinnertable.Table) error {
	return nil
}
func (m *MockStartTableRepository) Delete(_ context.Context, _ kernel.UUID) error { return nil }
func (m *MockStartTableRepository) Get(ctx context.Context, id kernel.UUID) (*dinnertable.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dinnertable.Table), args.Error(1)
}
func (m *MockStartTableRepository) GetByNumber(_ context.Context, _ int) (*dinnertable.Table, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStartTableRepository) GetAll(_ context.Context) ([]*dinnertable.Table, error) {
	return nil, errors.New("not implemented in mock")
}

type MockStartUoW struct{ mock.Mock }

func (m *MockStartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStartUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockStartUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

type MockStartUoWFactory struct{ mock.Mock }

func (m *MockStartUoWFactory) Create() commands.OrderTableUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderTableUoW)
}

func freeTable(t *testing.T) *dinnertable.Table {
	t.Helper()
	table, err := dinnertable.NewTable(kernel.NewUUID(), 4, 6)
	require.NoError(t, err)
	return table
}

func occupiedTable(t *testing.T) *dinnertable.Table {
	t.Helper()
	tableID := kernel.NewUUID()
	running, err := order.RestoreOrder(
		kernel.NewUUID(), tableID, order.Pending, 0, time.Now(), nil, nil, nil)
	require.NoError(t, err)
	table, err := dinnertable.RestoreTable(tableID, 4, 6, []*order.Order{running})
	require.NoError(t, err)
	return table
}

func TestStartNewOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	table := freeTable(t)
	cmd, _ := commands.NewStartNewOrderCommand(kernel.NewUUID(), table.ID())

	orderRepo := new(MockStartOrderRepository)
	tableRepo := new(MockStartTableRepository)
	uow := new(MockStartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tableRepo.On("Get", mock.Anything, table.ID()).Return(table, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartNewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestStartNewOrderCommandHandler_Handle_TableOccupied(t *testing.T) {
	ctx := t.Context()
	table := occupiedTable(t)
	cmd, _ := commands.NewStartNewOrderCommand(kernel.NewUUID(), table.ID())

	orderRepo := new(MockStartOrderRepository)
	tableRepo := new(MockStartTableRepository)
	uow := new(MockStartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tableRepo.On("Get", mock.Anything, table.ID()).Return(table, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartNewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestStartNewOrderCommandHandler_Handle_TableNotFound(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, _ := commands.NewStartNewOrderCommand(kernel.NewUUID(), tableID)

	orderRepo := new(MockStartOrderRepository)
	tableRepo := new(MockStartTableRepository)
	uow := new(MockStartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).
			Return(nil, errs.NewObjectNotFoundError("tableID", tableID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartNewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStartNewOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.StartNewOrderCommand{} // not constructed properly
	factory := new(MockStartUoWFactory)
	h := commands.NewStartNewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
