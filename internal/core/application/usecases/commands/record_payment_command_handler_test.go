package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentOrderRepository struct{ mock.Mock }

func (m *MockPaymentOrderRepository) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockPaymentOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockPaymentOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockPaymentOrderRepository) GetAllByStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPaymentOrderRepository) GetAllByTable(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPaymentUoW struct{ mock.Mock }

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// servedOrder builds an order awaiting payment with a 30.00 total.
func servedOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 15.00, 2)
	require.NoError(t, err)
	servedAt := time.Now()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.Served, 0,
		time.Now().Add(-30*time.Minute), &servedAt,
		[]*order.LineItem{line}, nil)
	require.NoError(t, err)
	return o
}

func TestRecordPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	theOrder := servedOrder(t)
	cmd, _ := commands.NewRecordPaymentCommand(theOrder.ID(), kernel.NewUUID(), 30.00, "CARD")

	repo := new(MockPaymentOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, theOrder.ID()).Return(theOrder, nil).Once(),
		repo.On("Update", mock.Anything, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Paid, theOrder.Status())
	require.Len(t, theOrder.Payments(), 1)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_InsufficientAmount(t *testing.T) {
	ctx := t.Context()
	theOrder := servedOrder(t)
	cmd, _ := commands.NewRecordPaymentCommand(theOrder.ID(), kernel.NewUUID(), 10.00, "CASH")

	repo := new(MockPaymentOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, order.Served, theOrder.Status())
	require.Empty(t, theOrder.Payments())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRecordPaymentCommandHandler_Handle_OrderNotServed(t *testing.T) {
	ctx := t.Context()
	pending, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	cmd, _ := commands.NewRecordPaymentCommand(pending.ID(), kernel.NewUUID(), 30.00, "CARD")

	repo := new(MockPaymentOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestRecordPaymentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewRecordPaymentCommand(orderID, kernel.NewUUID(), 30.00, "CARD")

	repo := new(MockPaymentOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
