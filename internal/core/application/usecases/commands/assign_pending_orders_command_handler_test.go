package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrikart/internal/core/application/usecases/commands"
	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
)

func pendingOrderWithPickup(t *testing.T, lat, lon float64) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Tomatoes", decimal.NewFromInt(10), 1)
	require.NoError(t, err)

	pickup, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, nil, &pickup)
	require.NoError(t, err)

	return o
}

func TestAssignPendingOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	// one order near the courier, one far beyond the threshold
	nearOrder := pendingOrderWithPickup(t, 12.05, 77.00)
	farOrder := pendingOrderWithPickup(t, 14.00, 77.00)
	rider := nearbyCourier(t)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("GetAllPendingUnassigned", ctx).
		Return([]*order.Order{nearOrder, farOrder}, nil).Once()
	courierRepo.On("GetAll", ctx).Return([]*courier.Courier{rider}, nil).Once()
	courierRepo.On("AddAssignment", ctx, mock.MatchedBy(func(a courier.Assignment) bool {
		return a.OrderID().IsEqual(nearOrder.ID()) && a.CourierID().IsEqual(rider.ID())
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd := commands.NewAssignPendingOrdersCommand()
	h := commands.NewAssignPendingOrdersCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))

	courierRepo.AssertNumberOfCalls(t, "AddAssignment", 1)
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignPendingOrdersCommandHandler_Handle_NothingToAssign(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("GetAllPendingUnassigned", ctx).Return([]*order.Order{}, nil).Once()
	courierRepo.On("GetAll", ctx).Return([]*courier.Courier{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingOrdersCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, commands.NewAssignPendingOrdersCommand()))
	courierRepo.AssertNotCalled(t, "AddAssignment", mock.Anything, mock.Anything)
}

func TestAssignPendingOrdersCommandHandler_Handle_AddAssignmentError(t *testing.T) {
	ctx := t.Context()

	nearOrder := pendingOrderWithPickup(t, 12.05, 77.00)
	rider := nearbyCourier(t)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("GetAllPendingUnassigned", ctx).Return([]*order.Order{nearOrder}, nil).Once()
	courierRepo.On("GetAll", ctx).Return([]*courier.Courier{rider}, nil).Once()
	courierRepo.On("AddAssignment", ctx, mock.Anything).Return(assert.AnError).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingOrdersCommandHandler(factory)
	err := h.Handle(ctx, commands.NewAssignPendingOrdersCommand())

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignPendingOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockAssignmentUoWFactory)

	h := commands.NewAssignPendingOrdersCommandHandler(factory)
	err := h.Handle(ctx, commands.AssignPendingOrdersCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
