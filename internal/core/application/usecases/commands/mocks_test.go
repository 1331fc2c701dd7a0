package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agrikart/internal/core/application/usecases/commands"
	"agrikart/internal/core/domain/model/cart"
	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
	"agrikart/internal/core/domain/model/party"
	"agrikart/internal/core/domain/model/produce"
	"agrikart/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProduceRepository struct{ mock.Mock }

func (m *MockProduceRepository) Add(ctx context.Context, p *produce.Produce) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProduceRepository) Update(ctx context.Context, p *produce.Produce) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProduceRepository) Get(ctx context.Context, id kernel.UUID) (*produce.Produce, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*produce.Produce), args.Error(1)
}

func (m *MockProduceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*produce.Produce, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*produce.Produce), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) AddAssignment(ctx context.Context, a courier.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCourierRepository) GetAssignment(ctx context.Context, orderID kernel.UUID) (courier.Assignment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(courier.Assignment), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Upsert(ctx context.Context, item cart.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]cart.CartItem, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.CartItem), args.Error(1)
}

func (m *MockCartRepository) ClearByBuyer(ctx context.Context, buyerID kernel.UUID) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) AddBuyer(ctx context.Context, b *party.Buyer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockPartyRepository) GetBuyer(ctx context.Context, id kernel.UUID) (*party.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Buyer), args.Error(1)
}

func (m *MockPartyRepository) AddFarmer(ctx context.Context, f *party.Farmer) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockPartyRepository) GetFarmer(ctx context.Context, id kernel.UUID) (*party.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Farmer), args.Error(1)
}

type MockFarmerNotifier struct{ mock.Mock }

func (m *MockFarmerNotifier) Notify(ctx context.Context, notifications []ports.FarmerNotification) {
	m.Called(ctx, notifications)
}

// MockCheckoutUoW satisfies every repository factory so it can stand in for
// any of the unit of work groups.
type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCheckoutUoW) ProduceRepository() ports.ProduceRepository {
	args := m.Called()
	return args.Get(0).(ports.ProduceRepository)
}

func (m *MockCheckoutUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCheckoutUoW) PartyRepository() ports.PartyRepository {
	args := m.Called()
	return args.Get(0).(ports.PartyRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}
