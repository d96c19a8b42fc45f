package commands_test

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type stubAudit struct{}

func (stubAudit) Record(_ context.Context, _ ports.AuditRecord) {}

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
func (m *MockOrderRepository) GetByNumber(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockConsignmentRepository struct{ mock.Mock }

func (m *MockConsignmentRepository) Add(ctx context.Context, c *consignment.Consignment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockConsignmentRepository) Update(ctx context.Context, c *consignment.Consignment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockConsignmentRepository) Get(ctx context.Context, id kernel.UUID) (*consignment.Consignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consignment.Consignment), args.Error(1)
}
func (m *MockConsignmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*consignment.Consignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*consignment.Consignment), args.Error(1)
}
func (m *MockConsignmentRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*consignment.Consignment, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*consignment.Consignment), args.Error(1)
}
func (m *MockConsignmentRepository) ExistsForOrderAndWarehouse(ctx context.Context, orderID, warehouseID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, warehouseID)
	return args.Bool(0), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}
func (m *MockCartRepository) GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.Item, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}
func (m *MockCartRepository) FindLine(ctx context.Context, buyerID, productID, warehouseID kernel.UUID) (*cart.Item, error) {
	args := m.Called(ctx, buyerID, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}
func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCartRepository) DeleteByBuyer(ctx context.Context, buyerID kernel.UUID) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}
func (m *MockCartRepository) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Get(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Record, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}
func (m *MockInventoryRepository) GetByWarehouse(_ context.Context, _ kernel.UUID) ([]*inventory.Record, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInventoryRepository) Upsert(ctx context.Context, record *inventory.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockInventoryRepository) Reserve(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, warehouseID, productID, quantity)
	return args.Error(0)
}
func (m *MockInventoryRepository) Release(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, warehouseID, productID, quantity)
	return args.Error(0)
}
func (m *MockInventoryRepository) Commit(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, warehouseID, productID, quantity)
	return args.Error(0)
}
func (m *MockInventoryRepository) AdjustStock(ctx context.Context, warehouseID, productID kernel.UUID, delta int) error {
	args := m.Called(ctx, warehouseID, productID, delta)
	return args.Error(0)
}

type MockNumberSequence struct{ mock.Mock }

func (m *MockNumberSequence) Next(ctx context.Context, prefix string, day time.Time) (string, error) {
	args := m.Called(ctx, prefix, day)
	return args.String(0), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetProduct(ctx context.Context, productID kernel.UUID) (*ports.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Product), args.Error(1)
}

// MockUoW satisfies every command UoW shape.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ConsignmentRepository() ports.ConsignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsignmentRepository)
}
func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}
func (m *MockUoW) NumberSequence() ports.NumberSequence {
	args := m.Called()
	return args.Get(0).(ports.NumberSequence)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockAddCartItemUoWFactory struct{ mock.Mock }

func (m *MockAddCartItemUoWFactory) Create() commands.AddCartItemUoW {
	args := m.Called()
	return args.Get(0).(commands.AddCartItemUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStatusUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockConsignmentUoWFactory struct{ mock.Mock }

func (m *MockConsignmentUoWFactory) Create() commands.ConsignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsignmentUoW)
}

type MockDriverLocationUoWFactory struct{ mock.Mock }

func (m *MockDriverLocationUoWFactory) Create() commands.DriverLocationUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverLocationUoW)
}
