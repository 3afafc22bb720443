package commands_test

import (
	"context"
	"time"

	"pressing/internal/core/application/usecases/commands"
	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/domain/services"
	"pressing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

var (
	manager = kernel.Actor{ID: "mgr1", Role: kernel.RoleManager}
	client  = kernel.Actor{ID: "cust1", Role: kernel.RoleClient}
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

func (m *MockOrderRepository) List(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[order.Status]int), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderLifecycle struct{ mock.Mock }

func (m *MockOrderLifecycle) ExecuteTransition(
	ctx context.Context,
	o *order.Order,
	target order.Status,
	actor kernel.Actor,
	fields order.TransitionFields,
) (services.Transition, error) {
	args := m.Called(ctx, o, target, actor, fields)
	return args.Get(0).(services.Transition), args.Error(1)
}

func (m *MockOrderLifecycle) RemindCustomer(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func restoreOrder(status order.Status, lines ...order.ServiceLine) *order.Order {
	o, err := order.Restore(order.Snapshot{
		ID:          kernel.NewUUID(),
		OrderNumber: "MP-0001",
		CustomerID:  "cust1",
		Services:    lines,
		Status:      status,
		CreatedAt:   now.Add(-time.Hour),
		Version:     1,
	})
	if err != nil {
		panic(err)
	}
	return o
}
