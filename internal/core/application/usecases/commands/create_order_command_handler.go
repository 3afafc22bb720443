package commands

import (
	"context"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers new orders in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle creates the order and returns it at version 1.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	names := cmd.Services()
	lines := make([]order.ServiceLine, 0, len(names))
	for _, name := range names {
		lines = append(lines, order.ServiceLine{Name: name})
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.OrderNumber(), cmd.CustomerID(), lines, h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
