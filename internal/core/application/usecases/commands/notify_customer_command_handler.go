package commands

import (
	"context"
	"fmt"

	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"
)

type NotifyCustomerCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  OrderLifecycle
}

func NewNotifyCustomerCommandHandler(uowFactory OrderUoWFactory, lifecycle OrderLifecycle) NotifyCustomerCommandHandler {
	return NotifyCustomerCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle sends the reminder and, once it was delivered, flags the order as
// customer notified. A failed reminder leaves the order unchanged.
func (h *NotifyCustomerCommandHandler) Handle(ctx context.Context, cmd NotifyCustomerCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if role := cmd.Actor().Role; !role.IsStaff() {
		return nil, errs.NewPreconditionFailedError(fmt.Sprintf("role %q cannot notify customers", role))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.lifecycle.RemindCustomer(ctx, o); err != nil {
		return nil, err
	}

	if err = o.MarkCustomerNotified(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
