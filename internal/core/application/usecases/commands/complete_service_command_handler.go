package commands

import (
	"context"
	"fmt"

	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"
)

type CompleteServiceCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteServiceCommandHandler(uowFactory OrderUoWFactory) CompleteServiceCommandHandler {
	return CompleteServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the service done and returns the updated order. Only staff
// may complete services.
func (h *CompleteServiceCommandHandler) Handle(ctx context.Context, cmd CompleteServiceCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if role := cmd.Actor().Role; !role.IsStaff() {
		return nil, errs.NewPreconditionFailedError(fmt.Sprintf("role %q cannot complete services", role))
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

	if err = o.CompleteService(cmd.ServiceIndex()); err != nil {
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
