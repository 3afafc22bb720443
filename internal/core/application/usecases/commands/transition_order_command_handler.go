package commands

import (
	"context"
	"errors"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/domain/services"
	"pressing/internal/pkg/errs"
)

// TransitionOrderCommandHandler loads an order, runs the transition through
// the lifecycle and persists the new snapshot with a version check.
//
// Fields a counter clerk never types are filled in before validation:
// completedAt for Ready, deliveredAt and deliveredBy for Delivered.
//
// When a side effect fails after the transition was applied the snapshot is
// still persisted and the *services.SideEffectError is returned together with
// the transition.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  OrderLifecycle
	clock      kernel.Clock
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	lifecycle OrderLifecycle,
	clock kernel.Clock,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		clock:      clock,
	}
}

func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (services.Transition, error) {
	if err := cmd.Validate(); err != nil {
		return services.Transition{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Transition{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.Transition{}, err
	}

	if expected, ok := cmd.ExpectedVersion(); ok && expected != current.Version() {
		return services.Transition{}, errs.NewVersionIsInvalidError("order", expected, current.Version())
	}

	fields := h.withDefaults(cmd.Target(), cmd.Actor(), cmd.Fields())
	result, err := h.lifecycle.ExecuteTransition(ctx, current, cmd.Target(), cmd.Actor(), fields)

	var sideEffectErr *services.SideEffectError
	switch {
	case errors.As(err, &sideEffectErr):
		if saveErr := h.save(ctx, uow, sideEffectErr.Order); saveErr != nil {
			return services.Transition{}, errors.Join(err, saveErr)
		}
		return result, err
	case err != nil:
		return services.Transition{}, err
	}

	if err = h.save(ctx, uow, result.Order); err != nil {
		return services.Transition{}, err
	}

	return result, nil
}

func (h *TransitionOrderCommandHandler) save(ctx context.Context, uow OrderUoW, o *order.Order) error {
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (h *TransitionOrderCommandHandler) withDefaults(
	target order.Status,
	actor kernel.Actor,
	fields order.TransitionFields,
) order.TransitionFields {
	now := h.clock.Now()
	switch target {
	case order.Ready:
		if fields.CompletedAt == nil {
			fields.CompletedAt = &now
		}
	case order.Delivered:
		if fields.DeliveredAt == nil {
			fields.DeliveredAt = &now
		}
		if fields.DeliveredBy == "" {
			fields.DeliveredBy = actor.ID
		}
	}
	return fields
}
