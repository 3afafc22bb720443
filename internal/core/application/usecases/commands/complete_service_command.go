package commands

import (
	"errors"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/pkg/errs"
	"pressing/internal/pkg/guard"
)

var ErrCompleteServiceCommandIsNotConstructed = errors.New(
	"CompleteServiceCommand must be created via NewCompleteServiceCommand constructor",
)

// CompleteServiceCommand marks one service line of an order as done.
type CompleteServiceCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	serviceIndex int
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

func NewCompleteServiceCommand(orderID kernel.UUID, serviceIndex int, actor kernel.Actor) (CompleteServiceCommand, error) {
	cmd := CompleteServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setServiceIndex(serviceIndex),
		cmd.setActor(actor),
	); err != nil {
		return CompleteServiceCommand{}, err
	}

	return cmd, nil
}

func (c CompleteServiceCommand) Validate() error {
	return c.guard.Validate(ErrCompleteServiceCommandIsNotConstructed)
}

func (c CompleteServiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteServiceCommand) ServiceIndex() int {
	return c.serviceIndex
}

func (c CompleteServiceCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CompleteServiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteServiceCommand) setServiceIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidError("serviceIndex")
	}

	c.serviceIndex = index
	return nil
}

func (c *CompleteServiceCommand) setActor(actor kernel.Actor) error {
	if actor.ID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.actor = actor
	return nil
}
