package commands

import (
	"errors"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/pkg/errs"
	"pressing/internal/pkg/guard"
)

var ErrNotifyCustomerCommandIsNotConstructed = errors.New(
	"NotifyCustomerCommand must be created via NewNotifyCustomerCommand constructor",
)

// NotifyCustomerCommand reminds the customer that a ready order awaits
// pickup and records that the customer was told.
type NotifyCustomerCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewNotifyCustomerCommand(orderID kernel.UUID, actor kernel.Actor) (NotifyCustomerCommand, error) {
	cmd := NotifyCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return NotifyCustomerCommand{}, err
	}
	if actor.ID == "" {
		return NotifyCustomerCommand{}, errs.NewValueIsRequiredError("userId")
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

func (c NotifyCustomerCommand) Validate() error {
	return c.guard.Validate(ErrNotifyCustomerCommandIsNotConstructed)
}

func (c NotifyCustomerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c NotifyCustomerCommand) Actor() kernel.Actor {
	return c.actor
}
