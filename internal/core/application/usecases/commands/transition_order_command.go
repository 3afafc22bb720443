package commands

import (
	"errors"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"
	"pressing/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move an order to another status on behalf
// of actor. A non-nil expectedVersion makes the command fail when the order
// changed since the caller read it.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	target          order.Status
	actor           kernel.Actor
	fields          order.TransitionFields
	expectedVersion *int64

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
	fields order.TransitionFields,
	expectedVersion *int64,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c TransitionOrderCommand) Fields() order.TransitionFields {
	return c.fields
}

// ExpectedVersion returns the version the caller read, if any.
func (c TransitionOrderCommand) ExpectedVersion() (int64, bool) {
	if c.expectedVersion == nil {
		return 0, false
	}
	return *c.expectedVersion, true
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.Actor) error {
	if actor.ID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setExpectedVersion(version *int64) error {
	if version == nil {
		return nil
	}
	if *version < 1 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}

	v := *version
	c.expectedVersion = &v
	return nil
}
