package commands

import (
	"errors"
	"strings"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/pkg/errs"
	"pressing/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a customer drop-off.
// Encapsulates the order number printed on the ticket, the customer and the
// services to perform.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "MP-0042", "cust1", []string{"wash", "press"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	customerID  string
	services    []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order data. Service names are trimmed
// and blank names rejected.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerID string,
	services []string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomerID(customerID),
		cmd.setServices(services),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Services returns a copy of the service names.
func (c CreateOrderCommand) Services() []string {
	return append([]string(nil), c.services...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setServices(services []string) error {
	names := make([]string, 0, len(services))
	for _, name := range services {
		name = strings.TrimSpace(name)
		if name == "" {
			return errs.NewValueIsInvalidError("services")
		}
		names = append(names, name)
	}

	c.services = names
	return nil
}
